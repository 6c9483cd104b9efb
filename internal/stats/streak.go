package stats

import (
	"sort"

	"duostats/internal/models"
)

type Streak struct {
	Player  string
	MaxWin  int
	MaxLose int
}

type TeamStreak struct {
	Team    models.Team
	MaxWin  int
	MaxLose int
}

// Streaks walks the records in play order and tracks the longest run of wins and losses.
// Records without a timestamp sort before timestamped ones; equal times keep input order.
func Streaks(matches []models.Match, player string) Streak {
	win, lose := longestRuns(chronological(matches), playerSide(player))
	return Streak{Player: player, MaxWin: win, MaxLose: lose}
}

// AllStreaks computes streaks for every player, in the given order.
func AllStreaks(matches []models.Match, players []string) []Streak {
	ordered := chronological(matches)
	out := make([]Streak, 0, len(players))
	for _, p := range players {
		win, lose := longestRuns(ordered, playerSide(p))
		out = append(out, Streak{Player: p, MaxWin: win, MaxLose: lose})
	}
	return out
}

// TeamStreaks tracks runs for each team as a unit. A game where only one of the two
// players took part does not touch the team's run.
func TeamStreaks(matches []models.Match, teams []models.Team) []TeamStreak {
	ordered := chronological(matches)
	out := make([]TeamStreak, 0, len(teams))
	for _, t := range teams {
		key := t.Key()
		win, lose := longestRuns(ordered, teamSide(key))
		out = append(out, TeamStreak{Team: key, MaxWin: win, MaxLose: lose})
	}
	return out
}

// side reports whether the subject won or lost m; both false means it sat out.
type side func(m models.Match) (won, lost bool)

func playerSide(player string) side {
	return func(m models.Match) (bool, bool) {
		return m.Winning.Has(player), m.Losing.Has(player)
	}
}

func teamSide(key models.Team) side {
	return func(m models.Match) (bool, bool) {
		return m.Winning.Key() == key, m.Losing.Key() == key
	}
}

func longestRuns(ordered []models.Match, of side) (maxWin, maxLose int) {
	var win, lose int
	for _, m := range ordered {
		won, lost := of(m)
		switch {
		case won:
			win++
			lose = 0
			maxWin = max(maxWin, win)
		case lost:
			lose++
			win = 0
			maxLose = max(maxLose, lose)
		}
	}
	return maxWin, maxLose
}

func chronological(matches []models.Match) []models.Match {
	ordered := make([]models.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlayedAt.Before(ordered[j].PlayedAt)
	})
	return ordered
}
