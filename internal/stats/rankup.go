package stats

import "duostats/internal/models"

// maxRankUpGames bounds the search; gaps that need more extra games are reported unreachable.
const maxRankUpGames = 400

// RankUp is the cheapest way for a player to overtake the one ranked directly above:
// RequiredWins more wins of their own plus RequiredLosses more losses by the target.
type RankUp struct {
	Player         string
	Rank           int
	Target         string
	TargetRank     int
	RequiredWins   int
	RequiredLosses int
	Reachable      bool
}

// RankUpConditions takes a win-rate ranking and returns one condition per player below first place.
func RankUpConditions(ranked []RankedPlayer) []RankUp {
	if len(ranked) < 2 {
		return nil
	}
	out := make([]RankUp, 0, len(ranked)-1)
	for i := 1; i < len(ranked); i++ {
		out = append(out, rankUpCondition(ranked[i], ranked[i-1]))
	}
	return out
}

// rankUpCondition searches by total extra games, so the first hit is the fewest games overall.
// Within one total it prefers the target losing over the player winning.
func rankUpCondition(cur, target RankedPlayer) RankUp {
	r := RankUp{
		Player:     cur.Name,
		Rank:       cur.Rank,
		Target:     target.Name,
		TargetRank: target.Rank,
		Reachable:  true,
	}

	for total := 0; total <= maxRankUpGames; total++ {
		for wins := 0; wins <= total; wins++ {
			losses := total - wins
			next := withRecord(cur.Name, cur.Wins+wins, cur.Games+wins)
			above := withRecord(target.Name, target.Wins, target.Games+losses)
			if comparePlayersByWinRate(&next, &above) {
				r.RequiredWins = wins
				r.RequiredLosses = losses
				return r
			}
		}
	}

	r.Reachable = false
	return r
}

func withRecord(name string, wins, games int) RankedPlayer {
	return RankedPlayer{
		PlayerStats: models.PlayerStats{Name: name, Wins: wins, Games: games},
		WinRate:     WinRate(wins, games),
	}
}
