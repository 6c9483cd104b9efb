package report

import "duostats/internal/stats"

// Result is everything the renderers need for one run.
type Result struct {
	Total         int
	PlayersByRate []stats.RankedPlayer
	TeamsByRate   []stats.RankedTeam
	PlayersByWins []stats.RankedPlayer
	Streaks       []stats.Streak
	TeamStreaks   []stats.TeamStreak
	RankUps       []stats.RankUp
}

// Sections selects the optional parts of the text report.
type Sections struct {
	Streaks bool
	RankUp  bool
}
