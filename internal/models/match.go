package models

import "time"

// Team is a pair of players. The order of mention carries no meaning.
type Team [2]string

// Key returns the team with its players sorted, so {A,B} and {B,A} compare equal.
func (t Team) Key() Team {
	if t[1] < t[0] {
		return Team{t[1], t[0]}
	}
	return t
}

// Name renders the canonical players joined without a separator.
func (t Team) Name() string {
	k := t.Key()
	return k[0] + k[1]
}

func (t Team) Has(player string) bool {
	return t[0] == player || t[1] == player
}

type Match struct {
	ID       int       `json:"id" db:"id"`
	Losing   Team      `json:"losing_team" db:"losing_team"`
	Winning  Team      `json:"winning_team" db:"winning_team"`
	PlayedAt time.Time `json:"played_at" db:"played_at"`
}

type PlayerStats struct {
	Name  string
	Wins  int
	Games int
}

type TeamStats struct {
	Team  Team
	Wins  int
	Games int
}
