package stats

import (
	"errors"
	"fmt"
	"strings"

	"duostats/internal/models"
)

var (
	ErrInvalidRecord = errors.New("invalid match record")
	ErrUnknownPlayer = errors.New("unknown player")
)

// TeamFrom builds a team from a raw list of player identifiers.
func TeamFrom(players []string) (models.Team, error) {
	if len(players) != teamSize {
		return models.Team{}, fmt.Errorf("%w: team must have exactly %d players, got %d", ErrInvalidRecord, teamSize, len(players))
	}
	t := models.Team{strings.TrimSpace(players[0]), strings.TrimSpace(players[1])}
	if err := validateTeam(t); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// Validate checks that both teams hold two distinct players and nobody plays on both sides.
func Validate(m models.Match) error {
	if err := validateTeam(m.Winning); err != nil {
		return fmt.Errorf("winning team: %w", err)
	}
	if err := validateTeam(m.Losing); err != nil {
		return fmt.Errorf("losing team: %w", err)
	}
	for _, p := range m.Winning {
		if m.Losing.Has(p) {
			return fmt.Errorf("%w: player %q is on both teams", ErrInvalidRecord, p)
		}
	}
	return nil
}

func validateTeam(t models.Team) error {
	if t[0] == "" || t[1] == "" {
		return fmt.Errorf("%w: empty player name", ErrInvalidRecord)
	}
	if t[0] == t[1] {
		return fmt.Errorf("%w: player %q listed twice", ErrInvalidRecord, t[0])
	}
	return nil
}
