package stats

import (
	"fmt"

	"duostats/internal/models"
)

// Accumulator folds match records into per-player and per-team counters.
// Entries keep the order in which they were first registered.
type Accumulator struct {
	policy UnknownPlayerPolicy

	players     map[string]*models.PlayerStats
	playerOrder []string

	teams     map[models.Team]*models.TeamStats
	teamOrder []models.Team

	matches []models.Match
}

// NewAccumulator pre-registers the roster in order. Empty names are skipped; see NormalizeRoster.
func NewAccumulator(roster []string, policy UnknownPlayerPolicy) *Accumulator {
	if policy == "" {
		policy = PolicyCreate
	}
	a := &Accumulator{
		policy:  policy,
		players: make(map[string]*models.PlayerStats, len(roster)),
		teams:   make(map[models.Team]*models.TeamStats),
	}
	for _, name := range roster {
		if name == "" {
			continue
		}
		a.getOrInsertPlayer(name)
	}
	return a
}

// Add applies a single record. A rejected record leaves the counters untouched.
func (a *Accumulator) Add(m models.Match) error {
	if err := Validate(m); err != nil {
		return err
	}
	if a.policy == PolicyFail {
		for _, p := range append(m.Winning[:], m.Losing[:]...) {
			if _, ok := a.players[p]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownPlayer, p)
			}
		}
	}

	win := a.getOrInsertTeam(m.Winning.Key())
	win.Wins++
	win.Games++

	lose := a.getOrInsertTeam(m.Losing.Key())
	lose.Games++

	for _, name := range m.Winning.Key() {
		p := a.getOrInsertPlayer(name)
		p.Wins++
		p.Games++
	}
	for _, name := range m.Losing.Key() {
		a.getOrInsertPlayer(name).Games++
	}

	a.matches = append(a.matches, m)
	return nil
}

// AddAll applies records in order and stops at the first rejected one.
func (a *Accumulator) AddAll(matches []models.Match) error {
	for i, m := range matches {
		if err := a.Add(m); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func (a *Accumulator) Players() []models.PlayerStats {
	out := make([]models.PlayerStats, 0, len(a.playerOrder))
	for _, name := range a.playerOrder {
		out = append(out, *a.players[name])
	}
	return out
}

func (a *Accumulator) Teams() []models.TeamStats {
	out := make([]models.TeamStats, 0, len(a.teamOrder))
	for _, key := range a.teamOrder {
		out = append(out, *a.teams[key])
	}
	return out
}

func (a *Accumulator) Matches() []models.Match {
	out := make([]models.Match, len(a.matches))
	copy(out, a.matches)
	return out
}

func (a *Accumulator) getOrInsertPlayer(name string) *models.PlayerStats {
	if p, ok := a.players[name]; ok {
		return p
	}
	p := &models.PlayerStats{Name: name}
	a.players[name] = p
	a.playerOrder = append(a.playerOrder, name)
	return p
}

func (a *Accumulator) getOrInsertTeam(key models.Team) *models.TeamStats {
	if t, ok := a.teams[key]; ok {
		return t
	}
	t := &models.TeamStats{Team: key}
	a.teams[key] = t
	a.teamOrder = append(a.teamOrder, key)
	return t
}
