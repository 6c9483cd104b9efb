package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"duostats/internal/models"
	"duostats/internal/stats"

	"gopkg.in/yaml.v3"
)

//go:embed data/matches.yaml
var embeddedMatches []byte

type document struct {
	Roster  []string   `yaml:"roster"`
	Matches []rawMatch `yaml:"matches"`
}

type rawMatch struct {
	Lose     []string  `yaml:"lose"`
	Win      []string  `yaml:"win"`
	PlayedAt time.Time `yaml:"played_at"`
}

// YAMLSource reads a roster and match list from a YAML document.
type YAMLSource struct {
	name string
	read func() ([]byte, error)
}

// NewEmbeddedSource serves the reference data set compiled into the binary.
func NewEmbeddedSource() *YAMLSource {
	return &YAMLSource{
		name: "embedded",
		read: func() ([]byte, error) { return embeddedMatches, nil },
	}
}

func NewFileSource(path string) *YAMLSource {
	return &YAMLSource{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

func (s *YAMLSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.name, err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.name, err)
	}
	return ds, nil
}

// ParseDataset decodes a YAML document and checks every team has exactly two players.
// Roster names are trimmed the same way team members are.
func ParseDataset(data []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	roster, err := stats.NormalizeRoster(doc.Roster)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		Roster:  roster,
		Matches: make([]models.Match, 0, len(doc.Matches)),
	}
	for i, raw := range doc.Matches {
		lose, err := stats.TeamFrom(raw.Lose)
		if err != nil {
			return nil, fmt.Errorf("match %d losing team: %w", i, err)
		}
		win, err := stats.TeamFrom(raw.Win)
		if err != nil {
			return nil, fmt.Errorf("match %d winning team: %w", i, err)
		}
		ds.Matches = append(ds.Matches, models.Match{Losing: lose, Winning: win, PlayedAt: raw.PlayedAt})
	}
	return ds, nil
}
