package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"duostats/internal/models"
	"duostats/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource(t *testing.T) {
	ds, err := NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"잡", "큐", "지", "머", "웅"}, ds.Roster)
	require.Len(t, ds.Matches, 66)
	assert.Equal(t, models.Team{"잡", "큐"}, ds.Matches[0].Losing)
	assert.Equal(t, models.Team{"지", "머"}, ds.Matches[0].Winning)
	assert.Equal(t, models.Team{"웅", "잡"}, ds.Matches[65].Losing)
	assert.Equal(t, models.Team{"큐", "머"}, ds.Matches[65].Winning)
	for i, m := range ds.Matches {
		assert.NoError(t, stats.Validate(m), "match %d", i)
		assert.True(t, m.PlayedAt.IsZero())
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.yaml")
	doc := `roster: [A, B, C, D]
matches:
  - lose: [A, B]
    win: [C, D]
    played_at: 2024-03-09T20:00:00Z
  - {lose: [D, A], win: [B, C]}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, ds.Roster)
	require.Len(t, ds.Matches, 2)
	assert.Equal(t, time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC), ds.Matches[0].PlayedAt.UTC())
	assert.Equal(t, models.Team{"D", "A"}, ds.Matches[1].Losing)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbeddedSource().Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseDatasetRejectsBadTeams(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"three players", "matches:\n  - {lose: [A, B, E], win: [C, D]}\n"},
		{"one player", "matches:\n  - {lose: [A, B], win: [C]}\n"},
		{"same player twice", "matches:\n  - {lose: [A, A], win: [C, D]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(tt.doc))
			require.ErrorIs(t, err, stats.ErrInvalidRecord)
			assert.Contains(t, err.Error(), "match 0")
		})
	}
}

func TestParseDatasetRejectsMalformedYAML(t *testing.T) {
	_, err := ParseDataset([]byte("matches: [lose"))
	require.Error(t, err)
}

func TestParseDatasetTrimsRoster(t *testing.T) {
	doc := "roster: [' A', 'B ', C, D]\nmatches:\n  - {lose: [A, B], win: [C, D]}\n"

	ds, err := ParseDataset([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ds.Roster)

	acc := stats.NewAccumulator(ds.Roster, stats.PolicyFail)
	require.NoError(t, acc.AddAll(ds.Matches))
	assert.Len(t, acc.Players(), 4)
}

func TestParseDatasetRejectsBadRoster(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty name", "roster: ['', A]\n"},
		{"repeated name", "roster: [A, ' A']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset([]byte(tt.doc))
			require.ErrorIs(t, err, stats.ErrInvalidRecord)
		})
	}
}
