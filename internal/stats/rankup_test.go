package stats

import (
	"testing"

	"duostats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankUpConditionsTargetLosses(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "P1", Wins: 3, Games: 5},
		{Name: "P2", Wins: 3, Games: 4},
	})

	got := RankUpConditions(ranked)
	require.Len(t, got, 1)
	assert.Equal(t, RankUp{
		Player:         "P1",
		Rank:           2,
		Target:         "P2",
		TargetRank:     1,
		RequiredWins:   0,
		RequiredLosses: 2,
		Reachable:      true,
	}, got[0])
}

func TestRankUpConditionsExactTieNeedsOneGame(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "A", Wins: 1, Games: 2},
		{Name: "B", Wins: 1, Games: 2},
	})

	got := RankUpConditions(ranked)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Player)
	assert.Equal(t, 0, got[0].RequiredWins)
	assert.Equal(t, 1, got[0].RequiredLosses)
}

func TestRankUpConditionsOwnWins(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "A", Wins: 0, Games: 0},
		{Name: "B", Wins: 0, Games: 1},
	})
	require.Equal(t, "B", ranked[0].Name)

	got := RankUpConditions(ranked)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Player)
	assert.Equal(t, 1, got[0].RequiredWins)
	assert.Equal(t, 0, got[0].RequiredLosses)
	assert.True(t, got[0].Reachable)
}

func TestRankUpConditionsUnreachable(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "top", Wins: 100000, Games: 100000},
		{Name: "bottom", Wins: 0, Games: 100000},
	})

	got := RankUpConditions(ranked)
	require.Len(t, got, 1)
	assert.False(t, got[0].Reachable)
	assert.Zero(t, got[0].RequiredWins)
	assert.Zero(t, got[0].RequiredLosses)
}

func TestRankUpConditionsPerAdjacentPair(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "A", Wins: 1, Games: 4},
		{Name: "B", Wins: 3, Games: 4},
		{Name: "C", Wins: 2, Games: 4},
	})

	got := RankUpConditions(ranked)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"C", "A"}, []string{got[0].Player, got[1].Player})
	assert.Equal(t, []string{"B", "C"}, []string{got[0].Target, got[1].Target})
	assert.Equal(t, 2, got[0].Rank)
	assert.Equal(t, 3, got[1].Rank)

	assert.Nil(t, RankUpConditions(ranked[:1]))
	assert.Nil(t, RankUpConditions(nil))
}
