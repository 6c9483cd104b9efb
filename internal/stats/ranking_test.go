package stats

import (
	"testing"

	"duostats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ranked []RankedPlayer) []string {
	out := make([]string, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, p.Name)
	}
	return out
}

func TestRankPlayersByWinRate(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "P1", Wins: 3, Games: 5},
		{Name: "P2", Wins: 3, Games: 4},
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "P2", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.InDelta(t, 75.0, ranked[0].WinRate, 1e-9)
	assert.Equal(t, "P1", ranked[1].Name)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.InDelta(t, 60.0, ranked[1].WinRate, 1e-9)
}

func TestRankPlayersByWinRateBreaksTiesOnGames(t *testing.T) {
	ranked := RankPlayersByWinRate([]models.PlayerStats{
		{Name: "A", Wins: 1, Games: 2},
		{Name: "B", Wins: 2, Games: 4},
		{Name: "C", Wins: 0, Games: 0},
	})
	assert.Equal(t, []string{"B", "A", "C"}, names(ranked))
}

func TestRankPlayersByWins(t *testing.T) {
	players := []models.PlayerStats{
		{Name: "P1", Wins: 5, Games: 10},
		{Name: "P2", Wins: 3, Games: 3},
	}

	assert.Equal(t, []string{"P1", "P2"}, names(RankPlayersByWins(players)))
	assert.Equal(t, []string{"P2", "P1"}, names(RankPlayersByWinRate(players)))
}

func TestRankPlayersByWinsBreaksTiesOnWinRate(t *testing.T) {
	ranked := RankPlayersByWins([]models.PlayerStats{
		{Name: "A", Wins: 3, Games: 6},
		{Name: "B", Wins: 3, Games: 3},
	})
	assert.Equal(t, []string{"B", "A"}, names(ranked))
}

func TestRankingKeepsInsertionOrderOnExactTies(t *testing.T) {
	players := []models.PlayerStats{
		{Name: "C", Wins: 1, Games: 2},
		{Name: "A", Wins: 1, Games: 2},
		{Name: "B", Wins: 1, Games: 2},
	}

	byRate := RankPlayersByWinRate(players)
	assert.Equal(t, []string{"C", "A", "B"}, names(byRate))
	assert.Equal(t, []int{1, 2, 3}, []int{byRate[0].Rank, byRate[1].Rank, byRate[2].Rank})
	assert.Equal(t, []string{"C", "A", "B"}, names(RankPlayersByWins(players)))
}

func TestRankTeamsByWinRate(t *testing.T) {
	ranked := RankTeamsByWinRate([]models.TeamStats{
		{Team: models.Team{"A", "B"}, Wins: 1, Games: 2},
		{Team: models.Team{"C", "D"}, Wins: 2, Games: 2},
		{Team: models.Team{"A", "C"}, Wins: 2, Games: 4},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "CD", ranked[0].Team.Name())
	assert.Equal(t, "AC", ranked[1].Team.Name())
	assert.Equal(t, "AB", ranked[2].Team.Name())
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankingDoesNotMutateInput(t *testing.T) {
	players := []models.PlayerStats{
		{Name: "A", Wins: 0, Games: 1},
		{Name: "B", Wins: 1, Games: 1},
	}
	RankPlayersByWinRate(players)
	assert.Equal(t, "A", players[0].Name)
}
