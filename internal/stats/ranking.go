package stats

import (
	"sort"

	"duostats/internal/models"
)

type RankedPlayer struct {
	models.PlayerStats
	Rank    int
	WinRate float64
}

type RankedTeam struct {
	models.TeamStats
	Rank    int
	WinRate float64
}

// RankPlayersByWinRate orders by win rate, then by games played. Equal keys keep input order.
func RankPlayersByWinRate(players []models.PlayerStats) []RankedPlayer {
	ranked := rankPlayers(players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return comparePlayersByWinRate(&ranked[i], &ranked[j])
	})
	return numberPlayers(ranked)
}

// RankPlayersByWins orders by raw win count, then by win rate. Equal keys keep input order.
func RankPlayersByWins(players []models.PlayerStats) []RankedPlayer {
	ranked := rankPlayers(players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return comparePlayersByWins(&ranked[i], &ranked[j])
	})
	return numberPlayers(ranked)
}

// RankTeamsByWinRate orders by win rate, then by games played. Equal keys keep input order.
func RankTeamsByWinRate(teams []models.TeamStats) []RankedTeam {
	ranked := make([]RankedTeam, 0, len(teams))
	for _, t := range teams {
		ranked = append(ranked, RankedTeam{TeamStats: t, WinRate: WinRate(t.Wins, t.Games)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		t1, t2 := &ranked[i], &ranked[j]
		if t1.WinRate != t2.WinRate {
			return t1.WinRate > t2.WinRate
		}
		return t1.Games > t2.Games
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func comparePlayersByWinRate(p1, p2 *RankedPlayer) bool {
	if p1.WinRate != p2.WinRate {
		return p1.WinRate > p2.WinRate
	}
	return p1.Games > p2.Games
}

func comparePlayersByWins(p1, p2 *RankedPlayer) bool {
	if p1.Wins != p2.Wins {
		return p1.Wins > p2.Wins
	}
	return p1.WinRate > p2.WinRate
}

func rankPlayers(players []models.PlayerStats) []RankedPlayer {
	ranked := make([]RankedPlayer, 0, len(players))
	for _, p := range players {
		ranked = append(ranked, RankedPlayer{PlayerStats: p, WinRate: WinRate(p.Wins, p.Games)})
	}
	return ranked
}

func numberPlayers(ranked []RankedPlayer) []RankedPlayer {
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
