package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetPlayers = "Players"
	sheetTeams   = "Teams"
	sheetWins    = "Wins"
	sheetStreaks = "Streaks"
	sheetTeamRun = "TeamStreaks"
	sheetRankUp  = "RankUp"
)

// Excel renders the rankings as an xlsx workbook, one sheet per ranking.
func Excel(r Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	players := [][]interface{}{{"Rank", "Player", "WinRate %", "Wins", "Games"}}
	for _, p := range r.PlayersByRate {
		players = append(players, []interface{}{p.Rank, p.Name, formatRate(p.WinRate), p.Wins, p.Games})
	}

	teams := [][]interface{}{{"Rank", "Team", "WinRate %", "Wins", "Games"}}
	for _, t := range r.TeamsByRate {
		teams = append(teams, []interface{}{t.Rank, t.Team.Name(), formatRate(t.WinRate), t.Wins, t.Games})
	}

	wins := [][]interface{}{{"Rank", "Player", "Wins"}}
	for _, p := range r.PlayersByWins {
		wins = append(wins, []interface{}{p.Rank, p.Name, p.Wins})
	}

	streaks := [][]interface{}{{"Player", "Max win streak", "Max lose streak"}}
	for _, s := range r.Streaks {
		streaks = append(streaks, []interface{}{s.Player, s.MaxWin, s.MaxLose})
	}

	teamStreaks := [][]interface{}{{"Team", "Max win streak", "Max lose streak"}}
	for _, s := range r.TeamStreaks {
		teamStreaks = append(teamStreaks, []interface{}{s.Team.Name(), s.MaxWin, s.MaxLose})
	}

	rankUps := [][]interface{}{{"Rank", "Player", "Target", "Wins needed", "Target losses needed", "Condition"}}
	for _, c := range r.RankUps {
		rankUps = append(rankUps, []interface{}{c.Rank, c.Player, c.Target, c.RequiredWins, c.RequiredLosses, RankUpDescription(c)})
	}

	for _, sh := range []struct {
		name string
		rows [][]interface{}
	}{
		{sheetPlayers, players},
		{sheetTeams, teams},
		{sheetWins, wins},
		{sheetStreaks, streaks},
		{sheetTeamRun, teamStreaks},
		{sheetRankUp, rankUps},
	} {
		if err := writeSheet(f, sh.name, sh.rows); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(sheetPlayers); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to fill sheet %s: %w", name, err)
		}
	}
	f.SetColWidth(name, "A", "A", 8)
	f.SetColWidth(name, "B", "B", 16)
	f.SetColWidth(name, "C", "E", 12)
	return nil
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}
