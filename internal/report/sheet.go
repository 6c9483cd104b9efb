package report

// SheetRows lays out the player and team rankings for a spreadsheet range starting at A1.
func SheetRows(r Result) [][]interface{} {
	rows := [][]interface{}{{"Rank", "Player", "WinRate %", "Wins", "Games"}}
	for _, p := range r.PlayersByRate {
		rows = append(rows, []interface{}{p.Rank, p.Name, formatRate(p.WinRate), p.Wins, p.Games})
	}

	rows = append(rows, []interface{}{})
	rows = append(rows, []interface{}{"Rank", "Team", "WinRate %", "Wins", "Games"})
	for _, t := range r.TeamsByRate {
		rows = append(rows, []interface{}{t.Rank, t.Team.Name(), formatRate(t.WinRate), t.Wins, t.Games})
	}
	return rows
}
