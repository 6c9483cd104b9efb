package stats

// WinRate returns wins as a percentage of total, or 0 when no games were played.
func WinRate(wins, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return (float64(wins) / float64(total)) * 100
}
