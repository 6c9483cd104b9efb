package stats

const teamSize = 2

type UnknownPlayerPolicy string

const (
	// PolicyCreate registers unknown players with zero counts on first sight.
	PolicyCreate UnknownPlayerPolicy = "create"
	// PolicyFail rejects records that mention a player outside the roster.
	PolicyFail UnknownPlayerPolicy = "fail"
)
