package stats

import (
	"fmt"
	"strings"
)

// NormalizeRoster trims every name and rejects empty or repeated entries.
func NormalizeRoster(roster []string) ([]string, error) {
	seen := make(map[string]struct{}, len(roster))
	out := make([]string, 0, len(roster))
	for i, name := range roster {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: roster entry %d is empty", ErrInvalidRecord, i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: roster lists %q twice", ErrInvalidRecord, name)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
