package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoster(t *testing.T) {
	got, err := NormalizeRoster([]string{" 잡", "큐 ", "지"})
	require.NoError(t, err)
	assert.Equal(t, []string{"잡", "큐", "지"}, got)

	got, err = NormalizeRoster(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeRosterRejects(t *testing.T) {
	tests := []struct {
		name   string
		roster []string
		want   string
	}{
		{"empty entry", []string{"A", ""}, "roster entry 1 is empty"},
		{"blank entry", []string{"  ", "A"}, "roster entry 0 is empty"},
		{"duplicate after trim", []string{"A", " A"}, `roster lists "A" twice`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRoster(tt.roster)
			require.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
