package repository

import (
	"context"
	"time"

	"duostats/internal/models"
)

type periodSource struct {
	src      MatchSource
	from, to time.Time
}

// NewPeriodSource keeps the matches of src played within [from, to], in their original order.
// It follows GetRange: a zero bound leaves that side open, and matches without a timestamp
// are dropped as soon as either bound is set. The roster is passed through untouched.
func NewPeriodSource(src MatchSource, from, to time.Time) MatchSource {
	return periodSource{src: src, from: from, to: to}
}

func (s periodSource) Load(ctx context.Context) (*Dataset, error) {
	ds, err := s.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.from.IsZero() && s.to.IsZero() {
		return ds, nil
	}

	matches := make([]models.Match, 0, len(ds.Matches))
	for _, m := range ds.Matches {
		if s.contains(m.PlayedAt) {
			matches = append(matches, m)
		}
	}
	return &Dataset{Roster: ds.Roster, Matches: matches}, nil
}

func (s periodSource) contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !s.from.IsZero() && t.Before(s.from) {
		return false
	}
	if !s.to.IsZero() && t.After(s.to) {
		return false
	}
	return true
}
