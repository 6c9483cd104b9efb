package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"duostats/internal/models"
)

type MatchPostgres struct {
	db      *sql.DB
	players *PlayerCache
}

func NewMatchPostgres(db *sql.DB) *MatchPostgres {
	return &MatchPostgres{db: db, players: NewPlayerCache()}
}

func (r *MatchPostgres) Load(ctx context.Context) (*Dataset, error) {
	return r.GetRange(ctx, time.Time{}, time.Time{})
}

// Between restricts Load to matches played within [from, to].
func (r *MatchPostgres) Between(from, to time.Time) MatchSource {
	return rangeSource{repo: r, from: from, to: to}
}

type rangeSource struct {
	repo     *MatchPostgres
	from, to time.Time
}

func (s rangeSource) Load(ctx context.Context) (*Dataset, error) {
	return s.repo.GetRange(ctx, s.from, s.to)
}

// GetRange returns the roster and every live match played within [from, to].
// A zero bound leaves that side open; matches without a timestamp only appear when both are open.
func (r *MatchPostgres) GetRange(ctx context.Context, from, to time.Time) (*Dataset, error) {
	roster, err := r.roster(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT m.id, la.name, lb.name, wa.name, wb.name, m.played_at
		FROM matches m
		JOIN players la ON la.id = m.losing_a
		JOIN players lb ON lb.id = m.losing_b
		JOIN players wa ON wa.id = m.winning_a
		JOIN players wb ON wb.id = m.winning_b
		WHERE m.is_deleted = FALSE
		  AND ($1::timestamptz IS NULL OR m.played_at >= $1)
		  AND ($2::timestamptz IS NULL OR m.played_at <= $2)
		ORDER BY m.id
	`
	// timestamptz keeps microseconds and rounds the rest, which would push an
	// end-of-day bound like 23:59:59.999999999 over to the next day.
	rows, err := r.db.QueryContext(ctx, query, nullTime(from), nullTime(to.Truncate(time.Microsecond)))
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var m models.Match
		var playedAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Losing[0], &m.Losing[1], &m.Winning[0], &m.Winning[1], &playedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if playedAt.Valid {
			m.PlayedAt = playedAt.Time
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return &Dataset{Roster: roster, Matches: matches}, nil
}

// CreateAll stores the roster first, so player IDs follow roster order, then every match.
func (r *MatchPostgres) CreateAll(ctx context.Context, ds *Dataset) (int, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		for _, name := range ds.Roster {
			if _, err := r.ensurePlayer(ctx, tx, name); err != nil {
				return err
			}
		}
		for i, m := range ds.Matches {
			if _, err := r.insertMatch(ctx, tx, m); err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(ds.Matches), nil
}

func (r *MatchPostgres) WipeAll(ctx context.Context) error {
	defer r.players.Clear()
	if _, err := r.db.ExecContext(ctx, "TRUNCATE TABLE matches, players RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to wipe data: %w", err)
	}
	return nil
}

func (r *MatchPostgres) roster(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *MatchPostgres) insertMatch(ctx context.Context, tx *sql.Tx, m models.Match) (int, error) {
	var ids [4]int
	for i, name := range []string{m.Losing[0], m.Losing[1], m.Winning[0], m.Winning[1]} {
		id, err := r.ensurePlayer(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		ids[i] = id
	}

	var matchID int
	query := `INSERT INTO matches (losing_a, losing_b, winning_a, winning_b, played_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := tx.QueryRowContext(ctx, query, ids[0], ids[1], ids[2], ids[3], nullTime(m.PlayedAt)).Scan(&matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert match: %w", err)
	}
	return matchID, nil
}

func (r *MatchPostgres) ensurePlayer(ctx context.Context, tx *sql.Tx, name string) (int, error) {
	if id, ok := r.players.Get(name); ok {
		return id, nil
	}

	var id int
	query := `INSERT INTO players (name) VALUES ($1)
              ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
              RETURNING id`
	if err := tx.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to ensure player %q: %w", name, err)
	}
	r.players.Set(name, id)
	return id, nil
}

func (r *MatchPostgres) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		r.players.Clear()
		return err
	}

	if err := tx.Commit(); err != nil {
		r.players.Clear()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
