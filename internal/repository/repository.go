package repository

import (
	"context"
	"database/sql"

	"duostats/internal/models"
)

// Dataset is a roster plus the records to fold, in play order.
type Dataset struct {
	Roster  []string
	Matches []models.Match
}

type MatchSource interface {
	Load(ctx context.Context) (*Dataset, error)
}

type MatchStore interface {
	CreateAll(ctx context.Context, ds *Dataset) (int, error)
	WipeAll(ctx context.Context) error
}

type Repository struct {
	Match *MatchPostgres
	db    *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Match: NewMatchPostgres(db),
		db:    db,
	}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) DB() *sql.DB {
	return r.db
}
