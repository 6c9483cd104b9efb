package main

import (
	"context"
	"fmt"

	"duostats/internal/application"
	"duostats/internal/repository"
	"duostats/pkg/config"
	"duostats/pkg/logger"
	"duostats/pkg/sheets"
)

// app holds what the commands share. The database is only opened when a command needs it.
type app struct {
	cfg  config.Config
	log  *logger.Logger
	repo *repository.Repository
}

func (a *app) init() error {
	if err := config.ReadEnvConfig(&a.cfg); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	a.log = logger.NewLogger(&logger.Config{Level: a.cfg.LogLevel})
	return nil
}

func (a *app) repository(ctx context.Context) (*repository.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	db, err := repository.NewPostgresDB(ctx, &a.cfg.Repo)
	if err != nil {
		return nil, fmt.Errorf("failed to init db: %w", err)
	}
	a.repo = repository.NewRepository(db)
	return a.repo, nil
}

// source picks the configured backend. A period is pushed down to postgres and
// applied in memory for the YAML sources.
func (a *app) source(ctx context.Context) (repository.MatchSource, error) {
	from, to, err := a.cfg.Period()
	if err != nil {
		return nil, err
	}
	bounded := !from.IsZero() || !to.IsZero()

	var src repository.MatchSource
	switch a.cfg.Source {
	case config.SourcePostgres:
		repo, err := a.repository(ctx)
		if err != nil {
			return nil, err
		}
		if bounded {
			return repo.Match.Between(from, to), nil
		}
		return repo.Match, nil
	case config.SourceFile:
		src = repository.NewFileSource(a.cfg.MatchesFile)
	default:
		src = repository.NewEmbeddedSource()
	}

	if bounded {
		a.log.Debug("keeping matches played between %s and %s", a.cfg.PeriodFrom, a.cfg.PeriodTo)
		return repository.NewPeriodSource(src, from, to), nil
	}
	return src, nil
}

func (a *app) service(ctx context.Context) (*application.Service, error) {
	source, err := a.source(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Debug("using %s source", a.cfg.Source)

	opts := application.Options{
		Policy:        a.cfg.UnknownPlayer,
		SpreadsheetID: a.cfg.SheetsSpreadsheetID,
	}
	if a.cfg.SheetsCredentials != "" {
		client, err := sheets.NewGoogleSheetsClient(ctx, a.cfg.SheetsCredentials)
		if err != nil {
			return nil, err
		}
		opts.Sheets = client
	}

	return application.NewService(source, opts, a.log), nil
}

func (a *app) close() {
	if a.repo == nil {
		return
	}
	if err := a.repo.Close(); err != nil && a.log != nil {
		a.log.Warn("failed to close db: %v", err)
	}
	a.repo = nil
}
