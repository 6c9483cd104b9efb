package application

import (
	"context"
	"errors"
	"io"

	"duostats/internal/report"
	"duostats/internal/repository"
	"duostats/internal/stats"
	"duostats/pkg/sheets"
)

var ErrNotConfigured = errors.New("not configured")

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type StatsService interface {
	Compute(ctx context.Context) (*report.Result, error)
	WriteReport(ctx context.Context, w io.Writer, sections report.Sections) error
	ExportExcel(ctx context.Context, path string) error
	SyncToGoogleSheet(ctx context.Context) (string, error)
	ImportMatches(ctx context.Context, dst repository.MatchStore, wipe bool) (int, error)
}

type Options struct {
	Policy        stats.UnknownPlayerPolicy
	Sheets        sheets.Client
	SpreadsheetID string
}

type Service struct {
	StatsService StatsService
}

func NewService(source repository.MatchSource, opts Options, logger Logger) *Service {
	return &Service{
		StatsService: NewStatsServiceImpl(source, opts, logger),
	}
}
