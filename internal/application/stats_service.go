package application

import (
	"context"
	"fmt"
	"io"
	"os"

	"duostats/internal/models"
	"duostats/internal/report"
	"duostats/internal/repository"
	"duostats/internal/stats"
	"duostats/pkg/sheets"
)

type StatsServiceImpl struct {
	source        repository.MatchSource
	policy        stats.UnknownPlayerPolicy
	sheetsClient  sheets.Client
	spreadsheetID string
	logger        Logger
}

func NewStatsServiceImpl(source repository.MatchSource, opts Options, logger Logger) *StatsServiceImpl {
	return &StatsServiceImpl{
		source:        source,
		policy:        opts.Policy,
		sheetsClient:  opts.Sheets,
		spreadsheetID: opts.SpreadsheetID,
		logger:        logger,
	}
}

// Compute loads the records once, folds them and ranks the result.
func (s *StatsServiceImpl) Compute(ctx context.Context) (*report.Result, error) {
	ds, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	s.logger.Debug("loaded %d matches, roster of %d", len(ds.Matches), len(ds.Roster))

	acc, err := s.accumulate(ds)
	if err != nil {
		return nil, err
	}

	players := acc.Players()
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	teams := make([]models.Team, 0, len(acc.Teams()))
	for _, t := range acc.Teams() {
		teams = append(teams, t.Team)
	}
	byRate := stats.RankPlayersByWinRate(players)

	return &report.Result{
		Total:         len(ds.Matches),
		PlayersByRate: byRate,
		TeamsByRate:   stats.RankTeamsByWinRate(acc.Teams()),
		PlayersByWins: stats.RankPlayersByWins(players),
		Streaks:       stats.AllStreaks(acc.Matches(), names),
		TeamStreaks:   stats.TeamStreaks(acc.Matches(), teams),
		RankUps:       stats.RankUpConditions(byRate),
	}, nil
}

func (s *StatsServiceImpl) accumulate(ds *repository.Dataset) (*stats.Accumulator, error) {
	roster, err := stats.NormalizeRoster(ds.Roster)
	if err != nil {
		return nil, err
	}
	acc := stats.NewAccumulator(roster, s.policy)
	if err := acc.AddAll(ds.Matches); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *StatsServiceImpl) WriteReport(ctx context.Context, w io.Writer, sections report.Sections) error {
	res, err := s.Compute(ctx)
	if err != nil {
		return err
	}
	if err := report.Write(w, *res, sections); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (s *StatsServiceImpl) ExportExcel(ctx context.Context, path string) error {
	res, err := s.Compute(ctx)
	if err != nil {
		return err
	}
	data, err := report.Excel(*res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, excelFileMode); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	s.logger.Info("excel report written to %s", path)
	return nil
}

func (s *StatsServiceImpl) SyncToGoogleSheet(ctx context.Context) (string, error) {
	if s.sheetsClient == nil || s.spreadsheetID == "" {
		return "", fmt.Errorf("google sheets: %w", ErrNotConfigured)
	}

	res, err := s.Compute(ctx)
	if err != nil {
		return "", err
	}

	if err := s.sheetsClient.ClearRange(ctx, s.spreadsheetID, sheetsClearRange); err != nil {
		s.logger.Error("failed to clear sheet: %v", err)
	}

	if err := s.sheetsClient.UpdateValues(ctx, s.spreadsheetID, sheetsStartCell, report.SheetRows(*res)); err != nil {
		return "", fmt.Errorf("failed to update stats: %w", err)
	}

	return fmt.Sprintf(sheetsURLFormat, s.spreadsheetID), nil
}

// ImportMatches copies the current source into dst, optionally wiping dst first.
// Records are validated before anything is written.
func (s *StatsServiceImpl) ImportMatches(ctx context.Context, dst repository.MatchStore, wipe bool) (int, error) {
	ds, err := s.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load matches: %w", err)
	}

	if _, err := s.accumulate(ds); err != nil {
		return 0, err
	}

	if wipe {
		if err := dst.WipeAll(ctx); err != nil {
			return 0, err
		}
	}

	n, err := dst.CreateAll(ctx, ds)
	if err != nil {
		return 0, fmt.Errorf("failed to import matches: %w", err)
	}
	s.logger.Info("imported %d matches", n)
	return n, nil
}
