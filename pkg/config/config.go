package config

import (
	"errors"
	"fmt"
	"time"

	"duostats/internal/repository"
	"duostats/internal/stats"

	"github.com/caarlos0/env/v11"
)

const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"

	dateLayout = "2006-01-02"
)

type Config struct {
	Repo     repository.Config `envPrefix:"REPO_"`
	LogLevel string            `env:"LOGGER_LEVEL" envDefault:"info"`

	Source        string                    `env:"SOURCE" envDefault:"embedded"`
	MatchesFile   string                    `env:"MATCHES_FILE" envDefault:""`
	UnknownPlayer stats.UnknownPlayerPolicy `env:"UNKNOWN_PLAYER" envDefault:"create"`
	PeriodFrom    string                    `env:"PERIOD_FROM" envDefault:""`
	PeriodTo      string                    `env:"PERIOD_TO" envDefault:""`

	ReportStreaks bool   `env:"REPORT_STREAKS" envDefault:"false"`
	ReportRankUp  bool   `env:"REPORT_RANK_UP" envDefault:"false"`
	ExcelOutput   string `env:"EXCEL_OUTPUT" envDefault:"stats.xlsx"`

	SheetsCredentials   string `env:"SHEETS_CREDENTIALS" envDefault:""`
	SheetsSpreadsheetID string `env:"SHEETS_SPREADSHEET_ID" envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceEmbedded, SourcePostgres:
	case SourceFile:
		if c.MatchesFile == "" {
			return errors.New("MATCHES_FILE is required when SOURCE=file")
		}
	default:
		return fmt.Errorf("unknown SOURCE %q", c.Source)
	}

	switch c.UnknownPlayer {
	case stats.PolicyCreate, stats.PolicyFail:
	default:
		return fmt.Errorf("unknown UNKNOWN_PLAYER %q", c.UnknownPlayer)
	}

	if _, _, err := c.Period(); err != nil {
		return err
	}
	return nil
}

// Period parses PERIOD_FROM and PERIOD_TO. Both bounds are whole days; zero means open.
func (c *Config) Period() (from, to time.Time, err error) {
	if c.PeriodFrom != "" {
		from, err = time.Parse(dateLayout, c.PeriodFrom)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid PERIOD_FROM, use YYYY-MM-DD: %w", err)
		}
	}
	if c.PeriodTo != "" {
		to, err = time.Parse(dateLayout, c.PeriodTo)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid PERIOD_TO, use YYYY-MM-DD: %w", err)
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("PERIOD_TO is before PERIOD_FROM")
	}
	return from, to, nil
}
