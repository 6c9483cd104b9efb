package main

import (
	"errors"
	"fmt"

	"duostats/internal/report"
	"duostats/internal/repository"
	"duostats/pkg/config"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "duostats",
		Short:         "Win rate rankings for 2v2 games",
		Long:          "Folds 2v2 game results into player and team win rates and prints the rankings.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			return svc.StatsService.WriteReport(cmd.Context(), cmd.OutOrStdout(), report.Sections{
				Streaks: a.cfg.ReportStreaks,
				RankUp:  a.cfg.ReportRankUp,
			})
		},
	}

	root.AddCommand(
		newExportCmd(a),
		newSyncCmd(a),
		newImportCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the rankings to an xlsx workbook at EXCEL_OUTPUT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			return svc.StatsService.ExportExcel(cmd.Context(), a.cfg.ExcelOutput)
		},
	}
}

func newSyncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push the rankings to the Google Sheet at SHEETS_SPREADSHEET_ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			url, err := svc.StatsService.SyncToGoogleSheet(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var wipe bool
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the configured source into postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Source == config.SourcePostgres {
				return errors.New("import needs a non-postgres SOURCE")
			}
			repo, err := a.repository(cmd.Context())
			if err != nil {
				return err
			}
			if err := repository.RunMigrations(repo.DB()); err != nil {
				return err
			}
			svc, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			_, err = svc.StatsService.ImportMatches(cmd.Context(), repo.Match, wipe)
			return err
		},
	}
	cmd.Flags().BoolVar(&wipe, "wipe", false, "Delete stored players and matches before importing")
	return cmd
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Info("Running migrations...")
			if err := repository.RunMigrations(repo.DB()); err != nil {
				return err
			}
			a.log.Info("Migrations applied successfully")
			return nil
		},
	}
}
