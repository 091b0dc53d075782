package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/vintage"
	"github.com/Xiaochen19/powerplantmatching/pkg/config"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/services"
	csvrepo "github.com/Xiaochen19/powerplantmatching/pkg/infrastructure/repositories/csv"
	"github.com/Xiaochen19/powerplantmatching/pkg/infrastructure/repositories/sqlite"
	"github.com/Xiaochen19/powerplantmatching/pkg/interfaces/cli/output"
)

var vintagesCmd = &cobra.Command{
	Use:   "vintages",
	Short: "Derive commissioning-year cohorts from yearly capacity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetInt("base-year"); v != 0 {
			cfg.BaseYear = v
		}
		if v, _ := cmd.Flags().GetInt("workers"); v != 0 {
			cfg.Workers = v
		}

		loader := csvrepo.NewLoader()

		statsFile, _ := cmd.Flags().GetString("stats")
		stats, err := loader.LoadStatistics(statsFile)
		if err != nil {
			return err
		}

		if lifetimesFile, _ := cmd.Flags().GetString("lifetimes"); lifetimesFile != "" {
			table, err := loader.LoadLifetimes(lifetimesFile)
			if err != nil {
				return err
			}
			cfg.Lifetimes = table
		}

		validation := services.NewStatsValidator().ValidateStatistics(stats)
		if !validation.Valid() {
			return fmt.Errorf("statistics are not usable: %s", strings.Join(validation.Errors, "; "))
		}

		svc := vintage.NewService(vintage.Config{
			BaseYear:  cfg.BaseYear,
			Workers:   cfg.Workers,
			Lifetimes: cfg.Lifetimes,
			Logger:    slog.Default(),
		})
		result, err := svc.DeriveVintageCohorts(cmd.Context(), stats)
		if err != nil {
			return err
		}
		slog.Info("derived vintage cohorts",
			"partitions", result.Partitions,
			"cohorts", len(result.Cohorts),
			"elapsed", result.Elapsed)

		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			store, err := sqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SaveCohorts(cmd.Context(), result.Cohorts); err != nil {
				return err
			}
		}

		w, closeOut, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		format, _ := cmd.Flags().GetString("format")
		return output.WriteCohorts(w, result.Cohorts, output.Format(format))
	},
}

func init() {
	vintagesCmd.Flags().String("stats", "", "path to the yearly capacity statistics CSV")
	vintagesCmd.Flags().String("lifetimes", "", "path to a fuel type service-life CSV (default: built-in table)")
	vintagesCmd.Flags().Int("base-year", 0, "reference year for the cohort snapshot (default: PPM_BASE_YEAR or 2015)")
	vintagesCmd.Flags().Int("workers", 0, "number of partitions processed concurrently (default: CPUs)")
	vintagesCmd.Flags().String("format", "text", "output format: text, json, csv")
	vintagesCmd.Flags().String("out", "", "output file (default: stdout)")
	vintagesCmd.Flags().String("db", "", "also persist cohorts to this SQLite database")
	vintagesCmd.MarkFlagRequired("stats")
	rootCmd.AddCommand(vintagesCmd)
}

// openOutput resolves the --out flag to a writer
func openOutput(cmd *cobra.Command) (*os.File, func(), error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
