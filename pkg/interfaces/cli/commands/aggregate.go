package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/heuristics"
	"github.com/Xiaochen19/powerplantmatching/pkg/config"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
	csvrepo "github.com/Xiaochen19/powerplantmatching/pkg/infrastructure/repositories/csv"
	"github.com/Xiaochen19/powerplantmatching/pkg/interfaces/cli/output"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate renewable units into per-commissioning-year cohorts",
	Long: `Aggregate condenses datasets to one cohort per commissioning year.
With --plants, units are grouped by their (filled) commissioning years.
With --stats, cumulative yearly statistics are first-differenced into
yearly additions instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		fueltypes := fueltypesFlag(cmd, cfg)
		loader := csvrepo.NewLoader()

		plantsFile, _ := cmd.Flags().GetString("plants")
		statsFile, _ := cmd.Flags().GetString("stats")
		if (plantsFile == "") == (statsFile == "") {
			return fmt.Errorf("exactly one of --plants or --stats is required")
		}

		var cohorts []entities.VintageCohort
		switch {
		case plantsFile != "":
			plants, err := loader.LoadPlants(plantsFile)
			if err != nil {
				return err
			}
			cohorts, err = heuristics.AggregateByCommYear(plants, fueltypes)
			if err != nil {
				return err
			}
		default:
			stats, err := loader.LoadStatistics(statsFile)
			if err != nil {
				return err
			}
			cohorts = heuristics.AggregateByYearDiff(stats, fueltypes, slog.Default())
		}

		w, closeOut, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		format, _ := cmd.Flags().GetString("format")
		return output.WriteCohorts(w, cohorts, output.Format(format))
	},
}

func init() {
	aggregateCmd.Flags().String("plants", "", "path to a matched power plant CSV")
	aggregateCmd.Flags().String("stats", "", "path to a yearly capacity statistics CSV")
	aggregateCmd.Flags().String("fueltypes", "", "comma-separated fuel types (default: Wind,Solar,Bioenergy)")
	aggregateCmd.Flags().String("format", "text", "output format: text, json, csv")
	aggregateCmd.Flags().String("out", "", "output file (default: stdout)")
	rootCmd.AddCommand(aggregateCmd)
}
