package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/heuristics"
	"github.com/Xiaochen19/powerplantmatching/pkg/config"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
	csvrepo "github.com/Xiaochen19/powerplantmatching/pkg/infrastructure/repositories/csv"
	"github.com/Xiaochen19/powerplantmatching/pkg/interfaces/cli/output"
)

var rescaleCmd = &cobra.Command{
	Use:   "rescale",
	Short: "Scale a plant dataset to match per-country statistic totals",
	Long: `Rescale fills the scaled-capacity column of a matched plant dataset so
per-country fuel type totals agree with the statistics of a reference
year. With --add-missing, remaining gaps are closed by artificial
records instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		fueltypes := fueltypesFlag(cmd, cfg)
		loader := csvrepo.NewLoader()

		plantsFile, _ := cmd.Flags().GetString("plants")
		plants, err := loader.LoadPlants(plantsFile)
		if err != nil {
			return err
		}
		statsFile, _ := cmd.Flags().GetString("stats")
		stats, err := loader.LoadStatistics(statsFile)
		if err != nil {
			return err
		}

		year, _ := cmd.Flags().GetInt("year")
		if year == 0 {
			year = cfg.BaseYear
		}
		totals := heuristics.TotalsFromStatistics(stats, year)

		scaled := heuristics.RescaleToCountryTotals(plants, fueltypes, totals, slog.Default())
		if addMissing, _ := cmd.Flags().GetBool("add-missing"); addMissing {
			scaled = heuristics.AddMissingCapacities(scaled, fueltypes, totals)
		}

		w, closeOut, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		return output.WritePlantsCSV(w, scaled)
	},
}

func init() {
	rescaleCmd.Flags().String("plants", "", "path to a matched power plant CSV")
	rescaleCmd.Flags().String("stats", "", "path to a yearly capacity statistics CSV")
	rescaleCmd.Flags().Int("year", 0, "statistics reference year (default: base year)")
	rescaleCmd.Flags().String("fueltypes", "", "comma-separated fuel types (default: Wind,Solar,Bioenergy)")
	rescaleCmd.Flags().String("out", "", "output file (default: stdout)")
	rescaleCmd.MarkFlagRequired("plants")
	rescaleCmd.MarkFlagRequired("stats")
	rootCmd.AddCommand(rescaleCmd)
}

// fueltypesFlag resolves the --fueltypes flag against the configuration
func fueltypesFlag(cmd *cobra.Command, cfg config.Config) []entities.Fueltype {
	raw, _ := cmd.Flags().GetString("fueltypes")
	if raw == "" {
		return cfg.TargetFueltypes
	}
	var fuels []entities.Fueltype
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			fuels = append(fuels, entities.Fueltype(name))
		}
	}
	return fuels
}
