package heuristics

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// RescaleToCountryTotals fills the ScaledCapacity column of the dataset so
// that per-country aggregates of the given fuel types match the statistic
// totals. The scaling factor per (fuel type, country) is the ratio of the
// statistic total to the dataset total; records outside the given fuel types
// keep their unscaled capacity. Countries where the statistics report
// capacity but the dataset has none cannot be scaled and are logged.
func RescaleToCountryTotals(plants []entities.PlantRecord, fueltypes []entities.Fueltype, statTotals CapacityTotals, logger *slog.Logger) []entities.PlantRecord {
	if logger == nil {
		logger = slog.Default()
	}

	datasetTotals := TotalsFromPlants(plants)
	target := make(map[entities.Fueltype]bool, len(fueltypes))
	for _, f := range fueltypes {
		target[f] = true
	}

	// Ratios are computed once per (fuel type, country) with decimal
	// arithmetic so repeated multiplication over large datasets does not
	// accumulate drift.
	type scaleKey struct {
		fuel    entities.Fueltype
		country entities.Country
	}
	ratios := make(map[scaleKey]decimal.Decimal)
	for _, fuel := range fueltypes {
		for country, statTotal := range statTotals[fuel] {
			dsTotal := datasetTotals.Get(fuel, country)
			if dsTotal == 0 {
				if statTotal != 0 {
					logger.Warn("cannot scale, no plants of this fuel type in country",
						"fueltype", fuel, "country", country, "statistic_mw", float64(statTotal))
				}
				continue
			}
			ratios[scaleKey{fuel, country}] = decimal.NewFromFloat(float64(statTotal)).
				Div(decimal.NewFromFloat(float64(dsTotal)))
		}
	}

	scaled := make([]entities.PlantRecord, len(plants))
	copy(scaled, plants)
	for i := range scaled {
		scaled[i].ScaledCapacity = scaled[i].Capacity
		if !target[scaled[i].Fueltype] {
			continue
		}
		ratio, ok := ratios[scaleKey{scaled[i].Fueltype, scaled[i].Country}]
		if !ok {
			continue
		}
		value := decimal.NewFromFloat(float64(scaled[i].Capacity)).Mul(ratio)
		scaledValue, _ := value.Float64()
		scaled[i].ScaledCapacity = entities.Megawatt(scaledValue)
	}
	return scaled
}
