package heuristics

import (
	"log/slog"
	"sort"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// DefaultTargetFueltypes are the renewable fuel types the aggregation
// heuristics operate on unless told otherwise.
func DefaultTargetFueltypes() []entities.Fueltype {
	return []entities.Fueltype{entities.Wind, entities.Solar, entities.Bioenergy}
}

// AggregateByCommYear condenses the vast number of renewable units to one
// (country, fuel type, technology) cohort per commissioning year. Records of
// other fuel types are dropped; missing commissioning years are filled with
// averages first.
func AggregateByCommYear(plants []entities.PlantRecord, targetFueltypes []entities.Fueltype) ([]entities.VintageCohort, error) {
	if len(targetFueltypes) == 0 {
		targetFueltypes = DefaultTargetFueltypes()
	}
	target := make(map[entities.Fueltype]bool, len(targetFueltypes))
	for _, f := range targetFueltypes {
		target[f] = true
	}

	var selected []entities.PlantRecord
	for _, p := range plants {
		if target[p.Fueltype] {
			selected = append(selected, p)
		}
	}

	filled, err := AverageEmptyCommYears(selected)
	if err != nil {
		return nil, err
	}

	type cohortKey struct {
		country entities.Country
		year    int
		fuel    entities.Fueltype
		tech    entities.Technology
	}
	sums := make(map[cohortKey]entities.Megawatt)
	for _, p := range filled {
		key := cohortKey{p.Country, p.YearCommissioned, p.Fueltype, p.Technology}
		sums[key] += p.Capacity
	}

	cohorts := make([]entities.VintageCohort, 0, len(sums))
	for key, capacity := range sums {
		cohorts = append(cohorts, entities.VintageCohort{
			Country:          key.country,
			Technology:       key.tech,
			Fueltype:         key.fuel,
			Set:              entities.SetPP,
			YearCommissioned: key.year,
			Capacity:         capacity,
		})
	}
	return cohorts, nil
}

// AggregateByYearDiff converts cumulative yearly capacity statistics into
// yearly additions by first-differencing each (country, technology) series.
// The first year keeps its full capacity as the addition; declines yield
// negative additions, mirroring the statistics verbatim. Non-continuous
// series are logged.
func AggregateByYearDiff(stats []entities.YearlyStatistic, targetFueltypes []entities.Fueltype, logger *slog.Logger) []entities.VintageCohort {
	if logger == nil {
		logger = slog.Default()
	}
	if len(targetFueltypes) == 0 {
		targetFueltypes = DefaultTargetFueltypes()
	}
	target := make(map[entities.Fueltype]bool, len(targetFueltypes))
	for _, f := range targetFueltypes {
		target[f] = true
	}

	partitions := make(map[entities.PartitionKey][]entities.YearlyStatistic)
	for _, s := range stats {
		if !target[s.Fueltype] {
			continue
		}
		partitions[s.Partition()] = append(partitions[s.Partition()], s)
	}

	var cohorts []entities.VintageCohort
	for part, series := range partitions {
		sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })

		continuous := true
		for i := 1; i < len(series); i++ {
			if series[i].Year != series[i-1].Year+1 {
				continuous = false
				break
			}
		}
		if !continuous {
			logger.Warn("year column is not continuous",
				"country", part.Country, "technology", part.Technology)
		}

		prev := entities.Megawatt(0)
		for i, s := range series {
			addition := s.Capacity
			if i > 0 {
				addition = s.Capacity - prev
			}
			prev = s.Capacity
			cohorts = append(cohorts, entities.VintageCohort{
				Country:          s.Country,
				Technology:       s.Technology,
				Fueltype:         s.Fueltype,
				Set:              s.Set,
				YearCommissioned: s.Year,
				Capacity:         addition,
			})
		}
	}
	return cohorts
}
