package heuristics

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// CapacityTotals holds aggregate installed capacity per fuel type and country
type CapacityTotals map[entities.Fueltype]map[entities.Country]entities.Megawatt

// Get returns the total for a (fuel type, country) pair, zero if absent
func (t CapacityTotals) Get(fuel entities.Fueltype, country entities.Country) entities.Megawatt {
	byCountry, ok := t[fuel]
	if !ok {
		return 0
	}
	return byCountry[country]
}

func (t CapacityTotals) add(fuel entities.Fueltype, country entities.Country, capacity entities.Megawatt) {
	byCountry, ok := t[fuel]
	if !ok {
		byCountry = make(map[entities.Country]entities.Megawatt)
		t[fuel] = byCountry
	}
	byCountry[country] += capacity
}

// TotalsFromPlants aggregates a plant dataset per fuel type and country
func TotalsFromPlants(plants []entities.PlantRecord) CapacityTotals {
	totals := make(CapacityTotals)
	for _, p := range plants {
		totals.add(p.Fueltype, p.Country, p.Capacity)
	}
	return totals
}

// TotalsFromStatistics aggregates a statistics table for one reference year
func TotalsFromStatistics(stats []entities.YearlyStatistic, year int) CapacityTotals {
	totals := make(CapacityTotals)
	for _, s := range stats {
		if s.Year != year {
			continue
		}
		totals.add(s.Fueltype, s.Country, s.Capacity)
	}
	return totals
}
