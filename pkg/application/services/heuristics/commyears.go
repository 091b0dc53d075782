package heuristics

import (
	"fmt"
	"math"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

type yearMean struct {
	sum   float64
	count int
}

func (m yearMean) value() (int, bool) {
	if m.count == 0 {
		return 0, false
	}
	return int(math.Round(m.sum / float64(m.count))), true
}

// AverageEmptyCommYears fills missing commissioning years with averages,
// trying increasingly coarse groupings: (country, fuel type) first, then
// fuel type only, then country only. Records that still have no year after
// all three passes make the dataset unusable.
func AverageEmptyCommYears(plants []entities.PlantRecord) ([]entities.PlantRecord, error) {
	type countryFuel struct {
		country entities.Country
		fuel    entities.Fueltype
	}

	byCountryFuel := make(map[countryFuel]yearMean)
	byFuel := make(map[entities.Fueltype]yearMean)
	byCountry := make(map[entities.Country]yearMean)

	for _, p := range plants {
		if !p.HasCommYear() {
			continue
		}
		y := float64(p.YearCommissioned)

		cf := countryFuel{p.Country, p.Fueltype}
		m := byCountryFuel[cf]
		m.sum += y
		m.count++
		byCountryFuel[cf] = m

		m = byFuel[p.Fueltype]
		m.sum += y
		m.count++
		byFuel[p.Fueltype] = m

		m = byCountry[p.Country]
		m.sum += y
		m.count++
		byCountry[p.Country] = m
	}

	filled := make([]entities.PlantRecord, len(plants))
	copy(filled, plants)

	remaining := 0
	for i := range filled {
		if filled[i].HasCommYear() {
			continue
		}
		if year, ok := byCountryFuel[countryFuel{filled[i].Country, filled[i].Fueltype}].value(); ok {
			filled[i].YearCommissioned = year
			continue
		}
		if year, ok := byFuel[filled[i].Fueltype].value(); ok {
			filled[i].YearCommissioned = year
			continue
		}
		if year, ok := byCountry[filled[i].Country].value(); ok {
			filled[i].YearCommissioned = year
			continue
		}
		remaining++
	}

	if remaining > 0 {
		return nil, fmt.Errorf("%d records still have no commissioning year and must be filled manually or dropped", remaining)
	}
	return filled, nil
}
