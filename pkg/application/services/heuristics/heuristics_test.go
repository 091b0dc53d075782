package heuristics

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

func plant(country string, fuel entities.Fueltype, capacity float64, year int) entities.PlantRecord {
	return entities.PlantRecord{
		Country:          entities.Country(country),
		Fueltype:         fuel,
		Set:              entities.SetPP,
		Capacity:         entities.Megawatt(capacity),
		YearCommissioned: year,
	}
}

func TestRescaleToCountryTotals(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 60, 2005),
		plant("DE", entities.Wind, 40, 2010),
		plant("DE", entities.Solar, 50, 2012),
	}
	statTotals := CapacityTotals{
		entities.Wind: {"DE": 150},
	}

	scaled := RescaleToCountryTotals(plants, []entities.Fueltype{entities.Wind}, statTotals, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Len(t, scaled, 3)
	assert.InDelta(t, 90, float64(scaled[0].ScaledCapacity), 1e-9)
	assert.InDelta(t, 60, float64(scaled[1].ScaledCapacity), 1e-9)
	// Fuel types outside the target set keep their capacity
	assert.InDelta(t, 50, float64(scaled[2].ScaledCapacity), 1e-9)
	// Input is not mutated
	assert.Zero(t, float64(plants[0].ScaledCapacity))
}

func TestRescaleToCountryTotals_NoPlantsInCountry(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 100, 2005),
	}
	statTotals := CapacityTotals{
		entities.Wind: {"DE": 100, "FR": 80},
	}

	scaled := RescaleToCountryTotals(plants, []entities.Fueltype{entities.Wind}, statTotals, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// FR cannot be scaled; DE ratio is 1
	require.Len(t, scaled, 1)
	assert.InDelta(t, 100, float64(scaled[0].ScaledCapacity), 1e-9)
}

func TestAddMissingCapacities(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 100, 2005),
		plant("DE", entities.Solar, 90, 2012),
	}
	statTotals := CapacityTotals{
		entities.Wind:  {"DE": 140},
		entities.Solar: {"DE": 70}, // dataset exceeds statistic, no record
	}

	extended := AddMissingCapacities(plants, []entities.Fueltype{entities.Wind, entities.Solar}, statTotals)

	require.Len(t, extended, 3)
	artificial := extended[2]
	assert.Equal(t, entities.Wind, artificial.Fueltype)
	assert.Equal(t, entities.Country("DE"), artificial.Country)
	assert.Equal(t, entities.SetPP, artificial.Set)
	assert.InDelta(t, 40, float64(artificial.Capacity), 1e-9)
	assert.Equal(t, 2008, artificial.YearCommissioned)

	id, ok := artificial.ProjectID(ArtificialSource)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(id, "Artificial_Wind_DE_"))
}

func TestExtendByNonMatched(t *testing.T) {
	matched := []entities.PlantRecord{
		{ProjectIDs: map[string]string{"OPSD": "opsd-1", "GEO": "geo-9"}, Country: "DE", Fueltype: entities.Wind, Capacity: 50},
	}
	extendBy := []entities.PlantRecord{
		{ProjectIDs: map[string]string{"OPSD": "opsd-1"}, Country: "DE", Fueltype: entities.Wind, Capacity: 50},
		{ProjectIDs: map[string]string{"OPSD": "opsd-2"}, Country: "DE", Fueltype: entities.Wind, Capacity: 30},
		{ProjectIDs: map[string]string{"OPSD": "opsd-3"}, Country: "DE", Fueltype: entities.Hydro, Capacity: 120},
	}

	extended := ExtendByNonMatched(matched, extendBy, "OPSD", []entities.Fueltype{entities.Wind})

	require.Len(t, extended, 2)
	assert.InDelta(t, 30, float64(extended[1].Capacity), 1e-9)
	id, ok := extended[1].ProjectID("OPSD")
	require.True(t, ok)
	assert.Equal(t, "opsd-2", id)
}

func TestAverageEmptyCommYears_FillOrder(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 10, 2000),
		plant("DE", entities.Wind, 10, 2010),
		plant("DE", entities.Wind, 10, 0), // country+fuel mean: 2005
		plant("FR", entities.Wind, 10, 0), // fuel mean: 2005
		plant("FR", entities.Hydro, 10, 1960),
		plant("FR", entities.OtherFuel, 10, 0), // country mean: 1960
	}

	filled, err := AverageEmptyCommYears(plants)
	require.NoError(t, err)

	assert.Equal(t, 2005, filled[2].YearCommissioned)
	assert.Equal(t, 2005, filled[3].YearCommissioned)
	assert.Equal(t, 1960, filled[5].YearCommissioned)
}

func TestAverageEmptyCommYears_Unfillable(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 10, 0),
	}

	_, err := AverageEmptyCommYears(plants)
	assert.Error(t, err)
}

func TestAggregateByCommYear(t *testing.T) {
	plants := []entities.PlantRecord{
		plant("DE", entities.Wind, 10, 2005),
		plant("DE", entities.Wind, 15, 2005),
		plant("DE", entities.Wind, 20, 2006),
		plant("DE", entities.Hydro, 500, 1970), // not a target fuel type
	}

	cohorts, err := AggregateByCommYear(plants, nil)
	require.NoError(t, err)
	require.Len(t, cohorts, 2)

	byYear := make(map[int]float64)
	for _, c := range cohorts {
		assert.Equal(t, entities.SetPP, c.Set)
		byYear[c.YearCommissioned] += float64(c.Capacity)
	}
	assert.InDelta(t, 25, byYear[2005], 1e-9)
	assert.InDelta(t, 20, byYear[2006], 1e-9)
}

func TestAggregateByYearDiff(t *testing.T) {
	stats := []entities.YearlyStatistic{
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Set: entities.SetPP, Year: 2000, Capacity: 100},
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Set: entities.SetPP, Year: 2001, Capacity: 130},
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Set: entities.SetPP, Year: 2002, Capacity: 120},
	}

	cohorts := AggregateByYearDiff(stats, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Len(t, cohorts, 3)

	byYear := make(map[int]float64)
	for _, c := range cohorts {
		byYear[c.YearCommissioned] = float64(c.Capacity)
	}
	assert.InDelta(t, 100, byYear[2000], 1e-9)
	assert.InDelta(t, 30, byYear[2001], 1e-9)
	assert.InDelta(t, -10, byYear[2002], 1e-9)
}
