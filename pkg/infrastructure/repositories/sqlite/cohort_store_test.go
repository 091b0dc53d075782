package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

func testCohorts() []entities.VintageCohort {
	return []entities.VintageCohort{
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Set: entities.SetPP, YearCommissioned: 2005, Capacity: 120.5},
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Set: entities.SetPP, YearCommissioned: 2006, Capacity: 80},
		{Country: "DE", Technology: "", Fueltype: entities.Solar, Set: entities.SetPP, YearCommissioned: 2011, Capacity: 40.25},
	}
}

func TestCohortStore_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cohorts.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCohorts(ctx, testCohorts()))

	loaded, err := store.LoadCohorts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	byYear := make(map[int]entities.VintageCohort)
	for _, c := range loaded {
		byYear[c.YearCommissioned] = c
	}
	assert.Equal(t, entities.Wind, byYear[2005].Fueltype)
	assert.InDelta(t, 120.5, float64(byYear[2005].Capacity), 1e-9)
	assert.Equal(t, entities.SetPP, byYear[2011].Set)
}

func TestCohortStore_TotalsByFueltype(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "cohorts.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveCohorts(ctx, testCohorts()))

	totals, err := store.TotalsByFueltype(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 200.5, float64(totals[entities.Wind]), 1e-9)
	assert.InDelta(t, 40.25, float64(totals[entities.Solar]), 1e-9)
}

func TestCohortStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cohorts.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveCohorts(ctx, testCohorts()))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadCohorts(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}
