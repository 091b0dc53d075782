package memory

import (
	"testing"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/repositories"
)

// compile-time interface checks
var (
	_ repositories.StatisticRepository = (*StatisticRepository)(nil)
	_ repositories.PlantRepository     = (*PlantRepository)(nil)
)

func TestStatisticRepository_Partitions(t *testing.T) {
	repo := NewStatisticRepository()

	err := repo.LoadStatistics([]entities.YearlyStatistic{
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Year: 2000, Capacity: 100},
		{Country: "DE", Technology: "Onshore", Fueltype: entities.Wind, Year: 2001, Capacity: 120},
		{Country: "FR", Technology: "Onshore", Fueltype: entities.Wind, Year: 2000, Capacity: 40},
	})
	if err != nil {
		t.Fatalf("LoadStatistics failed: %v", err)
	}

	keys, err := repo.Partitions()
	if err != nil {
		t.Fatalf("Partitions failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 partitions, got %d", len(keys))
	}

	rows, err := repo.GetPartition(entities.PartitionKey{Country: "DE", Technology: "Onshore"})
	if err != nil {
		t.Fatalf("GetPartition failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows for DE/Onshore, got %d", len(rows))
	}

	if _, err := repo.GetPartition(entities.PartitionKey{Country: "ES", Technology: "Onshore"}); err == nil {
		t.Error("expected an error for an unknown partition")
	}
}

func TestPlantRepository_GetByFueltype(t *testing.T) {
	repo := NewPlantRepository()

	err := repo.LoadPlants([]entities.PlantRecord{
		{Name: "Windpark Nord", Country: "DE", Fueltype: entities.Wind, Capacity: 40},
		{Name: "Solarfeld Sued", Country: "DE", Fueltype: entities.Solar, Capacity: 12},
	})
	if err != nil {
		t.Fatalf("LoadPlants failed: %v", err)
	}

	wind, err := repo.GetByFueltype(entities.Wind)
	if err != nil {
		t.Fatalf("GetByFueltype failed: %v", err)
	}
	if len(wind) != 1 || wind[0].Name != "Windpark Nord" {
		t.Errorf("unexpected wind selection: %+v", wind)
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 records, got %d", len(all))
	}
}
