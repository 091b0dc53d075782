package repositories

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// PlantRepository provides access to matched power plant records
type PlantRepository interface {
	GetAll() ([]entities.PlantRecord, error)
	GetByFueltype(fuel entities.Fueltype) ([]entities.PlantRecord, error)
	LoadPlants(plants []entities.PlantRecord) error
}
