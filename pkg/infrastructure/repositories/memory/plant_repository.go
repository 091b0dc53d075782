package memory

import (
	"sync"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// PlantRepository provides an in-memory implementation of
// repositories.PlantRepository
type PlantRepository struct {
	mutex  sync.RWMutex
	plants []entities.PlantRecord
}

// NewPlantRepository creates an empty in-memory plant repository
func NewPlantRepository() *PlantRepository {
	return &PlantRepository{}
}

// LoadPlants replaces the repository content with the given records
func (r *PlantRepository) LoadPlants(plants []entities.PlantRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plants = make([]entities.PlantRecord, len(plants))
	copy(r.plants, plants)
	return nil
}

// GetAll returns every stored plant record
func (r *PlantRepository) GetAll() ([]entities.PlantRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]entities.PlantRecord, len(r.plants))
	copy(all, r.plants)
	return all, nil
}

// GetByFueltype returns the stored records of one fuel type
func (r *PlantRepository) GetByFueltype(fuel entities.Fueltype) ([]entities.PlantRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var selected []entities.PlantRecord
	for _, p := range r.plants {
		if p.Fueltype == fuel {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
