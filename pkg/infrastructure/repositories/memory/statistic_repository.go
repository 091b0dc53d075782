package memory

import (
	"fmt"
	"sync"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// StatisticRepository provides an in-memory implementation of
// repositories.StatisticRepository. Safe for concurrent reads.
type StatisticRepository struct {
	mutex      sync.RWMutex
	partitions map[entities.PartitionKey][]entities.YearlyStatistic
}

// NewStatisticRepository creates an empty in-memory statistic repository
func NewStatisticRepository() *StatisticRepository {
	return &StatisticRepository{
		partitions: make(map[entities.PartitionKey][]entities.YearlyStatistic),
	}
}

// LoadStatistics replaces the repository content with the given rows
func (r *StatisticRepository) LoadStatistics(stats []entities.YearlyStatistic) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.partitions = make(map[entities.PartitionKey][]entities.YearlyStatistic)
	for _, s := range stats {
		key := s.Partition()
		r.partitions[key] = append(r.partitions[key], s)
	}
	return nil
}

// GetAll returns every stored statistic row
func (r *StatisticRepository) GetAll() ([]entities.YearlyStatistic, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var all []entities.YearlyStatistic
	for _, rows := range r.partitions {
		all = append(all, rows...)
	}
	return all, nil
}

// GetPartition returns the rows of one (country, technology) partition
func (r *StatisticRepository) GetPartition(key entities.PartitionKey) ([]entities.YearlyStatistic, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rows, ok := r.partitions[key]
	if !ok {
		return nil, fmt.Errorf("no statistics for partition %s/%s", key.Country, key.Technology)
	}
	result := make([]entities.YearlyStatistic, len(rows))
	copy(result, rows)
	return result, nil
}

// Partitions lists the stored partition keys
func (r *StatisticRepository) Partitions() ([]entities.PartitionKey, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keys := make([]entities.PartitionKey, 0, len(r.partitions))
	for key := range r.partitions {
		keys = append(keys, key)
	}
	return keys, nil
}
