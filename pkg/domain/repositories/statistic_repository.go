package repositories

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// StatisticRepository provides access to yearly capacity statistics
type StatisticRepository interface {
	GetAll() ([]entities.YearlyStatistic, error)
	GetPartition(key entities.PartitionKey) ([]entities.YearlyStatistic, error)
	Partitions() ([]entities.PartitionKey, error)
	LoadStatistics(stats []entities.YearlyStatistic) error
}
