package vintage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/dto"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// Config holds configuration for the vintage derivation service
type Config struct {
	// BaseYear is the reference year the final cohort snapshot is read at
	BaseYear int
	// Workers bounds the number of partitions processed concurrently
	// (0 = number of CPUs)
	Workers int
	// Lifetimes maps fuel types to their assumed service life
	Lifetimes entities.LifetimeTable
	// Logger receives gap-year and clamping warnings (nil = slog.Default)
	Logger *slog.Logger
}

// Service reconstructs a plausible year-of-commissioning breakdown for an
// aggregate capacity fleet from yearly total-capacity statistics.
type Service struct {
	baseYear  int
	workers   int
	lifetimes entities.LifetimeTable
	logger    *slog.Logger
}

// DefaultBaseYear is the reference year used when none is configured
const DefaultBaseYear = 2015

// NewService creates a vintage derivation service
func NewService(cfg Config) *Service {
	if cfg.BaseYear == 0 {
		cfg.BaseYear = DefaultBaseYear
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Lifetimes == nil {
		cfg.Lifetimes = entities.DefaultLifetimes()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		baseYear:  cfg.BaseYear,
		workers:   cfg.Workers,
		lifetimes: cfg.Lifetimes,
		logger:    cfg.Logger,
	}
}

// DeriveVintageCohorts assumes an age distribution for the given capacity
// statistics and returns how much capacity was commissioned in which year,
// evaluated at the configured base year. Statistics are partitioned by
// (country, technology); partitions are processed independently and
// concurrently. A fuel type without a configured service life fails the run
// with a MissingLifetimeError.
func (s *Service) DeriveVintageCohorts(ctx context.Context, stats []entities.YearlyStatistic) (*dto.DeriveResult, error) {
	started := time.Now()

	partitions := make(map[entities.PartitionKey][]entities.YearlyStatistic)
	for _, row := range stats {
		key := row.Partition()
		partitions[key] = append(partitions[key], row)
	}

	jobs := make(chan []entities.YearlyStatistic)
	var (
		mu      sync.Mutex
		cohorts []entities.VintageCohort
		errs    []error
		wg      sync.WaitGroup
	)

	workers := s.workers
	if workers > len(partitions) && len(partitions) > 0 {
		workers = len(partitions)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for part := range jobs {
				derived, err := s.derivePartition(part)
				mu.Lock()
				if err != nil {
					errs = append(errs, err)
				} else {
					cohorts = append(cohorts, derived...)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, part := range partitions {
		select {
		case jobs <- part:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &dto.DeriveResult{
		Cohorts:    cohorts,
		Partitions: len(partitions),
		Elapsed:    time.Since(started),
	}, nil
}

// derivePartition runs the builder, allocator and extractor for one
// (country, technology) slice of the statistics. Years within a partition
// are strictly sequential: each year's allocation depends on the matrix
// state left by all prior years.
func (s *Service) derivePartition(stats []entities.YearlyStatistic) ([]entities.VintageCohort, error) {
	if len(stats) == 0 {
		return nil, nil
	}

	sorted := make([]entities.YearlyStatistic, len(stats))
	copy(sorted, stats)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	first := sorted[0]
	part := first.Partition()
	yStart := sorted[0].Year
	yEnd := sorted[len(sorted)-1].Year

	life, err := s.lifetimes.Life(first.Fueltype)
	if err != nil {
		return nil, fmt.Errorf("partition %s/%s: %w", part.Country, part.Technology, err)
	}

	observed := make(map[int]float64, len(sorted))
	for _, row := range sorted {
		observed[row.Year] = float64(row.Capacity)
	}

	m := NewCohortMatrix(yStart, yEnd, life)
	if rampingFueltypes[first.Fueltype] {
		seedTriangle(m, yStart, observed[yStart])
	} else {
		seedFlat(m, yStart, observed[yStart])
	}
	if yEnd > yStart {
		allocateHistory(m, part, observed, yStart, yEnd, s.logger)
	}

	return extractCohorts(m, s.baseYear, first), nil
}
