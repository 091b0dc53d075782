package services

import (
	"fmt"
	"sort"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// StatsValidator provides validation for yearly capacity statistics
type StatsValidator struct{}

// NewStatsValidator creates a new statistics validator
func NewStatsValidator() *StatsValidator {
	return &StatsValidator{}
}

// ValidationResult contains the results of statistics validation. Gaps are
// informational; Errors make the input unusable.
type ValidationResult struct {
	DuplicateRows []entities.YearlyStatistic
	Gaps          map[entities.PartitionKey][]int
	Errors        []string
}

// Valid reports whether the statistics can be processed
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateStatistics checks a statistics table for duplicate
// (country, technology, year) rows, negative capacities and year gaps
// within partitions. Gaps are reported but are not errors.
func (v *StatsValidator) ValidateStatistics(stats []entities.YearlyStatistic) *ValidationResult {
	result := &ValidationResult{
		Gaps: make(map[entities.PartitionKey][]int),
	}

	type rowKey struct {
		part entities.PartitionKey
		year int
	}
	seen := make(map[rowKey]bool)
	partitionYears := make(map[entities.PartitionKey][]int)

	for _, s := range stats {
		if s.Capacity < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("negative capacity %.2f for %s/%s in %d", float64(s.Capacity), s.Country, s.Technology, s.Year))
		}

		key := rowKey{part: s.Partition(), year: s.Year}
		if seen[key] {
			result.DuplicateRows = append(result.DuplicateRows, s)
			result.Errors = append(result.Errors,
				fmt.Sprintf("duplicate statistic for %s/%s in %d", s.Country, s.Technology, s.Year))
			continue
		}
		seen[key] = true
		partitionYears[key.part] = append(partitionYears[key.part], s.Year)
	}

	for part, years := range partitionYears {
		gaps := continuityGaps(years)
		if len(gaps) > 0 {
			result.Gaps[part] = gaps
		}
	}

	return result
}

// continuityGaps returns the years missing from an otherwise yearly series
func continuityGaps(years []int) []int {
	if len(years) < 2 {
		return nil
	}
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)

	var gaps []int
	for i := 1; i < len(sorted); i++ {
		for y := sorted[i-1] + 1; y < sorted[i]; y++ {
			gaps = append(gaps, y)
		}
	}
	return gaps
}
