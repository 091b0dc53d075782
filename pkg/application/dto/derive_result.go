package dto

import (
	"time"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// DeriveResult is the outcome of a vintage-cohort derivation run. Cohort
// order is unspecified; callers must not rely on it.
type DeriveResult struct {
	Cohorts    []entities.VintageCohort
	Partitions int
	Elapsed    time.Duration
}

// TotalCapacity sums the derived cohort capacities
func (r *DeriveResult) TotalCapacity() entities.Megawatt {
	return entities.TotalCapacity(r.Cohorts)
}

// StepSummary describes one executed pipeline step
type StepSummary struct {
	Name    string
	Rows    int
	Elapsed time.Duration
}

// PipelineReport collects the outputs of a full heuristics pipeline run
type PipelineReport struct {
	Plants            []entities.PlantRecord
	AggregatedCohorts []entities.VintageCohort
	Derived           *DeriveResult
	Steps             []StepSummary
}
