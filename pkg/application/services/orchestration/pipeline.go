package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/dto"
	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/heuristics"
	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/vintage"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
	"github.com/Xiaochen19/powerplantmatching/pkg/infrastructure/events"
)

// Config holds the collaborators and knobs of a heuristics pipeline
type Config struct {
	// Vintages derives cohorts from statistics (required)
	Vintages *vintage.Service
	// EventStore receives step events (nil = events are dropped)
	EventStore events.Store
	// TargetFueltypes restricts the plant heuristics
	// (nil = wind, solar, bioenergy)
	TargetFueltypes []entities.Fueltype
	// StatsYear is the reference year for statistic totals
	// (0 = latest year present)
	StatsYear int
	Logger    *slog.Logger
}

// Inputs carries the datasets a pipeline run operates on. Steps whose inputs
// are absent are skipped.
type Inputs struct {
	// Statistics drives rescaling, gap-filling and cohort derivation
	Statistics []entities.YearlyStatistic
	// Plants is a matched power plant dataset to adjust and aggregate
	Plants []entities.PlantRecord
	// ExtendBy is a reliable source dataset whose non-matched entries are
	// appended to Plants; ExtendLabel is its project-id label
	ExtendBy    []entities.PlantRecord
	ExtendLabel string
}

// Pipeline chains the dataset adjustment heuristics with the vintage-cohort
// derivation: extend, rescale, add missing capacities, aggregate, derive.
type Pipeline struct {
	cfg Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg Config) (*Pipeline, error) {
	if cfg.Vintages == nil {
		return nil, fmt.Errorf("pipeline requires a vintage service")
	}
	if cfg.TargetFueltypes == nil {
		cfg.TargetFueltypes = heuristics.DefaultTargetFueltypes()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{cfg: cfg}, nil
}

// Run executes every step whose inputs are present and collects the outputs
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*dto.PipelineReport, error) {
	runID := xid.New().String()
	report := &dto.PipelineReport{Plants: in.Plants}

	if len(in.ExtendBy) > 0 {
		p.step(runID, "extend_by_non_matched", report, func() (int, error) {
			report.Plants = heuristics.ExtendByNonMatched(report.Plants, in.ExtendBy, in.ExtendLabel, p.cfg.TargetFueltypes)
			return len(report.Plants), nil
		})
	}

	if len(in.Plants) > 0 && len(in.Statistics) > 0 {
		totals := heuristics.TotalsFromStatistics(in.Statistics, p.statsYear(in.Statistics))

		p.step(runID, "rescale_to_country_totals", report, func() (int, error) {
			report.Plants = heuristics.RescaleToCountryTotals(report.Plants, p.cfg.TargetFueltypes, totals, p.cfg.Logger)
			return len(report.Plants), nil
		})
		p.step(runID, "add_missing_capacities", report, func() (int, error) {
			report.Plants = heuristics.AddMissingCapacities(report.Plants, p.cfg.TargetFueltypes, totals)
			return len(report.Plants), nil
		})
	}

	if len(in.Plants) > 0 {
		if err := p.step(runID, "aggregate_by_commyear", report, func() (int, error) {
			cohorts, err := heuristics.AggregateByCommYear(report.Plants, p.cfg.TargetFueltypes)
			if err != nil {
				return 0, err
			}
			report.AggregatedCohorts = cohorts
			return len(cohorts), nil
		}); err != nil {
			return nil, fmt.Errorf("aggregation step failed: %w", err)
		}
	}

	if len(in.Statistics) > 0 {
		if err := p.step(runID, "derive_vintage_cohorts", report, func() (int, error) {
			derived, err := p.cfg.Vintages.DeriveVintageCohorts(ctx, in.Statistics)
			if err != nil {
				return 0, err
			}
			report.Derived = derived
			return len(derived.Cohorts), nil
		}); err != nil {
			return nil, fmt.Errorf("derivation step failed: %w", err)
		}
	}

	return report, nil
}

// step runs one pipeline stage, records its event trail and summary
func (p *Pipeline) step(runID, name string, report *dto.PipelineReport, fn func() (int, error)) error {
	p.emit(runID, events.NewStepStarted(runID, name))
	started := time.Now()

	rows, err := fn()
	elapsed := time.Since(started)
	if err != nil {
		return err
	}

	p.emit(runID, events.NewStepCompleted(runID, name, rows, elapsed))
	report.Steps = append(report.Steps, dto.StepSummary{Name: name, Rows: rows, Elapsed: elapsed})
	p.cfg.Logger.Debug("pipeline step completed", "step", name, "rows", rows, "elapsed", elapsed)
	return nil
}

func (p *Pipeline) emit(runID string, event events.Event) {
	if p.cfg.EventStore == nil {
		return
	}
	if err := p.cfg.EventStore.Append(runID, event); err != nil {
		p.cfg.Logger.Warn("failed to record pipeline event", "error", err)
	}
}

// statsYear picks the reference year for statistic totals
func (p *Pipeline) statsYear(stats []entities.YearlyStatistic) int {
	if p.cfg.StatsYear != 0 {
		return p.cfg.StatsYear
	}
	latest := 0
	for _, s := range stats {
		if s.Year > latest {
			latest = s.Year
		}
	}
	return latest
}
