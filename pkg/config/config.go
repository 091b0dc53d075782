package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// Environment variable names recognized by FromEnv
const (
	EnvBaseYear        = "PPM_BASE_YEAR"
	EnvWorkers         = "PPM_WORKERS"
	EnvTargetFueltypes = "PPM_TARGET_FUELTYPES"
)

// Config holds the run configuration of the heuristics tooling
type Config struct {
	// BaseYear is the reference year the cohort snapshot is extracted at
	BaseYear int
	// Workers bounds partition concurrency (0 = number of CPUs)
	Workers int
	// TargetFueltypes restricts the renewable heuristics
	TargetFueltypes []entities.Fueltype
	// Lifetimes maps fuel types to assumed service lives
	Lifetimes entities.LifetimeTable
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		BaseYear: 2015,
		TargetFueltypes: []entities.Fueltype{
			entities.Wind, entities.Solar, entities.Bioenergy,
		},
		Lifetimes: entities.DefaultLifetimes(),
	}
}

// FromEnv returns the default configuration with PPM_* environment
// overrides applied
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvBaseYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvBaseYear, v, err)
		}
		cfg.BaseYear = year
	}

	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = workers
	}

	if v := os.Getenv(EnvTargetFueltypes); v != "" {
		var fuels []entities.Fueltype
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				fuels = append(fuels, entities.Fueltype(name))
			}
		}
		if len(fuels) > 0 {
			cfg.TargetFueltypes = fuels
		}
	}

	return cfg, nil
}
