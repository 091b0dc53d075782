package config

import (
	"testing"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BaseYear != 2015 {
		t.Errorf("expected default base year 2015, got %d", cfg.BaseYear)
	}
	if len(cfg.TargetFueltypes) != 3 {
		t.Errorf("expected 3 default target fuel types, got %v", cfg.TargetFueltypes)
	}
	if _, err := cfg.Lifetimes.Life(entities.Wind); err != nil {
		t.Errorf("default lifetimes must cover wind: %v", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvBaseYear, "2012")
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvTargetFueltypes, "Wind, Hydro")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.BaseYear != 2012 {
		t.Errorf("expected base year 2012, got %d", cfg.BaseYear)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if len(cfg.TargetFueltypes) != 2 || cfg.TargetFueltypes[1] != entities.Hydro {
		t.Errorf("expected [Wind Hydro], got %v", cfg.TargetFueltypes)
	}
}

func TestFromEnv_InvalidBaseYear(t *testing.T) {
	t.Setenv(EnvBaseYear, "not-a-year")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error for a malformed base year")
	}
}
