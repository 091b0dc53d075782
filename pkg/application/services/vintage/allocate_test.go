package vintage

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

var testPart = entities.PartitionKey{Country: "DE", Technology: "CCGT"}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestReduceVintages_OldestFirst(t *testing.T) {
	m := NewCohortMatrix(2000, 2002, 3)
	seedFlat(m, 2000, 90) // 30 each for 1998, 1999, 2000

	reduceVintages(m, testPart, 20, 2000, discard())

	// 1998 is the oldest vintage alive at 2000 and absorbs the full deficit
	if got := m.Value(1998, 2000); math.Abs(got-10) > tol {
		t.Errorf("expected vintage 1998 reduced to 10, got %f", got)
	}
	if got := m.Value(1999, 2000); math.Abs(got-30) > tol {
		t.Errorf("expected vintage 1999 untouched, got %f", got)
	}
}

func TestReduceVintages_DeficitBeyondSurvivingClampsAtZero(t *testing.T) {
	m := NewCohortMatrix(2000, 2002, 3)
	seedFlat(m, 2000, 90)

	// 500 MW deficit against 90 MW surviving: everything retires, nothing
	// goes negative, the residual is only logged.
	reduceVintages(m, testPart, 500, 2000, discard())

	vMin, vMax := m.VintageRange()
	for v := vMin; v <= vMax; v++ {
		for obs := m.obsMin; obs <= m.obsMax; obs++ {
			if m.Value(v, obs) < 0 {
				t.Fatalf("cell (%d, %d) went negative", v, obs)
			}
		}
	}
	if got := m.SurvivingAt(2000); got > capacityTolerance {
		t.Errorf("expected all capacity retired, %f remains", got)
	}
}

func TestAllocateHistory_SpansStayContiguous(t *testing.T) {
	m := NewCohortMatrix(2000, 2004, 3)
	seedFlat(m, 2000, 90)
	observed := map[int]float64{
		2000: 90, 2001: 120, 2002: 40, 2003: 70, 2004: 10,
	}

	allocateHistory(m, testPart, observed, 2000, 2004, discard())

	vMin, vMax := m.VintageRange()
	for v := vMin; v <= vMax; v++ {
		nonZero := []int{}
		for obs := m.obsMin; obs <= m.obsMax; obs++ {
			if m.Value(v, obs) > capacityTolerance {
				nonZero = append(nonZero, obs)
			}
		}
		if len(nonZero) == 0 {
			continue
		}
		if nonZero[0] < v {
			t.Errorf("vintage %d alive before its commissioning year (%d)", v, nonZero[0])
		}
		span := nonZero[len(nonZero)-1] - nonZero[0] + 1
		if span != len(nonZero) {
			t.Errorf("vintage %d has a gap in its span: %v", v, nonZero)
		}
		if span > m.Life() {
			t.Errorf("vintage %d exceeds its service life: %v", v, nonZero)
		}
	}

	// Each observed year must be matched exactly once reductions are applied
	for year, want := range observed {
		if got := m.SurvivingAt(year); math.Abs(got-want) > tol {
			t.Errorf("year %d: matrix total %f does not match observed %f", year, got, want)
		}
	}
}
