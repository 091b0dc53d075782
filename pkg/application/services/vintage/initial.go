package vintage

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// rampingFueltypes are technologies whose deployment ramped up historically.
// Their pre-history gets a triangular age distribution instead of a flat one.
var rampingFueltypes = map[entities.Fueltype]bool{
	entities.Solar:      true,
	entities.Wind:       true,
	entities.Bioenergy:  true,
	entities.Geothermal: true,
}

// seedFlat assumes the capacity observed at yStart was built in equal
// increments over the preceding life years. Each assumed vintage spans its
// full service life, truncated at the matrix boundary.
func seedFlat(m *CohortMatrix, yStart int, observed float64) {
	flat := observed / float64(m.life)
	for v := m.vMin; v <= yStart; v++ {
		m.setSpan(v, v, v+m.life-1, flat)
	}
}

// seedTriangle assumes a linearly increasing build-out ending at yStart: the
// newest assumed vintage carries the most capacity, decreasing by a fixed
// decrement per step backwards. The decrement is chosen so the total equals
// the flat case (the series averages to observed/life).
func seedTriangle(m *CohortMatrix, yStart int, observed float64) {
	flat := observed / float64(m.life)
	decr := 2 * flat / float64(m.life)
	right := 2*flat - decr/2

	for i := 0; i < m.life; i++ {
		v := yStart - i
		m.setSpan(v, v, v+m.life-1, right-float64(i)*decr)
	}
}
