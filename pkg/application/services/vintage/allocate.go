package vintage

import (
	"log/slog"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// allocateHistory walks the matrix forward from yStart+1 to yEnd, reconciling
// each year with the observed total. A positive difference between observed
// and surviving capacity becomes a new vintage; a negative one triggers the
// waterfall reduction. Years missing from the statistics are treated as
// zero-addition years.
func allocateHistory(m *CohortMatrix, part entities.PartitionKey, observed map[int]float64, yStart, yEnd int, logger *slog.Logger) {
	for year := yStart + 1; year <= yEnd; year++ {
		capacity, ok := observed[year]
		if !ok {
			logger.Warn("statistic year missing, assuming no additions",
				"country", part.Country,
				"technology", part.Technology,
				"year", year)
			m.setSpan(year, year, year+m.life-1, 0)
			continue
		}

		surviving := m.SurvivingAt(year)
		addition := capacity - surviving
		if addition >= 0 {
			m.setSpan(year, year, year+m.life-1, addition)
		} else {
			m.setSpan(year, year, year+m.life-1, 0)
			reduceVintages(m, part, -addition, year, logger)
		}
	}
}

// reduceVintages absorbs a capacity deficit at year yPres by retiring existing
// vintages early, oldest first. A vintage smaller than the remaining deficit
// is zeroed from yPres through its scheduled end; the vintage the deficit runs
// out in is truncated to its remainder. A deficit larger than all surviving
// capacity is clamped at zero and reported.
func reduceVintages(m *CohortMatrix, part entities.PartitionKey, deficit float64, yPres int, logger *slog.Logger) {
	for v := m.vMin; v <= m.vMax; v++ {
		remaining := m.Value(v, yPres)
		if remaining <= 0 {
			continue
		}
		if deficit > remaining {
			m.setSpan(v, yPres, v+m.life-1, 0)
			deficit -= remaining
		} else {
			m.setSpan(v, yPres, v+m.life-1, remaining-deficit)
			deficit = 0
			break
		}
	}

	if deficit > capacityTolerance {
		logger.Warn("observed decline exceeds surviving capacity, clamping at zero",
			"country", part.Country,
			"technology", part.Technology,
			"year", yPres,
			"residual_mw", deficit)
	}
}
