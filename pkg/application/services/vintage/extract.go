package vintage

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// extractCohorts reads the matrix column at baseYear and emits one cohort per
// vintage still carrying capacity. Values within capacityTolerance of zero
// are dropped.
func extractCohorts(m *CohortMatrix, baseYear int, template entities.YearlyStatistic) []entities.VintageCohort {
	var cohorts []entities.VintageCohort
	for v := m.vMin; v <= m.vMax; v++ {
		value := m.Value(v, baseYear)
		if value <= capacityTolerance {
			continue
		}
		cohorts = append(cohorts, entities.VintageCohort{
			Country:          template.Country,
			Technology:       template.Technology,
			Fueltype:         template.Fueltype,
			Set:              template.Set,
			YearCommissioned: v,
			Capacity:         entities.Megawatt(value),
		})
	}
	return cohorts
}
