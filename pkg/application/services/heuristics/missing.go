package heuristics

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// ArtificialSource is the project-id label carried by records invented to
// close a gap between dataset and statistic totals.
const ArtificialSource = "Artificial"

// defaultCommYears are average construction years assumed for artificial
// records of fuel types where the statistics give no better information.
var defaultCommYears = map[entities.Fueltype]int{
	entities.Solar: 2011,
	entities.Wind:  2008,
}

// AddMissingCapacities appends one artificial plant record per (fuel type,
// country) where the statistic total exceeds the dataset total, sized to the
// difference. Primarily used to top up wind and solar fleets that the plant
// databases under-report. Negative differences are ignored.
func AddMissingCapacities(plants []entities.PlantRecord, fueltypes []entities.Fueltype, statTotals CapacityTotals) []entities.PlantRecord {
	datasetTotals := TotalsFromPlants(plants)

	extended := make([]entities.PlantRecord, len(plants))
	copy(extended, plants)

	for _, fuel := range fueltypes {
		for country, statTotal := range statTotals[fuel] {
			missing := statTotal - datasetTotals.Get(fuel, country)
			if missing <= 0 {
				continue
			}
			name := fmt.Sprintf("Artificial_%s_%s", fuel, country)
			extended = append(extended, entities.PlantRecord{
				ProjectIDs: map[string]string{
					ArtificialSource: fmt.Sprintf("%s_%s", name, xid.New()),
				},
				Name:             name,
				Country:          country,
				Fueltype:         fuel,
				Set:              entities.SetPP,
				Capacity:         missing,
				YearCommissioned: defaultCommYears[fuel],
			})
		}
	}
	return extended
}
