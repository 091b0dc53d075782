package heuristics

import "github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"

// ExtendByNonMatched appends the entries of a reliable source dataset that
// are not yet represented in the matched dataset. label is the source's
// project-id column in both datasets; a record of extendBy is considered
// included when any matched record carries its id under that label. If
// fueltypes is non-empty, only those fuel types are added.
func ExtendByNonMatched(matched, extendBy []entities.PlantRecord, label string, fueltypes []entities.Fueltype) []entities.PlantRecord {
	included := make(map[string]bool)
	for _, p := range matched {
		if id, ok := p.ProjectID(label); ok {
			included[id] = true
		}
	}

	target := make(map[entities.Fueltype]bool, len(fueltypes))
	for _, f := range fueltypes {
		target[f] = true
	}

	extended := make([]entities.PlantRecord, len(matched))
	copy(extended, matched)

	for _, candidate := range extendBy {
		id, ok := candidate.ProjectID(label)
		if !ok || included[id] {
			continue
		}
		if len(target) > 0 && !target[candidate.Fueltype] {
			continue
		}
		added := candidate
		added.ProjectIDs = map[string]string{label: id}
		extended = append(extended, added)
	}
	return extended
}
