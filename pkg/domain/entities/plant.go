package entities

// PlantRecord is one row of a matched power plant dataset. ProjectIDs maps a
// source dataset label to the identifier the record carries in that source;
// a record assembled from several sources carries one entry per source.
// YearCommissioned of zero means the commissioning year is unknown.
type PlantRecord struct {
	ProjectIDs       map[string]string
	Name             string
	Country          Country
	Fueltype         Fueltype
	Technology       Technology
	Set              Set
	Capacity         Megawatt
	ScaledCapacity   Megawatt
	YearCommissioned int
}

// HasCommYear reports whether the record carries a known commissioning year
func (p PlantRecord) HasCommYear() bool {
	return p.YearCommissioned != 0
}

// ProjectID returns the record's identifier in the given source dataset
func (p PlantRecord) ProjectID(label string) (string, bool) {
	id, ok := p.ProjectIDs[label]
	return id, ok
}
