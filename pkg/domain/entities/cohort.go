package entities

// VintageCohort is the aggregate capacity attributed to a single commissioning
// year for a (country, technology) fleet. Cohorts are derived output and are
// read-only once emitted.
type VintageCohort struct {
	Country         Country
	Technology      Technology
	Fueltype        Fueltype
	Set             Set
	YearCommissioned int
	Capacity        Megawatt
}

// TotalCapacity sums the capacity of a cohort slice
func TotalCapacity(cohorts []VintageCohort) Megawatt {
	var total Megawatt
	for _, c := range cohorts {
		total += c.Capacity
	}
	return total
}
