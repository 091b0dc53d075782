package entities

// Country is an ISO-style country name or code as it appears in the statistics
type Country string

// Technology is the technology label within a fuel type (e.g. "Onshore", "CCGT")
type Technology string

// Fueltype identifies the primary fuel of a plant or statistic row
type Fueltype string

// Set classifies a record as power plant, CHP or storage
type Set string

// Megawatt represents an installed-capacity value in MW
type Megawatt float64

// Common fuel types used throughout the heuristics
const (
	Wind       Fueltype = "Wind"
	Solar      Fueltype = "Solar"
	Bioenergy  Fueltype = "Bioenergy"
	Geothermal Fueltype = "Geothermal"
	Hydro      Fueltype = "Hydro"
	HardCoal   Fueltype = "Hard Coal"
	Lignite    Fueltype = "Lignite"
	NaturalGas Fueltype = "Natural Gas"
	Nuclear    Fueltype = "Nuclear"
	Oil        Fueltype = "Oil"
	Waste      Fueltype = "Waste"
	OtherFuel  Fueltype = "Other"
)

// SetPP marks a conventional power plant record
const SetPP Set = "PP"

// YearlyStatistic is one row of an aggregate capacity statistic: the total
// installed capacity observed for a (country, technology) in a given year.
// Rows are unique per (Country, Technology, Year) within a partition.
type YearlyStatistic struct {
	Country    Country
	Technology Technology
	Fueltype   Fueltype
	Set        Set
	Year       int
	Capacity   Megawatt
}

// PartitionKey identifies an independently processed slice of the statistics
type PartitionKey struct {
	Country    Country
	Technology Technology
}

// Partition returns the key of the partition this row belongs to
func (s YearlyStatistic) Partition() PartitionKey {
	return PartitionKey{Country: s.Country, Technology: s.Technology}
}
