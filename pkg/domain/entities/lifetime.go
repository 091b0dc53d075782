package entities

import "fmt"

// LifetimeTable maps a fuel type to its assumed service life in years.
// Capacity is retired automatically once a cohort reaches this age.
type LifetimeTable map[Fueltype]int

// MissingLifetimeError reports a fuel type encountered in the input for which
// no service life is configured. This is fatal for the affected run.
type MissingLifetimeError struct {
	Fueltype Fueltype
}

func (e *MissingLifetimeError) Error() string {
	return fmt.Sprintf("no service life configured for fuel type %q", e.Fueltype)
}

// Life returns the configured service life for a fuel type
func (t LifetimeTable) Life(fuel Fueltype) (int, error) {
	life, ok := t[fuel]
	if !ok || life <= 0 {
		return 0, &MissingLifetimeError{Fueltype: fuel}
	}
	return life, nil
}

// DefaultLifetimes returns the default fuel type to service life mapping
func DefaultLifetimes() LifetimeTable {
	return LifetimeTable{
		Bioenergy:  20,
		Geothermal: 15,
		HardCoal:   45,
		Hydro:      100,
		Lignite:    45,
		NaturalGas: 40,
		Nuclear:    50,
		Oil:        40,
		Solar:      25,
		Waste:      25,
		Wind:       25,
		OtherFuel:  5,
	}
}
