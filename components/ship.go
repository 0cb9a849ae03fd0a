package components

// Cargo counts mined resources per kind
type Cargo [ResourceKindCount]int

// Total returns the sum over all kinds
func (c Cargo) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// ShipComponent holds the player ship state (singleton)
// Fuel is kept in [0, MaxFuel] by the systems that modify it
type ShipComponent struct {
	Fuel  float64
	Cargo Cargo

	// FuelLowWarned latches the low fuel warning until fuel recovers
	FuelLowWarned bool
}
