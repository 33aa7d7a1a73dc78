package domain

// Immutable geographic position (latitude, longitude).
type Position struct {
	Lat float64
	Lon float64
}

// Coordinate is a resolved trip stop: the user-entered place name plus
// its geocoded position. Created once per unique input string and never
// mutated afterwards; sequencing builds new slices instead of reordering
// a shared one.
type Coordinate struct {
	Name string
	Lat  float64
	Lon  float64
}

// Position returns the coordinate's geographic position without the name.
func (c Coordinate) Position() Position { return Position{Lat: c.Lat, Lon: c.Lon} }
