package domain

// Leg is a single hop between two consecutive stops, with the corrected
// road distance and its fuel cost. Legs are computed per estimate and
// never stored.
type Leg struct {
	From        Coordinate
	To          Coordinate
	DistanceKm  float64
	FuelCostEGP float64
}

// RouteResult is the costed outcome for one visiting order.
// It is immutable planning data and contains no side effects.
// TotalCostEGP is the sum of the legs' costs accumulated in leg order;
// values stay at full float precision until presentation.
type RouteResult struct {
	Ordered      []Coordinate
	Legs         []Leg
	TotalCostEGP float64
}

// TripReport pairs the as-entered costing with the optional
// nearest-neighbor-optimized one. Optimized is nil when the caller asked
// for the as-entered section only.
type TripReport struct {
	VehicleType string
	FuelGrade   string
	AsEntered   RouteResult
	Optimized   *RouteResult
}
