package services

import "trip-fuel-service/internal/domain"

// CostEstimator prices an ordered route against a fuel profile.
type CostEstimator struct {
	Distance DistanceModel
}

// Estimate computes one leg per adjacent pair of stops. Each leg costs
// distanceKm * consumption * price; the total is accumulated in leg
// order at full float precision. Rounding happens at presentation, not
// here. Callers are expected to pass at least two stops (the resolver
// enforces that upstream); shorter routes yield zero legs.
func (e CostEstimator) Estimate(route []domain.Coordinate, profile domain.FuelProfile) domain.RouteResult {
	ordered := make([]domain.Coordinate, len(route))
	copy(ordered, route)

	legs := []domain.Leg{}
	total := 0.0

	for i := 0; i+1 < len(route); i++ {
		d := e.Distance.DistanceKm(route[i], route[i+1])
		cost := d * profile.ConsumptionLitersPerKm * profile.PricePerLiter

		legs = append(legs, domain.Leg{
			From:        route[i],
			To:          route[i+1],
			DistanceKm:  d,
			FuelCostEGP: cost,
		})
		total += cost
	}

	return domain.RouteResult{
		Ordered:      ordered,
		Legs:         legs,
		TotalCostEGP: total,
	}
}
