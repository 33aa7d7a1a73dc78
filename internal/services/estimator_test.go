package services

import (
	"math"
	"testing"

	"trip-fuel-service/internal/domain"
)

func testRoute() []domain.Coordinate {
	return []domain.Coordinate{
		{Name: "Cairo", Lat: 30.0444, Lon: 31.2357},
		{Name: "Giza", Lat: 29.9870, Lon: 31.2118},
		{Name: "Alexandria", Lat: 31.2001, Lon: 29.9187},
	}
}

func TestEstimateLegsAndCosts(t *testing.T) {
	model := NewDistanceModel(DefaultRoadFactor)
	e := CostEstimator{Distance: model}

	profile := domain.FuelProfile{ConsumptionLitersPerKm: 0.059, PricePerLiter: 15.00}
	route := testRoute()

	result := e.Estimate(route, profile)

	if len(result.Legs) != len(route)-1 {
		t.Fatalf("legs = %d, want %d", len(result.Legs), len(route)-1)
	}

	for i, leg := range result.Legs {
		wantDistance := model.DistanceKm(route[i], route[i+1])
		if leg.DistanceKm != wantDistance {
			t.Fatalf("leg %d distance = %v, want %v", i, leg.DistanceKm, wantDistance)
		}

		wantCost := wantDistance * 0.059 * 15.00
		if math.Abs(leg.FuelCostEGP-wantCost) > 1e-9 {
			t.Fatalf("leg %d cost = %v, want %v", i, leg.FuelCostEGP, wantCost)
		}
	}
}

func TestEstimateTotalIsSumOfLegs(t *testing.T) {
	e := CostEstimator{Distance: NewDistanceModel(DefaultRoadFactor)}
	profile := domain.FuelProfile{ConsumptionLitersPerKm: 0.080, PricePerLiter: 13.75}

	result := e.Estimate(testRoute(), profile)

	sum := 0.0
	for _, leg := range result.Legs {
		sum += leg.FuelCostEGP
	}
	if result.TotalCostEGP != sum {
		t.Fatalf("total = %v, want leg-order sum %v", result.TotalCostEGP, sum)
	}
}

func TestEstimateZeroProfileCostsNothing(t *testing.T) {
	e := CostEstimator{Distance: NewDistanceModel(DefaultRoadFactor)}

	// The lenient lookup maps unknown keys to zero; every leg must then
	// cost zero while distances stay intact.
	result := e.Estimate(testRoute(), domain.FuelProfile{})

	if result.TotalCostEGP != 0 {
		t.Fatalf("total = %v, want 0", result.TotalCostEGP)
	}
	for i, leg := range result.Legs {
		if leg.FuelCostEGP != 0 {
			t.Fatalf("leg %d cost = %v, want 0", i, leg.FuelCostEGP)
		}
		if leg.DistanceKm <= 0 {
			t.Fatalf("leg %d distance = %v, want > 0", i, leg.DistanceKm)
		}
	}
}

func TestEstimateDoesNotAliasInput(t *testing.T) {
	e := CostEstimator{Distance: NewDistanceModel(DefaultRoadFactor)}
	route := testRoute()

	result := e.Estimate(route, domain.FuelProfile{ConsumptionLitersPerKm: 0.059, PricePerLiter: 15})

	route[0].Name = "mutated"
	if result.Ordered[0].Name != "Cairo" {
		t.Fatalf("result aliases caller slice: %q", result.Ordered[0].Name)
	}
}
