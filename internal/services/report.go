package services

import (
	"context"
	"fmt"

	"trip-fuel-service/internal/domain"
	"trip-fuel-service/internal/platform/obs"
)

// TripReportBuilder assembles the full trip report: resolve the inputs
// once, cost the as-entered order, and optionally cost the
// nearest-neighbor order. Geocoding is never repeated for the optimized
// pass, and a resolution error aborts before either estimate runs.
type TripReportBuilder struct {
	Resolver  *GeoResolver
	Sequencer RouteSequencer
	Estimator CostEstimator
	Tables    domain.FuelTables

	// StrictProfile makes unknown vehicle/fuel keys an error instead of
	// silently pricing the whole trip at zero.
	StrictProfile bool
}

// Build produces a TripReport for the raw inputs under the given fuel
// profile keys. includeOptimized toggles the nearest-neighbor section;
// the as-entered section is always present on success.
func (b *TripReportBuilder) Build(
	ctx context.Context,
	locations []string,
	vehicleType string,
	fuelGrade string,
	includeOptimized bool,
) (_ *domain.TripReport, err error) {
	defer obs.Time(ctx, "report.Build")(&err)

	coords, err := b.Resolver.Resolve(ctx, locations)
	if err != nil {
		return nil, fmt.Errorf("build trip report: %w", err)
	}

	var profile domain.FuelProfile
	if b.StrictProfile {
		profile, err = b.Tables.StrictLookup(vehicleType, fuelGrade)
		if err != nil {
			return nil, fmt.Errorf("build trip report: %w", err)
		}
	} else {
		profile = b.Tables.Lookup(vehicleType, fuelGrade)
	}

	report := &domain.TripReport{
		VehicleType: vehicleType,
		FuelGrade:   fuelGrade,
		AsEntered:   b.Estimator.Estimate(coords, profile),
	}

	if includeOptimized {
		optimized := b.Estimator.Estimate(b.Sequencer.Sequence(coords), profile)
		report.Optimized = &optimized
	}

	return report, nil
}
