package domain

import "slices"

// FuelProfile prices a route: liters consumed per kilometer and the
// pump price paid per liter, in EGP.
type FuelProfile struct {
	ConsumptionLitersPerKm float64
	PricePerLiter          float64
}

// FuelTables holds the two independent lookup tables a FuelProfile is
// derived from. The tables are static configuration loaded at startup,
// not derived data.
type FuelTables struct {
	VehicleConsumption map[string]float64
	FuelPrices         map[string]float64
}

// DefaultFuelTables returns the built-in consumption and EGP pump price
// tables. Values are overridable through the pricing config file.
func DefaultFuelTables() FuelTables {
	return FuelTables{
		VehicleConsumption: map[string]float64{
			"Toyota":   0.059,
			"Hyundai":  0.065,
			"BMW":      0.080,
			"Mercedes": 0.120,
		},
		FuelPrices: map[string]float64{
			"80":    12.25,
			"90":    13.75,
			"92":    15.00,
			"95":    17.00,
			"solar": 11.50,
			"gas":   3.75,
		},
	}
}

// Lookup derives a FuelProfile from a vehicle type and fuel grade.
// Unknown keys (including the "select" placeholder an unset picker
// submits) yield 0.0 for the missing field rather than an error.
// StrictLookup is the checked variant.
func (t FuelTables) Lookup(vehicleType, fuelGrade string) FuelProfile {
	return FuelProfile{
		ConsumptionLitersPerKm: t.VehicleConsumption[vehicleType],
		PricePerLiter:          t.FuelPrices[fuelGrade],
	}
}

// StrictLookup fails on unknown keys instead of defaulting to zero, so a
// typo cannot silently price a trip at nothing.
func (t FuelTables) StrictLookup(vehicleType, fuelGrade string) (FuelProfile, error) {
	consumption, okVehicle := t.VehicleConsumption[vehicleType]
	price, okGrade := t.FuelPrices[fuelGrade]
	if !okVehicle || !okGrade {
		return FuelProfile{}, &UnrecognizedProfileError{VehicleType: vehicleType, FuelGrade: fuelGrade}
	}

	return FuelProfile{
		ConsumptionLitersPerKm: consumption,
		PricePerLiter:          price,
	}, nil
}

// VehicleTypes returns the known vehicle types in sorted order.
func (t FuelTables) VehicleTypes() []string {
	out := make([]string, 0, len(t.VehicleConsumption))
	for v := range t.VehicleConsumption {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// FuelGrades returns the known fuel grades in sorted order.
func (t FuelTables) FuelGrades() []string {
	out := make([]string, 0, len(t.FuelPrices))
	for g := range t.FuelPrices {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}
