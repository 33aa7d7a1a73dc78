package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trip-fuel-service/internal/domain"
)

// Pricing is the on-disk pricing configuration. The road factor and the
// fuel tables are operator-maintained constants (pump prices change);
// anything left unset keeps its built-in default.
type Pricing struct {
	RoadFactor         float64            `yaml:"road_factor"`
	VehicleConsumption map[string]float64 `yaml:"vehicle_consumption"`
	FuelPrices         map[string]float64 `yaml:"fuel_prices"`
}

// LoadPricing reads a YAML pricing file and merges it over the
// defaults. A missing file is not an error: the defaults apply.
func LoadPricing(path string) (float64, domain.FuelTables, error) {
	roadFactor := 1.25
	tables := domain.DefaultFuelTables()

	if path == "" {
		return roadFactor, tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return roadFactor, tables, nil
		}
		return 0, domain.FuelTables{}, fmt.Errorf("load pricing: read %q: %w", path, err)
	}

	var p Pricing
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return 0, domain.FuelTables{}, fmt.Errorf("load pricing: parse %q: %w", path, err)
	}

	if p.RoadFactor > 0 {
		roadFactor = p.RoadFactor
	}
	if len(p.VehicleConsumption) > 0 {
		tables.VehicleConsumption = p.VehicleConsumption
	}
	if len(p.FuelPrices) > 0 {
		tables.FuelPrices = p.FuelPrices
	}

	return roadFactor, tables, nil
}
