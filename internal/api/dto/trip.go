package dto

type EstimateRequest struct {
	Locations   []string `json:"locations"`
	VehicleType string   `json:"vehicle_type"`
	FuelGrade   string   `json:"fuel_grade"`
	// IncludeOptimized defaults to true when omitted.
	IncludeOptimized *bool `json:"include_optimized"`
}

type StopResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type LegResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKm  float64 `json:"distance_km"`
	FuelCostEGP float64 `json:"fuel_cost_egp"`
}

type RouteResponse struct {
	Stops        []StopResponse `json:"stops"`
	Legs         []LegResponse  `json:"legs"`
	TotalCostEGP float64        `json:"total_cost_egp"`
}

type EstimateResponse struct {
	VehicleType string         `json:"vehicle_type"`
	FuelGrade   string         `json:"fuel_grade"`
	AsEntered   RouteResponse  `json:"as_entered"`
	Optimized   *RouteResponse `json:"optimized,omitempty"`
}

type OptionsResponse struct {
	VehicleTypes []string `json:"vehicle_types"`
	FuelGrades   []string `json:"fuel_grades"`
}

type ReverseResponse struct {
	Area string `json:"area"`
}
