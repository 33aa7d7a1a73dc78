package services

import (
	"math"

	"trip-fuel-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0088

// DefaultRoadFactor scales the straight-line great-circle distance to
// approximate actual road travel distance. The value is configuration,
// not a derived physical constant.
const DefaultRoadFactor = 1.25

// DistanceModel converts coordinate pairs into estimated road
// kilometers: haversine great-circle distance scaled by a fixed road
// factor.
type DistanceModel struct {
	RoadFactor float64
}

func NewDistanceModel(roadFactor float64) DistanceModel {
	if roadFactor <= 0 {
		roadFactor = DefaultRoadFactor
	}
	return DistanceModel{RoadFactor: roadFactor}
}

// DistanceKm returns the corrected travel distance between two points.
// Symmetric in its arguments; zero for identical points.
func (m DistanceModel) DistanceKm(a, b domain.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c * m.RoadFactor
}
