package domain

import (
	"errors"
	"fmt"
)

// ErrProviderFailure indicates the geocoding collaborator failed with an
// I/O error, as opposed to returning zero candidates for a name.
var ErrProviderFailure = errors.New("geocoding provider failure")

// ErrInsufficientLocations indicates fewer than two valid, unique
// locations survived resolution.
var ErrInsufficientLocations = errors.New("at least two valid locations are required")

// NotFoundError reports the first input string that produced zero
// geocode candidates. Resolution is fail-fast: no partial coordinate
// list is returned once a name cannot be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("location not found: %s", e.Name)
}

// UnrecognizedProfileError is returned by strict profile lookup when a
// vehicle type or fuel grade has no table entry. The default lenient
// lookup maps unknown keys to zero instead.
type UnrecognizedProfileError struct {
	VehicleType string
	FuelGrade   string
}

func (e *UnrecognizedProfileError) Error() string {
	return fmt.Sprintf("unrecognized fuel profile: vehicle=%q grade=%q", e.VehicleType, e.FuelGrade)
}
