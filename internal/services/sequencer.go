package services

import "trip-fuel-service/internal/domain"

// RouteSequencer orders trip stops using a greedy nearest-neighbor pass.
//
// The algorithm minimizes immediate travel distance at each step. It
// does not attempt global route optimization (e.g., TSP solvers). The
// design prioritizes determinism and simplicity over optimality; the
// produced order is user-visible, so the greedy semantics are part of
// the contract.
type RouteSequencer struct {
	Distance DistanceModel
}

// Sequence returns a permutation of coords visiting every point exactly
// once. The first input coordinate is always the starting point and is
// never re-selected. Each step picks the strictly nearest remaining
// point; the strict less-than comparison means the earlier candidate
// wins on exact ties. The input slice is never mutated.
func (s RouteSequencer) Sequence(coords []domain.Coordinate) []domain.Coordinate {
	if len(coords) == 0 {
		return []domain.Coordinate{}
	}

	ordered := make([]domain.Coordinate, 0, len(coords))
	ordered = append(ordered, coords[0])

	// Visited stops are removed from an explicit remaining list, distinct
	// from the caller-owned input.
	remaining := make([]domain.Coordinate, len(coords)-1)
	copy(remaining, coords[1:])

	current := coords[0]
	for len(remaining) > 0 {
		best := 0
		bestDistance := s.Distance.DistanceKm(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := s.Distance.DistanceKm(current, remaining[i]); d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}
