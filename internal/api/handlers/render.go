package handlers

import (
	"fmt"
	"strings"

	"trip-fuel-service/internal/domain"
)

// renderReport produces the plain-text form of a trip report: per-leg
// distance and fuel cost lines, a numbered visiting order, and the
// total, for each requested section.
func renderReport(report *domain.TripReport) string {
	var b strings.Builder

	b.WriteString("Route as entered:\n\n")
	renderRoute(&b, report.AsEntered)

	if report.Optimized != nil {
		b.WriteString("\nOptimized route:\n\n")
		renderRoute(&b, *report.Optimized)
	}

	return b.String()
}

func renderRoute(b *strings.Builder, r domain.RouteResult) {
	for _, leg := range r.Legs {
		fmt.Fprintf(b, "Distance between %s and %s: %.2f km\n", leg.From.Name, leg.To.Name, leg.DistanceKm)
		fmt.Fprintf(b, "Estimated fuel cost: %.2f EGP\n", leg.FuelCostEGP)
	}

	b.WriteString("\nSuggested Order:\n")
	for i, c := range r.Ordered {
		fmt.Fprintf(b, "Visit location %d: %s\n", i+1, c.Name)
	}

	fmt.Fprintf(b, "\nNearly Cost: %.2f EGP\n", r.TotalCostEGP)
}
