package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"

	"trip-fuel-service/internal/api/dto"
	"trip-fuel-service/internal/domain"
	"trip-fuel-service/internal/metrics"
	"trip-fuel-service/internal/services"
)

// Non-standard nginx convention for "client superseded the request";
// net/http has no constant for it.
const statusClientClosedRequest = 499

type TripHandler struct {
	Builder *services.TripReportBuilder
	Guard   *services.SessionGuard
}

// Estimate builds the dual-ordering trip report for a list of raw
// location strings. A request arriving while a previous build is in
// flight cancels the previous one.
func (h *TripHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Locations) == 0 {
		writeError(w, r, http.StatusBadRequest, "locations are required")
		return
	}

	includeOptimized := true
	if req.IncludeOptimized != nil {
		includeOptimized = *req.IncludeOptimized
	}

	ctx, release := h.Guard.Begin(r.Context())
	defer release()

	report, err := h.Builder.Build(ctx, req.Locations, req.VehicleType, req.FuelGrade, includeOptimized)
	if err != nil {
		h.writeBuildError(w, r, err)
		return
	}
	metrics.ReportBuilds.WithLabelValues("ok").Inc()

	if r.URL.Query().Get("format") == "text" {
		writeText(w, http.StatusOK, renderReport(report))
		return
	}

	writeJSON(w, r, http.StatusOK, toEstimateResponse(report))
}

// writeBuildError maps the typed resolution errors onto the output
// surface. The three typed errors and cancellation are always
// distinguished before the generic catch-all.
func (h *TripHandler) writeBuildError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	var badProfile *domain.UnrecognizedProfileError

	switch {
	case errors.As(err, &notFound):
		metrics.ReportBuilds.WithLabelValues("not_found").Inc()
		writeError(w, r, http.StatusUnprocessableEntity, "Location not found: "+notFound.Name)

	case errors.Is(err, domain.ErrInsufficientLocations):
		metrics.ReportBuilds.WithLabelValues("insufficient").Inc()
		writeError(w, r, http.StatusUnprocessableEntity, "Please enter at least two valid locations.")

	case errors.As(err, &badProfile):
		metrics.ReportBuilds.WithLabelValues("bad_profile").Inc()
		writeError(w, r, http.StatusUnprocessableEntity, badProfile.Error())

	case errors.Is(err, domain.ErrProviderFailure):
		metrics.ReportBuilds.WithLabelValues("provider_failure").Inc()
		log.Printf("trip estimate provider failure: %v", err)
		writeError(w, r, http.StatusBadGateway, "Geocoder failed")

	case errors.Is(err, context.Canceled):
		// Superseded by a newer request; not a user-visible error.
		metrics.ReportBuilds.WithLabelValues("superseded").Inc()
		w.WriteHeader(statusClientClosedRequest)

	default:
		metrics.ReportBuilds.WithLabelValues("error").Inc()
		log.Printf("trip estimate failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Unexpected error occurred")
	}
}

// round2 rounds for display; all upstream accumulation stays at full
// precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRouteResponse(r domain.RouteResult) dto.RouteResponse {
	stops := make([]dto.StopResponse, 0, len(r.Ordered))
	for _, c := range r.Ordered {
		stops = append(stops, dto.StopResponse{Name: c.Name, Lat: c.Lat, Lon: c.Lon})
	}

	legs := make([]dto.LegResponse, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, dto.LegResponse{
			From:        leg.From.Name,
			To:          leg.To.Name,
			DistanceKm:  round2(leg.DistanceKm),
			FuelCostEGP: round2(leg.FuelCostEGP),
		})
	}

	return dto.RouteResponse{
		Stops:        stops,
		Legs:         legs,
		TotalCostEGP: round2(r.TotalCostEGP),
	}
}

func toEstimateResponse(report *domain.TripReport) dto.EstimateResponse {
	res := dto.EstimateResponse{
		VehicleType: report.VehicleType,
		FuelGrade:   report.FuelGrade,
		AsEntered:   toRouteResponse(report.AsEntered),
	}

	if report.Optimized != nil {
		optimized := toRouteResponse(*report.Optimized)
		res.Optimized = &optimized
	}

	return res
}
