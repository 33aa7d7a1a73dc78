package handlers

import (
	"log"
	"net/http"
	"strconv"

	"trip-fuel-service/internal/api/dto"
	"trip-fuel-service/internal/ports"
)

// LocationHandler exposes reverse geocoding for the current-location
// fill feature.
type LocationHandler struct {
	Geocoder ports.Geocoder
}

func (h *LocationHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}

	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lon must be a number between -180 and 180")
		return
	}

	area, err := h.Geocoder.Reverse(r.Context(), lat, lon)
	if err != nil {
		log.Printf("reverse geocode failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "Geocoder failed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReverseResponse{Area: area})
}
