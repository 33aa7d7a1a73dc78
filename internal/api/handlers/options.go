package handlers

import (
	"net/http"

	"trip-fuel-service/internal/api/dto"
	"trip-fuel-service/internal/domain"
)

// OptionsHandler lists the vehicle types and fuel grades the pricing
// tables know about, so clients can populate their pickers.
type OptionsHandler struct {
	Tables domain.FuelTables
}

func (h *OptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.OptionsResponse{
		VehicleTypes: h.Tables.VehicleTypes(),
		FuelGrades:   h.Tables.FuelGrades(),
	})
}
