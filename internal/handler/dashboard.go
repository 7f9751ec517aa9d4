package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bizledger/bizledger-go/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard statistics.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// HandleStats handles GET /api/dashboard/stats?business_id= requests.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("business_id")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse(service.ErrBusinessIDRequired.Error()))
		return
	}

	businessID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid business ID"))
		return
	}

	resp, err := h.service.Stats(r.Context(), businessID)
	if err != nil {
		slog.Error("dashboard stats failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
