package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizledger/bizledger-go/internal/middleware"
	"github.com/bizledger/bizledger-go/internal/model"
	"github.com/bizledger/bizledger-go/internal/service"
)

// BusinessHandler handles HTTP requests for business management.
type BusinessHandler struct {
	service *service.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(svc *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: svc}
}

// HandleList handles GET /api/businesses requests.
func (h *BusinessHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	businesses, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("listing businesses failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, businesses)
}

// HandleCreate handles POST /api/businesses requests.
func (h *BusinessHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateBusinessRequest
	if !decodeJSON(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("creating business failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
