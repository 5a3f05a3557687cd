package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lawkit/caseclock/internal/deadline"
	"github.com/lawkit/caseclock/internal/handler/dto"
	"github.com/lawkit/caseclock/internal/middleware"
	"github.com/lawkit/caseclock/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	calc        *deadline.Calculator
	caseService *service.CaseService
	requestLog  *middleware.RequestLogger
}

// New creates a new Handler instance with all dependencies.
func New(calc *deadline.Calculator, caseService *service.CaseService) *Handler {
	return &Handler{
		calc:        calc,
		caseService: caseService,
		requestLog:  middleware.NewRequestLogger(),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// API v1 routes with request logging
	mux.Handle("POST /api/v1/deadlines/compute", h.requestLog.Wrap(http.HandlerFunc(h.handleComputeDeadline)))
	mux.Handle("POST /api/v1/cases", h.requestLog.Wrap(http.HandlerFunc(h.handleCreateCase)))
	mux.Handle("GET /api/v1/cases", h.requestLog.Wrap(http.HandlerFunc(h.handleListCases)))
	mux.Handle("GET /api/v1/cases/{id}", h.requestLog.Wrap(http.HandlerFunc(h.handleGetCase)))
	mux.Handle("PATCH /api/v1/cases/{id}/status", h.requestLog.Wrap(http.HandlerFunc(h.handleUpdateCaseStatus)))
	mux.Handle("POST /api/v1/cases/{id}/deadline", h.requestLog.Wrap(http.HandlerFunc(h.handleAttachDeadline)))
	mux.Handle("GET /api/v1/stats", h.requestLog.Wrap(http.HandlerFunc(h.handleGetStats)))
}

// handleHealthz returns 200 OK while the process is serving.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractCaseID extracts and validates the case ID path parameter.
// Returns (caseID, true) if valid, (0, false) if invalid (error already sent
// to the client).
func extractCaseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "case id is required")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "case id must be a positive integer")
		return 0, false
	}

	return id, true
}

// splitAndTrim splits a string by delimiter and trims whitespace.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
