package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lawkit/caseclock/internal/domain"
	"github.com/lawkit/caseclock/internal/handler/dto"
	"github.com/lawkit/caseclock/internal/service"
	"github.com/lawkit/caseclock/internal/store"
)

// handleCreateCase creates a new case record.
// @Summary Create a case
// @Description Creates a new case record. Status defaults to OPEN.
// @Tags cases
// @Accept json
// @Produce json
// @Param request body dto.CreateCaseRequest true "Case creation request"
// @Success 201 {object} dto.CaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /cases [post]
func (h *Handler) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required")
		return
	}
	if req.Status != "" && !domain.CaseStatus(req.Status).IsValid() {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status must be 'OPEN', 'PENDING', 'CLOSED' or 'ARCHIVED'")
		return
	}

	created, err := h.caseService.CreateCase(ctx, service.CreateCaseParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.CaseStatus(req.Status),
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToCaseResponse(created))
}

// handleGetCase retrieves a single case.
// @Summary Get case details
// @Tags cases
// @Produce json
// @Param id path int true "Case ID"
// @Success 200 {object} dto.CaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /cases/{id} [get]
func (h *Handler) handleGetCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caseID, ok := extractCaseID(w, r)
	if !ok {
		return
	}

	c, err := h.caseService.GetCase(ctx, caseID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCaseResponse(c))
}

// handleListCases returns a list of cases with filters.
// @Summary List cases
// @Description Get a list of cases with optional status filter and pagination
// @Tags cases
// @Produce json
// @Param status query string false "Comma-separated statuses: OPEN,PENDING"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.CasesListResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /cases [get]
func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var statuses []domain.CaseStatus
	if statusParam := query.Get("status"); statusParam != "" {
		for _, raw := range splitAndTrim(statusParam, ",") {
			status := domain.CaseStatus(raw)
			if !status.IsValid() {
				respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown status "+raw)
				return
			}
			statuses = append(statuses, status)
		}
	}

	limit := 50
	if limitParam := query.Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	offset := 0
	if offsetParam := query.Get("offset"); offsetParam != "" {
		if n, err := strconv.Atoi(offsetParam); err == nil && n >= 0 {
			offset = n
		}
	}

	cases, total, err := h.caseService.ListCases(ctx, store.CaseListFilters{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cases")
		return
	}

	responses := make([]dto.CaseResponse, len(cases))
	for i, c := range cases {
		responses[i] = dto.ToCaseResponse(c)
	}

	respondJSON(w, http.StatusOK, dto.CasesListResponse{
		Cases:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// handleUpdateCaseStatus changes a case status.
// @Summary Update case status
// @Tags cases
// @Accept json
// @Produce json
// @Param id path int true "Case ID"
// @Param request body dto.UpdateCaseStatusRequest true "Status update request"
// @Success 200 {object} dto.CaseResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /cases/{id}/status [patch]
func (h *Handler) handleUpdateCaseStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caseID, ok := extractCaseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateCaseStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Status == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status is required")
		return
	}

	updated, err := h.caseService.UpdateStatus(ctx, caseID, domain.CaseStatus(req.Status))
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCaseResponse(updated))
}

// handleAttachDeadline computes a deadline and stores it on a case.
// @Summary Attach a computed deadline
// @Description Computes a deadline from the request inputs and attaches it to the case.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path int true "Case ID"
// @Param request body dto.AttachDeadlineRequest true "Deadline computation request"
// @Success 200 {object} dto.CaseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /cases/{id}/deadline [post]
func (h *Handler) handleAttachDeadline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caseID, ok := extractCaseID(w, r)
	if !ok {
		return
	}

	var req dto.AttachDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	start, duration, unit, ok := validateComputeInputs(w, req.StartDate, req.Duration, req.Unit)
	if !ok {
		return
	}

	updated, err := h.caseService.AttachDeadline(ctx, caseID, start, duration, unit, req.Rules)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCaseResponse(updated))
}

// handleGetStats summarizes stored cases.
// @Summary Case statistics
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.caseService.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToStatsResponse(stats))
}
