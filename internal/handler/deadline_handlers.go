package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lawkit/caseclock/internal/deadline"
	"github.com/lawkit/caseclock/internal/domain"
	"github.com/lawkit/caseclock/internal/handler/dto"
)

// handleComputeDeadline computes a deadline date without touching any case.
// @Summary Compute a deadline
// @Description Computes a deadline date from a start date, duration, unit and calendar rules.
// @Tags deadlines
// @Accept json
// @Produce json
// @Param request body dto.ComputeDeadlineRequest true "Deadline computation request"
// @Success 200 {object} dto.ComputeDeadlineResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /deadlines/compute [post]
func (h *Handler) handleComputeDeadline(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	start, duration, unit, ok := validateComputeInputs(w, req.StartDate, req.Duration, req.Unit)
	if !ok {
		return
	}

	result, err := h.calc.Compute(start, duration, unit, req.Rules)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ComputeDeadlineResponse{Deadline: result})
}

// validateComputeInputs checks presence of the computation fields shared by
// the compute and attach endpoints. Field-level errors are sent to the client
// here; semantic validation belongs to the calculator.
func validateComputeInputs(w http.ResponseWriter, startDate string, duration *int, unit string) (deadline.StartDate, int, domain.Unit, bool) {
	if startDate == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "start_date is required")
		return deadline.StartDate{}, 0, "", false
	}
	if duration == nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "duration is required")
		return deadline.StartDate{}, 0, "", false
	}
	if unit == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unit is required")
		return deadline.StartDate{}, 0, "", false
	}
	return deadline.StartString(startDate), *duration, domain.Unit(unit), true
}
