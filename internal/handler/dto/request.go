package dto

import "github.com/lawkit/caseclock/internal/domain"

// ComputeDeadlineRequest represents the request body for POST /deadlines/compute.
// Duration is a pointer so a missing field is distinguishable from zero.
type ComputeDeadlineRequest struct {
	StartDate string       `json:"start_date"`
	Duration  *int         `json:"duration"`
	Unit      string       `json:"unit"`
	Rules     domain.Rules `json:"rules"`
}

// CreateCaseRequest represents the request body for POST /cases.
type CreateCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// UpdateCaseStatusRequest represents the request body for PATCH /cases/:id/status.
type UpdateCaseStatusRequest struct {
	Status string `json:"status"`
}

// AttachDeadlineRequest represents the request body for POST /cases/:id/deadline.
type AttachDeadlineRequest struct {
	StartDate string       `json:"start_date"`
	Duration  *int         `json:"duration"`
	Unit      string       `json:"unit"`
	Rules     domain.Rules `json:"rules"`
}

// ListCasesFilters represents query parameters for GET /cases.
type ListCasesFilters struct {
	Statuses []string // Multiple statuses: ?status=OPEN,PENDING
	Limit    int      // ?limit=50
	Offset   int      // ?offset=0
}
