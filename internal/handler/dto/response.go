package dto

import (
	"time"

	"github.com/lawkit/caseclock/internal/domain"
	"github.com/lawkit/caseclock/internal/store"
)

// ComputeDeadlineResponse represents the response for POST /deadlines/compute.
type ComputeDeadlineResponse struct {
	Deadline domain.CalendarDate `json:"deadline"`
}

// CaseResponse represents a single case.
type CaseResponse struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Deadline    *domain.CalendarDate `json:"deadline"`
	IsOverdue   bool                 `json:"is_overdue"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// CasesListResponse represents the response for GET /cases.
type CasesListResponse struct {
	Cases  []CaseResponse `json:"cases"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// StatsResponse represents the response for GET /stats.
type StatsResponse struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	WithDeadline int            `json:"with_deadline"`
}

// ToCaseResponse converts domain.Case to CaseResponse.
func ToCaseResponse(c *domain.Case) CaseResponse {
	isOverdue := c.Deadline != nil && c.Deadline.Before(domain.CalendarDateOf(time.Now().UTC()))
	return CaseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		Deadline:    c.Deadline,
		IsOverdue:   isOverdue,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToStatsResponse converts store.CaseStats to StatsResponse.
func ToStatsResponse(stats store.CaseStats) StatsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return StatsResponse{
		Total:        stats.Total,
		ByStatus:     byStatus,
		WithDeadline: stats.WithDeadline,
	}
}
