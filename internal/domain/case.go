package domain

import "time"

// CaseStatus represents the status of a case record.
type CaseStatus string

const (
	CaseStatusOpen     CaseStatus = "OPEN"
	CaseStatusPending  CaseStatus = "PENDING"
	CaseStatusClosed   CaseStatus = "CLOSED"
	CaseStatusArchived CaseStatus = "ARCHIVED"
)

// IsTerminal returns true if the status is terminal (no transitions allowed).
func (s CaseStatus) IsTerminal() bool {
	return s == CaseStatusArchived
}

// IsValid checks if the status is one of the allowed values.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed, CaseStatusArchived:
		return true
	default:
		return false
	}
}

// Case is a case record. Identifiers auto-increment per store instance; the
// deadline, when present, is a value computed by the deadline calculator and
// attached after the fact.
type Case struct {
	ID          int64
	Title       string
	Description string
	Status      CaseStatus
	Deadline    *CalendarDate
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasDeadline reports whether a deadline has been attached to the case.
func (c *Case) HasDeadline() bool {
	return c.Deadline != nil
}

// Clone returns a deep copy so callers never share mutable state with the store.
func (c *Case) Clone() *Case {
	clone := *c
	if c.Deadline != nil {
		d := *c.Deadline
		clone.Deadline = &d
	}
	return &clone
}
