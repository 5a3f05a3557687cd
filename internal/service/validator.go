package service

import (
	"fmt"

	"github.com/lawkit/caseclock/internal/domain"
)

// Validator enforces the case status state machine.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// CanTransition validates a status transition.
func (v *Validator) CanTransition(from, to domain.CaseStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, to)
	}

	switch from {
	case domain.CaseStatusOpen:
		if to == domain.CaseStatusPending || to == domain.CaseStatusClosed {
			return nil
		}
	case domain.CaseStatusPending:
		if to == domain.CaseStatusOpen || to == domain.CaseStatusClosed {
			return nil
		}
	case domain.CaseStatusClosed:
		if to == domain.CaseStatusOpen || to == domain.CaseStatusArchived {
			return nil
		}
	case domain.CaseStatusArchived:
		// Terminal status, no transitions allowed
		return fmt.Errorf("%w: cannot transition from terminal status %s", domain.ErrInvalidTransition, from)
	default:
		return fmt.Errorf("%w: unknown status %s", domain.ErrInvalidStatus, from)
	}

	return fmt.Errorf("%w: cannot transition %s -> %s", domain.ErrInvalidTransition, from, to)
}
