package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lawkit/caseclock/internal/deadline"
	"github.com/lawkit/caseclock/internal/domain"
	"github.com/lawkit/caseclock/internal/store"
)

const maxTitleLength = 200

// CaseService coordinates case operations and deadline attachment. The
// dependency is one-way: the service calls the calculator, the calculator
// knows nothing about cases.
type CaseService struct {
	store     *store.CaseStore
	calc      *deadline.Calculator
	validator *Validator
}

// NewCaseService creates a new CaseService.
func NewCaseService(caseStore *store.CaseStore, calc *deadline.Calculator) *CaseService {
	return &CaseService{
		store:     caseStore,
		calc:      calc,
		validator: NewValidator(),
	}
}

// CreateCaseParams holds the inputs for CreateCase.
type CreateCaseParams struct {
	Title       string
	Description string
	Status      domain.CaseStatus
}

// CreateCase validates the parameters and stores a new case.
func (s *CaseService) CreateCase(ctx context.Context, params CreateCaseParams) (*domain.Case, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidArgument, maxTitleLength)
	}

	created, err := s.store.Create(ctx, &domain.Case{
		Title:       title,
		Description: params.Description,
		Status:      params.Status,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("case created",
		"case_id", created.ID,
		"status", created.Status,
	)
	return created, nil
}

// GetCase retrieves a case by ID.
func (s *CaseService) GetCase(ctx context.Context, id int64) (*domain.Case, error) {
	return s.store.GetByID(ctx, id)
}

// ListCases retrieves cases with filters and pagination.
func (s *CaseService) ListCases(ctx context.Context, filters store.CaseListFilters) ([]*domain.Case, int, error) {
	return s.store.List(ctx, filters)
}

// UpdateStatus transitions a case to a new status after validating the
// transition against the current stored status.
func (s *CaseService) UpdateStatus(ctx context.Context, id int64, newStatus domain.CaseStatus) (*domain.Case, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.CanTransition(current.Status, newStatus); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, current.Status, newStatus)
	if err != nil {
		return nil, err
	}

	slog.Info("case status changed",
		"case_id", id,
		"old_status", current.Status,
		"new_status", newStatus,
	)
	return updated, nil
}

// AttachDeadline computes a deadline from the given inputs and stores the
// result on the case.
func (s *CaseService) AttachDeadline(
	ctx context.Context,
	id int64,
	start deadline.StartDate,
	duration int,
	unit domain.Unit,
	rules domain.Rules,
) (*domain.Case, error) {
	// Fail on unknown cases before running the computation.
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}

	computed, err := s.calc.Compute(start, duration, unit, rules)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.AttachDeadline(ctx, id, computed)
	if err != nil {
		return nil, err
	}

	slog.Info("deadline attached",
		"case_id", id,
		"deadline", computed.String(),
	)
	return updated, nil
}

// Stats summarizes the stored cases.
func (s *CaseService) Stats(ctx context.Context) (store.CaseStats, error) {
	return s.store.Stats(ctx)
}
