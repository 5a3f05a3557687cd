package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lawkit/caseclock/internal/domain"
)

// CaseListFilters holds all supported filters for case listing.
type CaseListFilters struct {
	Statuses []domain.CaseStatus // Optional: filter by status
	Limit    int                 // Required: page size
	Offset   int                 // Required: page offset
}

// CaseStats summarizes the stored cases.
type CaseStats struct {
	Total        int
	ByStatus     map[domain.CaseStatus]int
	WithDeadline int
}

// CaseStore is an in-memory case collection with auto-incrementing
// identifiers. The map is guarded by a RWMutex; cases cross the boundary
// only as clones so callers never share state with the store.
type CaseStore struct {
	mu     sync.RWMutex
	cases  map[int64]*domain.Case
	nextID int64
}

// NewCaseStore creates an empty CaseStore.
func NewCaseStore() *CaseStore {
	return &CaseStore{cases: make(map[int64]*domain.Case)}
}

// Create stores a new case and returns it with ID, CreatedAt and UpdatedAt
// populated. An empty status defaults to OPEN.
func (s *CaseStore) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	if c.Status == "" {
		c.Status = domain.CaseStatusOpen
	}
	if !c.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()

	stored := c.Clone()
	stored.ID = s.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.cases[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID retrieves a case by ID.
func (s *CaseStore) GetByID(_ context.Context, id int64) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	return c.Clone(), nil
}

// List retrieves cases ordered by ID with filters and pagination, returning
// the page and the total match count before pagination.
func (s *CaseStore) List(_ context.Context, filters CaseListFilters) ([]*domain.Case, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Case, 0, len(s.cases))
	for _, c := range s.cases {
		if !matchesStatus(c, filters.Statuses) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)

	start := filters.Offset
	if start > total {
		start = total
	}
	end := total
	if filters.Limit > 0 && start+filters.Limit < end {
		end = start + filters.Limit
	}

	page := make([]*domain.Case, 0, end-start)
	for _, c := range matched[start:end] {
		page = append(page, c.Clone())
	}
	return page, total, nil
}

// UpdateStatus updates the case status with an optimistic check: the stored
// status must still equal oldStatus or ErrCaseModified is returned.
func (s *CaseStore) UpdateStatus(_ context.Context, id int64, oldStatus, newStatus domain.CaseStatus) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	if c.Status != oldStatus {
		return nil, domain.ErrCaseModified
	}

	c.Status = newStatus
	c.UpdatedAt = time.Now().UTC()
	return c.Clone(), nil
}

// AttachDeadline sets the computed deadline on a case.
func (s *CaseStore) AttachDeadline(_ context.Context, id int64, deadline domain.CalendarDate) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}

	c.Deadline = &deadline
	c.UpdatedAt = time.Now().UTC()
	return c.Clone(), nil
}

// Stats summarizes the stored cases by status and deadline presence.
func (s *CaseStore) Stats(_ context.Context) (CaseStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := CaseStats{ByStatus: make(map[domain.CaseStatus]int)}
	for _, c := range s.cases {
		stats.Total++
		stats.ByStatus[c.Status]++
		if c.HasDeadline() {
			stats.WithDeadline++
		}
	}
	return stats, nil
}

// matchesStatus reports whether the case passes the status filter.
func matchesStatus(c *domain.Case, statuses []domain.CaseStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, status := range statuses {
		if c.Status == status {
			return true
		}
	}
	return false
}
