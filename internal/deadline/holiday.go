package deadline

import (
	"log/slog"

	"github.com/lawkit/caseclock/internal/domain"
)

// HolidaySet is an immutable set of calendar dates keyed by their canonical
// YYYY-MM-DD form. It is built once at calculator construction and never
// mutated afterwards.
type HolidaySet map[string]struct{}

// NewHolidaySet parses the given date strings into a set. Malformed entries
// are logged and discarded; construction never fails.
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, raw := range dates {
		d, err := domain.ParseCalendarDate(raw)
		if err != nil {
			slog.Warn("dropping malformed holiday entry", "value", raw, "error", err)
			continue
		}
		set[d.String()] = struct{}{}
	}
	return set
}

// Contains reports whether the date is a configured holiday.
func (s HolidaySet) Contains(d domain.CalendarDate) bool {
	_, ok := s[d.String()]
	return ok
}

// Len returns the number of configured holidays.
func (s HolidaySet) Len() int {
	return len(s)
}
