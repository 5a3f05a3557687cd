package domain

import (
	"fmt"
	"regexp"
	"time"
)

// dateLayout is the canonical wire format for calendar dates.
const dateLayout = "2006-01-02"

// datePattern rejects anything that is not a strict YYYY-MM-DD string before
// the value reaches time.Parse.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CalendarDate is a date with no time-of-day or timezone ambiguity.
// Internally it is an instant pinned to 12:00 UTC so that whole-day
// arithmetic can never slip across a day boundary through an offset or a
// daylight-saving transition.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate builds a CalendarDate from year/month/day components.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// CalendarDateOf re-derives a CalendarDate from the calendar components of an
// arbitrary instant. Any time-of-day or offset carried by the input is
// discarded; only the calendar date matters.
func CalendarDateOf(t time.Time) CalendarDate {
	year, month, day := t.Date()
	return NewCalendarDate(year, month, day)
}

// ParseCalendarDate parses a strict YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if !datePattern.MatchString(s) {
		return CalendarDate{}, fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrInvalidArgument, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q is not a valid calendar date", ErrInvalidArgument, s)
	}
	return CalendarDateOf(t), nil
}

// String returns the canonical YYYY-MM-DD representation.
func (d CalendarDate) String() string {
	return d.t.Format(dateLayout)
}

// Time exposes the underlying instant, always anchored at 12:00 UTC.
func (d CalendarDate) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week in UTC.
func (d CalendarDate) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func (d CalendarDate) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsZero reports whether the date is the zero value.
func (d CalendarDate) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether two dates name the same calendar day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.t.Equal(other.t)
}

// Before reports whether d falls before other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.t.Before(other.t)
}

// AddDays returns the date n whole days later (earlier for negative n).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDate{t: d.t.AddDate(0, 0, n)}
}

// AddMonths advances the month field by n. When the origin's day-of-month
// does not exist in the target month the result is clamped to the last day
// of that month, so Jan 31 + 1 month is Feb 29 in a leap year and Feb 28
// otherwise, never Mar 2.
func (d CalendarDate) AddMonths(n int) CalendarDate {
	moved := d.t.AddDate(0, n, 0)
	if moved.Day() < d.t.Day() {
		// AddDate rolled into the month after the intended one; day zero of
		// the following month is the intended month's last day.
		moved = time.Date(d.t.Year(), d.t.Month()+time.Month(n)+1, 0, 12, 0, 0, 0, time.UTC)
	}
	return CalendarDate{t: moved}
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: calendar date must be a JSON string", ErrInvalidArgument)
	}
	parsed, err := ParseCalendarDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
