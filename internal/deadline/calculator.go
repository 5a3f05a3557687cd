package deadline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lawkit/caseclock/internal/config"
	"github.com/lawkit/caseclock/internal/domain"
)

// StartDate is the tagged input variant for a computation's start date:
// either a raw YYYY-MM-DD string or a structured instant whose calendar
// components are used as-is. The zero value is rejected by Compute.
type StartDate struct {
	raw      string
	instant  time.Time
	isString bool
	present  bool
}

// StartString wraps a YYYY-MM-DD string start date.
func StartString(s string) StartDate {
	return StartDate{raw: s, isString: true, present: true}
}

// StartTime wraps a structured start date. Only the year, month and day of
// the instant are used; time-of-day and offset are discarded.
func StartTime(t time.Time) StartDate {
	return StartDate{instant: t, present: true}
}

// Calculator computes legal deadline dates against a fixed holiday calendar.
// The holiday set is frozen at construction, so a single instance is safe for
// concurrent use.
type Calculator struct {
	holidays HolidaySet
}

// New creates a Calculator from a list of YYYY-MM-DD holiday strings.
// Malformed entries are dropped with a warning.
func New(holidays []string) *Calculator {
	return &Calculator{holidays: NewHolidaySet(holidays)}
}

// Holidays returns the number of configured holidays.
func (c *Calculator) Holidays() int {
	return c.holidays.Len()
}

// exclusions is the resolved pair of business-day checks for one phase of a
// computation.
type exclusions struct {
	weekends bool
	holidays bool
}

func enabled(p *bool) bool {
	return p != nil && *p
}

// resolveExclusions applies the counting-phase precedence: an exclusion is
// active when businessDaysOnly is true, when its dedicated flag is true, or
// when both are unset. Each exclusion resolves independently.
func resolveExclusions(r domain.Rules) exclusions {
	return exclusions{
		weekends: enabled(r.BusinessDaysOnly) || enabled(r.ExcludeWeekends) ||
			(r.BusinessDaysOnly == nil && r.ExcludeWeekends == nil),
		holidays: enabled(r.BusinessDaysOnly) || enabled(r.ExcludeHolidays) ||
			(r.BusinessDaysOnly == nil && r.ExcludeHolidays == nil),
	}
}

// resolveAdjustmentExclusions resolves the flags for the end-of-range
// adjustment. Both exclusions default to true and only an explicit false
// disables one; what governed the counting phase does not carry over.
func resolveAdjustmentExclusions(r domain.Rules) exclusions {
	return exclusions{
		weekends: r.ExcludeWeekends == nil || *r.ExcludeWeekends,
		holidays: r.ExcludeHolidays == nil || *r.ExcludeHolidays,
	}
}

// isBusinessDay reports whether the date fails neither active exclusion.
func (c *Calculator) isBusinessDay(d domain.CalendarDate, ex exclusions) bool {
	if ex.weekends && d.IsWeekend() {
		return false
	}
	if ex.holidays && c.holidays.Contains(d) {
		return false
	}
	return true
}

// Compute calculates the deadline for the given start date, duration, unit
// and rules. The result is a calendar date anchored at 12:00 UTC.
func (c *Calculator) Compute(start StartDate, duration int, unit domain.Unit, rules domain.Rules) (domain.CalendarDate, error) {
	origin, err := normalize(start, duration, unit)
	if err != nil {
		return domain.CalendarDate{}, err
	}

	businessCounting := enabled(rules.BusinessDaysOnly) && unit == domain.UnitDays
	if enabled(rules.BusinessDaysOnly) && unit != domain.UnitDays {
		slog.Warn("business-day counting only applies to the days unit, adding calendar units instead",
			"unit", unit,
		)
	}

	ex := resolveExclusions(rules)

	if enabled(rules.StartCountingOnNextBusinessDay) {
		origin, err = c.advanceToBusinessDay(origin, ex, config.StartAdjustmentLimit)
		if err != nil {
			return domain.CalendarDate{}, err
		}
	}

	if businessCounting {
		return c.countBusinessDays(origin, duration, ex)
	}

	result := addCalendarUnits(origin, duration, unit)

	if enabled(rules.AdjustToNextBusinessDay) {
		return c.advanceToBusinessDay(result, resolveAdjustmentExclusions(rules), config.EndAdjustmentLimit)
	}
	return result, nil
}

// normalize validates the inputs and produces the canonical counting origin.
func normalize(start StartDate, duration int, unit domain.Unit) (domain.CalendarDate, error) {
	if !start.present || duration < 0 {
		return domain.CalendarDate{}, fmt.Errorf("%w: start date and non-negative integer duration required", domain.ErrInvalidArgument)
	}
	if !unit.IsValid() {
		return domain.CalendarDate{}, fmt.Errorf("%w: unit must be one of days, weeks or months, got %q", domain.ErrInvalidArgument, unit)
	}
	if start.isString {
		return domain.ParseCalendarDate(start.raw)
	}
	return domain.CalendarDateOf(start.instant), nil
}

// addCalendarUnits performs plain calendar addition for Branch B.
func addCalendarUnits(origin domain.CalendarDate, duration int, unit domain.Unit) domain.CalendarDate {
	switch unit {
	case domain.UnitDays:
		return origin.AddDays(duration)
	case domain.UnitWeeks:
		return origin.AddDays(duration * 7)
	case domain.UnitMonths:
		return origin.AddMonths(duration)
	default:
		// Units are validated during normalization.
		return origin
	}
}

// countBusinessDays advances day by day from the origin, counting only dates
// that pass the business-day predicate, until duration days are counted.
// Duration zero returns the origin unchanged.
func (c *Calculator) countBusinessDays(origin domain.CalendarDate, duration int, ex exclusions) (domain.CalendarDate, error) {
	limit := duration + config.CountingSlack + c.holidays.Len()
	current := origin
	counted := 0
	for steps := 0; counted < duration; steps++ {
		if steps >= limit {
			return domain.CalendarDate{}, fmt.Errorf("%w: counted %d of %d business days within %d steps from %s",
				domain.ErrComputationLimitExceeded, counted, duration, limit, origin)
		}
		current = current.AddDays(1)
		if c.isBusinessDay(current, ex) {
			counted++
		}
	}
	return current, nil
}

// advanceToBusinessDay moves the date forward one day at a time until the
// predicate passes, failing once limit iterations are exhausted.
func (c *Calculator) advanceToBusinessDay(d domain.CalendarDate, ex exclusions, limit int) (domain.CalendarDate, error) {
	for steps := 0; !c.isBusinessDay(d, ex); steps++ {
		if steps >= limit {
			return domain.CalendarDate{}, fmt.Errorf("%w: no business day found within %d days of %s",
				domain.ErrComputationLimitExceeded, limit, d)
		}
		d = d.AddDays(1)
	}
	return d, nil
}
