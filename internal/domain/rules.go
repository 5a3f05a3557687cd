package domain

// Unit is the time unit of a deadline duration.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
)

// IsValid checks if the unit is one of the allowed values.
func (u Unit) IsValid() bool {
	switch u {
	case UnitDays, UnitWeeks, UnitMonths:
		return true
	default:
		return false
	}
}

// Rules configures a single deadline computation. Every flag is a pointer so
// an unset flag is distinguishable from an explicit false; the precedence for
// resolving unset flags lives in the deadline package.
type Rules struct {
	// BusinessDaysOnly switches the days unit to business-day counting and
	// acts as a shorthand that turns on both exclusions below.
	BusinessDaysOnly *bool `json:"business_days_only,omitempty"`

	// ExcludeWeekends removes Saturdays and Sundays from business days.
	ExcludeWeekends *bool `json:"exclude_weekends,omitempty"`

	// ExcludeHolidays removes configured holidays from business days.
	ExcludeHolidays *bool `json:"exclude_holidays,omitempty"`

	// AdjustToNextBusinessDay moves a calendar-addition result forward to
	// the next business day.
	AdjustToNextBusinessDay *bool `json:"adjust_to_next_business_day,omitempty"`

	// StartCountingOnNextBusinessDay moves the counting origin forward to a
	// business day before the main calculation runs.
	StartCountingOnNextBusinessDay *bool `json:"start_counting_on_next_business_day,omitempty"`
}

// Bool is a convenience for building Rules literals.
func Bool(v bool) *bool {
	return &v
}
