package deadline_test

import (
	"testing"
	"time"

	"github.com/lawkit/caseclock/internal/deadline"
	"github.com/lawkit/caseclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-07 is a Friday; 2024-06-08/09 are the following weekend and
// 2024-06-10 the following Monday. Most tests below lean on that week.

func mustCompute(t *testing.T, calc *deadline.Calculator, start string, duration int, unit domain.Unit, rules domain.Rules) string {
	t.Helper()
	result, err := calc.Compute(deadline.StartString(start), duration, unit, rules)
	require.NoError(t, err)
	return result.String()
}

func TestCompute_PlainCalendarAddition(t *testing.T) {
	calc := deadline.New(nil)

	tests := []struct {
		name     string
		start    string
		duration int
		unit     domain.Unit
		want     string
	}{
		{"single day", "2024-06-07", 1, domain.UnitDays, "2024-06-08"},
		{"ten days", "2024-06-07", 10, domain.UnitDays, "2024-06-17"},
		{"across year end", "2024-12-30", 5, domain.UnitDays, "2025-01-04"},
		{"two weeks", "2024-06-07", 2, domain.UnitWeeks, "2024-06-21"},
		{"one month", "2024-06-07", 1, domain.UnitMonths, "2024-07-07"},
		{"leap clamp", "2024-01-31", 1, domain.UnitMonths, "2024-02-29"},
		{"non-leap clamp", "2023-01-31", 1, domain.UnitMonths, "2023-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCompute(t, calc, tt.start, tt.duration, tt.unit, domain.Rules{})
			assert.Equal(t, tt.want, got)
		})
	}
}

// Calendar addition itself never skips weekends; Friday plus one day is
// Saturday unless counting or adjustment is requested.
func TestCompute_CalendarAdditionLandsOnWeekend(t *testing.T) {
	calc := deadline.New(nil)
	assert.Equal(t, "2024-06-08", mustCompute(t, calc, "2024-06-07", 1, domain.UnitDays, domain.Rules{}))
}

func TestCompute_ZeroDuration(t *testing.T) {
	calc := deadline.New([]string{"2024-06-07"})

	for _, unit := range []domain.Unit{domain.UnitDays, domain.UnitWeeks, domain.UnitMonths} {
		assert.Equal(t, "2024-06-07", mustCompute(t, calc, "2024-06-07", 0, unit, domain.Rules{}))
	}

	// Branch A with zero duration performs no advancement either, even when
	// the origin itself is not a business day.
	got := mustCompute(t, calc, "2024-06-07", 0, domain.UnitDays, domain.Rules{
		BusinessDaysOnly: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-07", got)
}

func TestCompute_BusinessDayCounting(t *testing.T) {
	calc := deadline.New([]string{"2024-06-10"})

	// Friday start: skip Sat 6/8 and Sun 6/9, skip the Monday holiday, then
	// count Tue, Wed, Thu.
	got := mustCompute(t, calc, "2024-06-07", 3, domain.UnitDays, domain.Rules{
		BusinessDaysOnly: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-13", got)
}

func TestCompute_BusinessCountingNeverLandsOnExcludedDay(t *testing.T) {
	holidays := []string{"2024-06-10", "2024-06-14", "2024-06-19"}
	calc := deadline.New(holidays)
	set := deadline.NewHolidaySet(holidays)

	for duration := 1; duration <= 15; duration++ {
		result, err := calc.Compute(deadline.StartString("2024-06-07"), duration, domain.UnitDays, domain.Rules{
			BusinessDaysOnly: domain.Bool(true),
		})
		require.NoError(t, err)
		assert.False(t, result.IsWeekend(), "duration %d landed on weekend %s", duration, result)
		assert.False(t, set.Contains(result), "duration %d landed on holiday %s", duration, result)
	}
}

func TestCompute_AdjustToNextBusinessDay(t *testing.T) {
	calc := deadline.New(nil)

	// Friday plus one calendar day is Saturday; adjustment advances to Monday.
	got := mustCompute(t, calc, "2024-06-07", 1, domain.UnitDays, domain.Rules{
		AdjustToNextBusinessDay: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-10", got)
}

func TestCompute_AdjustSkipsHolidayMonday(t *testing.T) {
	calc := deadline.New([]string{"2024-06-10"})

	got := mustCompute(t, calc, "2024-06-07", 1, domain.UnitDays, domain.Rules{
		AdjustToNextBusinessDay: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-11", got)
}

// Counting already lands on a business day, so a redundant adjustment flag
// changes nothing.
func TestCompute_AdjustIsNoOpForBusinessCounting(t *testing.T) {
	calc := deadline.New([]string{"2024-06-10"})
	rules := domain.Rules{BusinessDaysOnly: domain.Bool(true)}
	withAdjust := domain.Rules{
		BusinessDaysOnly:        domain.Bool(true),
		AdjustToNextBusinessDay: domain.Bool(true),
	}

	plain := mustCompute(t, calc, "2024-06-07", 3, domain.UnitDays, rules)
	adjusted := mustCompute(t, calc, "2024-06-07", 3, domain.UnitDays, withAdjust)
	assert.Equal(t, plain, adjusted)
}

func TestCompute_StartCountingOnNextBusinessDay(t *testing.T) {
	calc := deadline.New(nil)

	// Without the flag, counting from Saturday finds Monday as the first
	// business day.
	got := mustCompute(t, calc, "2024-06-08", 1, domain.UnitDays, domain.Rules{
		BusinessDaysOnly: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-10", got)

	// With the flag, the origin moves to Monday first and counting starts
	// from there.
	got = mustCompute(t, calc, "2024-06-08", 1, domain.UnitDays, domain.Rules{
		BusinessDaysOnly:               domain.Bool(true),
		StartCountingOnNextBusinessDay: domain.Bool(true),
	})
	assert.Equal(t, "2024-06-11", got)
}

// businessDaysOnly with a non-days unit is accepted with a warning and falls
// through to calendar addition.
func TestCompute_BusinessDaysOnlyWithMonths(t *testing.T) {
	calc := deadline.New(nil)

	got := mustCompute(t, calc, "2024-01-31", 1, domain.UnitMonths, domain.Rules{
		BusinessDaysOnly: domain.Bool(true),
	})
	assert.Equal(t, "2024-02-29", got)

	// End adjustment still applies on request: 2024-06-30 is a Sunday.
	got = mustCompute(t, calc, "2024-05-31", 1, domain.UnitMonths, domain.Rules{
		BusinessDaysOnly:        domain.Bool(true),
		AdjustToNextBusinessDay: domain.Bool(true),
	})
	assert.Equal(t, "2024-07-01", got)
}

func TestCompute_FlagPrecedence(t *testing.T) {
	calc := deadline.New([]string{"2024-06-10"})

	t.Run("explicit false disables weekend exclusion for adjustment", func(t *testing.T) {
		// Saturday stays put when weekends are explicitly allowed.
		got := mustCompute(t, calc, "2024-06-07", 1, domain.UnitDays, domain.Rules{
			ExcludeWeekends:         domain.Bool(false),
			AdjustToNextBusinessDay: domain.Bool(true),
		})
		assert.Equal(t, "2024-06-08", got)
	})

	t.Run("explicit false disables holiday exclusion for adjustment", func(t *testing.T) {
		// Sunday start plus one day is the holiday Monday; with holidays
		// allowed the adjustment stops there.
		got := mustCompute(t, calc, "2024-06-09", 1, domain.UnitDays, domain.Rules{
			ExcludeHolidays:         domain.Bool(false),
			AdjustToNextBusinessDay: domain.Bool(true),
		})
		assert.Equal(t, "2024-06-10", got)
	})

	t.Run("all counting flags unset defaults both exclusions on", func(t *testing.T) {
		// Pre-adjustment from Saturday crosses the weekend and the holiday.
		got := mustCompute(t, calc, "2024-06-08", 0, domain.UnitDays, domain.Rules{
			StartCountingOnNextBusinessDay: domain.Bool(true),
		})
		assert.Equal(t, "2024-06-11", got)
	})

	t.Run("explicit businessDaysOnly false turns counting exclusions off", func(t *testing.T) {
		// With businessDaysOnly set (to false) and no dedicated flags, the
		// counting-phase default no longer applies and Saturday is eligible.
		got := mustCompute(t, calc, "2024-06-08", 0, domain.UnitDays, domain.Rules{
			BusinessDaysOnly:               domain.Bool(false),
			StartCountingOnNextBusinessDay: domain.Bool(true),
		})
		assert.Equal(t, "2024-06-08", got)
	})

	t.Run("dedicated flag true mirrors businessDaysOnly", func(t *testing.T) {
		got := mustCompute(t, calc, "2024-06-08", 0, domain.UnitDays, domain.Rules{
			BusinessDaysOnly:               domain.Bool(false),
			ExcludeWeekends:                domain.Bool(true),
			StartCountingOnNextBusinessDay: domain.Bool(true),
		})
		// Weekend excluded, holiday not: the Monday holiday is eligible.
		assert.Equal(t, "2024-06-10", got)
	})
}

func TestCompute_StartTimeInput(t *testing.T) {
	calc := deadline.New(nil)

	// Late evening in a far-east zone: only the calendar components count.
	zone := time.FixedZone("far-east", 13*60*60)
	start := time.Date(2024, 6, 7, 23, 30, 0, 0, zone)

	result, err := calc.Compute(deadline.StartTime(start), 1, domain.UnitDays, domain.Rules{})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-08", result.String())
	assert.Equal(t, 12, result.Time().Hour())
}

func TestCompute_InvalidInputs(t *testing.T) {
	calc := deadline.New(nil)

	tests := []struct {
		name     string
		start    deadline.StartDate
		duration int
		unit     domain.Unit
	}{
		{"negative duration", deadline.StartString("2024-06-07"), -1, domain.UnitDays},
		{"unknown unit", deadline.StartString("2024-06-07"), 1, "years"},
		{"empty unit", deadline.StartString("2024-06-07"), 1, ""},
		{"malformed date", deadline.StartString("2024/06/07"), 1, domain.UnitDays},
		{"impossible date", deadline.StartString("2024-02-31"), 1, domain.UnitDays},
		{"missing start", deadline.StartDate{}, 1, domain.UnitDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Compute(tt.start, tt.duration, tt.unit, domain.Rules{})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

// consecutiveDates returns n consecutive YYYY-MM-DD strings starting the day
// after start.
func consecutiveDates(start domain.CalendarDate, n int) []string {
	dates := make([]string, 0, n)
	d := start
	for i := 0; i < n; i++ {
		d = d.AddDays(1)
		dates = append(dates, d.String())
	}
	return dates
}

// weekdayDates returns the first n weekday dates strictly after start.
func weekdayDates(start domain.CalendarDate, n int) []string {
	dates := make([]string, 0, n)
	d := start
	for len(dates) < n {
		d = d.AddDays(1)
		if !d.IsWeekend() {
			dates = append(dates, d.String())
		}
	}
	return dates
}

func TestCompute_AdjustmentLimitExceeded(t *testing.T) {
	start := domain.NewCalendarDate(2024, time.June, 7)
	calc := deadline.New(consecutiveDates(start, 40))

	_, err := calc.Compute(deadline.StartString("2024-06-07"), 1, domain.UnitDays, domain.Rules{
		AdjustToNextBusinessDay: domain.Bool(true),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrComputationLimitExceeded)
}

func TestCompute_CountingLimitExceeded(t *testing.T) {
	// 300 holidays cover every weekday in a window far wider than the
	// counting ceiling of duration + 100 + holiday count.
	start := domain.NewCalendarDate(2024, time.January, 1)
	calc := deadline.New(weekdayDates(start, 300))

	_, err := calc.Compute(deadline.StartString("2024-01-01"), 1, domain.UnitDays, domain.Rules{
		BusinessDaysOnly: domain.Bool(true),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrComputationLimitExceeded)
}

func TestCompute_StartAdjustmentLimitExceeded(t *testing.T) {
	// Every weekday for well over 1000 calendar days is a holiday, so the
	// pre-adjustment loop can never find an eligible origin.
	start := domain.NewCalendarDate(2024, time.January, 1)
	calc := deadline.New(weekdayDates(start, 750))

	_, err := calc.Compute(deadline.StartString("2024-01-01"), 0, domain.UnitDays, domain.Rules{
		StartCountingOnNextBusinessDay: domain.Bool(true),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrComputationLimitExceeded)
}

func TestNewHolidaySet_DropsMalformedEntries(t *testing.T) {
	set := deadline.NewHolidaySet([]string{
		"2024-06-10",
		"garbage",
		"2024-13-40",
		"2024/06/11",
		"2024-06-12",
	})

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(domain.NewCalendarDate(2024, time.June, 10)))
	assert.True(t, set.Contains(domain.NewCalendarDate(2024, time.June, 12)))
	assert.False(t, set.Contains(domain.NewCalendarDate(2024, time.June, 11)))
}
