package calendar_test

import (
	"testing"
	"time"

	"github.com/foundry/compliance-engine/calendar"
)

func date(year int, month time.Month, day int) calendar.DateOnly {
	return calendar.NewDateOnly(year, month, day)
}

// =============================================================================
// DATE-ONLY PARSING AND ARITHMETIC
// =============================================================================

func TestParseDateOnly_RoundTrip(t *testing.T) {
	d, err := calendar.ParseDateOnly("2026-03-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.String(); got != "2026-03-16" {
		t.Errorf("expected 2026-03-16, got %s", got)
	}
}

func TestParseDateOnly_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2026-13-01", "03/16/2026", "2026-03-16T00:00:00Z", "not-a-date"} {
		if _, err := calendar.ParseDateOnly(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestParseDateOnlyOr_FallsBack(t *testing.T) {
	fallback := date(2026, time.February, 1)
	if got := calendar.ParseDateOnlyOr("garbage", fallback); !got.Equal(fallback) {
		t.Errorf("expected fallback %s, got %s", fallback, got)
	}
	if got := calendar.ParseDateOnlyOr("2026-01-01", fallback); got.String() != "2026-01-01" {
		t.Errorf("expected parsed date, got %s", got)
	}
}

func TestFromTime_SameDayInstantsCollapse(t *testing.T) {
	// GIVEN: Two instants on the same UTC calendar day
	early := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, time.February, 1, 23, 59, 59, 0, time.UTC)

	// THEN: Both normalize to the same DateOnly
	if !calendar.FromTime(early).Equal(calendar.FromTime(late)) {
		t.Error("instants on the same day must normalize identically")
	}
}

func TestAddMonthsClamped_PreventsRollover(t *testing.T) {
	cases := []struct {
		start  string
		months int
		want   string
	}{
		{"2026-01-31", 2, "2026-03-31"}, // target month has 31 days, no clamp
		{"2025-12-31", 2, "2026-02-28"}, // clamped to end of February
		{"2024-12-31", 2, "2025-02-28"},
		{"2023-12-31", 2, "2024-02-29"}, // leap year
		{"2026-01-01", 2, "2026-03-01"},
	}
	for _, c := range cases {
		start, err := calendar.ParseDateOnly(c.start)
		if err != nil {
			t.Fatalf("bad test date %s: %v", c.start, err)
		}
		if got := start.AddMonthsClamped(c.months).String(); got != c.want {
			t.Errorf("%s + %d months: expected %s, got %s", c.start, c.months, c.want, got)
		}
	}
}

func TestDaysUntil_WholeDays(t *testing.T) {
	from := date(2026, time.February, 1)
	to := date(2026, time.March, 16)
	if got := from.DaysUntil(to); got != 43 {
		t.Errorf("expected 43 days, got %d", got)
	}
	if got := to.DaysUntil(from); got != -43 {
		t.Errorf("expected -43 days, got %d", got)
	}
}

// =============================================================================
// FEDERAL HOLIDAYS
// =============================================================================

func TestFederalHolidays_2026(t *testing.T) {
	set := calendar.FederalHolidays(2026)

	expected := []string{
		"2026-01-01", // New Year's Day (Thursday)
		"2026-01-19", // MLK Day, 3rd Monday of January
		"2026-02-16", // Presidents Day, 3rd Monday of February
		"2026-05-25", // Memorial Day, last Monday of May
		"2026-06-19", // Juneteenth (Friday)
		"2026-07-03", // Independence Day observed (Jul 4 is a Saturday)
		"2026-09-07", // Labor Day, 1st Monday of September
		"2026-10-12", // Columbus Day, 2nd Monday of October
		"2026-11-11", // Veterans Day (Wednesday)
		"2026-11-26", // Thanksgiving, 4th Thursday of November
		"2026-12-25", // Christmas (Friday)
	}
	for _, s := range expected {
		d, _ := calendar.ParseDateOnly(s)
		if !set.Contains(d) {
			t.Errorf("expected %s in 2026 holiday set", s)
		}
	}
	if len(set) != 11 {
		t.Errorf("expected 11 observed holidays in 2026, got %d", len(set))
	}
}

func TestFederalHolidays_SundayObservedMonday(t *testing.T) {
	// Jul 4 2027 is a Sunday; observed Monday Jul 5
	set := calendar.FederalHolidays(2027)
	observed, _ := calendar.ParseDateOnly("2027-07-05")
	if !set.Contains(observed) {
		t.Error("expected Independence Day 2027 observed on 2027-07-05")
	}
}

func TestFederalHolidays_NewYearObservedInPriorYear(t *testing.T) {
	// Jan 1 2022 is a Saturday; observed Friday Dec 31 2021,
	// carried in the 2022 set.
	set := calendar.FederalHolidays(2022)
	observed, _ := calendar.ParseDateOnly("2021-12-31")
	if !set.Contains(observed) {
		t.Error("expected New Year's Day 2022 observed on 2021-12-31")
	}
}

// =============================================================================
// BUSINESS-DAY ROLLING
// =============================================================================

func TestNextBusinessDay_PassesThroughBusinessDay(t *testing.T) {
	d := date(2026, time.May, 1) // Friday, not a holiday
	if got := calendar.NextBusinessDay(d); !got.Equal(d) {
		t.Errorf("expected %s unchanged, got %s", d, got)
	}
}

func TestNextBusinessDay_RollsWeekend(t *testing.T) {
	sat := date(2026, time.April, 18)
	if got := calendar.NextBusinessDay(sat).String(); got != "2026-04-20" {
		t.Errorf("expected 2026-04-20, got %s", got)
	}
}

func TestNextBusinessDay_RollsHoliday(t *testing.T) {
	// Labor Day 2026 (Monday Sep 7) rolls to Tuesday
	if got := calendar.NextBusinessDay(date(2026, time.September, 7)).String(); got != "2026-09-08" {
		t.Errorf("expected 2026-09-08, got %s", got)
	}
}

func TestNextBusinessDay_DecemberJanuaryRollover(t *testing.T) {
	// GIVEN: Friday 2021-12-31, the observed New Year's Day 2022 holiday
	// WHEN: Rolling to the next business day
	// THEN: Skips the holiday and the weekend to Monday 2022-01-03
	if got := calendar.NextBusinessDay(date(2021, time.December, 31)).String(); got != "2022-01-03" {
		t.Errorf("expected 2022-01-03, got %s", got)
	}
}

func TestNextBusinessDay_Idempotent(t *testing.T) {
	starts := []calendar.DateOnly{
		date(2026, time.April, 15),
		date(2026, time.April, 18),
		date(2021, time.December, 31),
		date(2026, time.December, 25),
		date(2027, time.January, 1),
	}
	for _, s := range starts {
		once := calendar.NextBusinessDay(s)
		twice := calendar.NextBusinessDay(once)
		if !once.Equal(twice) {
			t.Errorf("NextBusinessDay not idempotent at %s: %s then %s", s, once, twice)
		}
	}
}
