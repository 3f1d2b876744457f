/*
Package calendar provides deterministic date-only arithmetic.

PURPOSE:
  Tax deadlines are calendar dates, not instants. Mixing local time and
  UTC silently shifts a deadline by a day near midnight, so this package
  funnels every date through a single canonical representation: a DateOnly
  pinned to UTC midnight, formatted as "2006-01-02".

KEY CONCEPTS IN THIS FILE (calendar.go):
  - DateOnly: A calendar date with no time-of-day or timezone component
  - Parse/Format: The single choke point between strings and dates
  - Day arithmetic: AddDays, AddMonthsClamped, DaysUntil

DESIGN PRINCIPLES:
  1. One representation: every DateOnly is UTC midnight, always
  2. Whole-day comparison: two instants on the same calendar day are equal
  3. Total parsing: ParseDateOnly fails only on malformed strings

SEE ALSO:
  - holidays.go: US federal holiday computation
  - business.go: Business-day rolling against the holiday calendar
*/
package calendar

import (
	"fmt"
	"time"
)

// Layout is the canonical date-only string format.
const Layout = "2006-01-02"

// =============================================================================
// DATE ONLY - Calendar date pinned to UTC midnight
// =============================================================================

type DateOnly struct {
	t time.Time
}

// NewDateOnly builds a DateOnly from components.
func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates an instant to its UTC calendar day.
func FromTime(t time.Time) DateOnly {
	u := t.UTC()
	return NewDateOnly(u.Year(), u.Month(), u.Day())
}

// ParseDateOnly parses a canonical "YYYY-MM-DD" string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("malformed date-only string %q: %w", s, err)
	}
	return FromTime(t), nil
}

// ParseDateOnlyOr parses s, substituting fallback on malformed input.
// Callers that need strict parsing use ParseDateOnly directly.
func ParseDateOnlyOr(s string, fallback DateOnly) DateOnly {
	d, err := ParseDateOnly(s)
	if err != nil {
		return fallback
	}
	return d
}

// String formats the canonical "YYYY-MM-DD" form.
func (d DateOnly) String() string { return d.t.Format(Layout) }

// Time exposes the underlying UTC-midnight instant.
func (d DateOnly) Time() time.Time { return d.t }

// Properties
func (d DateOnly) Year() int             { return d.t.Year() }
func (d DateOnly) Month() time.Month     { return d.t.Month() }
func (d DateOnly) Day() int              { return d.t.Day() }
func (d DateOnly) Weekday() time.Weekday { return d.t.Weekday() }
func (d DateOnly) IsZero() bool          { return d.t.IsZero() }

func (d DateOnly) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Comparison
func (d DateOnly) Before(other DateOnly) bool { return d.t.Before(other.t) }
func (d DateOnly) After(other DateOnly) bool  { return d.t.After(other.t) }
func (d DateOnly) Equal(other DateOnly) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d DateOnly) AddDays(n int) DateOnly {
	return DateOnly{t: d.t.AddDate(0, 0, n)}
}

// AddMonthsClamped advances n months, clamping the day-of-month to the last
// valid day of the target month instead of letting it roll over (Dec 31 plus
// two months is Feb 28/29, never Mar 3).
func (d DateOnly) AddMonthsClamped(n int) DateOnly {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.Day()
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return NewDateOnly(first.Year(), first.Month(), day)
}

// DaysUntil returns the whole-day distance from d to other.
// Both ends are UTC midnight, so the division is exact.
func (d DateOnly) DaysUntil(other DateOnly) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// DaysInMonth returns the number of days in a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).Day()
}

// MarshalJSON / UnmarshalJSON keep the wire form canonical.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date-only value must be a JSON string, got %s", s)
	}
	parsed, err := ParseDateOnly(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
