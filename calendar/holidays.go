/*
holidays.go - US federal holiday computation

PURPOSE:
  Computes the observed federal holiday set for a given year. Estimated-tax
  and election deadlines roll forward past weekends and federal holidays,
  so the set here feeds business-day rolling in business.go.

HOLIDAY RULES:
  Fixed-date (observed shifted when falling on a weekend):
    New Year's Day       Jan 1
    Juneteenth           Jun 19
    Independence Day     Jul 4
    Veterans Day         Nov 11
    Christmas Day        Dec 25
  Saturday observance shifts to the preceding Friday; Sunday observance
  shifts to the following Monday.

  Floating:
    MLK Day              3rd Monday of January
    Presidents Day       3rd Monday of February
    Memorial Day         last Monday of May
    Labor Day            1st Monday of September
    Columbus Day         2nd Monday of October
    Thanksgiving         4th Thursday of November

NOTE:
  New Year's observance can land in the PREVIOUS calendar year (Jan 1 on a
  Saturday is observed Friday Dec 31). Callers rolling dates near year end
  must consult the following year's set too; see NextBusinessDay.
*/
package calendar

import "time"

// Holiday is an observed federal holiday.
type Holiday struct {
	Date DateOnly
	Name string
}

// HolidaySet supports membership checks by canonical date string.
type HolidaySet map[string]Holiday

func (hs HolidaySet) Contains(d DateOnly) bool {
	_, ok := hs[d.String()]
	return ok
}

// FederalHolidays returns the observed federal holiday set for a year.
// Observed dates that shift into an adjacent calendar year are included
// under the year whose holiday they observe.
func FederalHolidays(year int) HolidaySet {
	set := HolidaySet{}
	add := func(d DateOnly, name string) { set[d.String()] = Holiday{Date: d, Name: name} }

	fixed := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "New Year's Day"},
		{time.June, 19, "Juneteenth"},
		{time.July, 4, "Independence Day"},
		{time.November, 11, "Veterans Day"},
		{time.December, 25, "Christmas Day"},
	}
	for _, f := range fixed {
		add(observedFixed(NewDateOnly(year, f.month, f.day)), f.name)
	}

	add(nthWeekday(year, time.January, time.Monday, 3), "Martin Luther King Jr. Day")
	add(nthWeekday(year, time.February, time.Monday, 3), "Presidents Day")
	add(lastWeekday(year, time.May, time.Monday), "Memorial Day")
	add(nthWeekday(year, time.September, time.Monday, 1), "Labor Day")
	add(nthWeekday(year, time.October, time.Monday, 2), "Columbus Day")
	add(nthWeekday(year, time.November, time.Thursday, 4), "Thanksgiving Day")

	return set
}

// observedFixed shifts a fixed-date holiday off the weekend:
// Saturday observes Friday, Sunday observes Monday.
func observedFixed(d DateOnly) DateOnly {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	default:
		return d
	}
}

// nthWeekday returns the nth occurrence of a weekday in a month (n >= 1).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) DateOnly {
	d := NewDateOnly(year, month, 1)
	offset := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDays(offset + (n-1)*7)
}

// lastWeekday returns the final occurrence of a weekday in a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) DateOnly {
	d := NewDateOnly(year, month, DaysInMonth(year, month))
	offset := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDays(-offset)
}
