package calendar

// NextBusinessDay returns the first business day on or after d.
//
// The holiday membership check consults the set for the candidate's year AND
// the following year: New Year's observance can fall on Dec 31, which only
// appears when the next year's set is built. The walk is deliberately
// iterative rather than closed-form so it stays correct when composed with
// other shifts (a rolled date can itself land on another holiday).
func NextBusinessDay(d DateOnly) DateOnly {
	for isWeekendOrHoliday(d) {
		d = d.AddDays(1)
	}
	return d
}

func isWeekendOrHoliday(d DateOnly) bool {
	if d.IsWeekend() {
		return true
	}
	if FederalHolidays(d.Year()).Contains(d) {
		return true
	}
	return FederalHolidays(d.Year() + 1).Contains(d)
}
