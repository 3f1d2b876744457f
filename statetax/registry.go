/*
Package statetax provides the state estimated-tax due-date registry.

PURPOSE:
  Maps a two-letter state code to four business-day-rolled quarterly
  estimated-tax due dates for a tax year. The registry is hand-curated
  reference data: each row carries a last-verified date and source
  citations, and the engine performs no live verification.

LOOKUP CONTRACT:
  1. IsNoIncomeTaxState(code) - callers must check this FIRST and skip
     state due-date generation entirely for these states. They never
     appear in the registry.
  2. GetRule(code) - explicit registry row, or nil when none exists.
  3. QuarterlyDueDates(code, year) - registry row when present, otherwise
     the federal day-of-month schedule labeled with the state code.

KNOWN DEVIATIONS:
  Virginia's Q1 voucher is due May 1, not April 15. This is the real
  VA-760ES schedule and must not be "normalized" to the federal dates.

SEE ALSO:
  - calendar/business.go: Business-day rolling applied to every due date
*/
package statetax

import (
	"time"

	"github.com/foundry/compliance-engine/calendar"
)

// =============================================================================
// TYPES
// =============================================================================

// QuarterSpec positions one quarterly due date within a tax year.
// YearOffset is 1 for the Q4 voucher due in January of the following year.
type QuarterSpec struct {
	Month      time.Month
	Day        int
	YearOffset int
}

// Rule is a hand-curated reference row for one jurisdiction.
type Rule struct {
	StateCode    string
	Agency       string
	Quarters     [4]QuarterSpec
	LastVerified string
	Sources      []string
}

// DueDate is a resolved, business-day-rolled quarterly due date.
type DueDate struct {
	StateCode string
	Quarter   int
	Date      calendar.DateOnly
	Source    DueDateSource
}

type DueDateSource string

const (
	SourceRegistry         DueDateSource = "registry"
	SourceFederalFallback  DueDateSource = "federal-fallback"
	SourceFederalSchedule  DueDateSource = "federal"
)

// =============================================================================
// NO-INCOME-TAX EXCLUSION SET
// =============================================================================

var noIncomeTaxStates = map[string]bool{
	"AK": true, "FL": true, "NV": true, "NH": true, "SD": true,
	"TN": true, "TX": true, "WA": true, "WY": true,
}

// IsNoIncomeTaxState reports whether a state levies no individual income tax
// on earned income. Callers must skip state due-date generation entirely for
// these; they are excluded before lookup and never appear in the registry.
func IsNoIncomeTaxState(code string) bool {
	return noIncomeTaxStates[code]
}

// =============================================================================
// FEDERAL SCHEDULE
// =============================================================================

// federalQuarters is the IRS Form 1040-ES schedule: Apr 15, Jun 15, Sep 15,
// and Jan 15 of the following year.
var federalQuarters = [4]QuarterSpec{
	{Month: time.April, Day: 15},
	{Month: time.June, Day: 15},
	{Month: time.September, Day: 15},
	{Month: time.January, Day: 15, YearOffset: 1},
}

// FederalDueDates returns the four federal estimated-tax due dates for a tax
// year, each rolled to the next business day.
func FederalDueDates(taxYear int) []DueDate {
	return resolve("US", federalQuarters, taxYear, SourceFederalSchedule)
}

// =============================================================================
// REGISTRY
// =============================================================================

// registry holds the curated per-state rows. Most conforming states mirror
// the federal schedule; they are listed anyway so the lastVerified/source
// trail exists per jurisdiction. States absent here fall back to the federal
// schedule at lookup time.
var registry = map[string]Rule{
	"CA": {
		StateCode:    "CA",
		Agency:       "California Franchise Tax Board",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"FTB Form 540-ES instructions"},
	},
	"NY": {
		StateCode:    "NY",
		Agency:       "New York State Department of Taxation and Finance",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form IT-2105 instructions"},
	},
	"VA": {
		StateCode: "VA",
		Agency:    "Virginia Department of Taxation",
		// Virginia's first voucher is due May 1, not April 15.
		Quarters: [4]QuarterSpec{
			{Month: time.May, Day: 1},
			{Month: time.June, Day: 15},
			{Month: time.September, Day: 15},
			{Month: time.January, Day: 15, YearOffset: 1},
		},
		LastVerified: "2026-01-12",
		Sources:      []string{"Form 760ES instructions", "Va. Code § 58.1-491"},
	},
	"IL": {
		StateCode:    "IL",
		Agency:       "Illinois Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form IL-1040-ES instructions"},
	},
	"MA": {
		StateCode:    "MA",
		Agency:       "Massachusetts Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form 1-ES instructions"},
	},
	"NJ": {
		StateCode:    "NJ",
		Agency:       "New Jersey Division of Taxation",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form NJ-1040-ES instructions"},
	},
	"PA": {
		StateCode:    "PA",
		Agency:       "Pennsylvania Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form PA-40 ES (I) instructions"},
	},
	"OH": {
		StateCode:    "OH",
		Agency:       "Ohio Department of Taxation",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form IT 1040ES instructions"},
	},
	"GA": {
		StateCode:    "GA",
		Agency:       "Georgia Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form 500-ES instructions"},
	},
	"NC": {
		StateCode:    "NC",
		Agency:       "North Carolina Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form NC-40 instructions"},
	},
	"CO": {
		StateCode:    "CO",
		Agency:       "Colorado Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form DR 0104EP instructions"},
	},
	"MN": {
		StateCode:    "MN",
		Agency:       "Minnesota Department of Revenue",
		Quarters:     federalQuarters,
		LastVerified: "2026-01-12",
		Sources:      []string{"Form M1 estimated tax instructions"},
	},
}

// GetRule returns the explicit registry row for a state, or nil when none
// exists. Absence is not an error; callers fall back to the federal schedule.
func GetRule(code string) *Rule {
	if r, ok := registry[code]; ok {
		return &r
	}
	return nil
}

// QuarterlyDueDates returns the four business-day-rolled due dates for a
// state and tax year. Unknown states use the federal day-of-month schedule
// labeled with the requested state code. Callers are responsible for
// checking IsNoIncomeTaxState first.
func QuarterlyDueDates(code string, taxYear int) []DueDate {
	if rule := GetRule(code); rule != nil {
		return resolve(code, rule.Quarters, taxYear, SourceRegistry)
	}
	return resolve(code, federalQuarters, taxYear, SourceFederalFallback)
}

func resolve(code string, quarters [4]QuarterSpec, taxYear int, source DueDateSource) []DueDate {
	out := make([]DueDate, 0, 4)
	for i, q := range quarters {
		raw := calendar.NewDateOnly(taxYear+q.YearOffset, q.Month, q.Day)
		out = append(out, DueDate{
			StateCode: code,
			Quarter:   i + 1,
			Date:      calendar.NextBusinessDay(raw),
			Source:    source,
		})
	}
	return out
}
