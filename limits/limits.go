/*
Package limits holds the versioned yearly tax-limit reference table.

PURPOSE:
  Every numeric limit the calculation engine uses (wage bases, deferral
  limits, safe-harbor thresholds) lives here as injected configuration,
  not as literals scattered through algorithmic code. Updating for a new
  tax year means adding one table row, never touching formulas.

KEY CONCEPTS:
  - YearLimits: One year's complete limit set, with a lastVerified date
  - Table: Read-only lookup, resolving the nearest available year

LIFECYCLE:
  Built once at process start (see factory package for the JSON loader)
  and treated as read-only for the process lifetime.

SEE ALSO:
  - factory/limits.go: JSON document -> Table conversion
  - engine/: The only consumer of these values
*/
package limits

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// YEAR LIMITS - One tax year's reference values
// =============================================================================

type YearLimits struct {
	Year         int
	LastVerified string

	// Self-employment / payroll tax
	SETaxableFactor        decimal.Decimal // portion of net income subject to SE tax
	SocialSecurityRate     decimal.Decimal
	SocialSecurityWageBase decimal.Decimal
	MedicareRate           decimal.Decimal
	AdditionalMedicareRate decimal.Decimal
	AdditionalMedicareThresholdSingle  decimal.Decimal
	AdditionalMedicareThresholdMarried decimal.Decimal

	// Estimated-tax safe harbor
	SafeHarborPriorYearMultiplier     decimal.Decimal // standard prior-year test
	SafeHarborPriorYearHighMultiplier decimal.Decimal // high-income prior-year test
	SafeHarborCurrentYearMultiplier   decimal.Decimal
	HighIncomeThresholdSingle         decimal.Decimal
	HighIncomeThresholdMarried        decimal.Decimal

	// Retirement plans
	Solo401kEmployeeDeferral    decimal.Decimal
	DefinedContributionCombined decimal.Decimal // section 415(c) combined cap
	SimpleIRADeferral           decimal.Decimal
	SimpleIRAMatchRate          decimal.Decimal
	SEPCompensationRate         decimal.Decimal
	SEPContributionCap          decimal.Decimal

	// Entity / election heuristics
	SCorpNetIncomeThreshold decimal.Decimal
	SCorpAnnualAdminCost    decimal.Decimal

	// QSBS
	QSBSAssetCap         decimal.Decimal
	QSBSMinHoldingYears  int
}

// =============================================================================
// TABLE - Read-only year lookup
// =============================================================================

type Table struct {
	years map[int]YearLimits
}

// NewTable builds a lookup table from year rows.
func NewTable(rows []YearLimits) Table {
	m := make(map[int]YearLimits, len(rows))
	for _, r := range rows {
		m[r.Year] = r
	}
	return Table{years: m}
}

// Years returns the covered years in ascending order.
func (t Table) Years() []int {
	out := make([]int, 0, len(t.years))
	for y := range t.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// ForYear resolves the limits for a tax year. When the exact year is not
// covered, the latest covered year at or before it applies; a request
// earlier than all coverage gets the earliest row. The table is reference
// data, so a best-effort answer beats a hard failure.
func (t Table) ForYear(year int) YearLimits {
	if l, ok := t.years[year]; ok {
		return l
	}
	years := t.Years()
	if len(years) == 0 {
		return YearLimits{Year: year}
	}
	best := years[0]
	for _, y := range years {
		if y <= year {
			best = y
		}
	}
	return t.years[best]
}
