/*
engine.go - Calculator wiring

PURPOSE:
  Composes the independent sub-calculations into one Results bundle.
  The Calculator owns only read-only reference data (the yearly limits
  table); every call is a pure mapping of (Snapshot, reference instant)
  to output, safe to run concurrently and trivial to memoize.
*/
package engine

import (
	"time"

	"github.com/foundry/compliance-engine/calendar"
	"github.com/foundry/compliance-engine/limits"
)

// Calculator derives compliance results from snapshots.
type Calculator struct {
	limits limits.Table
}

// NewCalculator builds a calculator around an injected limits table.
func NewCalculator(table limits.Table) *Calculator {
	return &Calculator{limits: table}
}

// Calculate derives the full results bundle for a snapshot as of a reference
// instant. Two instants on the same UTC calendar day yield identical output:
// the instant is normalized to a DateOnly before any deadline math.
func (c *Calculator) Calculate(s Snapshot, asOf time.Time) Results {
	today := calendar.FromTime(asOf)
	lim := c.limits.ForYear(c.TaxYear(s, asOf))

	scorp := c.sCorpEstimate(s, lim)
	return Results{
		Entity:             c.entityRecommendation(s, lim),
		SCorp:              scorp,
		Payroll:            c.payrollPlan(s, scorp),
		Election:           c.electionChecklist(s, today),
		Quarterly:          c.quarterlyPlan(s, lim),
		Retirement:         c.retirementPlan(s, lim),
		Cashflow:           c.cashflowAlerts(s),
		Equity:             c.equityChecklist(s, lim),
		FormationChecklist: FormationChecklist(),
		Tips:               FounderTips(),
	}
}

// TaxYear resolves the tax year a snapshot belongs to: the year of the
// tax-year start date when it parses, otherwise the reference year.
func (c *Calculator) TaxYear(s Snapshot, asOf time.Time) int {
	today := calendar.FromTime(asOf)
	start := calendar.ParseDateOnlyOr(s.TaxYearStartDate, today)
	return start.Year()
}

// LimitsForYear exposes the resolved reference row, mainly for the API layer.
func (c *Calculator) LimitsForYear(year int) limits.YearLimits {
	return c.limits.ForYear(year)
}
