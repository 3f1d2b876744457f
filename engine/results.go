/*
results.go - The output bundle of the calculation engine

PURPOSE:
  Defines every sub-result Calculate produces. Each sub-result is an
  independent pure function of (Snapshot, reference date); the bundle is
  recomputed on every call with no caching.

CHECKLIST STATE MACHINES:
  ElectionChecklist and EquityChecklist carry a four-state status driven
  by days-remaining thresholds. The populated branch (deadline fields) is
  a separate struct behind a pointer so inapplicable checklists never
  expose half-meaningful fields.
*/
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/calendar"
)

// Results is the full bundle Calculate returns.
type Results struct {
	Entity     EntityRecommendation
	SCorp      SCorpSavingsEstimate
	Payroll    PayrollPlan
	Election   ElectionChecklist
	Quarterly  QuarterlyTaxPlan
	Retirement RetirementPlanRecommendation
	Cashflow   []CashflowAlert
	Equity     EquityChecklist

	FormationChecklist []ChecklistItem
	Tips               []string
}

// =============================================================================
// CHECKLIST STATUS
// =============================================================================

type ChecklistStatus string

const (
	StatusOnTrack       ChecklistStatus = "on-track"
	StatusUrgent        ChecklistStatus = "urgent"
	StatusMissed        ChecklistStatus = "missed"
	StatusNotApplicable ChecklistStatus = "not-applicable"
)

// NeedsAttention reports whether a status warrants an action item.
func (s ChecklistStatus) NeedsAttention() bool {
	return s == StatusUrgent || s == StatusMissed
}

// =============================================================================
// SUB-RESULTS
// =============================================================================

// EntityRecommendation is the ordered-rule entity/election outcome.
type EntityRecommendation struct {
	Entity   EntityType
	Election TaxElection
	Reasons  []string
}

// SCorpSavingsEstimate compares self-employment tax against S-Corp payroll
// tax at a reasonable-compensation salary.
type SCorpSavingsEstimate struct {
	SalaryBandMin        decimal.Decimal
	SalaryBandMax        decimal.Decimal
	RecommendedSalary    decimal.Decimal
	DistributionEstimate decimal.Decimal

	SelfEmploymentTax decimal.Decimal
	PayrollTax        decimal.Decimal
	AdminCosts        decimal.Decimal
	EstimatedSavings  decimal.Decimal

	Warnings []string
}

// PayrollPlan translates the recommended salary into a payroll schedule.
type PayrollPlan struct {
	Cadence     PayrollCadence
	RunsPerYear int
	PerRunGross decimal.Decimal
	Notes       []string
}

// ElectionChecklist is the Form 2553 deadline state machine.
// Deadline is nil exactly when Status is not-applicable.
type ElectionChecklist struct {
	Status   ChecklistStatus
	Deadline *ElectionDeadline
}

type ElectionDeadline struct {
	BaseDate      calendar.DateOnly
	DeadlineDate  calendar.DateOnly
	DaysRemaining int
}

// QuarterlyTaxPlan is the estimated-tax safe-harbor plan.
type QuarterlyTaxPlan struct {
	PriorYearTarget   decimal.Decimal
	CurrentYearTarget decimal.Decimal
	SafeHarborTarget  decimal.Decimal
	SafeHarborType    SafeHarborType

	PaidToDate       decimal.Decimal
	RemainingNeeded  decimal.Decimal
	QuartersRemaining int
	PerQuarterAmount decimal.Decimal
}

type SafeHarborType string

const (
	SafeHarborPriorYear   SafeHarborType = "prior-year"
	SafeHarborCurrentYear SafeHarborType = "current-year"
)

// RetirementPlanRecommendation picks a plan by headcount and reports the
// applicable contribution limits from the injected yearly table.
type RetirementPlanRecommendation struct {
	PlanType              RetirementPlanType
	EmployeeDeferralLimit decimal.Decimal
	EmployerContribution  decimal.Decimal
	CombinedLimit         decimal.Decimal
	Reasons               []string
}

type RetirementPlanType string

const (
	PlanSolo401k  RetirementPlanType = "solo_401k"
	PlanSimpleIRA RetirementPlanType = "simple_ira"
	PlanSEPIRA    RetirementPlanType = "sep_ira"
)

// CashflowAlert is one banking-hygiene finding. Keys are stable so callers
// can track dismissal/completion state externally.
type CashflowAlert struct {
	Key     string
	Message string
}

// EquityChecklist is the 83(b) deadline state machine plus QSBS outlook.
// Window is nil exactly when Status is not-applicable.
type EquityChecklist struct {
	Status     ChecklistStatus
	Window     *ElectionWindow
	QSBSStatus QSBSStatus
}

// ElectionWindow positions the grant inside the 30-day 83(b) filing window.
// Only elapsed days are known; no concrete deadline date exists.
type ElectionWindow struct {
	DaysSinceGrant int
	DaysRemaining  int
}

type QSBSStatus string

const (
	QSBSLikely   QSBSStatus = "likely"
	QSBSUnlikely QSBSStatus = "unlikely"
	QSBSUnknown  QSBSStatus = "unknown"
)

// ChecklistItem is a static formation-checklist entry.
type ChecklistItem struct {
	Key    string
	Title  string
	Detail string
}
