/*
Package engine provides the founder compliance calculation engine.

PURPOSE:
  Pure, deterministic derivation of a founder's compliance picture from a
  single input snapshot: entity/election recommendation, S-Corp savings
  estimate, payroll plan, Form 2553 election checklist, quarterly
  safe-harbor plan, retirement plan recommendation, cashflow hygiene
  alerts, and the 83(b)/QSBS equity checklist.

KEY CONCEPTS IN THIS FILE (types.go):
  - Snapshot: The immutable input bundle, owned by the caller
  - Enumerations: entity types, elections, roles, cadences, grant types

DESIGN PRINCIPLES:
  1. Purity: every result is a function of (Snapshot, reference date)
  2. Precision: decimal.Decimal for all money, never float64 arithmetic
  3. Totality: malformed date strings fall back, they do not panic
  4. No hidden state: reference tables are injected at construction

USAGE:
  table, _ := factory.DefaultLimitsTable()
  calc := engine.NewCalculator(table)
  results := calc.Calculate(snapshot, time.Now())

SEE ALSO:
  - results.go: The output bundle
  - engine.go: Calculator wiring
  - plan/: Prioritized action items and calendar events built from Results
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ENUMERATIONS
// =============================================================================

type EntityType string

const (
	EntitySoleProp    EntityType = "sole_prop"
	EntityLLC         EntityType = "llc"
	EntityCCorp       EntityType = "c_corp"
	EntitySCorp       EntityType = "s_corp"
	EntityPartnership EntityType = "partnership"
)

type TaxElection string

const (
	ElectionNone  TaxElection = "none"
	ElectionSCorp TaxElection = "s_corp"
)

type FundingPlan string

const (
	FundingBootstrapped FundingPlan = "bootstrapped"
	FundingVC           FundingPlan = "vc"
)

type OwnerRole string

const (
	RoleOperator OwnerRole = "operator"
	RolePassive  OwnerRole = "passive"
)

type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

type PayrollCadence string

const (
	CadenceMonthly     PayrollCadence = "monthly"
	CadenceSemiMonthly PayrollCadence = "semi_monthly"
	CadenceBiweekly    PayrollCadence = "biweekly"
)

type GrantType string

const (
	GrantNone            GrantType = "none"
	GrantOptions         GrantType = "options"
	GrantRSU             GrantType = "rsu"
	GrantRestrictedStock GrantType = "restricted_stock"
	GrantEarlyExercise   GrantType = "early_exercise"
)

// =============================================================================
// SNAPSHOT - Immutable caller-owned input
// =============================================================================

// Snapshot captures one founder's situation at a point in time. The engine
// never mutates it and assumes well-typed input: monetary fields are
// nonnegative, CurrentQuarter is 1-4, dates are date-only strings. Range
// validation beyond that is the caller's responsibility (see api/dto.go).
type Snapshot struct {
	EntityType  EntityType
	TaxElection TaxElection
	FundingPlan FundingPlan
	OwnerRole   OwnerRole
	OwnerCount  int

	FilingStatus FilingStatus
	StateCode    string

	// Income and payroll
	NetIncome           decimal.Decimal
	MarketSalary        decimal.Decimal
	PlannedSalary       decimal.Decimal
	StatePayrollTaxRate decimal.Decimal
	PayrollCadence      PayrollCadence
	EmployeeCount       int

	// Estimated taxes
	PriorYearTax        decimal.Decimal
	ProjectedCurrentTax decimal.Decimal
	Withholding         decimal.Decimal
	PaymentsToDate      decimal.Decimal
	CurrentQuarter      int

	// Calendar anchors, date-only strings ("2006-01-02"), never timestamps.
	EntityStartDate  string
	TaxYearStartDate string

	// Banking hygiene
	BusinessAccounts          int
	PersonalAccounts          int
	MixedTransactionsPerMonth int
	HasReimbursementPolicy    bool

	Equity EquityGrant
}

// EquityGrant describes the founder's stock grant, if any. The exact grant
// date is not tracked, only the elapsed days; downstream consumers therefore
// cannot reconstruct a concrete 83(b) deadline date.
type EquityGrant struct {
	Type           GrantType
	DaysSinceGrant int

	VestingYears int
	CliffMonths  int

	StrikePrice        decimal.Decimal
	FairMarketValue    decimal.Decimal
	Shares             int64
	ExerciseWindowDays int

	// QSBS inputs
	QualifiedBusiness    bool
	AssetsAtIssuance     decimal.Decimal
	ExpectedHoldingYears int
}

// HasGrant reports whether any equity grant exists.
func (g EquityGrant) HasGrant() bool { return g.Type != GrantNone && g.Type != "" }
