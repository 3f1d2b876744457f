/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract: monetary
  values travel as JSON numbers on input and fixed two-decimal strings on
  output, and the engine's decimal types never leak into clients.

VALIDATION:
  Input DTOs carry go-playground/validator tags. This is the boundary the
  engine relies on: it assumes well-typed, range-checked snapshots and
  does not re-validate internally.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO / *Response: Types returned to clients

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: The domain model behind them
*/
package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/engine"
)

// =============================================================================
// SNAPSHOT REQUEST
// =============================================================================

// SnapshotRequest is the wire form of an engine Snapshot. All fields are
// explicit; the engine applies no implicit defaults.
type SnapshotRequest struct {
	EntityType   string `json:"entity_type" validate:"required,oneof=sole_prop llc c_corp s_corp partnership"`
	TaxElection  string `json:"tax_election" validate:"required,oneof=none s_corp"`
	FundingPlan  string `json:"funding_plan" validate:"required,oneof=bootstrapped vc"`
	OwnerRole    string `json:"owner_role" validate:"required,oneof=operator passive"`
	OwnerCount   int    `json:"owner_count" validate:"min=1"`
	FilingStatus string `json:"filing_status" validate:"required,oneof=single married"`
	StateCode    string `json:"state_code" validate:"omitempty,len=2"`

	NetIncome           float64 `json:"net_income" validate:"gte=0"`
	MarketSalary        float64 `json:"market_salary" validate:"gte=0"`
	PlannedSalary       float64 `json:"planned_salary" validate:"gte=0"`
	StatePayrollTaxRate float64 `json:"state_payroll_tax_rate" validate:"gte=0,lte=1"`
	PayrollCadence      string  `json:"payroll_cadence" validate:"omitempty,oneof=monthly semi_monthly biweekly"`
	EmployeeCount       int     `json:"employee_count" validate:"gte=0"`

	PriorYearTax        float64 `json:"prior_year_tax" validate:"gte=0"`
	ProjectedCurrentTax float64 `json:"projected_current_tax" validate:"gte=0"`
	Withholding         float64 `json:"withholding" validate:"gte=0"`
	PaymentsToDate      float64 `json:"payments_to_date" validate:"gte=0"`
	CurrentQuarter      int     `json:"current_quarter" validate:"min=1,max=4"`

	EntityStartDate  string `json:"entity_start_date"`
	TaxYearStartDate string `json:"tax_year_start_date"`

	BusinessAccounts          int  `json:"business_accounts" validate:"gte=0"`
	PersonalAccounts          int  `json:"personal_accounts" validate:"gte=0"`
	MixedTransactionsPerMonth int  `json:"mixed_transactions_per_month" validate:"gte=0"`
	HasReimbursementPolicy    bool `json:"has_reimbursement_policy"`

	Equity EquityGrantRequest `json:"equity"`
}

// EquityGrantRequest is the wire form of an equity grant.
type EquityGrantRequest struct {
	GrantType      string `json:"grant_type" validate:"omitempty,oneof=none options rsu restricted_stock early_exercise"`
	DaysSinceGrant int    `json:"days_since_grant" validate:"gte=0"`

	VestingYears       int     `json:"vesting_years" validate:"gte=0"`
	CliffMonths        int     `json:"cliff_months" validate:"gte=0"`
	StrikePrice        float64 `json:"strike_price" validate:"gte=0"`
	FairMarketValue    float64 `json:"fair_market_value" validate:"gte=0"`
	Shares             int64   `json:"shares" validate:"gte=0"`
	ExerciseWindowDays int     `json:"exercise_window_days" validate:"gte=0"`

	QualifiedBusiness    bool    `json:"qualified_business"`
	AssetsAtIssuance     float64 `json:"assets_at_issuance" validate:"gte=0"`
	ExpectedHoldingYears int     `json:"expected_holding_years" validate:"gte=0"`
}

// ToSnapshot converts the wire form to the domain model.
func (r SnapshotRequest) ToSnapshot() engine.Snapshot {
	return engine.Snapshot{
		EntityType:   engine.EntityType(r.EntityType),
		TaxElection:  engine.TaxElection(r.TaxElection),
		FundingPlan:  engine.FundingPlan(r.FundingPlan),
		OwnerRole:    engine.OwnerRole(r.OwnerRole),
		OwnerCount:   r.OwnerCount,
		FilingStatus: engine.FilingStatus(r.FilingStatus),
		StateCode:    r.StateCode,

		NetIncome:           decimal.NewFromFloat(r.NetIncome),
		MarketSalary:        decimal.NewFromFloat(r.MarketSalary),
		PlannedSalary:       decimal.NewFromFloat(r.PlannedSalary),
		StatePayrollTaxRate: decimal.NewFromFloat(r.StatePayrollTaxRate),
		PayrollCadence:      engine.PayrollCadence(r.PayrollCadence),
		EmployeeCount:       r.EmployeeCount,

		PriorYearTax:        decimal.NewFromFloat(r.PriorYearTax),
		ProjectedCurrentTax: decimal.NewFromFloat(r.ProjectedCurrentTax),
		Withholding:         decimal.NewFromFloat(r.Withholding),
		PaymentsToDate:      decimal.NewFromFloat(r.PaymentsToDate),
		CurrentQuarter:      r.CurrentQuarter,

		EntityStartDate:  r.EntityStartDate,
		TaxYearStartDate: r.TaxYearStartDate,

		BusinessAccounts:          r.BusinessAccounts,
		PersonalAccounts:          r.PersonalAccounts,
		MixedTransactionsPerMonth: r.MixedTransactionsPerMonth,
		HasReimbursementPolicy:    r.HasReimbursementPolicy,

		Equity: engine.EquityGrant{
			Type:                 engine.GrantType(r.Equity.GrantType),
			DaysSinceGrant:       r.Equity.DaysSinceGrant,
			VestingYears:         r.Equity.VestingYears,
			CliffMonths:          r.Equity.CliffMonths,
			StrikePrice:          decimal.NewFromFloat(r.Equity.StrikePrice),
			FairMarketValue:      decimal.NewFromFloat(r.Equity.FairMarketValue),
			Shares:               r.Equity.Shares,
			ExerciseWindowDays:   r.Equity.ExerciseWindowDays,
			QualifiedBusiness:    r.Equity.QualifiedBusiness,
			AssetsAtIssuance:     decimal.NewFromFloat(r.Equity.AssetsAtIssuance),
			ExpectedHoldingYears: r.Equity.ExpectedHoldingYears,
		},
	}
}

// =============================================================================
// RESULTS RESPONSE
// =============================================================================

// ResultsDTO is the wire form of engine.Results.
type ResultsDTO struct {
	Entity     EntityRecommendationDTO `json:"entity_recommendation"`
	SCorp      SCorpEstimateDTO        `json:"scorp_estimate"`
	Payroll    PayrollPlanDTO          `json:"payroll_plan"`
	Election   ElectionChecklistDTO    `json:"election_checklist"`
	Quarterly  QuarterlyPlanDTO        `json:"quarterly_plan"`
	Retirement RetirementPlanDTO       `json:"retirement_plan"`
	Cashflow   []CashflowAlertDTO      `json:"cashflow_alerts"`
	Equity     EquityChecklistDTO      `json:"equity_checklist"`

	FormationChecklist []ChecklistItemDTO `json:"formation_checklist"`
	Tips               []string           `json:"tips"`
}

type EntityRecommendationDTO struct {
	Entity   string   `json:"entity"`
	Election string   `json:"election"`
	Reasons  []string `json:"reasons"`
}

type SCorpEstimateDTO struct {
	SalaryBandMin        string   `json:"salary_band_min"`
	SalaryBandMax        string   `json:"salary_band_max"`
	RecommendedSalary    string   `json:"recommended_salary"`
	DistributionEstimate string   `json:"distribution_estimate"`
	SelfEmploymentTax    string   `json:"self_employment_tax"`
	PayrollTax           string   `json:"payroll_tax"`
	AdminCosts           string   `json:"admin_costs"`
	EstimatedSavings     string   `json:"estimated_savings"`
	Warnings             []string `json:"warnings"`
}

type PayrollPlanDTO struct {
	Cadence     string   `json:"cadence"`
	RunsPerYear int      `json:"runs_per_year"`
	PerRunGross string   `json:"per_run_gross"`
	Notes       []string `json:"notes"`
}

type ElectionChecklistDTO struct {
	Status        string  `json:"status"`
	BaseDate      *string `json:"base_date,omitempty"`
	DeadlineDate  *string `json:"deadline_date,omitempty"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
}

type QuarterlyPlanDTO struct {
	PriorYearTarget   string `json:"prior_year_target"`
	CurrentYearTarget string `json:"current_year_target"`
	SafeHarborTarget  string `json:"safe_harbor_target"`
	SafeHarborType    string `json:"safe_harbor_type"`
	PaidToDate        string `json:"paid_to_date"`
	RemainingNeeded   string `json:"remaining_needed"`
	QuartersRemaining int    `json:"quarters_remaining"`
	PerQuarterAmount  string `json:"per_quarter_amount"`
}

type RetirementPlanDTO struct {
	PlanType              string   `json:"plan_type"`
	EmployeeDeferralLimit string   `json:"employee_deferral_limit"`
	EmployerContribution  string   `json:"employer_contribution"`
	CombinedLimit         string   `json:"combined_limit"`
	Reasons               []string `json:"reasons"`
}

type CashflowAlertDTO struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type EquityChecklistDTO struct {
	Status         string `json:"status"`
	DaysSinceGrant *int   `json:"days_since_grant,omitempty"`
	DaysRemaining  *int   `json:"days_remaining,omitempty"`
	QSBSStatus     string `json:"qsbs_status"`
}

type ChecklistItemDTO struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func toResultsDTO(res engine.Results) ResultsDTO {
	dto := ResultsDTO{
		Entity: EntityRecommendationDTO{
			Entity:   string(res.Entity.Entity),
			Election: string(res.Entity.Election),
			Reasons:  res.Entity.Reasons,
		},
		SCorp: SCorpEstimateDTO{
			SalaryBandMin:        res.SCorp.SalaryBandMin.StringFixed(2),
			SalaryBandMax:        res.SCorp.SalaryBandMax.StringFixed(2),
			RecommendedSalary:    res.SCorp.RecommendedSalary.StringFixed(2),
			DistributionEstimate: res.SCorp.DistributionEstimate.StringFixed(2),
			SelfEmploymentTax:    res.SCorp.SelfEmploymentTax.StringFixed(2),
			PayrollTax:           res.SCorp.PayrollTax.StringFixed(2),
			AdminCosts:           res.SCorp.AdminCosts.StringFixed(2),
			EstimatedSavings:     res.SCorp.EstimatedSavings.StringFixed(2),
			Warnings:             res.SCorp.Warnings,
		},
		Payroll: PayrollPlanDTO{
			Cadence:     string(res.Payroll.Cadence),
			RunsPerYear: res.Payroll.RunsPerYear,
			PerRunGross: res.Payroll.PerRunGross.StringFixed(2),
			Notes:       res.Payroll.Notes,
		},
		Election: ElectionChecklistDTO{Status: string(res.Election.Status)},
		Quarterly: QuarterlyPlanDTO{
			PriorYearTarget:   res.Quarterly.PriorYearTarget.StringFixed(2),
			CurrentYearTarget: res.Quarterly.CurrentYearTarget.StringFixed(2),
			SafeHarborTarget:  res.Quarterly.SafeHarborTarget.StringFixed(2),
			SafeHarborType:    string(res.Quarterly.SafeHarborType),
			PaidToDate:        res.Quarterly.PaidToDate.StringFixed(2),
			RemainingNeeded:   res.Quarterly.RemainingNeeded.StringFixed(2),
			QuartersRemaining: res.Quarterly.QuartersRemaining,
			PerQuarterAmount:  res.Quarterly.PerQuarterAmount.StringFixed(2),
		},
		Retirement: RetirementPlanDTO{
			PlanType:              string(res.Retirement.PlanType),
			EmployeeDeferralLimit: res.Retirement.EmployeeDeferralLimit.StringFixed(2),
			EmployerContribution:  res.Retirement.EmployerContribution.StringFixed(2),
			CombinedLimit:         res.Retirement.CombinedLimit.StringFixed(2),
			Reasons:               res.Retirement.Reasons,
		},
		Equity: EquityChecklistDTO{
			Status:     string(res.Equity.Status),
			QSBSStatus: string(res.Equity.QSBSStatus),
		},
		Tips: res.Tips,
	}

	if d := res.Election.Deadline; d != nil {
		base, deadline := d.BaseDate.String(), d.DeadlineDate.String()
		days := d.DaysRemaining
		dto.Election.BaseDate = &base
		dto.Election.DeadlineDate = &deadline
		dto.Election.DaysRemaining = &days
	}
	if w := res.Equity.Window; w != nil {
		since, remaining := w.DaysSinceGrant, w.DaysRemaining
		dto.Equity.DaysSinceGrant = &since
		dto.Equity.DaysRemaining = &remaining
	}
	for _, a := range res.Cashflow {
		dto.Cashflow = append(dto.Cashflow, CashflowAlertDTO{Key: a.Key, Message: a.Message})
	}
	for _, item := range res.FormationChecklist {
		dto.FormationChecklist = append(dto.FormationChecklist, ChecklistItemDTO{
			Key:    item.Key,
			Title:  item.Title,
			Detail: item.Detail,
		})
	}
	return dto
}

// =============================================================================
// OTHER REQUEST/RESPONSE TYPES
// =============================================================================

// CalculateRequest wraps a snapshot with an optional reference instant.
type CalculateRequest struct {
	Snapshot SnapshotRequest `json:"snapshot"`
	AsOf     string          `json:"as_of,omitempty"` // RFC 3339; defaults to now
}

// PlanRequest asks for an action plan. plan.Plan itself is the response.
type PlanRequest struct {
	Snapshot SnapshotRequest `json:"snapshot"`
	AsOf     string          `json:"as_of,omitempty"`
	TaxYear  int             `json:"tax_year,omitempty"` // defaults to the snapshot's tax year
}

// PrefillRequest merges sparse JSON overrides over a base snapshot. Only
// the fields present in Overrides replace the base values.
type PrefillRequest struct {
	Base      SnapshotRequest `json:"base"`
	Overrides json.RawMessage `json:"overrides"`
}

// SaveSnapshotRequest stores a named snapshot.
type SaveSnapshotRequest struct {
	Name     string          `json:"name" validate:"required"`
	Snapshot SnapshotRequest `json:"snapshot"`
}

// SnapshotRecordDTO is a stored snapshot in API responses.
type SnapshotRecordDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Snapshot  SnapshotRequest `json:"snapshot"`
	CreatedAt string          `json:"created_at"`
}

// ChecklistStateRequest flips one stable item key.
type ChecklistStateRequest struct {
	Done bool `json:"done"`
}

// HolidayDTO is one observed federal holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// DueDateDTO is one quarterly estimated-tax due date.
type DueDateDTO struct {
	StateCode string `json:"state_code"`
	Quarter   int    `json:"quarter"`
	Date      string `json:"date"`
	Source    string `json:"source"`
}

// StateDueDatesResponse wraps a state lookup. NoIncomeTax marks states
// for which no due dates exist at all.
type StateDueDatesResponse struct {
	StateCode   string       `json:"state_code"`
	TaxYear     int          `json:"tax_year"`
	NoIncomeTax bool         `json:"no_income_tax"`
	DueDates    []DueDateDTO `json:"due_dates"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
