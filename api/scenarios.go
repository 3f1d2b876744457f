/*
scenarios.go - Canned founder profiles

PURPOSE:
  Ships a handful of realistic starting snapshots so clients can demo the
  engine, and users can start from the profile closest to their situation
  instead of a blank form. Scenarios pair naturally with the prefill
  endpoint: fetch one, override a few fields, calculate.
*/
package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// Scenario is one named canned profile.
type Scenario struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Snapshot    SnapshotRequest `json:"snapshot"`
}

var scenarios = map[string]Scenario{
	"solo-saas-founder": {
		Name:        "solo-saas-founder",
		Description: "Bootstrapped single-member LLC with S-Corp-worthy profit and no payroll yet.",
		Snapshot: SnapshotRequest{
			EntityType:   "llc",
			TaxElection:  "none",
			FundingPlan:  "bootstrapped",
			OwnerRole:    "operator",
			OwnerCount:   1,
			FilingStatus: "single",
			StateCode:    "CA",

			NetIncome:     140000,
			MarketSalary:  130000,
			PlannedSalary: 90000,

			PriorYearTax:        28000,
			ProjectedCurrentTax: 38000,
			Withholding:         0,
			PaymentsToDate:      7000,
			CurrentQuarter:      2,

			EntityStartDate:  "2025-03-10",
			TaxYearStartDate: "2026-01-01",

			BusinessAccounts:          1,
			PersonalAccounts:          1,
			MixedTransactionsPerMonth: 2,
			HasReimbursementPolicy:    false,

			Equity: EquityGrantRequest{GrantType: "none"},
		},
	},
	"funded-startup-founder": {
		Name:        "funded-startup-founder",
		Description: "Venture-backed Delaware C-Corp founder with restricted stock inside the 83(b) window.",
		Snapshot: SnapshotRequest{
			EntityType:   "c_corp",
			TaxElection:  "none",
			FundingPlan:  "vc",
			OwnerRole:    "operator",
			OwnerCount:   2,
			FilingStatus: "single",
			StateCode:    "NY",

			NetIncome:     0,
			MarketSalary:  150000,
			PlannedSalary: 120000,
			EmployeeCount: 6,

			PriorYearTax:        12000,
			ProjectedCurrentTax: 15000,
			Withholding:         14000,
			PaymentsToDate:      0,
			CurrentQuarter:      1,

			EntityStartDate:  "2026-01-15",
			TaxYearStartDate: "2026-01-01",

			BusinessAccounts:       1,
			PersonalAccounts:       1,
			HasReimbursementPolicy: true,

			Equity: EquityGrantRequest{
				GrantType:            "restricted_stock",
				DaysSinceGrant:       12,
				VestingYears:         4,
				CliffMonths:          12,
				Shares:               4000000,
				StrikePrice:          0.0001,
				FairMarketValue:      0.0001,
				QualifiedBusiness:    true,
				AssetsAtIssuance:     2000000,
				ExpectedHoldingYears: 6,
			},
		},
	},
	"agency-owner": {
		Name:        "agency-owner",
		Description: "Married agency owner already on an S-Corp election with a small team.",
		Snapshot: SnapshotRequest{
			EntityType:   "llc",
			TaxElection:  "s_corp",
			FundingPlan:  "bootstrapped",
			OwnerRole:    "operator",
			OwnerCount:   1,
			FilingStatus: "married",
			StateCode:    "TX",

			NetIncome:           220000,
			MarketSalary:        110000,
			PlannedSalary:       110000,
			StatePayrollTaxRate: 0,
			PayrollCadence:      "semi_monthly",
			EmployeeCount:       4,

			PriorYearTax:        52000,
			ProjectedCurrentTax: 58000,
			Withholding:         30000,
			PaymentsToDate:      10000,
			CurrentQuarter:      3,

			EntityStartDate:  "2022-06-01",
			TaxYearStartDate: "2026-01-01",

			BusinessAccounts:       2,
			PersonalAccounts:       2,
			HasReimbursementPolicy: true,

			Equity: EquityGrantRequest{GrantType: "none"},
		},
	},
}

// HandleListScenarios lists available scenarios, sorted by name.
// GET /api/scenarios
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	out := make([]Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	respondJSON(w, http.StatusOK, out)
}

// HandleGetScenario fetches one scenario by name.
// GET /api/scenarios/{name}
func (h *Handler) HandleGetScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := scenarios[chi.URLParam(r, "name")]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown scenario")
		return
	}
	respondJSON(w, http.StatusOK, sc)
}
