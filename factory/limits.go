/*
Package factory provides JSON to Go reference-table conversion.

PURPOSE:
  Converts JSON limit documents into limits.Table rows. This keeps the
  yearly reference data (wage bases, deferral limits, thresholds) editable
  without code changes - a new tax year is a JSON row, reviewed and
  shipped like any other data update.

JSON SCHEMA:
  {
    "limits": [
      {
        "year": 2026,
        "last_verified": "2026-01-12",
        "se_taxable_factor": "0.9235",
        "social_security_rate": "0.124",
        "social_security_wage_base": "184500",
        ...
      }
    ]
  }

  All rates and amounts are JSON strings parsed as decimals; float64
  round-trips are never allowed into tax math.

USAGE:
  table, err := factory.DefaultLimitsTable()
  // or from an external document:
  table, err := factory.ParseLimitsTable(jsonBytes)

SEE ALSO:
  - limits/limits.go: The table type and year resolution
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/limits"
)

// =============================================================================
// JSON SCHEMA
// =============================================================================

type limitsDocument struct {
	Limits []yearLimitsJSON `json:"limits"`
}

type yearLimitsJSON struct {
	Year         int    `json:"year"`
	LastVerified string `json:"last_verified"`

	SETaxableFactor        string `json:"se_taxable_factor"`
	SocialSecurityRate     string `json:"social_security_rate"`
	SocialSecurityWageBase string `json:"social_security_wage_base"`
	MedicareRate           string `json:"medicare_rate"`
	AdditionalMedicareRate string `json:"additional_medicare_rate"`
	AdditionalMedicareThresholdSingle  string `json:"additional_medicare_threshold_single"`
	AdditionalMedicareThresholdMarried string `json:"additional_medicare_threshold_married"`

	SafeHarborPriorYearMultiplier     string `json:"safe_harbor_prior_year_multiplier"`
	SafeHarborPriorYearHighMultiplier string `json:"safe_harbor_prior_year_high_multiplier"`
	SafeHarborCurrentYearMultiplier   string `json:"safe_harbor_current_year_multiplier"`
	HighIncomeThresholdSingle         string `json:"high_income_threshold_single"`
	HighIncomeThresholdMarried        string `json:"high_income_threshold_married"`

	Solo401kEmployeeDeferral    string `json:"solo_401k_employee_deferral"`
	DefinedContributionCombined string `json:"defined_contribution_combined"`
	SimpleIRADeferral           string `json:"simple_ira_deferral"`
	SimpleIRAMatchRate          string `json:"simple_ira_match_rate"`
	SEPCompensationRate         string `json:"sep_compensation_rate"`
	SEPContributionCap          string `json:"sep_contribution_cap"`

	SCorpNetIncomeThreshold string `json:"scorp_net_income_threshold"`
	SCorpAnnualAdminCost    string `json:"scorp_annual_admin_cost"`

	QSBSAssetCap        string `json:"qsbs_asset_cap"`
	QSBSMinHoldingYears int    `json:"qsbs_min_holding_years"`
}

// =============================================================================
// DEFAULT DOCUMENT - Embedded reference rows
// =============================================================================

// defaultLimitsJSON carries the shipped reference rows. Values are curated
// against IRS publications for each year; last_verified records when.
const defaultLimitsJSON = `{
  "limits": [
    {
      "year": 2025,
      "last_verified": "2025-11-03",
      "se_taxable_factor": "0.9235",
      "social_security_rate": "0.124",
      "social_security_wage_base": "176100",
      "medicare_rate": "0.029",
      "additional_medicare_rate": "0.009",
      "additional_medicare_threshold_single": "200000",
      "additional_medicare_threshold_married": "250000",
      "safe_harbor_prior_year_multiplier": "1.00",
      "safe_harbor_prior_year_high_multiplier": "1.10",
      "safe_harbor_current_year_multiplier": "0.90",
      "high_income_threshold_single": "150000",
      "high_income_threshold_married": "150000",
      "solo_401k_employee_deferral": "23500",
      "defined_contribution_combined": "70000",
      "simple_ira_deferral": "16500",
      "simple_ira_match_rate": "0.03",
      "sep_compensation_rate": "0.25",
      "sep_contribution_cap": "70000",
      "scorp_net_income_threshold": "80000",
      "scorp_annual_admin_cost": "2000",
      "qsbs_asset_cap": "50000000",
      "qsbs_min_holding_years": 5
    },
    {
      "year": 2026,
      "last_verified": "2026-01-12",
      "se_taxable_factor": "0.9235",
      "social_security_rate": "0.124",
      "social_security_wage_base": "184500",
      "medicare_rate": "0.029",
      "additional_medicare_rate": "0.009",
      "additional_medicare_threshold_single": "200000",
      "additional_medicare_threshold_married": "250000",
      "safe_harbor_prior_year_multiplier": "1.00",
      "safe_harbor_prior_year_high_multiplier": "1.10",
      "safe_harbor_current_year_multiplier": "0.90",
      "high_income_threshold_single": "150000",
      "high_income_threshold_married": "150000",
      "solo_401k_employee_deferral": "24500",
      "defined_contribution_combined": "72000",
      "simple_ira_deferral": "17000",
      "simple_ira_match_rate": "0.03",
      "sep_compensation_rate": "0.25",
      "sep_contribution_cap": "72000",
      "scorp_net_income_threshold": "80000",
      "scorp_annual_admin_cost": "2000",
      "qsbs_asset_cap": "50000000",
      "qsbs_min_holding_years": 5
    }
  ]
}`

// =============================================================================
// CONVERSION
// =============================================================================

// DefaultLimitsTable builds the table from the embedded reference rows.
func DefaultLimitsTable() (limits.Table, error) {
	return ParseLimitsTable([]byte(defaultLimitsJSON))
}

// ParseLimitsTable converts a JSON limits document into a lookup table.
func ParseLimitsTable(data []byte) (limits.Table, error) {
	var doc limitsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return limits.Table{}, fmt.Errorf("parse limits document: %w", err)
	}
	if len(doc.Limits) == 0 {
		return limits.Table{}, fmt.Errorf("limits document contains no rows")
	}

	rows := make([]limits.YearLimits, 0, len(doc.Limits))
	for _, j := range doc.Limits {
		row, err := j.toRow()
		if err != nil {
			return limits.Table{}, fmt.Errorf("limits row for year %d: %w", j.Year, err)
		}
		rows = append(rows, row)
	}
	return limits.NewTable(rows), nil
}

func (j yearLimitsJSON) toRow() (limits.YearLimits, error) {
	if j.Year == 0 {
		return limits.YearLimits{}, fmt.Errorf("missing year")
	}

	row := limits.YearLimits{
		Year:                j.Year,
		LastVerified:        j.LastVerified,
		QSBSMinHoldingYears: j.QSBSMinHoldingYears,
	}

	fields := []struct {
		dst  *decimal.Decimal
		src  string
		name string
	}{
		{&row.SETaxableFactor, j.SETaxableFactor, "se_taxable_factor"},
		{&row.SocialSecurityRate, j.SocialSecurityRate, "social_security_rate"},
		{&row.SocialSecurityWageBase, j.SocialSecurityWageBase, "social_security_wage_base"},
		{&row.MedicareRate, j.MedicareRate, "medicare_rate"},
		{&row.AdditionalMedicareRate, j.AdditionalMedicareRate, "additional_medicare_rate"},
		{&row.AdditionalMedicareThresholdSingle, j.AdditionalMedicareThresholdSingle, "additional_medicare_threshold_single"},
		{&row.AdditionalMedicareThresholdMarried, j.AdditionalMedicareThresholdMarried, "additional_medicare_threshold_married"},
		{&row.SafeHarborPriorYearMultiplier, j.SafeHarborPriorYearMultiplier, "safe_harbor_prior_year_multiplier"},
		{&row.SafeHarborPriorYearHighMultiplier, j.SafeHarborPriorYearHighMultiplier, "safe_harbor_prior_year_high_multiplier"},
		{&row.SafeHarborCurrentYearMultiplier, j.SafeHarborCurrentYearMultiplier, "safe_harbor_current_year_multiplier"},
		{&row.HighIncomeThresholdSingle, j.HighIncomeThresholdSingle, "high_income_threshold_single"},
		{&row.HighIncomeThresholdMarried, j.HighIncomeThresholdMarried, "high_income_threshold_married"},
		{&row.Solo401kEmployeeDeferral, j.Solo401kEmployeeDeferral, "solo_401k_employee_deferral"},
		{&row.DefinedContributionCombined, j.DefinedContributionCombined, "defined_contribution_combined"},
		{&row.SimpleIRADeferral, j.SimpleIRADeferral, "simple_ira_deferral"},
		{&row.SimpleIRAMatchRate, j.SimpleIRAMatchRate, "simple_ira_match_rate"},
		{&row.SEPCompensationRate, j.SEPCompensationRate, "sep_compensation_rate"},
		{&row.SEPContributionCap, j.SEPContributionCap, "sep_contribution_cap"},
		{&row.SCorpNetIncomeThreshold, j.SCorpNetIncomeThreshold, "scorp_net_income_threshold"},
		{&row.SCorpAnnualAdminCost, j.SCorpAnnualAdminCost, "scorp_annual_admin_cost"},
		{&row.QSBSAssetCap, j.QSBSAssetCap, "qsbs_asset_cap"},
	}
	for _, f := range fields {
		if f.src == "" {
			return limits.YearLimits{}, fmt.Errorf("missing field %s", f.name)
		}
		d, err := decimal.NewFromString(f.src)
		if err != nil {
			return limits.YearLimits{}, fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = d
	}
	return row, nil
}
