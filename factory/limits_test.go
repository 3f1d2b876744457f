package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundry/compliance-engine/factory"
)

func TestDefaultLimitsTable_CoversShippedYears(t *testing.T) {
	table, err := factory.DefaultLimitsTable()
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2026}, table.Years())

	lim := table.ForYear(2026)
	assert.Equal(t, 2026, lim.Year)
	assert.True(t, lim.SocialSecurityWageBase.Equal(decimal.RequireFromString("184500")))
	assert.True(t, lim.SETaxableFactor.Equal(decimal.RequireFromString("0.9235")))
	assert.Equal(t, 5, lim.QSBSMinHoldingYears)
	assert.NotEmpty(t, lim.LastVerified)
}

func TestTable_ForYearResolvesNearestCoveredYear(t *testing.T) {
	table, err := factory.DefaultLimitsTable()
	require.NoError(t, err)

	// Future years resolve to the latest covered row.
	assert.Equal(t, 2026, table.ForYear(2030).Year)
	// Years before all coverage resolve to the earliest row.
	assert.Equal(t, 2025, table.ForYear(2020).Year)
}

func TestParseLimitsTable_RejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", `{{`},
		{"empty rows", `{"limits": []}`},
		{"missing year", `{"limits": [{"last_verified": "2026-01-01"}]}`},
		{"missing field", `{"limits": [{"year": 2027, "se_taxable_factor": "0.9235"}]}`},
		{"bad decimal", `{"limits": [{"year": 2027, "se_taxable_factor": "abc"}]}`},
	}
	for _, c := range cases {
		_, err := factory.ParseLimitsTable([]byte(c.doc))
		assert.Error(t, err, c.name)
	}
}

func TestParseLimitsTable_AcceptsExternalDocument(t *testing.T) {
	doc := `{"limits": [{
		"year": 2027,
		"last_verified": "2027-01-05",
		"se_taxable_factor": "0.9235",
		"social_security_rate": "0.124",
		"social_security_wage_base": "190000",
		"medicare_rate": "0.029",
		"additional_medicare_rate": "0.009",
		"additional_medicare_threshold_single": "200000",
		"additional_medicare_threshold_married": "250000",
		"safe_harbor_prior_year_multiplier": "1.00",
		"safe_harbor_prior_year_high_multiplier": "1.10",
		"safe_harbor_current_year_multiplier": "0.90",
		"high_income_threshold_single": "150000",
		"high_income_threshold_married": "150000",
		"solo_401k_employee_deferral": "25000",
		"defined_contribution_combined": "74000",
		"simple_ira_deferral": "17500",
		"simple_ira_match_rate": "0.03",
		"sep_compensation_rate": "0.25",
		"sep_contribution_cap": "74000",
		"scorp_net_income_threshold": "80000",
		"scorp_annual_admin_cost": "2000",
		"qsbs_asset_cap": "50000000",
		"qsbs_min_holding_years": 5
	}]}`

	table, err := factory.ParseLimitsTable([]byte(doc))
	require.NoError(t, err)
	assert.True(t, table.ForYear(2027).SocialSecurityWageBase.Equal(decimal.RequireFromString("190000")))
}
