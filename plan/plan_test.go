package plan_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundry/compliance-engine/engine"
	"github.com/foundry/compliance-engine/factory"
	"github.com/foundry/compliance-engine/plan"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func calcResults(t *testing.T, s engine.Snapshot, ref string) engine.Results {
	t.Helper()
	table, err := factory.DefaultLimitsTable()
	require.NoError(t, err)
	at, err := time.Parse(time.RFC3339, ref)
	require.NoError(t, err)
	return engine.NewCalculator(table).Calculate(s, at)
}

func founderSnapshot() engine.Snapshot {
	return engine.Snapshot{
		EntityType:   engine.EntityLLC,
		TaxElection:  engine.ElectionSCorp,
		FundingPlan:  engine.FundingBootstrapped,
		OwnerRole:    engine.RoleOperator,
		OwnerCount:   1,
		FilingStatus: engine.FilingSingle,
		StateCode:    "CA",

		NetIncome:      money("150000"),
		MarketSalary:   money("120000"),
		PlannedSalary:  money("80000"),
		PayrollCadence: engine.CadenceSemiMonthly,

		PriorYearTax:        money("35000"),
		ProjectedCurrentTax: money("42000"),
		Withholding:         money("5000"),
		PaymentsToDate:      money("10000"),
		CurrentQuarter:      2,

		EntityStartDate:  "2026-01-01",
		TaxYearStartDate: "2026-01-01",

		BusinessAccounts:       1,
		PersonalAccounts:       1,
		HasReimbursementPolicy: true,
	}
}

// =============================================================================
// ACTION ITEMS
// =============================================================================

func TestBuild_ItemsNeverExceedCap(t *testing.T) {
	// GIVEN: A snapshot firing every item source at once
	s := founderSnapshot()
	s.BusinessAccounts = 0
	s.PersonalAccounts = 0
	s.MixedTransactionsPerMonth = 20
	s.HasReimbursementPolicy = false
	s.PlannedSalary = money("10000") // below band: warning + salary item
	s.Equity = engine.EquityGrant{Type: engine.GrantRestrictedStock, DaysSinceGrant: 28}

	// Reference date inside the urgent election window (deadline 2026-03-16)
	res := calcResults(t, s, "2026-03-12T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	assert.LessOrEqual(t, len(p.Items), plan.MaxActionItems)
	assert.Len(t, p.Items, plan.MaxActionItems)
}

func TestBuild_PriorityOrderIsFixed(t *testing.T) {
	s := founderSnapshot()
	s.BusinessAccounts = 0
	s.Equity = engine.EquityGrant{Type: engine.GrantRestrictedStock, DaysSinceGrant: 40}

	res := calcResults(t, s, "2026-03-12T12:00:00Z") // election urgent
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	require.NotEmpty(t, p.Items)
	assert.Equal(t, "scorp-election", p.Items[0].Key)
	assert.Equal(t, "quarterly-payment", p.Items[1].Key)
	assert.Equal(t, "cashflow-open-business-account", p.Items[2].Key)
	for i, item := range p.Items {
		assert.Equal(t, i+1, item.Priority)
	}
}

func TestBuild_AtMostTwoCashflowItems(t *testing.T) {
	s := founderSnapshot()
	s.TaxElection = engine.ElectionNone
	s.Withholding = money("50000") // no quarterly item
	s.BusinessAccounts = 0
	s.PersonalAccounts = 0
	s.MixedTransactionsPerMonth = 20
	s.HasReimbursementPolicy = false
	s.PayrollCadence = engine.CadenceMonthly

	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	require.Len(t, res.Cashflow, 5)

	p := plan.Build(s, res, plan.Options{TaxYear: 2026})
	cashflowItems := 0
	for _, item := range p.Items {
		if strings.HasPrefix(item.Key, "cashflow-") {
			cashflowItems++
		}
	}
	assert.Equal(t, 2, cashflowItems)
}

func TestBuild_KeysAreStableAcrossRebuilds(t *testing.T) {
	s := founderSnapshot()
	res := calcResults(t, s, "2026-02-01T12:00:00Z")

	a := plan.Build(s, res, plan.Options{TaxYear: 2026})
	b := plan.Build(s, res, plan.Options{TaxYear: 2026})
	require.Equal(t, len(a.Items), len(b.Items))
	for i := range a.Items {
		assert.Equal(t, a.Items[i].Key, b.Items[i].Key)
	}
}

func TestBuild_ShowSCorpFlag(t *testing.T) {
	s := founderSnapshot() // recommendation and election both s_corp
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	assert.True(t, plan.Build(s, res, plan.Options{TaxYear: 2026}).ShowSCorp)

	s.TaxElection = engine.ElectionNone
	s.NetIncome = money("40000") // recommendation drops the election
	s.FundingPlan = engine.FundingBootstrapped
	res = calcResults(t, s, "2026-02-01T12:00:00Z")
	assert.False(t, plan.Build(s, res, plan.Options{TaxYear: 2026}).ShowSCorp)
}

// =============================================================================
// CALENDAR EVENTS
// =============================================================================

func TestBuild_FederalEventsAlwaysPresent(t *testing.T) {
	s := founderSnapshot()
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	var federal []plan.CalendarEvent
	for _, e := range p.Events {
		if strings.HasPrefix(e.Key, "federal-q") {
			federal = append(federal, e)
		}
	}
	require.Len(t, federal, 4)
	assert.Equal(t, "2026-04-15", federal[0].Date)
	assert.Equal(t, "2027-01-15", federal[3].Date)
}

func TestBuild_NoStateEventsForNoIncomeTaxState(t *testing.T) {
	s := founderSnapshot()
	s.StateCode = "TX"
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	for _, e := range p.Events {
		assert.False(t, strings.HasPrefix(e.Key, "state-"), "unexpected state event %s", e.Key)
	}
}

func TestBuild_StateEventsForIncomeTaxState(t *testing.T) {
	s := founderSnapshot()
	s.StateCode = "VA"
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	var state []plan.CalendarEvent
	for _, e := range p.Events {
		if strings.HasPrefix(e.Key, "state-VA-") {
			state = append(state, e)
		}
	}
	require.Len(t, state, 4)
	assert.Equal(t, "2026-05-01", state[0].Date)
}

func TestBuild_EightyThreeBEventUsesTBDSentinel(t *testing.T) {
	s := founderSnapshot()
	s.Equity = engine.EquityGrant{Type: engine.GrantRestrictedStock, DaysSinceGrant: 10}
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	var reminder *plan.CalendarEvent
	for i := range p.Events {
		if p.Events[i].Key == "83b-reminder" {
			reminder = &p.Events[i]
		}
	}
	require.NotNil(t, reminder)
	assert.Equal(t, plan.DateTBD, reminder.Date)
	assert.False(t, reminder.Concrete(), "TBD events must be skipped by exporters")
}

func TestBuild_ElectionDeadlineEventIsBusinessDayRolled(t *testing.T) {
	s := founderSnapshot() // deadline 2026-03-16, a Monday
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	found := false
	for _, e := range p.Events {
		if e.Key == "scorp-election-deadline" {
			found = true
			assert.Equal(t, "2026-03-16", e.Date)
			assert.True(t, e.Concrete())
		}
	}
	assert.True(t, found)
}

// =============================================================================
// REDACTION
// =============================================================================

func TestRedactAmounts_ScrubsMoneyLikeSubstrings(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Pay $6,666.67 per quarter.", "Pay [redacted] per quarter."},
		{"Target is $35000.", "Target is [redacted]."},
		{"Band is $72,000-$132,000 wide.", "Band is [redacted]-[redacted] wide."},
		{"Plain 1,250.50 amount.", "Plain [redacted] amount."},
		{"Cents only: 42.50 saved.", "Cents only: [redacted] saved."},
		{"File Form 2553 within 75 days.", "File Form 2553 within 75 days."},
		{"No money here.", "No money here."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, plan.RedactAmounts(c.in), "input %q", c.in)
	}
}

func TestBuild_RedactedModeLeavesNoDollarDigit(t *testing.T) {
	// Property: no "$" immediately followed by a digit survives redaction.
	s := founderSnapshot()
	s.PlannedSalary = money("10000") // forces the monetary salary item

	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026, Redact: true})

	dollarDigit := regexp.MustCompile(`\$\d`)
	sawMonetaryItem := false
	for _, item := range p.Items {
		assert.NotRegexp(t, dollarDigit, item.Detail, "item %s leaked an amount", item.Key)
		if strings.Contains(item.Detail, plan.RedactedToken) {
			sawMonetaryItem = true
		}
	}
	require.True(t, sawMonetaryItem, "expected at least one redacted monetary detail")
}

func TestBuild_UnredactedModeKeepsAmounts(t *testing.T) {
	s := founderSnapshot()
	res := calcResults(t, s, "2026-02-01T12:00:00Z")
	p := plan.Build(s, res, plan.Options{TaxYear: 2026})

	found := false
	for _, item := range p.Items {
		if item.Key == "quarterly-payment" {
			found = true
			assert.Contains(t, item.Detail, "$")
			assert.NotContains(t, item.Detail, plan.RedactedToken)
		}
	}
	require.True(t, found, "expected a quarterly-payment item")
}
