package statetax_test

import (
	"testing"

	"github.com/foundry/compliance-engine/calendar"
	"github.com/foundry/compliance-engine/statetax"
)

func TestNoIncomeTaxStates(t *testing.T) {
	for _, code := range []string{"AK", "FL", "NV", "NH", "SD", "TN", "TX", "WA", "WY"} {
		if !statetax.IsNoIncomeTaxState(code) {
			t.Errorf("expected %s to be a no-income-tax state", code)
		}
	}
	for _, code := range []string{"CA", "NY", "VA", "ZZ"} {
		if statetax.IsNoIncomeTaxState(code) {
			t.Errorf("did not expect %s to be a no-income-tax state", code)
		}
	}
}

func TestNoIncomeTaxStates_NeverInRegistry(t *testing.T) {
	for _, code := range []string{"AK", "FL", "NV", "NH", "SD", "TN", "TX", "WA", "WY"} {
		if statetax.GetRule(code) != nil {
			t.Errorf("no-income-tax state %s must not have a registry row", code)
		}
	}
}

func TestGetRule_AbsentReturnsNil(t *testing.T) {
	if statetax.GetRule("MT") != nil {
		t.Error("expected nil rule for uncurated state")
	}
}

func TestFederalDueDates_2026(t *testing.T) {
	dates := statetax.FederalDueDates(2026)
	if len(dates) != 4 {
		t.Fatalf("expected 4 federal due dates, got %d", len(dates))
	}
	// All four 2026 federal dates land on weekdays clear of holidays.
	want := []string{"2026-04-15", "2026-06-15", "2026-09-15", "2027-01-15"}
	for i, d := range dates {
		if d.Date.String() != want[i] {
			t.Errorf("Q%d: expected %s, got %s", i+1, want[i], d.Date)
		}
		if d.Quarter != i+1 {
			t.Errorf("expected quarter %d, got %d", i+1, d.Quarter)
		}
	}
}

func TestQuarterlyDueDates_California(t *testing.T) {
	dates := statetax.QuarterlyDueDates("CA", 2026)
	if len(dates) != 4 {
		t.Fatalf("expected exactly 4 CA due dates, got %d", len(dates))
	}
	for _, d := range dates {
		if d.Source != statetax.SourceRegistry {
			t.Errorf("CA Q%d: expected registry source, got %s", d.Quarter, d.Source)
		}
		if d.Date.IsWeekend() {
			t.Errorf("CA Q%d due date %s falls on a weekend", d.Quarter, d.Date)
		}
		if calendar.FederalHolidays(d.Date.Year()).Contains(d.Date) {
			t.Errorf("CA Q%d due date %s falls on a holiday", d.Quarter, d.Date)
		}
	}
}

func TestQuarterlyDueDates_VirginiaQ1Deviation(t *testing.T) {
	// GIVEN: Virginia's non-standard first voucher date
	// THEN: Q1 2026 is May 1 exactly (a Friday, so no business-day shift)
	dates := statetax.QuarterlyDueDates("VA", 2026)
	if got := dates[0].Date.String(); got != "2026-05-01" {
		t.Errorf("expected VA Q1 2026 on 2026-05-01, got %s", got)
	}
}

func TestQuarterlyDueDates_UnknownStateFallsBackToFederal(t *testing.T) {
	dates := statetax.QuarterlyDueDates("MT", 2026)
	if len(dates) != 4 {
		t.Fatalf("expected 4 fallback due dates, got %d", len(dates))
	}
	for i, d := range dates {
		if d.Source != statetax.SourceFederalFallback {
			t.Errorf("expected federal-fallback source, got %s", d.Source)
		}
		if d.StateCode != "MT" {
			t.Errorf("fallback dates must be labeled with the state code, got %s", d.StateCode)
		}
		if want := statetax.FederalDueDates(2026)[i].Date; !d.Date.Equal(want) {
			t.Errorf("Q%d: expected %s, got %s", i+1, want, d.Date)
		}
	}
}

func TestQuarterlyDueDates_RollsWeekendDates(t *testing.T) {
	// Jun 15 2025 is a Sunday; the Q2 voucher rolls to Monday Jun 16.
	dates := statetax.QuarterlyDueDates("CA", 2025)
	if got := dates[1].Date.String(); got != "2025-06-16" {
		t.Errorf("expected 2025-06-16, got %s", got)
	}
}
