package engine_test

import (
	"testing"

	"github.com/foundry/compliance-engine/engine"
)

// =============================================================================
// FORM 2553 ELECTION CHECKLIST
// =============================================================================

func sCorpSnapshot() engine.Snapshot {
	s := baseSnapshot()
	s.TaxElection = engine.ElectionSCorp
	return s
}

func TestElectionChecklist_NoElectionIsNotApplicable(t *testing.T) {
	calc := newTestCalculator(t)
	s := baseSnapshot()
	s.TaxElection = engine.ElectionNone

	res := calc.Calculate(s, asOf("2026-02-01T12:00:00Z"))
	if res.Election.Status != engine.StatusNotApplicable {
		t.Errorf("expected not-applicable, got %s", res.Election.Status)
	}
	if res.Election.Deadline != nil {
		t.Error("inapplicable checklist must not expose deadline fields")
	}
}

func TestElectionChecklist_DeadlineTwoMonthsFifteenDays(t *testing.T) {
	// GIVEN: Tax year starting 2026-01-01
	// THEN: Deadline is 2026-03-16 (Jan 1 + 2 months = Mar 1, + 15 days)
	calc := newTestCalculator(t)
	s := sCorpSnapshot()

	res := calc.Calculate(s, asOf("2026-02-01T12:00:00Z"))
	if res.Election.Deadline == nil {
		t.Fatal("expected a populated deadline")
	}
	if got := res.Election.Deadline.DeadlineDate.String(); got != "2026-03-16" {
		t.Errorf("expected deadline 2026-03-16, got %s", got)
	}
}

func TestElectionChecklist_StableAcrossTimeOfDay(t *testing.T) {
	// GIVEN: Two reference instants on the same calendar day
	calc := newTestCalculator(t)
	s := sCorpSnapshot()

	early := calc.Calculate(s, asOf("2026-02-01T00:00:00Z"))
	late := calc.Calculate(s, asOf("2026-02-01T23:59:59Z"))

	if early.Election.Deadline.DaysRemaining != 43 {
		t.Errorf("expected 43 days remaining, got %d", early.Election.Deadline.DaysRemaining)
	}
	if late.Election.Deadline.DaysRemaining != 43 {
		t.Errorf("expected 43 days remaining at end of day, got %d", late.Election.Deadline.DaysRemaining)
	}
}

func TestElectionChecklist_StatusThresholds(t *testing.T) {
	calc := newTestCalculator(t)
	s := sCorpSnapshot() // deadline 2026-03-16

	cases := []struct {
		ref  string
		want engine.ChecklistStatus
	}{
		{"2026-02-01T12:00:00Z", engine.StatusOnTrack}, // 43 days out
		{"2026-03-08T12:00:00Z", engine.StatusOnTrack}, // 8 days out
		{"2026-03-09T12:00:00Z", engine.StatusUrgent},  // 7 days out
		{"2026-03-16T12:00:00Z", engine.StatusUrgent},  // due today
		{"2026-03-17T12:00:00Z", engine.StatusMissed},  // 1 day past
	}
	for _, c := range cases {
		res := calc.Calculate(s, asOf(c.ref))
		if res.Election.Status != c.want {
			t.Errorf("ref %s: expected %s, got %s (days remaining %d)",
				c.ref, c.want, res.Election.Status, res.Election.Deadline.DaysRemaining)
		}
	}
}

func TestElectionChecklist_DayOfMonthClamp(t *testing.T) {
	// GIVEN: A fiscal year starting Dec 31; +2 months must clamp to Feb 28
	// before the +15 days, yielding Mar 15 rather than a rolled-over date.
	calc := newTestCalculator(t)
	s := sCorpSnapshot()
	s.TaxYearStartDate = "2025-12-31"

	res := calc.Calculate(s, asOf("2026-01-15T12:00:00Z"))
	if got := res.Election.Deadline.DeadlineDate.String(); got != "2026-03-15" {
		t.Errorf("expected clamped deadline 2026-03-15, got %s", got)
	}
}

func TestElectionChecklist_BaseDateFallbackChain(t *testing.T) {
	calc := newTestCalculator(t)

	// Tax-year start malformed: entity start takes over.
	s := sCorpSnapshot()
	s.TaxYearStartDate = "not-a-date"
	s.EntityStartDate = "2026-02-01"
	res := calc.Calculate(s, asOf("2026-02-10T12:00:00Z"))
	if got := res.Election.Deadline.BaseDate.String(); got != "2026-02-01" {
		t.Errorf("expected entity-start base, got %s", got)
	}

	// Both malformed: the reference date is the base.
	s.EntityStartDate = ""
	res = calc.Calculate(s, asOf("2026-02-10T12:00:00Z"))
	if got := res.Election.Deadline.BaseDate.String(); got != "2026-02-10" {
		t.Errorf("expected reference-date base, got %s", got)
	}
	if res.Election.Deadline.DaysRemaining < 0 {
		t.Error("reference-date base must leave the full window ahead")
	}
}
