/*
Package plan builds the prioritized action plan from engine results.

PURPOSE:
  Turns a Results bundle into (a) at most five prioritized action items
  with stable keys, and (b) an ordered list of calendar events suitable
  for export. Items carry human-readable details that may embed currency;
  an optional redaction mode scrubs dollar amounts for external sharing.

PRIORITY ORDER (fixed):
  1. S-Corp election urgent or missed
  2. Remaining safe-harbor balance above zero
  3. Up to two cashflow alerts
  4. Salary sanity check when the S-Corp estimate carries warnings
  5. 83(b) election urgent or missed

EVENT ORDER (fixed):
  Federal quarterly due dates, state quarterly due dates (skipped
  entirely for no-income-tax states), the S-Corp election deadline when
  applicable, then the 83(b) reminder. The 83(b) event uses the literal
  "TBD" date: the grant date is not tracked, only elapsed days, so no
  concrete date can be reconstructed. Exporters skip non-concrete dates.

SEE ALSO:
  - redact.go: The currency scrubber
  - engine/results.go: The inputs
*/
package plan

import (
	"fmt"

	"github.com/foundry/compliance-engine/calendar"
	"github.com/foundry/compliance-engine/engine"
	"github.com/foundry/compliance-engine/statetax"
)

// MaxActionItems bounds the plan; lower-priority items are dropped.
const MaxActionItems = 5

// DateTBD is the sentinel for events with no reconstructible date.
const DateTBD = "TBD"

// =============================================================================
// TYPES
// =============================================================================

// ActionItem is one prioritized step. Key is stable across recomputation so
// callers can persist completion state against it.
type ActionItem struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority int    `json:"priority"`
}

// CalendarEvent is one exportable deadline. Date is either a canonical
// "2006-01-02" string or the literal DateTBD sentinel.
type CalendarEvent struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Concrete reports whether the event carries an exportable date.
func (e CalendarEvent) Concrete() bool {
	_, err := calendar.ParseDateOnly(e.Date)
	return err == nil
}

// Plan is the builder output.
type Plan struct {
	ShowSCorp bool            `json:"show_scorp"`
	Items     []ActionItem    `json:"action_items"`
	Events    []CalendarEvent `json:"action_events"`
}

// Options control plan construction.
type Options struct {
	// TaxYear anchors the quarterly due dates.
	TaxYear int
	// Redact scrubs embedded dollar amounts from monetary item details.
	Redact bool
}

// =============================================================================
// BUILDER
// =============================================================================

// Build assembles the action plan for a snapshot and its results.
func Build(s engine.Snapshot, res engine.Results, opts Options) Plan {
	p := Plan{
		ShowSCorp: res.Entity.Election == engine.ElectionSCorp || s.TaxElection == engine.ElectionSCorp,
		Items:     buildItems(s, res, opts),
		Events:    buildEvents(s, res, opts),
	}
	return p
}

func buildItems(s engine.Snapshot, res engine.Results, opts Options) []ActionItem {
	var items []ActionItem
	add := func(key, title, detail string, monetary bool) {
		if monetary && opts.Redact {
			detail = RedactAmounts(detail)
		}
		items = append(items, ActionItem{
			Key:      key,
			Title:    title,
			Detail:   detail,
			Priority: len(items) + 1,
		})
	}

	// 1. S-Corp election deadline trouble
	if res.Election.Status.NeedsAttention() && res.Election.Deadline != nil {
		detail := fmt.Sprintf("File Form 2553 by %s; %d days remain.",
			res.Election.Deadline.DeadlineDate, res.Election.Deadline.DaysRemaining)
		if res.Election.Status == engine.StatusMissed {
			detail = fmt.Sprintf("The Form 2553 window closed on %s; ask your CPA about late-election relief under Rev. Proc. 2013-30.",
				res.Election.Deadline.DeadlineDate)
		}
		add("scorp-election", "File your S-Corp election", detail, false)
	}

	// 2. Unpaid safe-harbor balance
	if res.Quarterly.RemainingNeeded.IsPositive() {
		add("quarterly-payment", "Catch up estimated taxes",
			fmt.Sprintf("Pay $%s per quarter over the next %d quarter(s) to reach your $%s safe-harbor target.",
				res.Quarterly.PerQuarterAmount.StringFixed(2),
				res.Quarterly.QuartersRemaining,
				res.Quarterly.SafeHarborTarget.StringFixed(2)),
			true)
	}

	// 3. Up to two cashflow alerts
	for i, alert := range res.Cashflow {
		if i == 2 {
			break
		}
		add("cashflow-"+alert.Key, "Tighten banking hygiene", alert.Message, false)
	}

	// 4. Salary sanity check
	if len(res.SCorp.Warnings) > 0 {
		add("salary-review", "Review your salary setting",
			fmt.Sprintf("Recommended salary is $%s against a $%s-$%s reasonable-compensation band. %s",
				res.SCorp.RecommendedSalary.StringFixed(2),
				res.SCorp.SalaryBandMin.StringFixed(2),
				res.SCorp.SalaryBandMax.StringFixed(2),
				res.SCorp.Warnings[0]),
			true)
	}

	// 5. 83(b) window trouble
	if res.Equity.Status.NeedsAttention() && res.Equity.Window != nil {
		detail := fmt.Sprintf("Only %d day(s) remain in the 30-day 83(b) window.", res.Equity.Window.DaysRemaining)
		if res.Equity.Status == engine.StatusMissed {
			detail = "The 30-day 83(b) window has passed; talk to counsel before the next grant or vesting event."
		}
		add("83b-election", "Handle your 83(b) election", detail, false)
	}

	if len(items) > MaxActionItems {
		items = items[:MaxActionItems]
	}
	return items
}

func buildEvents(s engine.Snapshot, res engine.Results, opts Options) []CalendarEvent {
	var events []CalendarEvent

	for _, d := range statetax.FederalDueDates(opts.TaxYear) {
		events = append(events, CalendarEvent{
			Key:   fmt.Sprintf("federal-q%d", d.Quarter),
			Title: fmt.Sprintf("Federal estimated tax payment (Q%d)", d.Quarter),
			Date:  d.Date.String(),
		})
	}

	// No-income-tax states produce no state events at all.
	if s.StateCode != "" && !statetax.IsNoIncomeTaxState(s.StateCode) {
		for _, d := range statetax.QuarterlyDueDates(s.StateCode, opts.TaxYear) {
			events = append(events, CalendarEvent{
				Key:   fmt.Sprintf("state-%s-q%d", d.StateCode, d.Quarter),
				Title: fmt.Sprintf("%s estimated tax payment (Q%d)", d.StateCode, d.Quarter),
				Date:  d.Date.String(),
			})
		}
	}

	if res.Election.Status != engine.StatusNotApplicable && res.Election.Deadline != nil {
		events = append(events, CalendarEvent{
			Key:   "scorp-election-deadline",
			Title: "S-Corp election deadline (Form 2553)",
			Date:  calendar.NextBusinessDay(res.Election.Deadline.DeadlineDate).String(),
		})
	}

	if res.Equity.Status != engine.StatusNotApplicable {
		// The grant date is not tracked, so the reminder stays undated.
		events = append(events, CalendarEvent{
			Key:   "83b-reminder",
			Title: "83(b) election: confirm filing within 30 days of grant",
			Date:  DateTBD,
		})
	}

	return events
}
