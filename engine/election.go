/*
election.go - Form 2553 S-Corp election deadline state machine

PURPOSE:
  An S-Corp election must be filed within 2 months and 15 days of the
  start of the tax year it should take effect for. This file derives the
  deadline, the whole-day countdown, and the checklist status.

DATE SEMANTICS:
  Base date resolution order: tax-year start, entity start, reference
  date. The "+2 months" step clamps the day-of-month to the target
  month's last valid day BEFORE the "+15 days" step, so Dec 31 + 2
  months + 15 days is Mar 15, not a rolled-over date in late March.
  All arithmetic happens on UTC-midnight DateOnly values, so two
  reference instants on the same calendar day always agree.
*/
package engine

import "github.com/foundry/compliance-engine/calendar"

const electionUrgentWindowDays = 7

func (c *Calculator) electionChecklist(s Snapshot, today calendar.DateOnly) ElectionChecklist {
	if s.TaxElection != ElectionSCorp {
		return ElectionChecklist{Status: StatusNotApplicable}
	}

	base := electionBaseDate(s, today)
	deadline := base.AddMonthsClamped(2).AddDays(15)
	daysRemaining := today.DaysUntil(deadline)

	status := StatusOnTrack
	switch {
	case daysRemaining < 0:
		status = StatusMissed
	case daysRemaining <= electionUrgentWindowDays:
		status = StatusUrgent
	}

	return ElectionChecklist{
		Status: status,
		Deadline: &ElectionDeadline{
			BaseDate:      base,
			DeadlineDate:  deadline,
			DaysRemaining: daysRemaining,
		},
	}
}

// electionBaseDate resolves the date the 2553 window runs from. Unparseable
// strings fall through rather than failing; the reference date is the final
// fallback.
func electionBaseDate(s Snapshot, today calendar.DateOnly) calendar.DateOnly {
	if d, err := calendar.ParseDateOnly(s.TaxYearStartDate); err == nil {
		return d
	}
	if d, err := calendar.ParseDateOnly(s.EntityStartDate); err == nil {
		return d
	}
	return today
}
