/*
equity.go - 83(b) election window and QSBS outlook

PURPOSE:
  The 83(b) election must be postmarked within 30 days of a restricted
  stock or early-exercised option grant. Only elapsed days since grant
  are tracked - the grant date itself is not - so the checklist reasons
  in day counts and never reconstructs a concrete deadline date.

STATUS THRESHOLDS (days since grant):
  <= 24   on-track
  25-30   urgent
  > 30    missed
  Options and RSUs have no 83(b) window at grant: not-applicable.

QSBS:
  "likely" only when entity is a C-Corp, the qualified-business flag is
  set, assets at issuance are within the cap, and the expected holding
  period meets the minimum. Anything other than a C-Corp is "unlikely";
  a C-Corp missing the other gates is "unknown".
*/
package engine

import "github.com/foundry/compliance-engine/limits"

const (
	electionWindowDays  = 30
	onTrackThresholdDay = 24
)

func (c *Calculator) equityChecklist(s Snapshot, lim limits.YearLimits) EquityChecklist {
	g := s.Equity

	if !g.HasGrant() {
		return EquityChecklist{Status: StatusNotApplicable, QSBSStatus: QSBSUnknown}
	}

	qsbs := qsbsOutlook(s.EntityType, g, lim)

	if g.Type != GrantRestrictedStock && g.Type != GrantEarlyExercise {
		return EquityChecklist{Status: StatusNotApplicable, QSBSStatus: qsbs}
	}

	status := StatusOnTrack
	switch {
	case g.DaysSinceGrant > electionWindowDays:
		status = StatusMissed
	case g.DaysSinceGrant > onTrackThresholdDay:
		status = StatusUrgent
	}

	return EquityChecklist{
		Status: status,
		Window: &ElectionWindow{
			DaysSinceGrant: g.DaysSinceGrant,
			DaysRemaining:  electionWindowDays - g.DaysSinceGrant,
		},
		QSBSStatus: qsbs,
	}
}

func qsbsOutlook(entity EntityType, g EquityGrant, lim limits.YearLimits) QSBSStatus {
	if entity != EntityCCorp {
		return QSBSUnlikely
	}
	if g.QualifiedBusiness &&
		g.AssetsAtIssuance.LessThanOrEqual(lim.QSBSAssetCap) &&
		g.ExpectedHoldingYears >= lim.QSBSMinHoldingYears {
		return QSBSLikely
	}
	return QSBSUnknown
}
