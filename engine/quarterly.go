/*
quarterly.go - Estimated-tax safe-harbor plan

PURPOSE:
  Computes the cheaper of the two independent safe-harbor targets and
  spreads the unpaid remainder across the quarters left in the year.

TARGETS:
  prior-year:   priorYearTax * 1.10 when current net income clears the
                high-income threshold for the filing status, else * 1.00
  current-year: projectedCurrentTax * 0.90

  Either test satisfies the safe harbor, so the engine picks the LOWER
  target and labels which one won. The high-income gate reads CURRENT
  net income, not prior-year AGI; that is the shipped behavior and is
  kept as-is.

SPREAD:
  quartersRemaining = 4 - currentQuarter + 1 (current quarter inclusive)
  perQuarter        = remainingNeeded / quartersRemaining
*/
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/limits"
)

func (c *Calculator) quarterlyPlan(s Snapshot, lim limits.YearLimits) QuarterlyTaxPlan {
	threshold := lim.HighIncomeThresholdSingle
	if s.FilingStatus == FilingMarried {
		threshold = lim.HighIncomeThresholdMarried
	}

	priorMultiplier := lim.SafeHarborPriorYearMultiplier
	if s.NetIncome.GreaterThanOrEqual(threshold) {
		priorMultiplier = lim.SafeHarborPriorYearHighMultiplier
	}

	priorTarget := s.PriorYearTax.Mul(priorMultiplier)
	currentTarget := s.ProjectedCurrentTax.Mul(lim.SafeHarborCurrentYearMultiplier)

	target := priorTarget
	harborType := SafeHarborPriorYear
	if currentTarget.LessThan(priorTarget) {
		target = currentTarget
		harborType = SafeHarborCurrentYear
	}

	paid := s.Withholding.Add(s.PaymentsToDate)
	remaining := decimal.Max(decimal.Zero, target.Sub(paid))

	quarter := s.CurrentQuarter
	if quarter < 1 {
		quarter = 1
	}
	if quarter > 4 {
		quarter = 4
	}
	quartersRemaining := 4 - quarter + 1

	return QuarterlyTaxPlan{
		PriorYearTarget:   priorTarget,
		CurrentYearTarget: currentTarget,
		SafeHarborTarget:  target,
		SafeHarborType:    harborType,
		PaidToDate:        paid,
		RemainingNeeded:   remaining,
		QuartersRemaining: quartersRemaining,
		PerQuarterAmount:  remaining.DivRound(decimal.NewFromInt(int64(quartersRemaining)), 2),
	}
}
