/*
scorp.go - S-Corp payroll-tax savings estimate

PURPOSE:
  Estimates what an S-Corp election saves by comparing self-employment tax
  on the full net income against payroll tax on a reasonable-compensation
  salary, net of administration costs.

FORMULAS:
  Reasonable-compensation band:
    [marketSalary * 0.6 (operator) or 0.4 (passive), marketSalary * 1.1]
  recommendedSalary = plannedSalary clamped into the band
  distribution      = max(0, netIncome - recommendedSalary)

  Employment-style tax on a base amount:
    earnings = base * 92.35%
    Social Security: 12.4% of earnings, capped at the SS wage base
    Medicare: 2.9% of earnings
    Additional Medicare: 0.9% of earnings above the filing-status threshold

  SE tax       = employment-style tax on netIncome
  Payroll tax  = employment-style tax on recommendedSalary
                 + state payroll-tax rate * recommendedSalary
  Savings      = SE tax - payroll tax - admin costs
*/
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/limits"
)

var (
	operatorBandFactor = decimal.RequireFromString("0.6")
	passiveBandFactor  = decimal.RequireFromString("0.4")
	bandCeilingFactor  = decimal.RequireFromString("1.1")
)

func (c *Calculator) sCorpEstimate(s Snapshot, lim limits.YearLimits) SCorpSavingsEstimate {
	bandFactor := passiveBandFactor
	if s.OwnerRole == RoleOperator {
		bandFactor = operatorBandFactor
	}
	bandMin := s.MarketSalary.Mul(bandFactor)
	bandMax := s.MarketSalary.Mul(bandCeilingFactor)

	recommended := clampDecimal(s.PlannedSalary, bandMin, bandMax)
	distribution := decimal.Max(decimal.Zero, s.NetIncome.Sub(recommended))

	seTax := employmentStyleTax(s.NetIncome, s.FilingStatus, lim)
	payrollTax := employmentStyleTax(recommended, s.FilingStatus, lim).
		Add(recommended.Mul(s.StatePayrollTaxRate))
	savings := seTax.Sub(payrollTax).Sub(lim.SCorpAnnualAdminCost)

	est := SCorpSavingsEstimate{
		SalaryBandMin:        bandMin,
		SalaryBandMax:        bandMax,
		RecommendedSalary:    recommended,
		DistributionEstimate: distribution,
		SelfEmploymentTax:    seTax,
		PayrollTax:           payrollTax,
		AdminCosts:           lim.SCorpAnnualAdminCost,
		EstimatedSavings:     savings,
	}

	if s.PlannedSalary.LessThan(bandMin) {
		est.Warnings = append(est.Warnings,
			"Planned salary is below the reasonable-compensation band; the IRS reclassifies artificially low S-Corp salaries.")
	}
	if distribution.IsZero() {
		est.Warnings = append(est.Warnings,
			"No distribution remains after the recommended salary; an S-Corp election adds cost without payroll-tax benefit.")
	}
	if !savings.IsPositive() {
		est.Warnings = append(est.Warnings,
			"Estimated savings do not exceed S-Corp administration costs at this income level.")
	}
	return est
}

// employmentStyleTax applies the SE-tax formula to a base amount. The same
// formula is deliberately used for both net income and salary so the two
// sides of the comparison move together.
func employmentStyleTax(base decimal.Decimal, filing FilingStatus, lim limits.YearLimits) decimal.Decimal {
	earnings := base.Mul(lim.SETaxableFactor)

	ss := decimal.Min(earnings, lim.SocialSecurityWageBase).Mul(lim.SocialSecurityRate)
	medicare := earnings.Mul(lim.MedicareRate)

	threshold := lim.AdditionalMedicareThresholdSingle
	if filing == FilingMarried {
		threshold = lim.AdditionalMedicareThresholdMarried
	}
	additional := decimal.Zero
	if earnings.GreaterThan(threshold) {
		additional = earnings.Sub(threshold).Mul(lim.AdditionalMedicareRate)
	}

	return ss.Add(medicare).Add(additional)
}

func clampDecimal(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// payrollPlan turns the recommended salary into a pay-run schedule.
func (c *Calculator) payrollPlan(s Snapshot, est SCorpSavingsEstimate) PayrollPlan {
	cadence := s.PayrollCadence
	if cadence == "" {
		cadence = CadenceSemiMonthly
	}

	runs := map[PayrollCadence]int{
		CadenceMonthly:     12,
		CadenceSemiMonthly: 24,
		CadenceBiweekly:    26,
	}[cadence]
	if runs == 0 {
		runs = 24
	}

	plan := PayrollPlan{
		Cadence:     cadence,
		RunsPerYear: runs,
		PerRunGross: est.RecommendedSalary.DivRound(decimal.NewFromInt(int64(runs)), 2),
	}
	if cadence == CadenceMonthly {
		plan.Notes = append(plan.Notes,
			"Monthly payroll is the minimum defensible cadence; semi-monthly runs smooth withholding and cash planning.")
	}
	return plan
}
