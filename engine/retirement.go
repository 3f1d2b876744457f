/*
retirement.go - Retirement plan recommendation by headcount

PURPOSE:
  Picks the plan type a founder can realistically administer and reports
  the applicable contribution limits. All numeric limits come from the
  injected yearly table; nothing here is computed from statute.

RULES:
  0 employees      -> Solo 401(k): employee deferral plus employer
                      profit-share up to the combined 415(c) cap
  1-100 employees  -> SIMPLE IRA: employee deferral with an employer
                      match of roughly 3% of the deferral limit
  >100 employees   -> SEP IRA: employer-only, 25%-of-compensation cap
*/
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/foundry/compliance-engine/limits"
)

func (c *Calculator) retirementPlan(s Snapshot, lim limits.YearLimits) RetirementPlanRecommendation {
	compensation := s.PlannedSalary
	if compensation.IsZero() {
		compensation = s.NetIncome
	}

	switch {
	case s.EmployeeCount == 0:
		profitShare := decimal.Min(
			compensation.Mul(lim.SEPCompensationRate),
			decimal.Max(decimal.Zero, lim.DefinedContributionCombined.Sub(lim.Solo401kEmployeeDeferral)),
		)
		return RetirementPlanRecommendation{
			PlanType:              PlanSolo401k,
			EmployeeDeferralLimit: lim.Solo401kEmployeeDeferral,
			EmployerContribution:  profitShare,
			CombinedLimit:         lim.DefinedContributionCombined,
			Reasons: []string{
				"With no employees, a Solo 401(k) allows the largest combined contribution: employee deferral plus employer profit share.",
			},
		}
	case s.EmployeeCount <= 100:
		return RetirementPlanRecommendation{
			PlanType:              PlanSimpleIRA,
			EmployeeDeferralLimit: lim.SimpleIRADeferral,
			EmployerContribution:  lim.SimpleIRADeferral.Mul(lim.SimpleIRAMatchRate),
			CombinedLimit:         lim.SimpleIRADeferral.Add(lim.SimpleIRADeferral.Mul(lim.SimpleIRAMatchRate)),
			Reasons: []string{
				"A SIMPLE IRA keeps administration light for a small team while still offering employee deferrals and a match.",
			},
		}
	default:
		employer := decimal.Min(compensation.Mul(lim.SEPCompensationRate), lim.SEPContributionCap)
		return RetirementPlanRecommendation{
			PlanType:              PlanSEPIRA,
			EmployeeDeferralLimit: decimal.Zero,
			EmployerContribution:  employer,
			CombinedLimit:         lim.SEPContributionCap,
			Reasons: []string{
				"Above 100 employees a SIMPLE IRA is unavailable; a SEP IRA funds employer-only contributions up to 25% of compensation.",
			},
		}
	}
}
