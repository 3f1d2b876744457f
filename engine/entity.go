package engine

import "github.com/foundry/compliance-engine/limits"

// entityRecommendation applies the ordered entity/election decision rules.
// First match wins:
//  1. Raising outside/VC money -> C-Corp, no election
//  2. Net income at or above the S-Corp threshold AND owner actively
//     operates -> LLC with S-Corp election
//  3. Multiple owners -> LLC, no election
//  4. Default -> LLC, no election
func (c *Calculator) entityRecommendation(s Snapshot, lim limits.YearLimits) EntityRecommendation {
	var rec EntityRecommendation

	switch {
	case s.FundingPlan == FundingVC:
		rec = EntityRecommendation{
			Entity:   EntityCCorp,
			Election: ElectionNone,
			Reasons: []string{
				"Venture investors expect a Delaware-style C-Corp with standard preferred stock mechanics.",
				"An S-Corp election is incompatible with most institutional investors and multiple share classes.",
			},
		}
	case s.NetIncome.GreaterThanOrEqual(lim.SCorpNetIncomeThreshold) && s.OwnerRole == RoleOperator:
		rec = EntityRecommendation{
			Entity:   EntityLLC,
			Election: ElectionSCorp,
			Reasons: []string{
				"Net income is high enough that splitting pay into salary plus distributions can cut payroll taxes.",
				"As an active operator you can justify a reasonable salary and take the remainder as distributions.",
			},
		}
	case s.OwnerCount > 1:
		rec = EntityRecommendation{
			Entity:   EntityLLC,
			Election: ElectionNone,
			Reasons: []string{
				"A multi-member LLC keeps pass-through treatment and flexible profit splits between owners.",
			},
		}
	default:
		rec = EntityRecommendation{
			Entity:   EntityLLC,
			Election: ElectionNone,
			Reasons: []string{
				"A single-member LLC gives liability protection with minimal overhead at this income level.",
			},
		}
	}

	if s.EntityType == rec.Entity && s.TaxElection == rec.Election {
		rec.Reasons = append(rec.Reasons, "Your current entity and election already match this recommendation.")
	}
	return rec
}
