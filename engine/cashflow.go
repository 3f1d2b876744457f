package engine

// cashflowAlerts runs the banking-hygiene checks. The checks are
// independent and the order is fixed; each failing check appends exactly
// one alert. Keys are stable identifiers for externally-tracked state.
func (c *Calculator) cashflowAlerts(s Snapshot) []CashflowAlert {
	var alerts []CashflowAlert

	if s.BusinessAccounts == 0 {
		alerts = append(alerts, CashflowAlert{
			Key:     "open-business-account",
			Message: "No dedicated business bank account; commingled funds undermine liability protection and bookkeeping.",
		})
	}
	if s.PersonalAccounts == 0 {
		alerts = append(alerts, CashflowAlert{
			Key:     "open-personal-account",
			Message: "No separate personal account on file; pay yourself by transfer instead of spending from business funds.",
		})
	}
	if s.MixedTransactionsPerMonth > 5 {
		alerts = append(alerts, CashflowAlert{
			Key:     "reduce-commingling",
			Message: "More than five mixed personal/business transactions a month; route personal spending through owner draws.",
		})
	}
	if !s.HasReimbursementPolicy {
		alerts = append(alerts, CashflowAlert{
			Key:     "reimbursement-policy",
			Message: "No accountable reimbursement policy; out-of-pocket business expenses are being deducted informally.",
		})
	}
	if s.PayrollCadence == CadenceMonthly {
		alerts = append(alerts, CashflowAlert{
			Key:     "payroll-cadence",
			Message: "Monthly payroll bunches withholding into large swings; a semi-monthly cadence smooths cash needs.",
		})
	}

	return alerts
}
