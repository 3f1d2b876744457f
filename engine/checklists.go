package engine

// FormationChecklist returns the static formation/compliance checklist.
// Items are fixed reference content; completion state lives with the caller,
// keyed by Key.
func FormationChecklist() []ChecklistItem {
	return []ChecklistItem{
		{Key: "ein", Title: "Get an EIN", Detail: "File Form SS-4 with the IRS; required before payroll and most bank accounts."},
		{Key: "operating-agreement", Title: "Adopt an operating agreement", Detail: "Even single-member LLCs should document ownership and management."},
		{Key: "registered-agent", Title: "Maintain a registered agent", Detail: "Keep a registered agent current in your formation state."},
		{Key: "business-bank", Title: "Open a business bank account", Detail: "Separate accounts are the foundation of clean books and liability protection."},
		{Key: "annual-report", Title: "Calendar your annual report", Detail: "Most states require an annual or biennial report with a filing fee."},
		{Key: "bookkeeping", Title: "Set up bookkeeping", Detail: "Monthly reconciliation beats a year-end shoebox; pick a system before volume grows."},
	}
}

// FounderTips returns the static guidance list shown alongside results.
func FounderTips() []string {
	return []string{
		"Revisit your entity choice whenever net income moves by more than about 25% year over year.",
		"Set aside estimated taxes in a separate savings account as revenue lands, not at the deadline.",
		"Document how you set your salary: market data for your role, hours, and region.",
		"File state registrations before hiring in a new state; payroll triggers nexus quickly.",
		"Keep equity paperwork (grants, 83(b) proof of mailing) in one place from day one.",
	}
}
