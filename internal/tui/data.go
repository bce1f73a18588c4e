package tui

// Demo fixtures for the Cadence site dashboard. The data mirrors one
// mid-size academic site running three trials, with the roster sorted so
// that high-risk participants float to the top.

// Patient is one enrolled participant row.
type Patient struct {
	ID          string
	Name        string
	Age         int
	Trial       string
	Status      string
	Risk        float64
	NextVisit   string
	RiskFactors []string
	Playbook    []string
}

// Visit is one calendar entry for the current week.
type Visit struct {
	Slot    string
	Patient string
	Kind    string
	Trial   string
	Overdue bool
}

// ChatLine is one assistant transcript entry.
type ChatLine struct {
	From string
	Text string
}

// KnowledgeNote is one captured piece of site knowledge.
type KnowledgeNote struct {
	Category string
	Content  string
	Source   string
}

// TrialSummary aggregates enrollment and risk per protocol.
type TrialSummary struct {
	Name     string
	Phase    string
	Sponsor  string
	Enrolled int
	Target   int
	AtRisk   int
	Registry string
	PI       string
}

func siteTrials() []TrialSummary {
	return []TrialSummary{
		{Name: "RESOLVE-NASH", Phase: "Phase 3", Sponsor: "Madrigal Pharmaceuticals", Enrolled: 38, Target: 45, AtRisk: 4, Registry: "NCT05891234", PI: "Dr. Elizabeth Chen"},
		{Name: "BEACON-AD", Phase: "Phase 2", Sponsor: "Eisai/Biogen", Enrolled: 22, Target: 30, AtRisk: 2, Registry: "NCT06234567", PI: "Dr. Marcus Webb"},
		{Name: "CARDIO-GLP1", Phase: "Phase 3", Sponsor: "Novo Nordisk", Enrolled: 51, Target: 60, AtRisk: 3, Registry: "NCT06789012", PI: "Dr. Anita Patel"},
	}
}

func sitePatients() []Patient {
	return []Patient{
		{
			ID: "PT-0112", Name: "Dana Whitfield", Age: 54, Trial: "RESOLVE-NASH",
			Status: "Active", Risk: 0.82, NextVisit: "Overdue · Week 12 labs",
			RiskFactors: []string{
				"Missed Week 12 fasting labs",
				"Two unanswered phone calls this week",
				"Lives 40+ miles from the site",
			},
			Playbook: []string{
				"Wellness call within 24 hours",
				"Fasting-window reminder 48 hours before the rescheduled visit",
				"Offer the hospital shuttle voucher",
			},
		},
		{
			ID: "PT-0087", Name: "Luis Ramos", Age: 61, Trial: "CARDIO-GLP1",
			Status: "Active", Risk: 0.67, NextVisit: "Thu 09:15 · Infusion",
			RiskFactors: []string{
				"Reported injection-site soreness at last visit",
				"Rescheduled twice in the last month",
			},
			Playbook: []string{
				"Nurse check-in before Thursday's infusion",
				"Review side-effect diary together",
			},
		},
		{
			ID: "PT-0203", Name: "Helen Cho", Age: 58, Trial: "BEACON-AD",
			Status: "Active", Risk: 0.58, NextVisit: "Wed 11:00 · MRI",
			RiskFactors: []string{
				"Caregiver unavailable for daytime visits",
				"Long MRI sessions cause anxiety",
			},
			Playbook: []string{
				"Book the first MRI slot of the day",
				"Confirm caregiver transport the night before",
			},
		},
		{
			ID: "PT-0045", Name: "Marcus Bell", Age: 47, Trial: "RESOLVE-NASH",
			Status: "Active", Risk: 0.41, NextVisit: "Tue 08:00 · Fasting labs",
			RiskFactors: []string{"One missed visit in the last 6 months"},
			Playbook:    []string{"Standard fasting reminder the evening before"},
		},
		{
			ID: "PT-0166", Name: "Priya Nair", Age: 52, Trial: "CARDIO-GLP1",
			Status: "Active", Risk: 0.33, NextVisit: "Fri 14:30 · Follow-up",
			RiskFactors: []string{"Work schedule conflicts with afternoon slots"},
			Playbook:    []string{"Move follow-ups to the 8am block"},
		},
		{
			ID: "PT-0071", Name: "Tom Okafor", Age: 66, Trial: "BEACON-AD",
			Status: "Active", Risk: 0.24, NextVisit: "Mon 10:30 · Cognitive battery",
		},
		{
			ID: "PT-0129", Name: "Grace Lin", Age: 44, Trial: "RESOLVE-NASH",
			Status: "Active", Risk: 0.18, NextVisit: "Wed 08:30 · FibroScan",
		},
		{
			ID: "PT-0098", Name: "Robert Hayes", Age: 59, Trial: "CARDIO-GLP1",
			Status: "Screening", Risk: 0.11, NextVisit: "Thu 13:00 · Screening visit 2",
		},
		{
			ID: "PT-0154", Name: "Alma Reyes", Age: 63, Trial: "BEACON-AD",
			Status: "Active", Risk: 0.07, NextVisit: "Fri 09:45 · Infusion",
		},
	}
}

func weekVisits() []Visit {
	return []Visit{
		{Slot: "Mon 08:30", Patient: "Dana Whitfield · PT-0112", Kind: "Week 12 fasting labs", Trial: "RESOLVE-NASH", Overdue: true},
		{Slot: "Mon 10:30", Patient: "Tom Okafor · PT-0071", Kind: "Cognitive battery", Trial: "BEACON-AD"},
		{Slot: "Tue 08:00", Patient: "Marcus Bell · PT-0045", Kind: "Fasting labs", Trial: "RESOLVE-NASH"},
		{Slot: "Wed 08:30", Patient: "Grace Lin · PT-0129", Kind: "FibroScan", Trial: "RESOLVE-NASH"},
		{Slot: "Wed 11:00", Patient: "Helen Cho · PT-0203", Kind: "MRI (amyloid protocol)", Trial: "BEACON-AD"},
		{Slot: "Thu 09:15", Patient: "Luis Ramos · PT-0087", Kind: "Infusion", Trial: "CARDIO-GLP1"},
		{Slot: "Thu 13:00", Patient: "Robert Hayes · PT-0098", Kind: "Screening visit 2", Trial: "CARDIO-GLP1"},
		{Slot: "Fri 09:45", Patient: "Alma Reyes · PT-0154", Kind: "Infusion", Trial: "BEACON-AD"},
		{Slot: "Fri 14:30", Patient: "Priya Nair · PT-0166", Kind: "Follow-up", Trial: "CARDIO-GLP1"},
	}
}

func assistantTranscript() []ChatLine {
	return []ChatLine{
		{From: "You", Text: "Which RESOLVE-NASH participants are overdue for Week 12 labs?"},
		{From: "Cadence", Text: "One: Dana Whitfield (PT-0112), due Monday and not yet rescheduled. Her dropout risk rose to 0.82 overnight."},
		{From: "You", Text: "Who needs a call before Thursday's fasting visits?"},
		{From: "Cadence", Text: "Two reminder calls are due tomorrow: Marcus Bell (PT-0045, Tue 08:00 fasting labs) and Dana Whitfield once her Week 12 labs are rebooked. I have drafted both call tasks and flagged Dana's as urgent."},
	}
}

func knowledgeNotes() []KnowledgeNote {
	return []KnowledgeNote{
		{
			Category: "Scheduling",
			Content:  "Dr. Chen signs off RESOLVE-NASH eligibility only on Thursday afternoons; stack PI visits accordingly.",
			Source:   "CRC Maria Gonzalez · RESOLVE-NASH · Nov 2025",
		},
		{
			Category: "Retention",
			Content:  "Fasting-lab no-shows cluster on Mondays; a reminder call the Friday before cuts them roughly in half.",
			Source:   "CRC Maria Gonzalez · site playbook · Aug 2025",
		},
		{
			Category: "Transport",
			Content:  "Caregiver transport falls through most often for BEACON-AD morning MRIs; the hospital shuttle is the reliable backup if booked 24h ahead.",
			Source:   "CRC James Park · BEACON-AD · Oct 2025",
		},
		{
			Category: "Retention",
			Content:  "Dropout risk drifts upward every winter; January check-in calls for all active participants pay for themselves.",
			Source:   "CRC Maria Gonzalez · site playbook · Jan 2025",
		},
		{
			Category: "Lab logistics",
			Content:  "BEACON-AD CSF send-out kits must ship Monday through Wednesday or they sit over the weekend.",
			Source:   "CRC James Park · BEACON-AD · Sep 2025",
		},
		{
			Category: "Pharmacy",
			Content:  "The infusion pharmacy needs 48 hours lead time for CARDIO-GLP1 dose preparation; same-day reschedules will miss the slot.",
			Source:   "CRC Dana Ellis · CARDIO-GLP1 · Jul 2025",
		},
		{
			Category: "Monitoring",
			Content:  "The Madrigal CRA comes the first Tuesday of each month and expects the regulatory binder in the small conference room.",
			Source:   "CRC Maria Gonzalez · RESOLVE-NASH · Jun 2025",
		},
	}
}
