package script

import "time"

// Builtin returns the compiled-in Cadence site tour. It is the script played
// when no external script file is configured.
func Builtin() *Script {
	return MustNew("cadence-site-tour", []Step{
		{
			ID:        "welcome",
			Chapter:   "Welcome",
			Tab:       "patients",
			Narration: "# Welcome to Cadence\n\nThe operating system for clinical research coordinators. This short tour walks through a live site as a coordinator sees it.",
			Subtext:   "Sit back, or drive with the arrow keys.",
			Duration:  9 * time.Second,
		},
		{
			ID:           "roster",
			Chapter:      "Patients",
			Tab:          "patients",
			Narration:    "Every enrolled participant across your trials, in one roster. The **risk** column is a dropout-risk score recomputed nightly from visit history, contact recency, and reported side effects.",
			Subtext:      "Three active trials: RESOLVE-NASH, BEACON-AD, CARDIO-GLP1.",
			Duration:     11 * time.Second,
			ScrollTarget: "patients-roster",
		},
		{
			ID:           "risk-flag",
			Chapter:      "Patients",
			Tab:          "patients",
			Narration:    "Dana Whitfield missed her Week 12 fasting labs and hasn't answered two calls. Her risk score jumped to **0.82** overnight, so Cadence surfaces her first.",
			Subtext:      "High-risk participants float to the top of the roster.",
			Duration:     11 * time.Second,
			Action:       Action{Kind: ActionSelectEntity, EntityID: "PT-0112"},
			ScrollTarget: "patient-PT-0112",
		},
		{
			ID:        "risk-detail",
			Chapter:   "Patients",
			Tab:       "patients",
			Narration: "Each risk factor pairs with a recommended intervention: a wellness call within 24 hours, and a fasting-window reminder 48 hours before the rescheduled visit.",
			Subtext:   "Recommendations come from the site's own retention playbook.",
			Duration:  10 * time.Second,
		},
		{
			ID:           "calendar",
			Chapter:      "Schedule",
			Tab:          "calendar",
			Narration:    "The week at a glance: infusions, MRIs, fasting labs. Overdue visits show in red, and Cadence drafts the reminder calls for tomorrow's fasting appointments automatically.",
			Subtext:      "Visit windows follow each protocol's schedule of assessments.",
			Duration:     11 * time.Second,
			Action:       Action{Kind: ActionClearSelection},
			ScrollTarget: "calendar-week",
		},
		{
			ID:           "assistant",
			Chapter:      "Assistant",
			Tab:          "chat",
			Narration:    "Ask in plain language. *\"Who needs a call before Thursday's fasting visits?\"* The assistant reads the same roster and schedule you do, and files the outreach tasks itself.",
			Subtext:      "Every action it takes is logged for the study monitor.",
			Duration:     12 * time.Second,
			ScrollTarget: "chat-latest",
		},
		{
			ID:           "knowledge",
			Chapter:      "Insights",
			Tab:          "analytics",
			Narration:    "Site knowledge lives here: the unwritten rules your best coordinators carry in their heads, captured as they work. Fasting no-show patterns, caregiver transport backups, winter dropout drift.",
			Subtext:      "Six years of coordinator experience, searchable.",
			Duration:     11 * time.Second,
			ScrollTarget: "analytics-knowledge",
		},
		{
			ID:        "knowledge-loss",
			Chapter:   "Insights",
			Tab:       "analytics",
			Narration: "Now imagine your senior coordinator resigns on Friday. **This is what the site loses overnight** when that knowledge only lives in one person's head.",
			Subtext:   "Staff turnover is the leading cause of avoidable protocol deviations.",
			Duration:  10 * time.Second,
			Action:    Action{Kind: ActionSetFlag, Flag: "knowledgeLoss", Value: true},
		},
		{
			ID:        "knowledge-kept",
			Chapter:   "Insights",
			Tab:       "analytics",
			Narration: "With Cadence, nothing walks out the door. The playbook stays with the site, and the next coordinator starts from everything the last one learned.",
			Subtext:   "Knowledge is an asset of the site, not of a tenure.",
			Duration:  10 * time.Second,
			Action:    Action{Kind: ActionSetFlag, Flag: "knowledgeLoss", Value: false},
		},
		{
			ID:        "wrap",
			Chapter:   "Wrap-up",
			Tab:       "patients",
			Narration: "# That's Cadence\n\nFewer dropouts, cleaner data, and a site that remembers. Thanks for walking through.",
			Subtext:   "Press esc to leave the tour.",
			Action:    Action{Kind: ActionClearSelection},
			Final:     true,
		},
	})
}
