package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cadencehq/walkthrough/internal/player"
)

// Tab names match the view field of walkthrough steps.
const (
	tabPatients  = "patients"
	tabCalendar  = "calendar"
	tabChat      = "chat"
	tabAnalytics = "analytics"
)

// Scroll anchors the builders publish and walkthrough steps target.
const (
	anchorRoster    = "patients-roster"
	anchorWeek      = "calendar-week"
	anchorChatTail  = "chat-latest"
	anchorKnowledge = "analytics-knowledge"
)

var tabOrder = []string{tabPatients, tabCalendar, tabChat, tabAnalytics}

var tabTitles = map[string]string{
	tabPatients:  "Patients",
	tabCalendar:  "Calendar",
	tabChat:      "Assistant",
	tabAnalytics: "Analytics",
}

func validTab(tab string) bool {
	_, ok := tabTitles[tab]
	return ok
}

var (
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	speakerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	riskHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	riskMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	riskLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	redactedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
)

// tabContent is one rendered tab body plus the line offsets of its scroll
// anchors within that body.
type tabContent struct {
	body    string
	anchors map[string]int
}

// contentBuilder accumulates lines and records anchor positions as they are
// appended, so anchors always point at real line offsets even after styled
// or wrapped blocks.
type contentBuilder struct {
	lines   []string
	anchors map[string]int
}

func newContentBuilder() *contentBuilder {
	return &contentBuilder{anchors: map[string]int{}}
}

func (b *contentBuilder) anchor(name string) {
	b.anchors[name] = len(b.lines)
}

func (b *contentBuilder) add(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// addBlock appends pre-rendered multi-line content one line at a time.
func (b *contentBuilder) addBlock(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (b *contentBuilder) content() tabContent {
	return tabContent{body: strings.Join(b.lines, "\n"), anchors: b.anchors}
}

func (a *App) buildPatientsTab() tabContent {
	b := newContentBuilder()
	b.anchor(anchorRoster)
	b.add(
		sectionStyle.Render("Participant roster"),
		dimStyle.Render(fmt.Sprintf("%d enrolled across %d trials · sorted by dropout risk, recomputed nightly", len(a.patientRows), len(siteTrials()))),
		"",
	)

	tableStart := len(b.lines)
	view := a.patients.View()
	b.addBlock(view)
	// Row anchors sit inside the table block. The header depth depends on the
	// table styles, so find the first data row instead of assuming it.
	if len(a.patientRows) > 0 {
		headerLines := 0
		for i, line := range strings.Split(view, "\n") {
			if strings.Contains(line, a.patientRows[0].ID) {
				headerLines = i
				break
			}
		}
		for i, p := range a.patientRows {
			b.anchors["patient-"+p.ID] = tableStart + headerLines + i
		}
	}

	b.add("")
	if sel, ok := a.lookupPatient(a.selectedID); ok {
		b.add(sectionStyle.Render(fmt.Sprintf("Selected · %s %s", sel.ID, sel.Name)))
		b.add(fmt.Sprintf("  %s · %s · age %d · next: %s", sel.Trial, sel.Status, sel.Age, sel.NextVisit))
		b.add("  Dropout risk " + riskStyle(sel.Risk).Render(fmt.Sprintf("%.2f", sel.Risk)))
		if len(sel.RiskFactors) > 0 {
			b.add("", "  Risk factors")
			for _, factor := range sel.RiskFactors {
				b.add("    • " + factor)
			}
		}
		if len(sel.Playbook) > 0 {
			b.add("", "  Recommended interventions")
			for _, action := range sel.Playbook {
				b.add("    → " + action)
			}
		}
	} else {
		b.add(dimStyle.Render("No participant selected · enter selects the highlighted row"))
	}
	return b.content()
}

func (a *App) buildCalendarTab() tabContent {
	b := newContentBuilder()
	b.anchor(anchorWeek)
	b.add(
		sectionStyle.Render("This week"),
		dimStyle.Render("Visit windows follow each protocol's schedule of assessments."),
		"",
	)
	day := ""
	for _, v := range weekVisits() {
		if d := strings.Fields(v.Slot)[0]; d != day {
			if day != "" {
				b.add("")
			}
			day = d
			b.add(categoryStyle.Render(day))
		}
		line := fmt.Sprintf("  %-9s %-26s %-24s %s", strings.TrimPrefix(v.Slot, day+" "), v.Patient, v.Kind, v.Trial)
		if v.Overdue {
			line = overdueStyle.Render(line + "  · OVERDUE")
		}
		b.add(line)
	}
	b.add(
		"",
		sectionStyle.Render("Drafted reminders"),
		"  Mon 16:00 · Fasting-window call for Marcus Bell (Tue 08:00 labs)",
		"  Tue 16:00 · FibroScan prep reminder for Grace Lin (Wed 08:30)",
		dimStyle.Render("  Reminders go out automatically the afternoon before each fasting visit."),
	)
	return b.content()
}

func (a *App) buildChatTab() tabContent {
	b := newContentBuilder()
	b.add(
		sectionStyle.Render("Assistant"),
		dimStyle.Render("Ask in plain language. Every action the assistant takes is logged for the study monitor."),
		"",
	)
	transcript := assistantTranscript()
	wrap := lipgloss.NewStyle().Width(max(30, a.content.Width-6))
	for i, line := range transcript {
		if i == len(transcript)-1 {
			b.anchor(anchorChatTail)
		}
		b.add(speakerStyle.Render(line.From))
		for _, wrapped := range strings.Split(wrap.Render(line.Text), "\n") {
			b.add("  " + wrapped)
		}
		b.add("")
	}
	b.add(dimStyle.Render("Filed just now: 2 outreach tasks · 1 urgent"))
	return b.content()
}

func (a *App) buildAnalyticsTab() tabContent {
	b := newContentBuilder()
	b.add(
		sectionStyle.Render("Dropout risk by trial"),
		"",
	)
	for _, tr := range siteTrials() {
		b.add(fmt.Sprintf("  %-13s %s  %2d/%2d enrolled · %d at risk",
			tr.Name, enrollmentBar(tr.Enrolled, tr.Target, 20), tr.Enrolled, tr.Target, tr.AtRisk))
		b.add(dimStyle.Render(fmt.Sprintf("  %s · %s · %s · PI %s", tr.Phase, tr.Sponsor, tr.Registry, tr.PI)))
		b.add("")
	}

	notes := knowledgeNotes()
	b.anchor(anchorKnowledge)
	b.add(sectionStyle.Render("Site knowledge base"))
	if a.flags[player.FlagKnowledgeLoss] {
		b.add(
			redactedStyle.Render(fmt.Sprintf("⚠ %d entries walked out the door with staff turnover", len(notes))),
			"",
		)
		for _, note := range notes {
			b.add(categoryStyle.Render("  [" + note.Category + "]"))
			b.add(redactedStyle.Render("  " + strings.Repeat("░", min(56, len(note.Content)))))
			b.add("")
		}
	} else {
		b.add(dimStyle.Render(fmt.Sprintf("%d entries · captured from coordinators as they work", len(notes))), "")
		wrap := lipgloss.NewStyle().Width(max(30, a.content.Width-6))
		for _, note := range notes {
			b.add(categoryStyle.Render("  [" + note.Category + "]"))
			for _, wrapped := range strings.Split(wrap.Render(note.Content), "\n") {
				b.add("  " + wrapped)
			}
			b.add(dimStyle.Render("  — "+note.Source), "")
		}
	}
	return b.content()
}

func enrollmentBar(enrolled, target, width int) string {
	if target <= 0 || width <= 0 {
		return ""
	}
	filled := enrolled * width / target
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func riskStyle(risk float64) lipgloss.Style {
	switch {
	case risk >= 0.6:
		return riskHighStyle
	case risk >= 0.3:
		return riskMidStyle
	default:
		return riskLowStyle
	}
}
