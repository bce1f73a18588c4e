package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cadencehq/walkthrough/internal/player"
)

var (
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5B8DEF")).Padding(0, 2)
	chapterDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	chapterNowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	chapterNextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	overlayMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	subtextStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).Italic(true)
	pausedBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	overlayHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// walkthroughView renders the playback overlay from player snapshots. It
// owns the widgets that only matter while a tour runs: the step progress
// bar and the markdown renderer for narration. It never touches the player
// itself; everything it draws comes out of one Snapshot.
type walkthroughView struct {
	bar      progress.Model
	markdown *glamour.TermRenderer
	width    int
}

func newWalkthroughView() *walkthroughView {
	v := &walkthroughView{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	v.SetWidth(96)
	return v
}

// SetWidth resizes the overlay. The markdown renderer is rebuilt because
// glamour bakes the word-wrap column into the renderer.
func (v *walkthroughView) SetWidth(width int) {
	if width < 40 {
		width = 40
	}
	if width == v.width && v.markdown != nil {
		return
	}
	v.width = width
	v.bar.Width = max(10, width-10)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, width-8)),
	)
	if err == nil {
		v.markdown = renderer
	}
}

// Render draws the overlay for one snapshot. An inactive snapshot renders
// nothing so the dashboard gets the full screen back.
func (v *walkthroughView) Render(snap player.Snapshot) string {
	if !snap.Active {
		return ""
	}
	rows := []string{
		v.renderRail(snap),
		"",
		v.renderNarration(snap),
	}
	if sub := strings.TrimSpace(snap.Step.Subtext); sub != "" && snap.TextVisible {
		rows = append(rows, subtextStyle.Render(sub))
	}
	rows = append(rows,
		"",
		v.bar.ViewAs(snap.Progress),
		v.renderHints(snap),
	)
	return overlayBoxStyle.Width(max(36, v.width-2)).Render(strings.Join(rows, "\n"))
}

// renderRail draws the chapter dots with the current chapter labelled, plus
// the step counter on the right.
func (v *walkthroughView) renderRail(snap player.Snapshot) string {
	parts := make([]string, 0, len(snap.Chapters))
	for _, dot := range snap.Chapters {
		switch dot.State {
		case player.ChapterCompleted:
			parts = append(parts, chapterDoneStyle.Render("●"))
		case player.ChapterCurrent:
			parts = append(parts, chapterNowStyle.Render("◉ "+dot.Label))
		default:
			parts = append(parts, chapterNextStyle.Render("○"))
		}
	}
	meta := fmt.Sprintf("%s · step %d/%d · %.0f%%", snap.ScriptName, snap.Index+1, snap.StepCount, snap.OverallPct)
	return strings.Join(parts, " ") + "   " + overlayMetaStyle.Render(meta)
}

// renderNarration shows the step narration through glamour once the text
// delay has fired; before that it holds the space so the overlay does not
// jump. Markdown that fails to render falls back to the raw text.
func (v *walkthroughView) renderNarration(snap player.Snapshot) string {
	if !snap.TextVisible {
		return ""
	}
	text := snap.Step.Narration
	if v.markdown != nil {
		if rendered, err := v.markdown.Render(text); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return text
}

func (v *walkthroughView) renderHints(snap player.Snapshot) string {
	hints := "←/→ steps · space pause · esc end tour"
	if snap.Paused {
		return pausedBadgeStyle.Render("⏸ paused") + "  " + overlayHintStyle.Render("space resumes · "+hints)
	}
	return overlayHintStyle.Render(hints)
}
