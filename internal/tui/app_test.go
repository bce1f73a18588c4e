package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadencehq/walkthrough/internal/config"
	"github.com/cadencehq/walkthrough/internal/logbook"
	"github.com/cadencehq/walkthrough/internal/player"
	"github.com/cadencehq/walkthrough/internal/script"
)

type recordedTimer struct {
	delay time.Duration
	msg   tea.Msg
}

// timerRecorder captures the player's timers instead of arming them, so tests
// deliver each message by hand through App.Update.
type timerRecorder struct {
	entries []recordedTimer
}

func (r *timerRecorder) Schedule(delay time.Duration, msg tea.Msg) tea.Cmd {
	r.entries = append(r.entries, recordedTimer{delay: delay, msg: msg})
	return nil
}

func (r *timerRecorder) drain() []recordedTimer {
	out := r.entries
	r.entries = nil
	return out
}

func newTestApp(t *testing.T, opts ...AppOption) (*App, *timerRecorder) {
	t.Helper()
	rec := &timerRecorder{}
	book, err := logbook.New(filepath.Join(t.TempDir(), "session.log"))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	baseOpts := []AppOption{WithPlayerOptions(player.WithSchedule(rec.Schedule))}
	baseOpts = append(baseOpts, opts...)
	app, err := NewApp(config.Default(), script.Builtin(), book, baseOpts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App), rec
}

func runCommands(t *testing.T, model tea.Model, cmd tea.Cmd) *App {
	t.Helper()
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		nextModel, nextCmd := app.Update(msg)
		var ok bool
		app, ok = nextModel.(*App)
		if !ok {
			t.Fatalf("unexpected model type: %T", nextModel)
		}
		cmd = nextCmd
	}
	return app
}

func pressKey(t *testing.T, app *App, msg tea.KeyMsg) *App {
	t.Helper()
	model, cmd := app.Update(msg)
	return runCommands(t, model, cmd)
}

func deliver(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	model, cmd := app.Update(msg)
	return runCommands(t, model, cmd)
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestMenuStartsTheTour(t *testing.T) {
	app, rec := newTestApp(t)
	if app.state != stateMenu {
		t.Fatalf("expected the launch menu first, got state %d", app.state)
	}

	app = pressKey(t, app, key(tea.KeyEnter))
	if app.state != stateDashboard {
		t.Fatalf("enter should open the dashboard, got state %d", app.state)
	}
	if !app.player.Active() {
		t.Fatalf("the first menu entry should start the tour")
	}
	if app.activeTab != tabPatients {
		t.Fatalf("the tour opens on the patients tab, got %s", app.activeTab)
	}
	timers := rec.drain()
	if len(timers) == 0 {
		t.Fatalf("expected the first step to arm its timers")
	}
	var sawAuto bool
	for _, timer := range timers {
		if timer.delay == 9*time.Second {
			sawAuto = true
		}
	}
	if !sawAuto {
		t.Fatalf("expected the welcome step to arm its 9s auto-advance")
	}
}

func TestMenuOpensTheDashboardFreely(t *testing.T) {
	app, _ := newTestApp(t)
	app = pressKey(t, app, key(tea.KeyDown))
	app = pressKey(t, app, key(tea.KeyEnter))
	if app.state != stateDashboard {
		t.Fatalf("expected the dashboard, got state %d", app.state)
	}
	if app.player.Active() {
		t.Fatalf("free browsing must not start the tour")
	}

	app = pressKey(t, app, runeKey('w'))
	if !app.player.Active() {
		t.Fatalf("w should start the tour from the dashboard")
	}
}

func TestTourKeysNavigateAndClose(t *testing.T) {
	app, _ := newTestApp(t)
	app = pressKey(t, app, key(tea.KeyEnter))

	app = pressKey(t, app, key(tea.KeyRight))
	if got := app.player.Index(); got != 1 {
		t.Fatalf("right should advance to step 1, got %d", got)
	}

	// Keys the tour does not claim still drive the dashboard.
	app = pressKey(t, app, runeKey('2'))
	if app.activeTab != tabCalendar {
		t.Fatalf("2 should open the calendar tab, got %s", app.activeTab)
	}
	if !app.player.Active() {
		t.Fatalf("tab browsing must not end the tour")
	}

	app = pressKey(t, app, key(tea.KeyEsc))
	if app.player.Active() {
		t.Fatalf("esc should close the tour")
	}
	if !strings.Contains(app.statusMsg, "Tour ended") {
		t.Fatalf("status line should note the tour ended, got %q", app.statusMsg)
	}
}

func TestSelectEntityMovesCursorAndDetail(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	app.layout()

	app.SelectEntity("PT-0203")
	if got := app.patients.Cursor(); got != 2 {
		t.Fatalf("cursor should follow the selection, got row %d", got)
	}
	if !strings.Contains(app.content.View(), "Selected · PT-0203") {
		t.Fatalf("detail panel should show the selected participant")
	}

	app.ClearSelection()
	if !strings.Contains(app.content.View(), "No participant selected") {
		t.Fatalf("clearing the selection should empty the detail panel")
	}
}

func TestKeyboardRowSelection(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	app.layout()

	app = pressKey(t, app, key(tea.KeyDown))
	app = pressKey(t, app, key(tea.KeyEnter))
	if app.selectedID != "PT-0087" {
		t.Fatalf("enter should select the row under the cursor, got %q", app.selectedID)
	}
	if !strings.Contains(app.statusMsg, "Luis Ramos") {
		t.Fatalf("status line should name the selection, got %q", app.statusMsg)
	}
}

func TestScrollToKnownAndUnknownAnchor(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	app = model.(*App)
	app.SwitchTab(tabAnalytics)

	want, ok := app.anchors[anchorKnowledge]
	if !ok || want == 0 {
		t.Fatalf("knowledge anchor missing from the analytics tab")
	}
	app.ScrollTo(anchorKnowledge)
	if got := app.content.YOffset; got != want {
		t.Fatalf("scroll landed on line %d, want %d", got, want)
	}

	app.ScrollTo("patient-PT-9999")
	if got := app.content.YOffset; got != want {
		t.Fatalf("an unknown anchor moved the viewport to line %d", got)
	}

	app.ResetScroll()
	if got := app.content.YOffset; got != 0 {
		t.Fatalf("reset should return to the top, got line %d", got)
	}
}

func TestKnowledgeLossRedactsTheNotes(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	app.layout()
	app.SwitchTab(tabAnalytics)

	app.SetFlag(player.FlagKnowledgeLoss, true)
	view := app.content.View()
	if !strings.Contains(view, "walked out the door") {
		t.Fatalf("loss banner missing from the analytics tab")
	}
	if strings.Contains(view, "eligibility") {
		t.Fatalf("note contents should be redacted while the flag is set")
	}

	app.SetFlag(player.FlagKnowledgeLoss, false)
	if !strings.Contains(app.content.View(), "eligibility") {
		t.Fatalf("notes should come back once the flag clears")
	}
}

func TestManualTabKeys(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	app.layout()

	app = pressKey(t, app, runeKey('3'))
	if app.activeTab != tabChat {
		t.Fatalf("3 should open the assistant tab, got %s", app.activeTab)
	}
	app = pressKey(t, app, key(tea.KeyTab))
	if app.activeTab != tabAnalytics {
		t.Fatalf("tab should cycle forward, got %s", app.activeTab)
	}
	app = pressKey(t, app, key(tea.KeyTab))
	if app.activeTab != tabPatients {
		t.Fatalf("tab should wrap around, got %s", app.activeTab)
	}
	app = pressKey(t, app, key(tea.KeyShiftTab))
	if app.activeTab != tabAnalytics {
		t.Fatalf("shift+tab should cycle backward, got %s", app.activeTab)
	}
}

func TestLogPanelToggle(t *testing.T) {
	app, _ := newTestApp(t)
	app.state = stateDashboard
	app.layout()

	app = pressKey(t, app, runeKey('l'))
	if !app.showLog {
		t.Fatalf("l should open the log panel")
	}
	if !strings.Contains(app.View(), "LOG · session.log") {
		t.Fatalf("log panel missing from the rendered view")
	}

	app = pressKey(t, app, runeKey('l'))
	if app.showLog {
		t.Fatalf("l should close the log panel again")
	}
}

func TestAutostartSkipsTheMenu(t *testing.T) {
	rec := &timerRecorder{}
	book, err := logbook.New(filepath.Join(t.TempDir(), "session.log"))
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	cfg := config.Default()
	cfg.Autostart = true
	app, err := NewApp(cfg, script.Builtin(), book, WithPlayerOptions(player.WithSchedule(rec.Schedule)))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	runCommands(t, app, app.Init())
	if app.state != stateDashboard {
		t.Fatalf("autostart should land on the dashboard, got state %d", app.state)
	}
	if !app.player.Active() {
		t.Fatalf("autostart should begin the tour")
	}
}

// TestTourEndToEndWithTimers walks the whole builtin script by delivering the
// recorded timers in order, the way the bubbletea runtime would.
func TestTourEndToEndWithTimers(t *testing.T) {
	app, rec := newTestApp(t)
	app = pressKey(t, app, key(tea.KeyEnter))

	last := app.tour.LastIndex()
	for rounds := 0; app.player.Index() < last; rounds++ {
		if rounds > 2*app.tour.Len() {
			t.Fatalf("tour stalled on step %d", app.player.Index())
		}
		for _, timer := range rec.drain() {
			app = deliver(t, app, timer.msg)
		}

		switch app.player.Index() {
		case 3:
			if app.selectedID != "PT-0112" {
				t.Fatalf("the risk step should have selected PT-0112, got %q", app.selectedID)
			}
			if got := app.patients.Cursor(); got != 0 {
				t.Fatalf("selection should move the cursor to the top row, got %d", got)
			}
		case 5:
			if app.selectedID != "" {
				t.Fatalf("the calendar step should clear the selection, got %q", app.selectedID)
			}
			if app.activeTab != tabChat {
				t.Fatalf("step 5 belongs to the assistant tab, got %s", app.activeTab)
			}
		case 8:
			if !app.flags[player.FlagKnowledgeLoss] {
				t.Fatalf("the loss step should set the knowledge flag")
			}
		}
	}

	if app.activeTab != tabPatients {
		t.Fatalf("the wrap step returns to the patients tab, got %s", app.activeTab)
	}

	// The final step arms no auto-advance, so whatever is left cannot move us.
	for _, timer := range rec.drain() {
		app = deliver(t, app, timer.msg)
	}
	if got := app.player.Index(); got != last {
		t.Fatalf("final-step timers must not advance past the end, got %d", got)
	}
	if !app.player.Active() {
		t.Fatalf("the tour should wait on the final step")
	}
	if app.flags[player.FlagKnowledgeLoss] {
		t.Fatalf("the closing steps should leave the knowledge flag cleared")
	}
	if app.selectedID != "" {
		t.Fatalf("the wrap step should leave no selection, got %q", app.selectedID)
	}

	app = pressKey(t, app, key(tea.KeyEsc))
	if app.player.Active() {
		t.Fatalf("esc should end the tour from the final step")
	}
}
