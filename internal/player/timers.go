package player

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadencehq/walkthrough/internal/script"
)

// Delays for the per-step timer group. The scroll delay is longer when the
// step also carries an action so the dashboard settles before the viewport
// moves; the text delay re-triggers the narration fade on every step.
const (
	actionDelay       = 350 * time.Millisecond
	scrollDelayQuick  = 150 * time.Millisecond
	scrollDelaySettle = 650 * time.Millisecond
	textFadeDelay     = 120 * time.Millisecond
	tickInterval      = 50 * time.Millisecond
)

// ScheduleFunc turns a delay and a message into a deferred command. The
// default defers to tea.Tick; tests substitute a recorder and deliver the
// captured messages themselves.
type ScheduleFunc func(delay time.Duration, msg tea.Msg) tea.Cmd

func defaultSchedule(delay time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// Timer messages. Each carries the tokens it was scheduled under; the
// ticking pair additionally carries the generation so that a pause can
// cancel it without touching the action, scroll, and text timers.
type (
	actionFireMsg   struct{ epoch int }
	scrollFireMsg   struct{ epoch int }
	textFadeMsg     struct{ epoch int }
	progressTickMsg struct{ epoch, gen int }
	autoAdvanceMsg  struct{ epoch, gen int }
)

// timerGroup owns every deferred callback of the current step activation.
// Cancellation is by token: bumping epoch orphans all five timers at once,
// bumping gen orphans only the progress ticker and the auto-advance. The
// underlying commands still fire, but their messages no longer match and
// fall through Update unapplied.
type timerGroup struct {
	schedule ScheduleFunc
	epoch    int
	gen      int
}

func (g *timerGroup) cancelAll()     { g.epoch++ }
func (g *timerGroup) cancelTicking() { g.gen++ }

func (g *timerGroup) owns(epoch int) bool { return epoch == g.epoch }

func (g *timerGroup) ownsTicking(epoch, gen int) bool {
	return epoch == g.epoch && gen == g.gen
}

// enterStep schedules the full timer group for a freshly settled step.
// While paused only the one-shot trio runs; ticking stays down until the
// player resumes.
func (g *timerGroup) enterStep(step script.Step, paused bool) tea.Cmd {
	cmds := []tea.Cmd{
		g.scheduleAction(step),
		g.scheduleScroll(step),
		g.scheduleTextFade(),
	}
	if !paused {
		cmds = append(cmds, g.startTicking(step))
	}
	return tea.Batch(cmds...)
}

// startTicking schedules the progress ticker and the auto-advance for the
// given step under the current tokens.
func (g *timerGroup) startTicking(step script.Step) tea.Cmd {
	return tea.Batch(g.scheduleProgressTick(), g.scheduleAutoAdvance(step))
}

func (g *timerGroup) scheduleAction(step script.Step) tea.Cmd {
	if step.Action.Kind == script.ActionNone {
		return nil
	}
	return g.schedule(actionDelay, actionFireMsg{epoch: g.epoch})
}

func (g *timerGroup) scheduleScroll(step script.Step) tea.Cmd {
	delay := scrollDelayQuick
	if step.Action.Kind != script.ActionNone {
		delay = scrollDelaySettle
	}
	return g.schedule(delay, scrollFireMsg{epoch: g.epoch})
}

func (g *timerGroup) scheduleTextFade() tea.Cmd {
	return g.schedule(textFadeDelay, textFadeMsg{epoch: g.epoch})
}

func (g *timerGroup) scheduleProgressTick() tea.Cmd {
	return g.schedule(tickInterval, progressTickMsg{epoch: g.epoch, gen: g.gen})
}

func (g *timerGroup) scheduleAutoAdvance(step script.Step) tea.Cmd {
	if step.Final || step.Duration <= 0 {
		return nil
	}
	return g.schedule(step.Duration, autoAdvanceMsg{epoch: g.epoch, gen: g.gen})
}
