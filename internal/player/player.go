// Package player implements the scripted walkthrough orchestrator: a state
// machine over one script, a per-step timer group, and the dispatcher that
// relays step actions to the host dashboard.
//
// The player is built for a bubbletea program loop. Every deferred callback
// is a message scheduled through a ScheduleFunc and applied in Update; key
// presses arrive through HandleKey. There is no locking because the event
// loop is the only writer, and there is no blocking wait anywhere: waiting
// is always a scheduled message. Each message carries the timer tokens it
// was scheduled under, and a message whose tokens no longer match the live
// ones is dropped without effect.
package player

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/cadencehq/walkthrough/internal/logbook"
	"github.com/cadencehq/walkthrough/internal/script"
)

// FlagKnowledgeLoss is the host flag the site tour raises to demonstrate
// what a site loses when coordinator knowledge walks out the door. Closing
// the player always lowers it again.
const FlagKnowledgeLoss = "knowledgeLoss"

// Host is the surface the walkthrough drives on the embedding dashboard.
// Calls are fire-and-forget: the player never waits on a host effect, and a
// host asked to scroll to an anchor it does not know simply ignores the
// request.
type Host interface {
	SwitchTab(tab string)
	SelectEntity(id string)
	ClearSelection()
	SetFlag(name string, value bool)
	ScrollTo(anchor string)
	ResetScroll()
}

// Option customizes a Player instance.
type Option func(*Player)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(p *Player) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithSchedule overrides how deferred messages are scheduled. Tests inject a
// recording scheduler and deliver the captured messages by hand.
func WithSchedule(schedule ScheduleFunc) Option {
	return func(p *Player) {
		if schedule != nil {
			p.timers.schedule = schedule
		}
	}
}

// WithLogbook routes player activity into a session logbook.
func WithLogbook(book *logbook.Logbook) Option {
	return func(p *Player) {
		p.log = book
	}
}

// Player holds the walkthrough playback state. All mutation goes through
// Activate, Advance, Retreat, Seek, TogglePause, Close, and Update; nothing
// else writes the fields.
type Player struct {
	script     *script.Script
	dispatcher *Dispatcher
	host       Host
	log        *logbook.Logbook
	clock      func() time.Time
	timers     timerGroup

	active      bool
	paused      bool
	index       int
	progress    float64
	textVisible bool

	// baseline is the progress fraction ticking restarts from after a
	// resume; tickingSince marks when the current ticking run began.
	baseline     float64
	tickingSince time.Time
	runID        string
}

// New wires a player to a validated script and a host dashboard.
func New(s *script.Script, host Host, opts ...Option) (*Player, error) {
	if s == nil {
		return nil, fmt.Errorf("player: script is required")
	}
	if host == nil {
		return nil, fmt.Errorf("player: host is required")
	}
	p := &Player{
		script: s,
		host:   host,
		clock:  time.Now,
		timers: timerGroup{schedule: defaultSchedule},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.dispatcher = NewDispatcher(host, p.log)
	return p, nil
}

// Active reports whether a walkthrough session is running.
func (p *Player) Active() bool { return p.active }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// Index returns the current step index.
func (p *Player) Index() int { return p.index }

// Progress returns the elapsed fraction of the current step in [0, 1].
func (p *Player) Progress() float64 { return p.progress }

// TextVisible reports whether the narration text should currently be shown.
// It flips to false on every step change and back to true shortly after, so
// the render surface can re-trigger its fade-in.
func (p *Player) TextVisible() bool { return p.textVisible }

// CurrentStep returns the step the player is settled on.
func (p *Player) CurrentStep() script.Step { return p.script.Step(p.index) }

// Script returns the script being played.
func (p *Player) Script() *script.Script { return p.script }

// RunID identifies the current activation; it changes on every Activate.
func (p *Player) RunID() string { return p.runID }

// Activate starts playback from step zero. It is a no-op while a session is
// already running.
func (p *Player) Activate() tea.Cmd {
	if p.active {
		return nil
	}
	p.active = true
	p.paused = false
	p.runID = uuid.NewString()
	p.log.Info("walkthrough %q started · run %s", p.script.Name(), p.runID)
	return p.seek(0)
}

// Advance moves to the next step. Once the final step is reached it is a
// no-op until the player is closed and reactivated.
func (p *Player) Advance() tea.Cmd {
	if !p.active || p.index >= p.script.LastIndex() {
		return nil
	}
	return p.seek(p.index + 1)
}

// Retreat moves to the previous step; a no-op on the first one.
func (p *Player) Retreat() tea.Cmd {
	if !p.active || p.index <= 0 {
		return nil
	}
	return p.seek(p.index - 1)
}

// Seek jumps straight to step i, clamped to the script bounds. Seeking
// counts as a fresh activation of the target step: its timers are scheduled
// anew and its action will be dispatched again.
func (p *Player) Seek(i int) tea.Cmd {
	if !p.active {
		return nil
	}
	return p.seek(p.script.ClampIndex(i))
}

// seek is the single transition point for index changes. The previous
// step's timer group is cancelled before anything belonging to the new step
// is scheduled, so a timer that fires late can never mutate state for a
// step that is no longer current.
func (p *Player) seek(i int) tea.Cmd {
	p.timers.cancelAll()
	p.index = i
	step := p.script.Step(i)
	p.progress = 0
	p.baseline = 0
	p.textVisible = false
	p.tickingSince = p.clock()
	p.host.SwitchTab(step.Tab)
	p.log.Info("step %s (%d/%d) · chapter %s", step.ID, i+1, p.script.Len(), step.Chapter)
	return p.timers.enterStep(step, p.paused)
}

// TogglePause flips the paused flag. Pausing cancels the progress ticker
// and the pending auto-advance outright. Resuming restarts ticking from the
// current progress baseline and schedules a fresh full-duration
// auto-advance; the exact remaining time from before the pause is not
// preserved.
func (p *Player) TogglePause() tea.Cmd {
	if !p.active {
		return nil
	}
	p.paused = !p.paused
	step := p.script.Step(p.index)
	if p.paused {
		p.timers.cancelTicking()
		p.baseline = p.progress
		p.log.Info("paused on step %s", step.ID)
		return nil
	}
	p.baseline = p.progress
	p.tickingSince = p.clock()
	p.log.Info("resumed on step %s", step.ID)
	return p.timers.startTicking(step)
}

// Close ends the session, cancels every outstanding timer, and restores the
// host to its baseline: selection cleared and the knowledge-loss flag
// lowered, as if the walkthrough never ran. A no-op while inactive.
func (p *Player) Close() tea.Cmd {
	if !p.active {
		return nil
	}
	p.timers.cancelAll()
	step := p.script.Step(p.index)
	p.active = false
	p.paused = false
	p.index = 0
	p.progress = 0
	p.baseline = 0
	p.textVisible = false
	p.dispatcher.Reset()
	p.log.Info("walkthrough closed on step %s · run %s", step.ID, p.runID)
	return nil
}

// Update applies a timer message to the player. Messages that do not belong
// to the player, or whose tokens are stale, fall through without effect.
func (p *Player) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case actionFireMsg:
		if !p.timers.owns(m.epoch) || !p.active {
			return nil
		}
		p.dispatcher.Dispatch(p.script.Step(p.index).Action)
		return nil
	case scrollFireMsg:
		if !p.timers.owns(m.epoch) || !p.active {
			return nil
		}
		if target := p.script.Step(p.index).ScrollTarget; target != "" {
			p.host.ScrollTo(target)
		} else {
			p.host.ResetScroll()
		}
		return nil
	case textFadeMsg:
		if !p.timers.owns(m.epoch) || !p.active {
			return nil
		}
		p.textVisible = true
		return nil
	case progressTickMsg:
		if !p.timers.ownsTicking(m.epoch, m.gen) || !p.active || p.paused {
			return nil
		}
		if step := p.script.Step(p.index); step.Duration > 0 {
			elapsed := p.clock().Sub(p.tickingSince)
			p.progress = clampFraction(p.baseline + float64(elapsed)/float64(step.Duration))
		}
		return p.timers.scheduleProgressTick()
	case autoAdvanceMsg:
		if !p.timers.ownsTicking(m.epoch, m.gen) || !p.active || p.paused {
			return nil
		}
		if p.script.Step(p.index).Final {
			return nil
		}
		return p.Advance()
	default:
		return nil
	}
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
