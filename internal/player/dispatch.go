package player

import (
	"github.com/cadencehq/walkthrough/internal/logbook"
	"github.com/cadencehq/walkthrough/internal/script"
)

// Dispatcher translates a step's declarative action into exactly one host
// call. It holds no per-step state: exactly-once delivery comes from each
// activation scheduling a single one-shot action timer, with stale firings
// filtered out by token before they reach Dispatch.
type Dispatcher struct {
	host Host
	log  *logbook.Logbook
}

// NewDispatcher builds a dispatcher for the given host. The logbook may be
// nil.
func NewDispatcher(host Host, log *logbook.Logbook) *Dispatcher {
	return &Dispatcher{host: host, log: log}
}

// Dispatch performs the host call an action describes. Unknown kinds are
// logged and skipped rather than failing the walkthrough.
func (d *Dispatcher) Dispatch(action script.Action) {
	switch action.Kind {
	case script.ActionNone:
	case script.ActionClearSelection:
		d.host.ClearSelection()
	case script.ActionSelectEntity:
		d.host.SelectEntity(action.EntityID)
	case script.ActionSetFlag:
		d.host.SetFlag(action.Flag, action.Value)
	default:
		d.log.Warn("ignoring step action with unknown kind %d", int(action.Kind))
	}
}

// Reset returns the host to its baseline state: selection cleared and the
// knowledge-loss flag lowered.
func (d *Dispatcher) Reset() {
	d.host.ClearSelection()
	d.host.SetFlag(FlagKnowledgeLoss, false)
}
