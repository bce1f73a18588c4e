// Package script holds the walkthrough script data model: an ordered,
// immutable sequence of steps, each binding a dashboard view, narration, a
// duration, an optional host action, and an optional scroll anchor.
package script

import (
	"fmt"
	"strings"
	"time"
)

// ActionKind discriminates the side effect a step may request from the host.
type ActionKind int

const (
	// ActionNone marks a step without a host side effect.
	ActionNone ActionKind = iota
	// ActionClearSelection clears the highlighted entity on the host.
	ActionClearSelection
	// ActionSelectEntity highlights the entity named by Action.EntityID.
	ActionSelectEntity
	// ActionSetFlag sets the host flag Action.Flag to Action.Value.
	ActionSetFlag
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionClearSelection:
		return "clear-selection"
	case ActionSelectEntity:
		return "select-entity"
	case ActionSetFlag:
		return "set-flag"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a step's declarative side effect. The compact wire form is parsed
// exactly once, at load time; dispatch only ever switches on Kind.
type Action struct {
	Kind     ActionKind
	EntityID string
	Flag     string
	Value    bool
}

// Step is one unit of the walkthrough.
type Step struct {
	ID           string
	Chapter      string
	Tab          string
	Narration    string
	Subtext      string
	Duration     time.Duration
	Action       Action
	ScrollTarget string
	Final        bool
}

// Script is an immutable ordered sequence of steps. Exactly one step is
// final and it is the last one; every non-final step carries a positive
// duration. Construction fails on any violation.
type Script struct {
	name  string
	steps []Step
}

// New validates the steps and builds a script around a private copy of them.
func New(name string, steps []Step) (*Script, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "walkthrough"
	}
	if err := validateSteps(name, steps); err != nil {
		return nil, err
	}
	owned := make([]Step, len(steps))
	copy(owned, steps)
	return &Script{name: name, steps: owned}, nil
}

// MustNew is New for compiled-in scripts, where a violation is a programming
// error.
func MustNew(name string, steps []Step) *Script {
	s, err := New(name, steps)
	if err != nil {
		panic(err)
	}
	return s
}

func validateSteps(name string, steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("script %s: at least one step is required", name)
	}
	seen := map[string]struct{}{}
	sawFinal := false
	for idx, step := range steps {
		id := strings.TrimSpace(step.ID)
		if id == "" {
			return fmt.Errorf("script %s step[%d]: id is required", name, idx)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("script %s: duplicate step id %s", name, id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(step.Tab) == "" {
			return fmt.Errorf("script %s step %s: tab is required", name, id)
		}
		if step.Final {
			sawFinal = true
			if idx != len(steps)-1 {
				return fmt.Errorf("script %s: final step %s must be the last entry", name, id)
			}
		} else if step.Duration <= 0 {
			return fmt.Errorf("script %s step %s: duration must be positive", name, id)
		}
	}
	if !sawFinal {
		return fmt.Errorf("script %s: the last step must be marked final", name)
	}
	return nil
}

// Name returns the script's display name.
func (s *Script) Name() string { return s.name }

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// LastIndex returns the index of the final step.
func (s *Script) LastIndex() int { return len(s.steps) - 1 }

// Step returns the step at index i. The index must be in range.
func (s *Script) Step(i int) Step { return s.steps[i] }

// Steps returns a copy of the step sequence.
func (s *Script) Steps() []Step {
	dup := make([]Step, len(s.steps))
	copy(dup, s.steps)
	return dup
}

// ClampIndex maps any integer onto the valid index range.
func (s *Script) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > s.LastIndex() {
		return s.LastIndex()
	}
	return i
}

// Chapters returns the distinct chapter labels in first-appearance order.
func (s *Script) Chapters() []string {
	seen := map[string]struct{}{}
	var ordered []string
	for _, step := range s.steps {
		if _, ok := seen[step.Chapter]; ok {
			continue
		}
		seen[step.Chapter] = struct{}{}
		ordered = append(ordered, step.Chapter)
	}
	return ordered
}

// ChapterIndex returns the position of step i's chapter within Chapters.
func (s *Script) ChapterIndex(i int) int {
	chapter := s.steps[s.ClampIndex(i)].Chapter
	for pos, label := range s.Chapters() {
		if label == chapter {
			return pos
		}
	}
	return 0
}
