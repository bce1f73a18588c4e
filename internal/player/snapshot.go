package player

import "github.com/cadencehq/walkthrough/internal/script"

// ChapterState positions a chapter dot relative to the current step.
type ChapterState int

const (
	ChapterCompleted ChapterState = iota
	ChapterCurrent
	ChapterUpcoming
)

// ChapterDot is one entry of the chapter rail shown above the narration.
type ChapterDot struct {
	Label string
	State ChapterState
}

// Snapshot is a read-only view of the player for rendering. The render
// surface works exclusively from snapshots so that drawing can never
// mutate playback state.
type Snapshot struct {
	Active      bool
	Paused      bool
	ScriptName  string
	Index       int
	StepCount   int
	Step        script.Step
	Progress    float64
	TextVisible bool
	OverallPct  float64
	Chapters    []ChapterDot
}

// Snapshot captures the current playback state.
func (p *Player) Snapshot() Snapshot {
	snap := Snapshot{
		Active:      p.active,
		Paused:      p.paused,
		ScriptName:  p.script.Name(),
		Index:       p.index,
		StepCount:   p.script.Len(),
		Step:        p.script.Step(p.index),
		Progress:    p.progress,
		TextVisible: p.textVisible,
	}
	if snap.StepCount > 0 {
		snap.OverallPct = float64(p.index+1) / float64(snap.StepCount) * 100
	}
	chapters := p.script.Chapters()
	if len(chapters) == 0 {
		return snap
	}
	current := p.script.ChapterIndex(p.index)
	snap.Chapters = make([]ChapterDot, len(chapters))
	for i, label := range chapters {
		state := ChapterUpcoming
		switch {
		case i < current:
			state = ChapterCompleted
		case i == current:
			state = ChapterCurrent
		}
		snap.Chapters[i] = ChapterDot{Label: label, State: state}
	}
	return snap
}
