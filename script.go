package curvy

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true,
	"cancel": true, "lock": true, "wait": true,
}

// Script sequences injected pointer events and toolbar clicks across frames.
// Call Step once per frame before Dispatcher.Update, or use Run to play the
// whole script headlessly.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	toolbar   ButtonClicker
	lockState ButtonState
}

// ButtonClicker clicks toolbar buttons by name and reports whether a handler
// ran.
type ButtonClicker interface {
	Click(name string) bool
}

// UseToolbar routes the script's lock clicks through tb, so a rendered
// toolbar shows the same button state. Without one the script keeps its own.
func (s *Script) UseToolbar(tb ButtonClicker) {
	s.toolbar = tb
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run and all injected events drained.
func (s *Script) Done() bool {
	return s.done
}

// Run plays the script to completion against d, one frame per step.
// It returns the number of frames used.
func (s *Script) Run(d *Dispatcher) int {
	frames := 0
	for !s.done {
		s.Step(d)
		d.Update()
		frames++
	}
	return frames
}

// Step advances the script by one frame.
func (s *Script) Step(d *Dispatcher) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if d.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		d.InjectPress(st.X, st.Y)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "cancel":
		d.InjectCancel()
	case "lock":
		if s.toolbar != nil {
			s.toolbar.Click(LockButtonName)
		} else {
			s.clickLock(d.Tool())
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && d.Pending() == 0 {
		s.done = true
	}
}

// clickLock presses the tool's lock toggle, keeping the button state across
// clicks the way a rendered toolbar would.
func (s *Script) clickLock(t Tool) {
	for _, b := range t.Tools() {
		if b.Name != LockButtonName || b.OnClick == nil {
			continue
		}
		if s.lockState == nil {
			s.lockState = NewClassSet(b.Class)
		}
		b.OnClick(s.lockState)
		return
	}
}
