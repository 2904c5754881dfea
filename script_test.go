package curvy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{
		"steps": [
			{"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4},
			{"action": "lock"},
			{"action": "wait", "frames": 2}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, s.steps, 3)
	assert.Equal(t, "drag", s.steps[0].Action)
	assert.Equal(t, 90.0, s.steps[0].ToX)
	assert.Equal(t, 2, s.steps[2].Frames)
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse script")
		})
	}
}

func TestScriptRunPlaceThenEdit(t *testing.T) {
	settings := &Settings{LockHandles: true}
	tool := NewCubicTool(WithSettings(settings))
	d := NewDispatcher(tool)

	s, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 4},
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 0, "toY": 10, "frames": 3},
		{"action": "lock"},
		{"action": "drag", "fromX": 90, "fromY": 0, "toX": 90, "toY": 10, "frames": 3}
	]}`))
	require.NoError(t, err)

	frames := s.Run(d)
	require.True(t, s.Done())
	assert.Greater(t, frames, 10)
	assert.Equal(t, ModePlaced, tool.Mode())
	assert.False(t, settings.LockHandles)

	// Locked drag carried controlA with lineA; the unlocked one left
	// controlB behind.
	diff(t, Pt(0, 10), tool.LineA)
	diff(t, Pt(0, -50), tool.ControlA, approx)
	diff(t, Pt(90, 10), tool.LineB)
	diff(t, Pt(90, -60), tool.ControlB, approx)
}

func TestScriptStepWait(t *testing.T) {
	d := NewDispatcher(NewCubicTool(WithSettings(&Settings{})))
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 1, "y": 1}
	]}`))
	require.NoError(t, err)

	s.Step(d) // wait executes, two more frames to count down
	s.Step(d)
	s.Step(d)
	require.Zero(t, d.Pending())
	require.False(t, s.Done())

	s.Step(d) // press queued
	require.Equal(t, 1, d.Pending())
	require.False(t, s.Done())

	d.Update()
	s.Step(d)
	require.True(t, s.Done())
}

func TestScriptCancel(t *testing.T) {
	tool := NewCubicTool(WithSettings(&Settings{}))
	d := NewDispatcher(tool)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "x": 0, "y": 0},
		{"action": "move", "x": 40, "y": 0},
		{"action": "cancel"},
		{"action": "release", "x": 40, "y": 0}
	]}`))
	require.NoError(t, err)
	s.Run(d)
	assert.Equal(t, ModeNotPlaced, tool.Mode())
	diff(t, Pt(40, 0), tool.LineB)
}

type clickCounter struct {
	clicks []string
}

func (c *clickCounter) Click(name string) bool {
	c.clicks = append(c.clicks, name)
	return true
}

func TestScriptLockUsesToolbar(t *testing.T) {
	settings := &Settings{LockHandles: true}
	d := NewDispatcher(NewCubicTool(WithSettings(settings)))

	s, err := LoadScript([]byte(`{"steps": [{"action": "lock"}, {"action": "lock"}]}`))
	require.NoError(t, err)
	var tb clickCounter
	s.UseToolbar(&tb)
	s.Run(d)

	assert.Equal(t, []string{LockButtonName, LockButtonName}, tb.clicks)
	assert.True(t, settings.LockHandles, "the toolbar owns the click")
}
