package curvy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(d *Dispatcher) {
	for d.Update() {
	}
}

func TestDispatcherPlacement(t *testing.T) {
	tool := NewCubicTool(WithSettings(&Settings{LockHandles: true}))
	d := NewDispatcher(tool)

	d.InjectDrag(0, 0, 10, 0, 3)
	require.Equal(t, 3, d.Pending())

	require.True(t, d.Update()) // press
	require.Equal(t, ModePlacing, tool.Mode())
	require.NotNil(t, d.Active())

	drain(d)
	require.Nil(t, d.Active())
	require.Equal(t, ModePlaced, tool.Mode())
	diff(t, Pt(0, 0), tool.LineA)
	diff(t, Pt(10, 0), tool.LineB)
	diff(t, Pt(0, -20.0/3), tool.ControlA, approx)
	diff(t, Pt(10, -20.0/3), tool.ControlB, approx)
}

func TestDispatcherClickWithoutDragFailsPlacement(t *testing.T) {
	tool := NewCubicTool(WithSettings(&Settings{}))
	d := NewDispatcher(tool)

	d.InjectPress(40, 40)
	d.InjectRelease(40, 40)
	drain(d)
	require.Equal(t, ModeNotPlaced, tool.Mode())
}

func TestDispatcherDeadZone(t *testing.T) {
	tool := archTool(t, false)
	d := NewDispatcher(tool)

	// Small wiggle inside the dead zone leaves the handle alone.
	d.InjectPress(0, 0)
	d.InjectMove(2, 2)
	d.InjectRelease(2, 2)
	drain(d)
	diff(t, Pt(0, 0), tool.LineA)

	d.SetDragDeadZone(0)
	d.InjectPress(0, 0)
	d.InjectMove(2, 2)
	d.InjectRelease(3, 3)
	drain(d)
	diff(t, Pt(3, 3), tool.LineA)
}

func TestDispatcherCancelKeepsPoints(t *testing.T) {
	tool := NewCubicTool(WithSettings(&Settings{}))
	d := NewDispatcher(tool)

	d.InjectPress(0, 0)
	d.InjectMove(50, 0)
	d.InjectCancel()
	d.InjectMove(80, 0)
	d.InjectRelease(80, 0)
	drain(d)

	assert.Equal(t, ModeNotPlaced, tool.Mode())
	assert.Nil(t, d.Active())
	// Moves after the cancel are ignored; earlier ones are not rolled back.
	diff(t, Pt(50, 0), tool.LineB)

	// The next press starts a new placement.
	d.InjectDrag(0, 0, 0, 30, 4)
	drain(d)
	assert.Equal(t, ModePlaced, tool.Mode())
}

func TestDispatcherMissDoesNothing(t *testing.T) {
	tool := archTool(t, true)
	before := tool.Data()
	d := NewDispatcher(tool)

	d.InjectDrag(300, 300, 400, 400, 4)
	drain(d)
	assert.Equal(t, before, tool.Data())
	assert.Equal(t, ModePlaced, tool.Mode())
}

func TestDispatcherBodyDrag(t *testing.T) {
	tool := archTool(t, true)
	d := NewDispatcher(tool)

	d.InjectDrag(50, -20, 70, 10, 5)
	drain(d)
	diff(t, []float64{20, 30, 20, -70, 120, -70, 120, 30}, tool.Data(), approx)
}

func TestDispatcherHover(t *testing.T) {
	d := NewDispatcher(NewCubicTool(WithSettings(&Settings{})))
	d.Pointer(12, 34, false, PointerEvent{})
	diff(t, Pt(12, 34), d.Hover())
	require.Equal(t, ModeNotPlaced, d.Tool().Mode())
}

func TestInjectDragFrames(t *testing.T) {
	d := NewDispatcher(NewCubicTool(WithSettings(&Settings{})))
	d.InjectDrag(0, 0, 100, 0, 1)
	require.Equal(t, 2, d.Pending(), "minimum drag is press + release")
	drain(d)
	require.False(t, d.Update())
}

func TestDispatcherPlacingBoundsFollowPress(t *testing.T) {
	tool := NewCubicTool(WithSettings(&Settings{}))
	d := NewDispatcher(tool)

	// A cancelled placement leaves derived controls behind.
	d.InjectPress(0, 0)
	d.InjectMove(60, 0)
	d.InjectCancel()
	d.InjectRelease(60, 0)
	drain(d)
	require.Equal(t, ModeNotPlaced, tool.Mode())
	require.NotEqual(t, Pt(0, 0), tool.ControlA)

	// Press, then wiggle inside the dead zone.
	d.Pointer(200, 200, true, PointerEvent{})
	d.Pointer(202, 201, true, PointerEvent{})
	require.Equal(t, ModePlacing, tool.Mode())
	assert.Equal(t, Rect{X: 200, Y: 200}, tool.Bounds())
	for _, p := range tool.Handles() {
		diff(t, Pt(200, 200), *p)
	}

	var rec Recorder
	tool.DrawHandles(&rec)
	require.NotEmpty(t, rec.Calls)
	assert.Equal(t, "drawRect(200,200,0,0)", rec.Calls[1])
}

func TestDispatcherSecondaryButtonCancels(t *testing.T) {
	tool := archTool(t, false)
	d := NewDispatcher(tool)
	d.SetDragDeadZone(0)

	d.Pointer(0, 0, true, PointerEvent{})
	d.Pointer(10, 10, true, PointerEvent{})
	require.NotNil(t, d.Active())

	d.Pointer(10, 10, true, PointerEvent{Button: MouseButtonRight})
	assert.Nil(t, d.Active())

	// The rest of the held press is ignored.
	d.Pointer(40, 40, true, PointerEvent{})
	d.Pointer(40, 40, false, PointerEvent{})
	diff(t, Pt(10, 10), tool.LineA)

	// A secondary press never starts a gesture.
	d.Pointer(100, 0, true, PointerEvent{Button: MouseButtonRight})
	assert.Nil(t, d.Active())
	diff(t, Pt(100, 0), d.Hover())
	d.Pointer(100, 0, false, PointerEvent{})
	d.Pointer(130, 0, false, PointerEvent{})
	diff(t, Pt(100, 0), tool.LineB)
}
