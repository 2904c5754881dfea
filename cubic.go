package curvy

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// LockButtonName is the toolbar name of the lock toggle.
const LockButtonName = "cubiclock"

// ErrInvalidData is returned when restoring a tool from malformed point data.
var ErrInvalidData = errors.New("curvy: invalid point data")

// cubicInitializer places the endpoints and derives default control points
// perpendicular to the chord, at two thirds of its length.
type cubicInitializer struct {
	*InitializerHandler
	tool *CubicTool
}

// Start collapses all four points onto the press location.
func (h *cubicInitializer) Start(origin Vec2, ev PointerEvent) {
	h.InitializerHandler.Start(origin, ev)
	h.tool.ControlA = origin
	h.tool.ControlB = origin
}

func (h *cubicInitializer) Move(origin, destination Vec2, ev PointerEvent) {
	h.InitializerHandler.Move(origin, destination, ev)

	t := h.tool
	dx := t.LineB.X - t.LineA.X
	dy := t.LineB.Y - t.LineA.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	dx /= length
	dy /= length
	bar := length * (2.0 / 3.0)
	t.ControlA.Set(t.LineA.X+dy*bar, t.LineA.Y-dx*bar)
	t.ControlB.Set(t.LineB.X+dy*bar, t.LineB.Y-dx*bar)
}

// CubicTool edits a cubic curve given by two endpoints and two control
// points.
type CubicTool struct {
	BezierTool

	LineA, LineB       Vec2
	ControlA, ControlB Vec2
}

var _ Tool = (*CubicTool)(nil)

// NewCubicTool returns an unplaced cubic tool.
func NewCubicTool(opts ...ToolOption) *CubicTool {
	return &CubicTool{BezierTool: newBezierTool(opts)}
}

// Handles returns the tool's points in label order: LineA, ControlA,
// ControlB, LineB.
func (t *CubicTool) Handles() []*Vec2 {
	return []*Vec2{&t.LineA, &t.ControlA, &t.ControlB, &t.LineB}
}

// Bounds returns the bounding box of all four points.
func (t *CubicTool) Bounds() Rect {
	return BoundsOf(t.LineA, t.LineB, t.ControlA, t.ControlB)
}

// Polygon returns the quad used for body hit-testing. It approximates the
// curve by its control polygon in the order LineA, LineB, ControlA, ControlB.
func (t *CubicTool) Polygon() Polygon {
	return Polygon{Points: []Vec2{t.LineA, t.LineB, t.ControlA, t.ControlB}}
}

// InitialPoints returns the point data of an unplaced shape.
func (t *CubicTool) InitialPoints() []float64 {
	return make([]float64, 8)
}

// Data returns the points flattened in handle order.
func (t *CubicTool) Data() []float64 {
	data := make([]float64, 0, 8)
	for _, p := range t.Handles() {
		data = append(data, p.X, p.Y)
	}
	return data
}

// Restore sets the points from data in the layout returned by Data and marks
// the tool placed.
func (t *CubicTool) Restore(data []float64) error {
	if len(data) != 8 {
		logger.Warn("restore rejected", "len", len(data))
		return fmt.Errorf("restore cubic: got %d values, want 8: %w", len(data), ErrInvalidData)
	}
	bez := curve.CubicBez{
		P0: curve.Pt(data[0], data[1]),
		P1: curve.Pt(data[2], data[3]),
		P2: curve.Pt(data[4], data[5]),
		P3: curve.Pt(data[6], data[7]),
	}
	if bez.IsNaN() || bez.IsInf() {
		logger.Warn("restore rejected", "data", data)
		return fmt.Errorf("restore cubic: non-finite value in %v: %w", data, ErrInvalidData)
	}
	for i, p := range t.Handles() {
		p.Set(data[2*i], data[2*i+1])
	}
	t.SetMode(ModePlaced)
	return nil
}

// DrawHandles draws the editing decorations. Nothing is drawn before
// placement starts.
func (t *CubicTool) DrawHandles(g Graphics) {
	if t.mode == ModeNotPlaced {
		return
	}
	b := t.Bounds()
	t.drawBoundingBox(g, b)
	g.BeginFill(colorTangent).
		LineStyle(t.Config.LineSize, colorTangent, 1, 0.5).
		MoveTo(t.LineA.X, t.LineA.Y).
		LineTo(t.ControlA.X, t.ControlA.Y).
		MoveTo(t.LineB.X, t.LineB.Y).
		LineTo(t.ControlB.X, t.ControlB.Y).
		EndFill()
	t.drawSegmentLabel(g, b)
	t.drawHandle(g, colorEndpoint, t.LineA)
	t.drawHandle(g, colorEndpoint, t.LineB)
	t.drawHandle(g, colorControl, t.ControlA)
	t.drawHandle(g, colorControl, t.ControlB)
}

// HandleAt returns the first handle within the hit radius of p, checked in
// the order LineA, LineB, ControlA, ControlB. Overlaps resolve by that order,
// not by distance.
func (t *CubicTool) HandleAt(p Vec2) (*Vec2, bool) {
	for _, h := range []*Vec2{&t.LineA, &t.LineB, &t.ControlA, &t.ControlB} {
		if PointNearPoint(p, *h, t.Config.HandleRadius) {
			return h, true
		}
	}
	return nil, false
}

// CheckPointForDrag picks the handler for a press at p. The first press on
// an unplaced tool starts placement; afterwards endpoints, control points,
// then the body are tried in that order.
func (t *CubicTool) CheckPointForDrag(p Vec2) InputHandler {
	if t.mode == ModeNotPlaced {
		t.SetMode(ModePlacing)
		return &cubicInitializer{
			InitializerHandler: NewInitializerHandler(&t.LineA, &t.LineB,
				func() { t.SetMode(ModePlaced) },
				func() { t.SetMode(ModeNotPlaced) }),
			tool: t,
		}
	}

	if h, ok := t.HandleAt(p); ok {
		switch h {
		case &t.LineA:
			return t.endpointHandler(&t.LineA, &t.ControlA)
		case &t.LineB:
			return t.endpointHandler(&t.LineB, &t.ControlB)
		default:
			return NewPointHandler(h)
		}
	}

	if t.Polygon().Contains(p.X, p.Y) {
		return NewPointArrayHandler(t.Handles())
	}
	return nil
}

func (t *CubicTool) endpointHandler(end, control *Vec2) InputHandler {
	if t.settings.LockHandles {
		return NewMagnetHandler(end, control)
	}
	return NewPointHandler(end)
}

// Tools returns the lock toggle shown while the tool is active.
func (t *CubicTool) Tools() []ToolButton {
	class := "toggle"
	if t.settings.LockHandles {
		class += " active"
	}
	return []ToolButton{{
		Icon:  "fas fa-lock",
		Name:  LockButtonName,
		Title: "df-curvy-walls.cubic_lock_handles",
		Class: class,
		Style: "display:none",
		OnClick: func(b ButtonState) {
			enabled := b.HasClass("active")
			t.settings.LockHandles = !enabled
			if enabled {
				b.RemoveClass("active")
			} else {
				b.AddClass("active")
			}
			logger.Debug("lock handles", "enabled", !enabled)
		},
	}}
}

// ShowTools reveals the lock toggle.
func (t *CubicTool) ShowTools() {
	if t.toolbar != nil {
		t.toolbar.SetVisible(LockButtonName, true)
	}
}

// HideTools hides the lock toggle.
func (t *CubicTool) HideTools() {
	if t.toolbar != nil {
		t.toolbar.SetVisible(LockButtonName, false)
	}
}
