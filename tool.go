package curvy

import "fmt"

// Tool is an interactive shape editor placed on the canvas.
type Tool interface {
	Mode() Mode
	Bounds() Rect
	Polygon() Polygon
	InitialPoints() []float64
	DrawHandles(g Graphics)
	// CheckPointForDrag decides which handler takes over a pointer press at
	// p. A nil result means no interaction starts.
	CheckPointForDrag(p Vec2) InputHandler
	Tools() []ToolButton
	ShowTools()
	HideTools()
}

// Handle and guide colors.
var (
	colorBounds   = RGB(0xffffff)
	colorTangent  = RGB(0xffaacc)
	colorEndpoint = RGB(0xff4444)
	colorControl  = RGB(0xaaff44)
	colorOutline  = RGB(0x000000)
)

// BezierTool is the shared base of the curve tools: it owns the mode and the
// configuration and knows how to draw the generic decorations.
type BezierTool struct {
	Config   Config
	settings *Settings
	toolbar  Toolbar

	mode         Mode
	onModeChange func(from, to Mode)
}

func newBezierTool(opts []ToolOption) BezierTool {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return BezierTool{
		Config:       o.config,
		settings:     o.settings,
		toolbar:      o.toolbar,
		onModeChange: o.onModeChange,
	}
}

// Mode returns the current placement mode.
func (t *BezierTool) Mode() Mode { return t.mode }

// Settings returns the shared settings cell the tool reads.
func (t *BezierTool) Settings() *Settings { return t.settings }

// SetToolbar attaches the toolbar that ShowTools and HideTools drive.
func (t *BezierTool) SetToolbar(tb Toolbar) { t.toolbar = tb }

// SetMode transitions the tool to m.
func (t *BezierTool) SetMode(m Mode) {
	from := t.mode
	t.mode = m
	logger.Debug("tool mode", "from", from, "to", m)
	if t.onModeChange != nil {
		t.onModeChange(from, m)
	}
}

func (t *BezierTool) drawBoundingBox(g Graphics, b Rect) {
	g.LineStyle(1, colorBounds, 0.5, 0.5).
		DrawRect(b.X, b.Y, b.Width, b.Height)
}

func (t *BezierTool) drawHandle(g Graphics, c Color, p Vec2) {
	g.BeginFill(c).
		LineStyle(t.Config.LineSize, colorOutline, 1, 0.5).
		DrawCircle(p.X, p.Y, t.Config.HandleRadius).
		EndFill()
}

// drawSegmentLabel writes the wall segment count above the bounds.
func (t *BezierTool) drawSegmentLabel(g Graphics, b Rect) {
	g.DrawText(b.X, b.Y-2*t.Config.HandleRadius, fmt.Sprintf("%d segments", t.Config.Segments))
}
