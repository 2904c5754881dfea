package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/curvy"
)

// RunConfig configures the editor window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the window before each frame. The zero value uses a
	// dark slate.
	ClearColor curvy.Color
	// Script, if set, is played one step per frame through the window's
	// dispatcher and toolbar.
	Script *curvy.Script
}

var defaultClear = curvy.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}

const helpText = "drag: place/edit   L: lock handles   Esc/right click: cancel"

// Game is an ebiten.Game editing one cubic tool.
type Game struct {
	tool       *curvy.CubicTool
	dispatcher *curvy.Dispatcher
	toolbar    *Toolbar
	canvas     *Canvas
	hover      hoverPulse
	script     *curvy.Script
	cfg        RunConfig
}

// NewGame wires tool to mouse input, a toolbar and a canvas.
func NewGame(tool *curvy.CubicTool, cfg RunConfig) *Game {
	if cfg.ClearColor == (curvy.Color{}) {
		cfg.ClearColor = defaultClear
	}
	tb := NewToolbar(tool.Tools())
	tool.SetToolbar(tb)
	tool.ShowTools()
	g := &Game{
		tool:       tool,
		dispatcher: curvy.NewDispatcher(tool),
		toolbar:    tb,
		canvas:     &Canvas{},
		cfg:        cfg,
	}
	if cfg.Script != nil {
		g.Play(cfg.Script)
	}
	return g
}

// Dispatcher exposes the input dispatcher.
func (g *Game) Dispatcher() *curvy.Dispatcher { return g.dispatcher }

// Play starts s on the next frame. Its lock clicks go through the window's
// toolbar.
func (g *Game) Play(s *curvy.Script) {
	s.UseToolbar(g.toolbar)
	g.script = s
}

// Playing reports whether a script is still running.
func (g *Game) Playing() bool { return g.script != nil }

// stepScript runs one frame of the playing script. The mouse is ignored
// until it finishes.
func (g *Game) stepScript() {
	g.script.Step(g.dispatcher)
	g.dispatcher.Update()
	if g.script.Done() {
		g.script = nil
	}
}

func (g *Game) Update() error {
	if g.script != nil {
		g.stepScript()
	} else if !g.dispatcher.Update() {
		mx, my := ebiten.CursorPosition()
		ev := curvy.PointerEvent{Button: curvy.MouseButtonLeft}
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			ev.Button = curvy.MouseButtonRight
			pressed = true
		}
		g.dispatcher.Pointer(float64(mx), float64(my), pressed, ev)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.dispatcher.Cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.toolbar.Click(curvy.LockButtonName)
	}

	var hovered *curvy.Vec2
	if g.tool.Mode() == curvy.ModePlaced && g.dispatcher.Active() == nil {
		hovered, _ = g.tool.HandleAt(g.dispatcher.Hover())
	}
	g.hover.track(hovered)
	g.hover.update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.cfg.ClearColor
	screen.Fill(color.RGBA{uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255), uint8(c.A * 255)})

	g.canvas.Target = screen
	if g.tool.Mode() != curvy.ModeNotPlaced {
		g.canvas.drawPolyline(g.tool.Curve(0), 3, curvy.RGB(0xffffff))
	}
	g.tool.DrawHandles(g.canvas)
	g.hover.draw(g.canvas, g.tool.Config.HandleRadius)

	g.toolbar.draw(screen, 4, 4)
	ebitenutil.DebugPrintAt(screen, helpText, 4, screen.Bounds().Dy()-16)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window editing tool and blocks until it is closed.
func Run(tool *curvy.CubicTool, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "curvy"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(NewGame(tool, cfg))
}
