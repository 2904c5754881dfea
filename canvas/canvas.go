// Package canvas renders curvy tools onto ebiten images and runs an
// interactive editor window.
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/curvy"
)

// Canvas implements curvy.Graphics on an ebiten image. Set Target before
// each draw pass.
type Canvas struct {
	Target *ebiten.Image

	filling   bool
	fill      color.Color
	lineWidth float32
	line      color.Color
	penX      float32
	penY      float32
}

var _ curvy.Graphics = (*Canvas)(nil)

// NewCanvas returns a canvas drawing onto target.
func NewCanvas(target *ebiten.Image) *Canvas {
	return &Canvas{Target: target}
}

func toRGBA(c curvy.Color, alpha float64) color.Color {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(c.R*a*255 + 0.5),
		G: uint8(c.G*a*255 + 0.5),
		B: uint8(c.B*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func (c *Canvas) BeginFill(col curvy.Color) curvy.Graphics {
	c.filling = true
	c.fill = toRGBA(col, 1)
	return c
}

// LineStyle sets the stroke. Alignment is ignored; strokes are centered.
func (c *Canvas) LineStyle(width float64, col curvy.Color, alpha, _ float64) curvy.Graphics {
	c.lineWidth = float32(width)
	c.line = toRGBA(col, alpha)
	return c
}

func (c *Canvas) MoveTo(x, y float64) curvy.Graphics {
	c.penX, c.penY = float32(x), float32(y)
	return c
}

func (c *Canvas) LineTo(x, y float64) curvy.Graphics {
	if c.lineWidth > 0 && c.line != nil {
		vector.StrokeLine(c.Target, c.penX, c.penY, float32(x), float32(y), c.lineWidth, c.line, true)
	}
	c.penX, c.penY = float32(x), float32(y)
	return c
}

func (c *Canvas) DrawCircle(x, y, radius float64) curvy.Graphics {
	cx, cy, r := float32(x), float32(y), float32(radius)
	if c.filling {
		vector.DrawFilledCircle(c.Target, cx, cy, r, c.fill, true)
	}
	if c.lineWidth > 0 && c.line != nil {
		vector.StrokeCircle(c.Target, cx, cy, r, c.lineWidth, c.line, true)
	}
	return c
}

func (c *Canvas) DrawRect(x, y, width, height float64) curvy.Graphics {
	rx, ry, w, h := float32(x), float32(y), float32(width), float32(height)
	if c.filling {
		vector.DrawFilledRect(c.Target, rx, ry, w, h, c.fill, true)
	}
	if c.lineWidth > 0 && c.line != nil {
		vector.StrokeRect(c.Target, rx, ry, w, h, c.lineWidth, c.line, true)
	}
	return c
}

func (c *Canvas) DrawText(x, y float64, text string) curvy.Graphics {
	ebitenutil.DebugPrintAt(c.Target, text, int(x), int(y))
	return c
}

func (c *Canvas) EndFill() curvy.Graphics {
	c.filling = false
	return c
}

// drawPolyline strokes the points in order.
func (c *Canvas) drawPolyline(pts []curvy.Vec2, width float64, col curvy.Color) {
	if len(pts) < 2 {
		return
	}
	c.LineStyle(width, col, 1, 0.5).MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
}
