package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/curvy"
)

const (
	hoverGrow     = 1.6
	hoverDuration = 0.15 // seconds
)

// hoverPulse grows a highlight ring around the handle under the pointer.
// Switching handles restarts the tween; no handle resets it.
type hoverPulse struct {
	target *curvy.Vec2
	tween  *gween.Tween
	scale  float64
}

// track points the pulse at h, which may be nil.
func (p *hoverPulse) track(h *curvy.Vec2) {
	if h == p.target {
		return
	}
	p.target = h
	p.scale = 1
	if h == nil {
		p.tween = nil
		return
	}
	p.tween = gween.New(1, hoverGrow, hoverDuration, ease.OutQuad)
}

// update advances the tween by dt seconds.
func (p *hoverPulse) update(dt float32) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(dt)
	p.scale = float64(v)
	if done {
		p.tween = nil
	}
}

func (p *hoverPulse) draw(c *Canvas, radius float64) {
	if p.target == nil {
		return
	}
	c.LineStyle(1, curvy.RGB(0xffffff), 0.8, 0.5).
		DrawCircle(p.target.X, p.target.Y, radius*p.scale)
}
