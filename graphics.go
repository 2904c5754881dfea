package curvy

import "fmt"

// Graphics is the host's chainable 2D path API. Tools issue calls and never
// read results back.
type Graphics interface {
	BeginFill(c Color) Graphics
	// LineStyle sets the stroke. alignment is 0 (inner) to 1 (outer), 0.5
	// centered on the path.
	LineStyle(width float64, c Color, alpha, alignment float64) Graphics
	MoveTo(x, y float64) Graphics
	LineTo(x, y float64) Graphics
	DrawCircle(x, y, radius float64) Graphics
	DrawRect(x, y, width, height float64) Graphics
	DrawText(x, y float64, text string) Graphics
	EndFill() Graphics
}

// Recorder is a Graphics that records each call as a short string, e.g.
// "moveTo(0,0)". Useful for headless inspection of a draw pass.
type Recorder struct {
	Calls []string
}

func (r *Recorder) add(format string, args ...any) Graphics {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
	return r
}

func (r *Recorder) BeginFill(c Color) Graphics {
	return r.add("beginFill(%s)", hexOf(c))
}

func (r *Recorder) LineStyle(width float64, c Color, alpha, alignment float64) Graphics {
	return r.add("lineStyle(%g,%s,%g,%g)", width, hexOf(c), alpha, alignment)
}

func (r *Recorder) MoveTo(x, y float64) Graphics { return r.add("moveTo(%g,%g)", x, y) }
func (r *Recorder) LineTo(x, y float64) Graphics { return r.add("lineTo(%g,%g)", x, y) }

func (r *Recorder) DrawCircle(x, y, radius float64) Graphics {
	return r.add("drawCircle(%g,%g,%g)", x, y, radius)
}

func (r *Recorder) DrawRect(x, y, width, height float64) Graphics {
	return r.add("drawRect(%g,%g,%g,%g)", x, y, width, height)
}

func (r *Recorder) DrawText(x, y float64, text string) Graphics {
	return r.add("drawText(%g,%g,%q)", x, y, text)
}

func (r *Recorder) EndFill() Graphics { return r.add("endFill()") }

func hexOf(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}
