package curvy

import "honnef.co/go/curve"

// CubicPoint evaluates the cubic Bezier p0, p1, p2, p3 at t in [0, 1].
func CubicPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	pt := curve.CubicBez{P0: p0.point(), P1: p1.point(), P2: p2.point(), P3: p3.point()}.Eval(t)
	return Vec2{X: pt.X, Y: pt.Y}
}

// Bez returns the tool's curve as a cubic Bezier segment.
func (t *CubicTool) Bez() curve.CubicBez {
	return curve.CubicBez{
		P0: t.LineA.point(),
		P1: t.ControlA.point(),
		P2: t.ControlB.point(),
		P3: t.LineB.point(),
	}
}

// Curve samples the curve into segments+1 wall vertices, from LineA to
// LineB. A non-positive segments uses the configured count.
func (t *CubicTool) Curve(segments int) []Vec2 {
	if segments <= 0 {
		segments = t.Config.Segments
	}
	if segments <= 0 {
		segments = DefaultSegments
	}
	bez := t.Bez()
	pts := make([]Vec2, segments+1)
	for i := range pts {
		pt := bez.Eval(float64(i) / float64(segments))
		pts[i] = Vec2{X: pt.X, Y: pt.Y}
	}
	// Pin the ends so walls join exactly.
	pts[0] = t.LineA
	pts[segments] = t.LineB
	return pts
}
