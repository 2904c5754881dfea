package curvy

import "honnef.co/go/curve"

// PointNearPoint reports whether a and b are at most radius apart.
func PointNearPoint(a, b Vec2, radius float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= radius*radius
}

// point converts v to the geometry library's point type.
func (v Vec2) point() curve.Point {
	return curve.Pt(v.X, v.Y)
}

// BoundsOf returns the smallest axis-aligned rectangle covering every point.
// With no points it returns the zero Rect.
func BoundsOf(points ...Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	first := points[0].point()
	r := curve.NewRectFromPoints(first, first)
	for _, p := range points[1:] {
		r = r.UnionPoint(p.point())
	}
	return Rect{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()}
}

// Polygon is an ordered vertex list tested with the even-odd rule, so
// concave and self-intersecting outlines are handled.
type Polygon struct {
	Points []Vec2
}

// Path returns the polygon as a closed path.
func (p Polygon) Path() curve.BezPath {
	var path curve.BezPath
	for i, v := range p.Points {
		if i == 0 {
			path.MoveTo(v.point())
		} else {
			path.LineTo(v.point())
		}
	}
	if len(p.Points) > 0 {
		path.ClosePath()
	}
	return path
}

// Contains reports whether (x, y) lies inside the polygon.
func (p Polygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	// Odd winding is inside, whatever the edge direction.
	return p.Path().Winding(curve.Pt(x, y))%2 != 0
}
