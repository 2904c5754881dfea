package curvy

import "testing"

func TestPointNearPoint(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		radius float64
		want   bool
	}{
		{"same point", Pt(5, 5), Pt(5, 5), 0, true},
		{"inside", Pt(0, 0), Pt(3, 4), 6, true},
		{"on radius", Pt(0, 0), Pt(3, 4), 5, true},
		{"outside", Pt(0, 0), Pt(3, 4), 4.9, false},
		{"negative coords", Pt(-10, -10), Pt(-12, -10), 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointNearPoint(tt.a, tt.b, tt.radius); got != tt.want {
				t.Errorf("PointNearPoint(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.radius, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	got := BoundsOf(Pt(10, 20), Pt(-5, 40), Pt(30, 0))
	want := Rect{X: -5, Y: 0, Width: 35, Height: 40}
	if got != want {
		t.Errorf("BoundsOf = %+v, want %+v", got, want)
	}

	if got := BoundsOf(); got != (Rect{}) {
		t.Errorf("BoundsOf() = %+v, want zero", got)
	}

	single := BoundsOf(Pt(7, 8))
	if single != (Rect{X: 7, Y: 8}) {
		t.Errorf("BoundsOf(single) = %+v", single)
	}
}

func TestPolygonContains(t *testing.T) {
	square := Polygon{Points: []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"near corner", 1, 1, true},
		{"outside left", -1, 50, false},
		{"outside far", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Polygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	degen := Polygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if degen.Contains(0, 0) {
		t.Error("degenerate polygon should not contain anything")
	}
}

func TestPolygonContains_Concave(t *testing.T) {
	// Arrow head pointing right with a notch on the left.
	p := Polygon{Points: []Vec2{{0, 0}, {100, 50}, {0, 100}, {40, 50}}}
	if !p.Contains(60, 50) {
		t.Error("concave polygon should contain point in its body")
	}
	if p.Contains(20, 50) {
		t.Error("concave polygon should not contain point in its notch")
	}
}

func TestPolygonContains_Bowtie(t *testing.T) {
	// Self-intersecting quad, like a cubic whose control points cross the chord.
	p := Polygon{Points: []Vec2{{0, 0}, {100, 100}, {100, 0}, {0, 100}}}
	if !p.Contains(10, 50) {
		t.Error("bowtie should contain point in left lobe")
	}
	if !p.Contains(90, 50) {
		t.Error("bowtie should contain point in right lobe")
	}
	if p.Contains(50, 10) {
		t.Error("bowtie should not contain point above the crossing")
	}
}
