package curvy

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// Vec2 is a mutable 2D point. Tools own their points; handlers hold pointers
// into them.
type Vec2 struct {
	X, Y float64
}

// Pt is shorthand for Vec2{x, y}.
func Pt(x, y float64) Vec2 { return Vec2{x, y} }

// Set overwrites both coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Mode is the placement lifecycle state of a tool.
type Mode uint8

const (
	ModeNotPlaced Mode = iota // points carry no meaningful values yet
	ModePlacing               // the initializer gesture is in progress
	ModePlaced                // all points hold placed coordinates
)

func (m Mode) String() string {
	switch m {
	case ModeNotPlaced:
		return "not-placed"
	case ModePlacing:
		return "placing"
	case ModePlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)

// PointerEvent carries the raw event data forwarded to input handlers.
// Only the primary button drags; a secondary press cancels.
type PointerEvent struct {
	Button MouseButton
}
