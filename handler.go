package curvy

// InputHandler interprets the pointer events of one gesture. The dispatcher
// calls Start once, Move any number of times, then exactly one of Stop or
// Cancel. Handlers hold pointers into tool-owned points and mutate them in
// place.
type InputHandler interface {
	Start(origin Vec2, ev PointerEvent)
	Move(origin, destination Vec2, ev PointerEvent)
	Stop(origin, destination Vec2, ev PointerEvent)
	Cancel()
}

// PointHandler drags a single point. Each move sets the point to the
// destination.
type PointHandler struct {
	Point *Vec2
}

// NewPointHandler returns a handler dragging p.
func NewPointHandler(p *Vec2) *PointHandler {
	return &PointHandler{Point: p}
}

func (h *PointHandler) Start(Vec2, PointerEvent) {}

func (h *PointHandler) Move(_, destination Vec2, _ PointerEvent) {
	*h.Point = destination
}

func (h *PointHandler) Stop(Vec2, Vec2, PointerEvent) {}
func (h *PointHandler) Cancel()                       {}

// MagnetHandler drags Driven to the destination and keeps Paired at the
// offset it had from Driven when the handler was created.
type MagnetHandler struct {
	Driven *Vec2
	Paired *Vec2
	offset Vec2
}

// NewMagnetHandler returns a handler dragging driven with paired attached.
func NewMagnetHandler(driven, paired *Vec2) *MagnetHandler {
	return &MagnetHandler{
		Driven: driven,
		Paired: paired,
		offset: paired.Sub(*driven),
	}
}

func (h *MagnetHandler) Start(Vec2, PointerEvent) {}

func (h *MagnetHandler) Move(_, destination Vec2, _ PointerEvent) {
	*h.Driven = destination
	*h.Paired = destination.Add(h.offset)
}

func (h *MagnetHandler) Stop(Vec2, Vec2, PointerEvent) {}
func (h *MagnetHandler) Cancel()                       {}

// PointArrayHandler translates a set of points together. Every move places
// each point at its starting position plus (destination - origin).
type PointArrayHandler struct {
	Points []*Vec2
	start  []Vec2
}

// NewPointArrayHandler returns a handler translating points.
func NewPointArrayHandler(points []*Vec2) *PointArrayHandler {
	start := make([]Vec2, len(points))
	for i, p := range points {
		start[i] = *p
	}
	return &PointArrayHandler{Points: points, start: start}
}

func (h *PointArrayHandler) Start(Vec2, PointerEvent) {}

func (h *PointArrayHandler) Move(origin, destination Vec2, _ PointerEvent) {
	delta := destination.Sub(origin)
	for i, p := range h.Points {
		*p = h.start[i].Add(delta)
	}
}

func (h *PointArrayHandler) Stop(Vec2, Vec2, PointerEvent) {}
func (h *PointArrayHandler) Cancel()                       {}

// InitializerHandler drives the placement gesture of a two-point shape: A
// follows the press location and B follows the pointer. Stop reports success
// when at least one move was seen and failure otherwise; Cancel reports
// failure. Point mutations are kept either way.
type InitializerHandler struct {
	A, B *Vec2

	success func()
	fail    func()
	moved   bool
	done    bool
}

// NewInitializerHandler returns a placement handler for a and b.
func NewInitializerHandler(a, b *Vec2, success, fail func()) *InitializerHandler {
	return &InitializerHandler{A: a, B: b, success: success, fail: fail}
}

func (h *InitializerHandler) Start(origin Vec2, _ PointerEvent) {
	*h.A = origin
	*h.B = origin
}

func (h *InitializerHandler) Move(origin, destination Vec2, _ PointerEvent) {
	if h.done {
		return
	}
	*h.A = origin
	*h.B = destination
	h.moved = true
}

func (h *InitializerHandler) Stop(Vec2, Vec2, PointerEvent) {
	if h.moved {
		h.finish(h.success)
	} else {
		h.finish(h.fail)
	}
}

func (h *InitializerHandler) Cancel() {
	h.finish(h.fail)
}

func (h *InitializerHandler) finish(fn func()) {
	if h.done {
		return
	}
	h.done = true
	if fn != nil {
		fn()
	}
}
