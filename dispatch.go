package curvy

const defaultDragDeadZone = 4.0 // pixels

// Dispatcher routes raw pointer input to a tool. A press asks the tool for a
// handler; held moves past the drag dead zone drive it; release or Cancel
// completes it. At most one handler is active at a time and it is discarded
// when its gesture ends.
type Dispatcher struct {
	tool   Tool
	active InputHandler

	down     bool
	dragging bool
	start    Vec2
	last     Vec2
	hover    Vec2
	event    PointerEvent

	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
}

// NewDispatcher returns a dispatcher feeding tool.
func NewDispatcher(tool Tool) *Dispatcher {
	return &Dispatcher{tool: tool, dragDeadZone: defaultDragDeadZone}
}

// Tool returns the tool receiving input.
func (d *Dispatcher) Tool() Tool { return d.tool }

// Active returns the handler of the gesture in progress, or nil.
func (d *Dispatcher) Active() InputHandler { return d.active }

// Hover returns the last pointer position seen without a button held.
func (d *Dispatcher) Hover() Vec2 { return d.hover }

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (d *Dispatcher) SetDragDeadZone(pixels float64) {
	d.dragDeadZone = pixels
}

// Pointer runs the pointer state machine for one sample of pointer state in
// world coordinates. A sample with a secondary button pressed cancels the
// gesture in progress and never starts one.
func (d *Dispatcher) Pointer(x, y float64, pressed bool, ev PointerEvent) {
	p := Vec2{x, y}

	switch {
	case pressed && ev.Button != MouseButtonLeft:
		d.Cancel()
		if !d.down {
			d.hover = p
		}

	case pressed && !d.down:
		d.down = true
		d.dragging = false
		d.start = p
		d.last = p
		d.event = ev
		d.active = d.tool.CheckPointForDrag(p)
		if d.active != nil {
			logger.Debug("gesture begin", "handler", handlerName(d.active), "x", x, "y", y)
			d.active.Start(p, ev)
		}

	case pressed && d.down:
		if p != d.last {
			d.checkDragStart(p)
			if d.dragging && d.active != nil {
				d.active.Move(d.start, p, d.event)
			}
		}
		d.last = p

	case !pressed && d.down:
		if d.active != nil {
			d.checkDragStart(p)
			if d.dragging && p != d.last {
				d.active.Move(d.start, p, d.event)
			}
			d.active.Stop(d.start, p, d.event)
			logger.Debug("gesture end", "handler", handlerName(d.active), "x", x, "y", y)
		}
		d.active = nil
		d.down = false
		d.dragging = false

	default:
		d.hover = p
	}
}

func (d *Dispatcher) checkDragStart(p Vec2) {
	if !d.dragging && p.Sub(d.start).Len() > d.dragDeadZone {
		d.dragging = true
	}
}

// Cancel aborts the gesture in progress. The handler's Cancel runs and the
// rest of the held press is ignored.
func (d *Dispatcher) Cancel() {
	if d.active == nil {
		return
	}
	logger.Debug("gesture cancel", "handler", handlerName(d.active))
	d.active.Cancel()
	d.active = nil
}

func handlerName(h InputHandler) string {
	switch h.(type) {
	case *PointHandler:
		return "point"
	case *MagnetHandler:
		return "magnet"
	case *PointArrayHandler:
		return "point-array"
	case *cubicInitializer, *InitializerHandler:
		return "initializer"
	default:
		return "custom"
	}
}
