package curvy

type injectKind uint8

const (
	injectPointer injectKind = iota
	injectCancel
)

// syntheticPointerEvent represents a single injected pointer event in world
// coordinates.
type syntheticPointerEvent struct {
	kind    injectKind
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update call.
func (d *Dispatcher) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (d *Dispatcher) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (d *Dispatcher) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectCancel queues a cancellation of the gesture in progress.
func (d *Dispatcher) InjectCancel() {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectCancel})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (d *Dispatcher) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// Pending reports how many injected events are still queued.
func (d *Dispatcher) Pending() int { return len(d.injectQueue) }

// Update pops one injected event and feeds it through the pointer state
// machine. Returns true if an event was consumed (real input should be
// skipped this frame).
func (d *Dispatcher) Update() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	if evt.kind == injectCancel {
		d.Cancel()
		return true
	}
	d.Pointer(evt.x, evt.y, evt.pressed, PointerEvent{Button: MouseButtonLeft})
	return true
}
