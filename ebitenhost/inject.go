package ebitenhost

import "github.com/phanxgames/dragarea"

// syntheticPointerEvent is one injected tick of mouse state. Coordinates are
// in screen space, the same as real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  dragarea.Button
}

// InjectPress queues a primary button press at (x, y). Each queued event is
// consumed by one Update call, and real mouse input is ignored on that tick.
func (h *Host) InjectPress(x, y float64) {
	h.inject(x, y, true, dragarea.ButtonPrimary)
}

// InjectMove queues a pointer move with the primary button held. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.inject(x, y, true, dragarea.ButtonPrimary)
}

// InjectRelease queues a release of every button at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.inject(x, y, false, dragarea.ButtonPrimary)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at the same point on consecutive
// ticks. Consumes four ticks.
func (h *Host) InjectDoubleClick(x, y float64) {
	h.InjectClick(x, y)
	h.InjectClick(x, y)
}

// InjectRightClick queues a secondary button press and release.
func (h *Host) InjectRightClick(x, y float64) {
	h.inject(x, y, true, dragarea.ButtonSecondary)
	h.inject(x, y, false, dragarea.ButtonSecondary)
}

// InjectMiddleClick queues a middle button press and release.
func (h *Host) InjectMiddleClick(x, y float64) {
	h.inject(x, y, true, dragarea.ButtonMiddle)
	h.inject(x, y, false, dragarea.ButtonMiddle)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 ticks, and release at (toX, toY).
// The sequence consumes frames ticks; the minimum is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

func (h *Host) inject(x, y float64, pressed bool, button dragarea.Button) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: pressed, button: button,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. It reports whether an event was consumed.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.processPointer(evt.x, evt.y,
		evt.pressed && evt.button == dragarea.ButtonPrimary,
		evt.pressed && evt.button == dragarea.ButtonSecondary,
		evt.pressed && evt.button == dragarea.ButtonMiddle)
	return true
}
