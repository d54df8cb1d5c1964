package dragarea

type gestureState uint8

const (
	gestureIdle gestureState = iota
	gestureDragging
	gesturePanning
)

// dragInfo is the bookkeeping for the single object drag that may be live.
// relativeX/Y is the entry position minus the gesture start; dx/dy is the
// latest offset passed to UpdateGesture.
type dragInfo struct {
	startX, startY       float64
	index                int
	relativeX, relativeY float64
	dx, dy               float64
}

// hitTest returns the index of the topmost entry containing (x, y), or -1.
// The same pass reports whether every entry allows panning at that point.
func (a *Area[C]) hitTest(x, y float64) (index int, canScroll bool) {
	index = -1
	canScroll = true
	for i, e := range a.reg.all() {
		rx := x - a.translate.X - e.X
		ry := y - a.translate.Y - e.Y
		if containsPoint(e.Drawable, rx, ry) {
			index = i
		}
		if !canScrollAt(e.Drawable, rx, ry) {
			canScroll = false
		}
	}
	return index, canScroll
}

// BeginGesture starts a pointer drag at (x, y) in surface coordinates. If an
// object is hit it is promoted to the top and dragged; otherwise a
// scrollable area starts panning when every object allows it.
func (a *Area[C]) BeginGesture(x, y float64) {
	if a.reg.sweeping {
		a.debugCheckReentrant("BeginGesture")
		return
	}
	if a.state == gesturePanning {
		a.commitPan()
	}
	a.scroll = nil
	a.drag = dragInfo{}
	a.state = gestureIdle

	i, canScroll := a.hitTest(x, y)
	switch {
	case i >= 0:
		e := a.reg.entries[i]
		a.drag = dragInfo{
			startX:    x,
			startY:    y,
			index:     a.reg.promote(i),
			relativeX: e.X - x,
			relativeY: e.Y - y,
		}
		a.state = gestureDragging
		a.emit(InteractionEvent{
			Type: EventDragStart, Index: a.drag.index, Object: e.Drawable,
			X: x, Y: y, StartX: x, StartY: y,
		})
	case a.scrollable && canScroll:
		a.state = gesturePanning
		a.emit(InteractionEvent{Type: EventPanStart, Index: -1, X: x, Y: y, StartX: x, StartY: y})
	}
	a.invalidate()
}

// UpdateGesture moves the current gesture. dx and dy are the cumulative
// offset from the point passed to BeginGesture. It is a no-op when no
// gesture is active.
func (a *Area[C]) UpdateGesture(dx, dy float64) {
	switch a.state {
	case gestureDragging:
		a.drag.dx, a.drag.dy = dx, dy
		e := &a.reg.entries[a.drag.index]
		l := a.limitsOf(e.Drawable)
		e.X = clampCoord(l.NegX, l.PosX, a.width, a.scrollable, a.drag.startX+dx+a.drag.relativeX)
		e.Y = clampCoord(l.NegY, l.PosY, a.height, a.scrollable, a.drag.startY+dy+a.drag.relativeY)
		a.emit(InteractionEvent{
			Type: EventDrag, Index: a.drag.index, Object: e.Drawable,
			X: a.drag.startX + dx, Y: a.drag.startY + dy,
			StartX: a.drag.startX, StartY: a.drag.startY, DeltaX: dx, DeltaY: dy,
		})
	case gesturePanning:
		a.dragTranslate = Vec2{X: dx, Y: dy}
		a.emit(InteractionEvent{Type: EventPan, Index: -1, DeltaX: dx, DeltaY: dy})
	default:
		return
	}
	a.invalidate()
}

// EndGesture finishes the current gesture, committing any pan offset. The
// dragged object already sits at its final position. Calling it without an
// active gesture only requests a redraw.
func (a *Area[C]) EndGesture() {
	switch a.state {
	case gesturePanning:
		d := a.dragTranslate
		a.commitPan()
		a.emit(InteractionEvent{Type: EventPanEnd, Index: -1, DeltaX: d.X, DeltaY: d.Y})
	case gestureDragging:
		e := a.reg.entries[a.drag.index]
		a.emit(InteractionEvent{
			Type: EventDragEnd, Index: a.drag.index, Object: e.Drawable,
			X: a.drag.startX + a.drag.dx, Y: a.drag.startY + a.drag.dy,
			StartX: a.drag.startX, StartY: a.drag.startY, DeltaX: a.drag.dx, DeltaY: a.drag.dy,
		})
	}
	a.state = gestureIdle
	a.drag = dragInfo{}
	a.invalidate()
}

// Dragging reports the paint-order index of the object being dragged.
func (a *Area[C]) Dragging() (index int, ok bool) {
	if a.state != gestureDragging {
		return -1, false
	}
	return a.drag.index, true
}

// Panning reports whether a pan gesture is active.
func (a *Area[C]) Panning() bool {
	return a.state == gesturePanning
}

// clampCoord bounds a desired coordinate so an object with the given limits
// stays on a surface of the given size. Scrollable surfaces are unbounded.
// When the object is larger than the surface the lower bound wins.
func clampCoord(neg, pos float64, size int, scrollable bool, want float64) float64 {
	if scrollable {
		return want
	}
	if hi := float64(size) - pos; want > hi {
		want = hi
	}
	if want < neg {
		want = neg
	}
	return want
}
