package dragarea

// Click dispatches a click at (x, y) to every object containing the point,
// bottom first. Primary clicks go to OnDoubleClick, middle clicks to
// OnMiddleClick and secondary clicks to OnRightClick. The host decides which
// click counts to forward; count is reported in events only. Click never
// changes the paint order.
func (a *Area[C]) Click(button Button, count int, x, y float64) {
	var evt EventType
	switch button {
	case ButtonPrimary:
		evt = EventDoubleClick
	case ButtonMiddle:
		evt = EventMiddleClick
	case ButtonSecondary:
		evt = EventRightClick
	default:
		return
	}

	for i, e := range a.reg.all() {
		if !containsPoint(e.Drawable, x-a.translate.X-e.X, y-a.translate.Y-e.Y) {
			continue
		}
		switch button {
		case ButtonPrimary:
			if h, ok := e.Drawable.(DoubleClicker); ok {
				h.OnDoubleClick()
			}
		case ButtonMiddle:
			if h, ok := e.Drawable.(MiddleClicker); ok {
				h.OnMiddleClick()
			}
		case ButtonSecondary:
			if h, ok := e.Drawable.(RightClicker); ok {
				h.OnRightClick()
			}
		}
		a.emit(InteractionEvent{
			Type: evt, Index: i, Object: e.Drawable,
			X: x, Y: y, Button: button, Count: count,
		})
	}
	a.invalidate()
}
