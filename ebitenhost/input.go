package ebitenhost

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dragarea"
)

// pointerState tracks the mouse between ticks.
type pointerState struct {
	left, right, middle bool
	startX, startY      float64
	lastX, lastY        float64

	// Previous primary press, for double-click detection.
	pressed        bool
	pressTick      uint64
	pressX, pressY float64
}

// processMouse reads the real mouse and feeds it through processPointer.
func (h *Host) processMouse() {
	mx, my := ebiten.CursorPosition()
	h.processPointer(float64(mx), float64(my),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))
}

// processPointer runs the pointer state machine for one tick of input.
func (h *Host) processPointer(x, y float64, left, right, middle bool) {
	ps := &h.ptr

	if right && !ps.right {
		h.area.Click(dragarea.ButtonSecondary, 1, x, y)
	}
	if middle && !ps.middle {
		h.area.Click(dragarea.ButtonMiddle, 1, x, y)
	}
	ps.right = right
	ps.middle = middle

	switch {
	case left && !ps.left:
		if h.isDoubleClick(x, y) {
			ps.pressed = false
			h.area.Click(dragarea.ButtonPrimary, 2, x, y)
		} else {
			ps.pressed = true
			ps.pressTick = h.tick
			ps.pressX, ps.pressY = x, y
		}
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		h.area.BeginGesture(x, y)
	case left && ps.left:
		if x != ps.lastX || y != ps.lastY {
			h.area.UpdateGesture(x-ps.startX, y-ps.startY)
			ps.lastX, ps.lastY = x, y
		}
	case !left && ps.left:
		// A release away from the last position still moves the object
		// there first.
		if x != ps.lastX || y != ps.lastY {
			h.area.UpdateGesture(x-ps.startX, y-ps.startY)
		}
		h.area.EndGesture()
	}
	ps.left = left
}

// isDoubleClick reports whether a primary press at (x, y) on the current
// tick completes a double click.
func (h *Host) isDoubleClick(x, y float64) bool {
	ps := &h.ptr
	if !ps.pressed {
		return false
	}
	elapsed := time.Duration(h.tick-ps.pressTick) * time.Second / time.Duration(h.tps)
	if elapsed > h.DoubleClickInterval {
		return false
	}
	return math.Hypot(x-ps.pressX, y-ps.pressY) <= h.DoubleClickSlop
}
