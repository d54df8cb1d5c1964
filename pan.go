package dragarea

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the committed pan offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
	// shift is pan committed while the tween runs; it rides on top of the
	// tweened value.
	shift Vec2
}

// Scrollable reports whether the area pans.
func (a *Area[C]) Scrollable() bool {
	return a.scrollable
}

// SetScrollable enables or disables panning. Disabling it resets the pan
// offset and cancels any pan in progress.
func (a *Area[C]) SetScrollable(scrollable bool) {
	if scrollable == a.scrollable {
		return
	}
	a.scrollable = scrollable
	if !scrollable {
		a.translate = Vec2{}
		a.dragTranslate = Vec2{}
		a.scroll = nil
		if a.state == gesturePanning {
			a.state = gestureIdle
		}
	}
	a.invalidate()
}

// ScrollLocation returns the pan offset currently applied to every object,
// including a pan in progress. It is always (0, 0) when the area is not
// scrollable.
func (a *Area[C]) ScrollLocation() (x, y float64) {
	if !a.scrollable {
		return 0, 0
	}
	off := a.offset()
	return off.X, off.Y
}

// ScrollTo animates the committed pan offset to (x, y) over duration seconds.
// A duration <= 0 jumps immediately. The animation advances with Tick and is
// cancelled by the next gesture. A pan already in progress is kept on top of
// the animated offset. No-op when the area is not scrollable.
func (a *Area[C]) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if !a.scrollable {
		return
	}
	if duration <= 0 {
		a.scroll = nil
		a.translate = Vec2{X: x, Y: y}
		a.invalidate()
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	a.scroll = &scrollAnim{
		tweenX: gween.New(float32(a.translate.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(a.translate.Y), float32(y), duration, easeFn),
	}
}

// ScrollActive reports whether a ScrollTo animation is running.
func (a *Area[C]) ScrollActive() bool {
	return a.scroll != nil
}

// Tick advances a running ScrollTo animation by dt seconds.
func (a *Area[C]) Tick(dt float32) {
	if a.scroll == nil {
		return
	}
	if !a.scroll.doneX {
		val, done := a.scroll.tweenX.Update(dt)
		a.translate.X = float64(val) + a.scroll.shift.X
		a.scroll.doneX = done
	}
	if !a.scroll.doneY {
		val, done := a.scroll.tweenY.Update(dt)
		a.translate.Y = float64(val) + a.scroll.shift.Y
		a.scroll.doneY = done
	}
	if a.scroll.doneX && a.scroll.doneY {
		a.scroll = nil
	}
	a.invalidate()
}

func (a *Area[C]) commitPan() {
	a.translate.X += a.dragTranslate.X
	a.translate.Y += a.dragTranslate.Y
	if a.scroll != nil {
		a.scroll.shift.X += a.dragTranslate.X
		a.scroll.shift.Y += a.dragTranslate.Y
	}
	a.dragTranslate = Vec2{}
}

// offset is the translation applied to every object when drawing.
func (a *Area[C]) offset() Vec2 {
	return Vec2{
		X: a.translate.X + a.dragTranslate.X,
		Y: a.translate.Y + a.dragTranslate.Y,
	}
}
