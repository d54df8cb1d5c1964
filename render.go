package dragarea

import (
	"fmt"
	"os"
	"time"
)

// DrawError reports the object whose Draw call aborted a frame.
type DrawError struct {
	Index int // paint-order index of the failing object
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw entry %d: %v", e.Index, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}

// Render draws one frame: the pre-draw hook, the retention sweep, every
// object in paint order offset by the pan translation, then the post-draw
// hook. The first failing Draw aborts the frame and is returned as a
// *DrawError; the post-draw hook does not run in that case.
func (a *Area[C]) Render(ctx C, width, height int) error {
	var stats frameStats
	var t0 time.Time

	a.dirty = false
	if a.preDraw != nil {
		a.preDraw(ctx, width, height)
	}

	if a.debug {
		t0 = time.Now()
	}

	stats.removed = a.sweep()

	if a.debug {
		stats.sweepTime = time.Since(t0)
		t0 = time.Now()
	}

	off := a.offset()
	for i, e := range a.reg.all() {
		if err := e.Drawable.Draw(ctx, e.X+off.X, e.Y+off.Y); err != nil {
			if a.debug {
				_, _ = fmt.Fprintf(os.Stderr, "[dragarea] frame aborted at entry %d: %v\n", i, err)
			}
			return &DrawError{Index: i, Err: err}
		}
		stats.drawn++
	}

	if a.debug {
		stats.drawTime = time.Since(t0)
		a.debugLog(stats)
	}

	if a.postDraw != nil {
		a.postDraw(ctx, width, height)
	}
	return nil
}

// sweep drops entries whose Retain reports false, keeping the drag index in
// step with the compaction. A drag on a removed object ends. Entries added
// from Retain are appended afterwards.
func (a *Area[C]) sweep() int {
	tracked := -1
	if a.state == gestureDragging {
		tracked = a.drag.index
	}

	removed, idx := a.reg.sweep(retained[C], tracked)

	if tracked >= 0 {
		if idx < 0 {
			a.state = gestureIdle
			a.drag = dragInfo{}
		} else {
			a.drag.index = idx
		}
	}
	for _, e := range a.pending {
		a.reg.push(e.Drawable, e.X, e.Y)
	}
	clear(a.pending)
	a.pending = a.pending[:0]
	return removed
}
