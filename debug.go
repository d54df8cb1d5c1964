package dragarea

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and counts.
// Only populated when the area is in debug mode.
type frameStats struct {
	sweepTime time.Duration
	drawTime  time.Duration
	drawn     int
	removed   int
}

// SetDebugMode enables or disables debug mode. When enabled, contract
// violations panic, suspicious drawable limits are reported, and per-frame
// stats are logged to stderr.
func (a *Area[C]) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// debugLog prints timing and draw stats to stderr.
func (a *Area[C]) debugLog(stats frameStats) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[dragarea] sweep: %v | draw: %v | drawn: %d | removed: %d\n",
		stats.sweepTime, stats.drawTime, stats.drawn, stats.removed)
}

// debugCheckReentrant panics when the registry is mutated from a Retain
// callback. In release mode callers recover on their own.
func (a *Area[C]) debugCheckReentrant(op string) {
	if a.debug {
		panic(fmt.Sprintf("dragarea debug: %s called from Retain during the render sweep", op))
	}
}

// limitsOf returns d's limits with negative components clamped to 0.
func (a *Area[C]) limitsOf(d Drawable[C]) Limits {
	l := d.Limits()
	if l.hasNegative() {
		if a.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[dragarea] warning: %T reports negative limits %+v\n", d, l)
		}
		l = l.normalized()
	}
	return l
}
