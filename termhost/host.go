// Package termhost runs a drag area in a terminal using tcell. Terminal
// cells are the surface coordinates: a mouse press on column 10, row 4 is
// the point (10, 4).
package termhost

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dragarea"
	"github.com/phanxgames/dragarea/config"
)

// Host feeds tcell events into a drag area and renders it on change.
type Host struct {
	// DoubleClickInterval is the longest gap between two primary presses
	// that still counts as a double click.
	DoubleClickInterval time.Duration
	// DoubleClickSlop is how many cells apart the two presses may be.
	DoubleClickSlop float64
	// Style is the style of empty cells.
	Style tcell.Style

	screen tcell.Screen
	area   *dragarea.Area[tcell.Screen]

	buttons        tcell.ButtonMask
	startX, startY float64
	lastX, lastY   float64

	pressed        bool
	pressTime      time.Time
	pressX, pressY float64

	quit bool
}

// Open creates and initializes a terminal screen with mouse reporting and
// wraps area in a Host. Call Close when done.
func Open(area *dragarea.Area[tcell.Screen]) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	return New(screen, area), nil
}

// New wraps an initialized screen. The area is resized to the screen.
func New(screen tcell.Screen, area *dragarea.Area[tcell.Screen]) *Host {
	h := &Host{
		DoubleClickInterval: 400 * time.Millisecond,
		DoubleClickSlop:     1,
		Style:               tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset),
		screen:              screen,
		area:                area,
	}
	if w, hh := screen.Size(); w > 0 && hh > 0 {
		area.SetSize(w, hh)
	}
	return h
}

// Apply copies the input and debug settings of cfg. The double-click slop
// comes from DoubleClickSlopCells since positions are cells. The size stays
// bound to the terminal.
func (h *Host) Apply(cfg config.Config) {
	h.DoubleClickInterval = cfg.DoubleClickInterval()
	h.DoubleClickSlop = cfg.DoubleClickSlopCells
	h.area.SetDebugMode(cfg.Debug)
	h.area.SetScrollable(cfg.Scrollable)
}

// Area returns the wrapped area.
func (h *Host) Area() *dragarea.Area[tcell.Screen] {
	return h.area
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}

// Run polls terminal events until Ctrl-C or Esc is pressed, ctx is done, or
// a render fails.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	if err := h.render(); err != nil {
		return err
	}
	for !h.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			h.handleEvent(ev)
		}
		if h.area.NeedsRedraw() {
			if err := h.render(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Host) render() error {
	h.screen.SetStyle(h.Style)
	h.screen.Clear()
	w, hh := h.screen.Size()
	if err := h.area.Render(h.screen, w, hh); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[dragarea] termhost: %v\n", err)
		return fmt.Errorf("render: %w", err)
	}
	h.screen.Show()
	return nil
}

func (h *Host) handleEvent(event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		w, hh := ev.Size()
		h.area.SetSize(w, hh)
		h.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			h.quit = true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(float64(x), float64(y), ev.Buttons(), ev.When())
	}
}

// handleMouse turns button state transitions into gesture and click calls.
func (h *Host) handleMouse(x, y float64, buttons tcell.ButtonMask, when time.Time) {
	buttons &= tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle
	pressed := buttons &^ h.buttons
	released := h.buttons &^ buttons
	h.buttons = buttons

	if pressed&tcell.ButtonSecondary != 0 {
		h.area.Click(dragarea.ButtonSecondary, 1, x, y)
	}
	if pressed&tcell.ButtonMiddle != 0 {
		h.area.Click(dragarea.ButtonMiddle, 1, x, y)
	}

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		if h.isDoubleClick(x, y, when) {
			h.pressed = false
			h.area.Click(dragarea.ButtonPrimary, 2, x, y)
		} else {
			h.pressed = true
			h.pressTime = when
			h.pressX, h.pressY = x, y
		}
		h.startX, h.startY = x, y
		h.lastX, h.lastY = x, y
		h.area.BeginGesture(x, y)
	case buttons&tcell.ButtonPrimary != 0:
		if x != h.lastX || y != h.lastY {
			h.area.UpdateGesture(x-h.startX, y-h.startY)
			h.lastX, h.lastY = x, y
		}
	case released&tcell.ButtonPrimary != 0:
		if x != h.lastX || y != h.lastY {
			h.area.UpdateGesture(x-h.startX, y-h.startY)
		}
		h.area.EndGesture()
	}
}

func (h *Host) isDoubleClick(x, y float64, when time.Time) bool {
	if !h.pressed || when.Sub(h.pressTime) > h.DoubleClickInterval {
		return false
	}
	return math.Hypot(x-h.pressX, y-h.pressY) <= h.DoubleClickSlop
}
