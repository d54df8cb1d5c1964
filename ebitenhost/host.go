// Package ebitenhost runs a drag area in an Ebiten window.
//
// Host implements ebiten.Game. Mouse input is translated into gesture and
// click calls on the area, and the area is rendered only when it asks for a
// redraw:
//
//	area := dragarea.New[*ebiten.Image](500, 500)
//	area.Add(ebitenhost.NewRectangle(100, 100, ebitenhost.RGB(1, 0, 0)), 100, 100)
//	host := ebitenhost.New(area)
//	if err := ebitenhost.Run(host, ebitenhost.RunConfig{Title: "demo"}); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dragarea"
	"github.com/phanxgames/dragarea/config"
)

const (
	defaultDoubleClickInterval = 400 * time.Millisecond
	defaultDoubleClickSlop     = 4
)

// Host adapts a drag area to the ebiten.Game interface.
type Host struct {
	// ClearColor fills the screen before each rendered frame.
	ClearColor color.Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// DoubleClickInterval is the longest gap between two primary presses
	// that still counts as a double click.
	DoubleClickInterval time.Duration
	// DoubleClickSlop is how far apart, in pixels, the two presses may be.
	DoubleClickSlop float64
	// FollowWindowSize resizes the area to the window in Layout.
	FollowWindowSize bool

	area *dragarea.Area[*ebiten.Image]

	ptr             pointerState
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	fps             *fpsOverlay

	tick uint64
	tps  int
	err  error
}

// New wraps area in a Host with default input settings and a white
// background.
func New(area *dragarea.Area[*ebiten.Image]) *Host {
	return &Host{
		ClearColor:          color.White,
		ScreenshotDir:       "screenshots",
		DoubleClickInterval: defaultDoubleClickInterval,
		DoubleClickSlop:     defaultDoubleClickSlop,
		area:                area,
		tps:                 ebiten.DefaultTPS,
	}
}

// Apply copies the input, screenshot and debug settings of cfg onto the
// host and its area.
func (h *Host) Apply(cfg config.Config) {
	h.DoubleClickInterval = cfg.DoubleClickInterval()
	h.DoubleClickSlop = cfg.DoubleClickSlop
	if cfg.ScreenshotDir != "" {
		h.ScreenshotDir = cfg.ScreenshotDir
	}
	h.SetShowFPS(cfg.ShowFPS)
	h.area.SetDebugMode(cfg.Debug)
	h.area.SetScrollable(cfg.Scrollable)
	h.area.SetSize(cfg.Width, cfg.Height)
}

// Area returns the wrapped area.
func (h *Host) Area() *dragarea.Area[*ebiten.Image] {
	return h.area
}

// SetShowFPS toggles the FPS/TPS overlay in the top-left corner. While it is
// shown every frame is rendered.
func (h *Host) SetShowFPS(show bool) {
	if !show {
		h.fps = nil
		return
	}
	if h.fps == nil {
		h.fps = newFPSOverlay()
	}
}

// Update processes input and advances scroll animations. It returns the
// error of a failed render, which stops the game loop.
func (h *Host) Update() error {
	if h.err != nil {
		return h.err
	}
	h.tick++
	if tps := ebiten.TPS(); tps > 0 {
		h.tps = tps
	}
	dt := 1 / float32(h.tps)
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.area.Tick(dt)
	if !h.processInjectedInput() {
		h.processMouse()
	}
	if h.fps != nil {
		h.fps.update(float64(dt))
	}
	return nil
}

// Draw renders the area when it requested a redraw. The screen keeps its
// previous contents otherwise.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.needsFrame() {
		screen.Fill(h.ClearColor)
		b := screen.Bounds()
		if err := h.area.Render(screen, b.Dx(), b.Dy()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[dragarea] ebitenhost: %v\n", err)
			h.err = fmt.Errorf("render: %w", err)
		}
		if h.fps != nil {
			h.fps.draw(screen)
		}
	}
	h.flushScreenshots(screen)
}

// Layout returns the area size as the logical screen size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.FollowWindowSize && outsideWidth > 0 && outsideHeight > 0 {
		h.area.SetSize(outsideWidth, outsideHeight)
	}
	return h.area.Size()
}

func (h *Host) needsFrame() bool {
	return h.area.NeedsRedraw() || h.fps != nil || len(h.screenshotQueue) > 0
}
