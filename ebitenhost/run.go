package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dragarea/config"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
}

// NewRunConfig builds window options from cfg.
func NewRunConfig(cfg config.Config) RunConfig {
	return RunConfig{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height}
}

// Run opens a window and blocks until it is closed or a render fails.
// A zero Width or Height uses the area size.
func Run(h *Host, rc RunConfig) error {
	w, hh := h.area.Size()
	if rc.Width > 0 {
		w = rc.Width
	}
	if rc.Height > 0 {
		hh = rc.Height
	}
	if rc.Title != "" {
		ebiten.SetWindowTitle(rc.Title)
	}
	ebiten.SetWindowSize(w, hh)
	if rc.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		h.FollowWindowSize = true
	}
	// Frames are drawn only on request; the screen must keep the last one.
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
