// Package config loads host settings for a drag area from TOML or YAML
// files, with DRAGAREA_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds window and input settings shared by the hosts.
type Config struct {
	Title                string  `toml:"title" yaml:"title"`
	Width                int     `toml:"width" yaml:"width"`
	Height               int     `toml:"height" yaml:"height"`
	Scrollable           bool    `toml:"scrollable" yaml:"scrollable"`
	Debug                bool    `toml:"debug" yaml:"debug"`
	ShowFPS              bool    `toml:"show_fps" yaml:"show_fps"`
	DoubleClickMillis    int     `toml:"double_click_millis" yaml:"double_click_millis"`
	DoubleClickSlop      float64 `toml:"double_click_slop" yaml:"double_click_slop"`
	DoubleClickSlopCells float64 `toml:"double_click_slop_cells" yaml:"double_click_slop_cells"` // terminal hosts
	ScreenshotDir        string  `toml:"screenshot_dir" yaml:"screenshot_dir"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Title:                "dragarea",
		Width:                500,
		Height:               500,
		DoubleClickMillis:    400,
		DoubleClickSlop:      4,
		DoubleClickSlopCells: 1,
		ScreenshotDir:        "screenshots",
	}
}

// DoubleClickInterval returns the double-click window as a duration.
func (c Config) DoubleClickInterval() time.Duration {
	return time.Duration(c.DoubleClickMillis) * time.Millisecond
}

// Load reads path on top of Default. The format is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("load config %s: unsupported extension %q", path, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("config: width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("config: height must be positive, got %d", c.Height)
	case c.DoubleClickMillis < 0:
		return fmt.Errorf("config: double_click_millis must not be negative, got %d", c.DoubleClickMillis)
	case c.DoubleClickSlop < 0:
		return fmt.Errorf("config: double_click_slop must not be negative, got %g", c.DoubleClickSlop)
	case c.DoubleClickSlopCells < 0:
		return fmt.Errorf("config: double_click_slop_cells must not be negative, got %g", c.DoubleClickSlopCells)
	}
	return nil
}

// FromEnv applies DRAGAREA_* environment overrides to cfg and validates the
// result.
func FromEnv(cfg Config) (Config, error) {
	var err error
	cfg.Title = envString("DRAGAREA_TITLE", cfg.Title)
	cfg.ScreenshotDir = envString("DRAGAREA_SCREENSHOT_DIR", cfg.ScreenshotDir)
	cfg.Scrollable = envBool("DRAGAREA_SCROLLABLE", cfg.Scrollable)
	cfg.Debug = envBool("DRAGAREA_DEBUG", cfg.Debug)
	cfg.ShowFPS = envBool("DRAGAREA_SHOW_FPS", cfg.ShowFPS)
	if cfg.Width, err = envInt("DRAGAREA_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envInt("DRAGAREA_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.DoubleClickMillis, err = envInt("DRAGAREA_DOUBLE_CLICK_MILLIS", cfg.DoubleClickMillis); err != nil {
		return Config{}, err
	}
	if cfg.DoubleClickSlop, err = envFloat("DRAGAREA_DOUBLE_CLICK_SLOP", cfg.DoubleClickSlop); err != nil {
		return Config{}, err
	}
	if cfg.DoubleClickSlopCells, err = envFloat("DRAGAREA_DOUBLE_CLICK_SLOP_CELLS", cfg.DoubleClickSlopCells); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is non-empty and falls back to Default
// otherwise. Environment overrides are applied in both cases.
func LoadOrDefault(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	return FromEnv(cfg)
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
