// Package config loads the YAML configuration of the levelmap tool.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"levelmap/internal/deviation"
	"levelmap/internal/session"
	"levelmap/internal/viewport"
)

// MaxLimit is the top of the tolerance slider range in millimetres.
const MaxLimit = 20

type Display struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

type Tolerance struct {
	Mode  string  `yaml:"mode"`
	Upper float64 `yaml:"upper"`
	Lower float64 `yaml:"lower"`
}

type Zoom struct {
	WheelFactor  float64 `yaml:"wheelFactor"`
	ButtonFactor float64 `yaml:"buttonFactor"`
	MinScale     float64 `yaml:"minScale"`
	MaxScale     float64 `yaml:"maxScale"`
}

type Scroll struct {
	Frames        int           `yaml:"frames"`
	FrameInterval time.Duration `yaml:"frameInterval"`
}

// Config is the whole configuration file.
type Config struct {
	Display   Display   `yaml:"display"`
	Tolerance Tolerance `yaml:"tolerance"`
	Zoom      Zoom      `yaml:"zoom"`
	Scroll    Scroll    `yaml:"scroll"`
	LogFile   string    `yaml:"logFile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	s := viewport.DefaultSurface()
	z := viewport.DefaultZoomLimits()
	t := deviation.DefaultTolerance()
	return &Config{
		Display:   Display{Width: s.Width, Height: s.Height, Padding: s.Padding},
		Tolerance: Tolerance{Mode: t.Mode.String(), Upper: t.Upper, Lower: t.Lower},
		Zoom: Zoom{
			WheelFactor:  z.WheelFactor,
			ButtonFactor: z.ButtonFactor,
			MinScale:     z.MinScale,
			MaxScale:     z.MaxScale,
		},
		Scroll: Scroll{Frames: 8, FrameInterval: 16 * time.Millisecond},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges; the first problem found is returned.
func (c *Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display.width and display.height must be > 0")
	}
	if d.Padding < 0 || 2*d.Padding >= d.Width || 2*d.Padding >= d.Height {
		return fmt.Errorf("display.padding %.0f does not fit a %.0fx%.0f surface", d.Padding, d.Width, d.Height)
	}
	if _, err := deviation.ParseMode(c.Tolerance.Mode); err != nil {
		return fmt.Errorf("tolerance.mode: %w", err)
	}
	for name, v := range map[string]float64{"upper": c.Tolerance.Upper, "lower": c.Tolerance.Lower} {
		if v < 0 || v > MaxLimit {
			return fmt.Errorf("tolerance.%s must be within 0..%d, got %g", name, MaxLimit, v)
		}
	}
	z := c.Zoom
	if z.WheelFactor <= 1 || z.ButtonFactor <= 1 {
		return fmt.Errorf("zoom.wheelFactor and zoom.buttonFactor must be > 1")
	}
	if z.MinScale <= 0 || z.MaxScale < 1 || z.MinScale > 1 {
		return fmt.Errorf("zoom.minScale must be within (0, 1] and zoom.maxScale >= 1")
	}
	if c.Scroll.Frames < 1 {
		return fmt.Errorf("scroll.frames must be >= 1")
	}
	if c.Scroll.FrameInterval <= 0 {
		return fmt.Errorf("scroll.frameInterval must be > 0")
	}
	return nil
}

// Surface is the drawing surface described by the display section.
func (c *Config) Surface() viewport.Surface {
	return viewport.Surface{Width: c.Display.Width, Height: c.Display.Height, Padding: c.Display.Padding}
}

// ToleranceValue converts the tolerance section. Call after Validate.
func (c *Config) ToleranceValue() deviation.Tolerance {
	mode, _ := deviation.ParseMode(c.Tolerance.Mode)
	return deviation.Tolerance{Mode: mode, Upper: c.Tolerance.Upper, Lower: c.Tolerance.Lower}
}

// SessionOptions builds the options for a new session.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Surface: c.Surface(),
		Zoom: viewport.ZoomLimits{
			WheelFactor:  c.Zoom.WheelFactor,
			ButtonFactor: c.Zoom.ButtonFactor,
			MinScale:     c.Zoom.MinScale,
			MaxScale:     c.Zoom.MaxScale,
		},
		Tolerance: c.ToleranceValue(),
	}
}
