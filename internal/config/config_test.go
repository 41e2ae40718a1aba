package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelmap/internal/deviation"
	"levelmap/internal/viewport"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levelmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, viewport.DefaultSurface(), cfg.Surface())
	assert.Equal(t, deviation.DefaultTolerance(), cfg.ToleranceValue())
	assert.Equal(t, 16*time.Millisecond, cfg.Scroll.FrameInterval)
	assert.Equal(t, viewport.DefaultZoomLimits(), cfg.SessionOptions().Zoom)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `display:
  width: 1000
  height: 600
  padding: 50
tolerance:
  mode: sop_plane
  upper: 10
scroll:
  frameInterval: 25ms
logFile: /tmp/levelmap.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, viewport.Surface{Width: 1000, Height: 600, Padding: 50}, cfg.Surface())
	assert.Equal(t, deviation.Tolerance{Mode: deviation.RelativeToPlane, Upper: 10, Lower: 5}, cfg.ToleranceValue())
	assert.Equal(t, 25*time.Millisecond, cfg.Scroll.FrameInterval)
	assert.Equal(t, 8, cfg.Scroll.Frames)
	assert.Equal(t, 1.1, cfg.Zoom.WheelFactor)
	assert.Equal(t, "/tmp/levelmap.log", cfg.LogFile)
}

func TestLoadNotExists(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "display: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "display: {width: 0}"},
		{"padding too large", "display: {width: 200, height: 200, padding: 100}"},
		{"unknown mode", "tolerance: {mode: median}"},
		{"upper above slider", "tolerance: {upper: 25}"},
		{"negative lower", "tolerance: {lower: -1}"},
		{"wheel factor", "zoom: {wheelFactor: 1}"},
		{"min scale", "zoom: {minScale: 0}"},
		{"frames", "scroll: {frames: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}
