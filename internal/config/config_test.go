package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.Background())
	assert.Equal(t, state.DefaultStyle(), cfg.InitialStyle())
	assert.Equal(t, export.FormatPNG, cfg.ExportFormat())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	data := `
[canvas]
width = 640
background = "#102030"

[history]
limit = 12

[style]
tool = "circle"
color = "#f00"
width = 80

[export]
format = "bmp"
trim = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 768, cfg.Canvas.Height, "unset keys keep their default")
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, cfg.Background())
	assert.Equal(t, 12, cfg.History.Limit)
	assert.Equal(t, export.FormatBMP, cfg.ExportFormat())
	assert.True(t, cfg.Export.Trim)

	style := cfg.InitialStyle()
	assert.Equal(t, state.ToolCircle, style.Tool)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, style.Color)
	assert.Equal(t, state.MaxWidth, style.Width)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[canvas\nwidth = 1"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := Parse("[canvas]\ndepth = 3\n", &cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "canvas.depth")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }},
		{"history limit", func(c *Config) { c.History.Limit = 1 }},
		{"background", func(c *Config) { c.Canvas.Background = "white" }},
		{"style color", func(c *Config) { c.Style.Color = "#12345" }},
		{"tool", func(c *Config) { c.Style.Tool = "lasso" }},
		{"format", func(c *Config) { c.Export.Format = "gif" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestHexColor(t *testing.T) {
	c, err := ParseHexColor("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x1a, 0x2b, 0x3c, 255}, c)
	assert.Equal(t, "#1a2b3c", HexColor(c))

	c, err = ParseHexColor("abc")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xaa, 0xbb, 0xcc, 255}, c)

	_, err = ParseHexColor("#ggg")
	assert.Error(t, err)
}
