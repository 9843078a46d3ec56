package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	History History `toml:"history"`
	Style   Style   `toml:"style"`
	Export  Export  `toml:"export"`
	Window  Window  `toml:"window"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type History struct {
	Limit int `toml:"limit"`
}

type Style struct {
	Tool  string `toml:"tool"`
	Color string `toml:"color"`
	Width int    `toml:"width"`
}

type Export struct {
	Format string `toml:"format"`
	Trim   bool   `toml:"trim"`
}

type Window struct {
	Title string `toml:"title"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Canvas:  Canvas{Width: 1024, Height: 768, Background: "#ffffff"},
		History: History{Limit: state.DefaultHistoryLimit},
		Style:   Style{Tool: "brush", Color: "#000000", Width: 3},
		Export:  Export{Format: string(export.FormatPNG)},
		Window:  Window{Title: "SketchBoard"},
	}
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, leaving unset keys untouched.
func Parse(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every field that the board would otherwise reject.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.History.Limit < 2 {
		return fmt.Errorf("%w: history limit %d is below 2", ErrInvalidConfig, c.History.Limit)
	}
	if _, err := ParseHexColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("%w: canvas.background: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseHexColor(c.Style.Color); err != nil {
		return fmt.Errorf("%w: style.color: %v", ErrInvalidConfig, err)
	}
	if _, err := state.ParseTool(c.Style.Tool); err != nil {
		return fmt.Errorf("%w: style.tool: %v", ErrInvalidConfig, err)
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: export.format: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Background returns the parsed canvas background. Call Validate first.
func (c Config) Background() color.RGBA {
	bg, _ := ParseHexColor(c.Canvas.Background)
	return bg
}

// InitialStyle returns the parsed startup style. Call Validate first.
func (c Config) InitialStyle() state.Style {
	s := state.DefaultStyle()
	if tool, err := state.ParseTool(c.Style.Tool); err == nil {
		s.Tool = tool
	}
	if col, err := ParseHexColor(c.Style.Color); err == nil {
		s.Color = col
	}
	s.Width = c.Style.Width
	return s.Normalized()
}

// ExportFormat returns the parsed default export format. Call Validate first.
func (c Config) ExportFormat() export.Format {
	f, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.FormatPNG
	}
	return f
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
