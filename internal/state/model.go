package state

import (
	"fmt"
	"image/color"
	"strings"
)

// Tool selects how a gesture mutates the surface.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolSelect
)

var toolNames = map[Tool]string{
	ToolBrush:     "brush",
	ToolEraser:    "eraser",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
	ToolSelect:    "select",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Freehand reports whether the tool paints a continuous path.
func (t Tool) Freehand() bool {
	return t == ToolBrush || t == ToolEraser
}

// Shape reports whether the tool previews an outline from an anchor point.
func (t Tool) Shape() bool {
	return t == ToolRectangle || t == ToolCircle
}

// ParseTool maps a tool name to its Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return ToolBrush, fmt.Errorf("unknown tool %q", name)
}

// Stroke width limits accepted from the toolbar.
const (
	MinWidth = 1
	MaxWidth = 50
)

// ClampWidth forces w into [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	return min(max(w, MinWidth), MaxWidth)
}

// Style is the tool state applied to the next gesture.
type Style struct {
	Tool  Tool
	Color color.RGBA
	Width int
}

// DefaultStyle is a 3px black brush.
func DefaultStyle() Style {
	return Style{Tool: ToolBrush, Color: color.RGBA{A: 255}, Width: 3}
}

// Normalized returns the style with an opaque color and a clamped width.
func (s Style) Normalized() Style {
	s.Color.A = 255
	s.Width = ClampWidth(s.Width)
	return s
}

// OpKind names the operation that produced a history entry.
type OpKind string

const (
	OpInitial OpKind = "initial"
	OpStroke  OpKind = "stroke"
	OpShape   OpKind = "shape"
	OpClear   OpKind = "clear"
	OpFill    OpKind = "fill"
)
