package state

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolBrush, ToolEraser, ToolRectangle, ToolCircle, ToolSelect} {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}

	got, err := ParseTool("  Circle ")
	require.NoError(t, err)
	assert.Equal(t, ToolCircle, got)

	_, err = ParseTool("lasso")
	assert.Error(t, err)
}

func TestToolKinds(t *testing.T) {
	assert.True(t, ToolBrush.Freehand())
	assert.True(t, ToolEraser.Freehand())
	assert.True(t, ToolRectangle.Shape())
	assert.True(t, ToolCircle.Shape())
	assert.False(t, ToolSelect.Freehand())
	assert.False(t, ToolSelect.Shape())
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, 1, ClampWidth(0))
	assert.Equal(t, 1, ClampWidth(-4))
	assert.Equal(t, 17, ClampWidth(17))
	assert.Equal(t, 50, ClampWidth(51))
}

func TestStyleNormalized(t *testing.T) {
	s := Style{Tool: ToolEraser, Color: color.RGBA{R: 9}, Width: 99}.Normalized()
	assert.Equal(t, color.RGBA{R: 9, A: 255}, s.Color)
	assert.Equal(t, MaxWidth, s.Width)
	assert.Equal(t, ToolEraser, s.Tool)
}

func TestDamage(t *testing.T) {
	var d Damage
	assert.True(t, d.Empty())

	d.Add(image.Pt(10, 10), image.Pt(5, 20), 2)
	assert.Equal(t, image.Rect(3, 8, 13, 23), d.Bounds())

	d.Add(image.Pt(30, 0), image.Pt(30, 0), 0)
	assert.Equal(t, image.Rect(3, 0, 31, 23), d.Bounds())

	d.Reset()
	assert.True(t, d.Empty())
}
