package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/state"
)

var palette = []color.RGBA{
	{0, 0, 0, 255},
	{255, 255, 255, 255},
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 128, 0, 255},
	{128, 0, 255, 255},
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.RGBA
	OnTapped func(color.RGBA)
}

func newColorSwatch(c color.RGBA, tapped func(color.RGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

// --- The Main Toolbar ---
func NewToolbar(w *BoardWidget, win fyne.Window, onExport func()) fyne.CanvasObject {
	b := w.Board()
	selectTool := func(t state.Tool) func() {
		return func() {
			b.SetTool(t)
			w.notify()
		}
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), selectTool(state.ToolBrush)),
		widget.NewToolbarAction(theme.ContentClearIcon(), selectTool(state.ToolEraser)),
		widget.NewToolbarAction(theme.CheckButtonIcon(), selectTool(state.ToolRectangle)),
		widget.NewToolbarAction(theme.RadioButtonIcon(), selectTool(state.ToolCircle)),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), selectTool(state.ToolSelect)),
	)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.Undo),
		widget.NewToolbarAction(theme.DeleteIcon(), b.Clear),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), b.Fill),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onExport),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.RGBA) {
		b.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}
	picker := widget.NewButtonWithIcon("", theme.ColorChromaticIcon(), func() {
		d := dialog.NewColorPicker("Stroke color", "Pick any color", func(c color.Color) {
			b.SetColor(toRGBA(c))
		}, win)
		d.Advanced = true
		d.Show()
	})

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(state.MinWidth, state.MaxWidth)
	strokeSlider.Step = 1
	strokeSlider.SetValue(float64(b.Style().Width))
	strokeSlider.OnChanged = func(val float64) {
		b.SetWidth(int(val))
		w.notify()
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		picker,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}
