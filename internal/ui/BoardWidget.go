package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/board"
)

// BoardWidget shows the board surface and feeds mouse and touch input to it
// as normalized pointer events.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	// OnChange is called after the board changed and the view refreshed.
	OnChange func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{board: b}
	w.ExtendBaseWidget(w)
	b.OnChange = func() {
		w.Refresh()
		w.notify()
	}
	return w
}

func (w *BoardWidget) notify() {
	if w.OnChange != nil {
		w.OnChange()
	}
}

// Board returns the controller behind the widget.
func (w *BoardWidget) Board() *board.Board {
	return w.board
}

// Status summarizes the history position and active style.
func (w *BoardWidget) Status() string {
	s := w.board.Style()
	return fmt.Sprintf("Step %d/%d  |  %s  |  %dpx", w.board.Cursor()+1, w.board.HistoryLen(), s.Tool, s.Width)
}

func (w *BoardWidget) pointer(kind board.PointerKind, pos fyne.Position) {
	w.board.HandlePointer(board.PointerEvent{
		Kind: kind,
		Pos:  image.Pt(int(pos.X), int(pos.Y)),
	})
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.pointer(board.PointerDown, e.Position)
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.pointer(board.PointerUp, e.Position)
	}
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	w.pointer(board.PointerMove, e.Position)
}

// MouseOut ends the gesture like a pointer leaving the surface.
func (w *BoardWidget) MouseOut() {
	w.board.EndStroke()
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.pointer(board.PointerMove, e.Position)
}

func (w *BoardWidget) DragEnd() {
	w.board.EndStroke()
}

func (w *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	w.pointer(board.PointerDown, e.Position)
}

func (w *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	w.pointer(board.PointerUp, e.Position)
}

func (w *BoardWidget) TouchCancel(e *mobile.TouchEvent) {
	w.pointer(board.PointerCancel, e.Position)
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	r.image = canvas.NewImageFromImage(w.board.Surface().Image())
	r.image.ScaleMode = canvas.ImageScalePixels
	r.image.FillMode = canvas.ImageFillStretch
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

// Layout keeps the surface the same size as the widget, one pixel per unit.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	width, height := int(size.Width), int(size.Height)
	if width > 0 && height > 0 {
		if err := r.board.board.Resize(width, height); err != nil {
			log.Printf("[UI] Surface resize failed: %v", err)
		}
	}
	r.image.Resize(fyne.NewSize(float32(r.board.board.Surface().Width()), float32(r.board.board.Surface().Height())))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Image = r.board.board.Surface().Image()
	r.image.Refresh()
	r.background.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
