// Package board owns the drawing surface, the active style and the undo
// history, and turns gestures into pixel mutations and history commits.
package board

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"
)

// ErrNoSurface is returned when the drawing surface cannot be created.
var ErrNoSurface = errors.New("cannot acquire drawing surface")

// Options configures a new Board.
type Options struct {
	Background   color.RGBA
	HistoryLimit int
	Style        state.Style
}

// DefaultOptions draws black on white with the default history limit.
func DefaultOptions() Options {
	return Options{
		Background:   color.RGBA{255, 255, 255, 255},
		HistoryLimit: state.DefaultHistoryLimit,
		Style:        state.DefaultStyle(),
	}
}

// gesture is the in-progress stroke between pointer down and up.
type gesture struct {
	style  state.Style
	anchor image.Point
	last   image.Point
	damage state.Damage
}

// Board is the drawing surface controller. It is not safe for concurrent
// use; all calls are expected from the UI goroutine.
type Board struct {
	surface *raster.Surface
	history *state.History
	style   state.Style
	active  *gesture

	// OnChange is called after every pixel mutation or history move.
	OnChange func()
}

// New creates a blank board of the given size.
func New(width, height int, opts Options) (*Board, error) {
	surface, err := raster.New(width, height, opts.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	b := &Board{
		surface: surface,
		history: state.NewHistory(surface.Snapshot(), opts.HistoryLimit),
		style:   opts.Style.Normalized(),
	}
	log.Printf("[BOARD] Created %dx%d surface, history limit %d", width, height, b.history.Limit())
	return b, nil
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// Style returns the style applied to the next gesture.
func (b *Board) Style() state.Style {
	return b.style
}

// SetStyle replaces the whole style. See SetTool, SetColor and SetWidth.
func (b *Board) SetStyle(s state.Style) {
	b.SetTool(s.Tool)
	b.SetColor(s.Color)
	b.SetWidth(s.Width)
}

// SetTool selects the tool for the next gesture. An active gesture keeps
// the tool it started with.
func (b *Board) SetTool(t state.Tool) {
	b.style.Tool = t
}

// SetColor changes the stroke color, including for an active gesture.
func (b *Board) SetColor(c color.RGBA) {
	c.A = 255
	b.style.Color = c
	if b.active != nil {
		b.active.style.Color = b.style.Color
	}
}

// SetWidth changes the stroke width, clamped to [state.MinWidth, state.MaxWidth].
// It applies to an active gesture as well.
func (b *Board) SetWidth(w int) {
	b.style.Width = state.ClampWidth(w)
	if b.active != nil {
		b.active.style.Width = b.style.Width
	}
}

// Drawing reports whether a gesture is in progress.
func (b *Board) Drawing() bool {
	return b.active != nil
}

// Size returns the surface dimensions.
func (b *Board) Size() (width, height int) {
	return b.surface.Width(), b.surface.Height()
}

// Image returns a copy of the current surface pixels.
func (b *Board) Image() *image.RGBA {
	return b.surface.Snapshot()
}

// Surface exposes the live surface for rendering. Callers must not draw on it.
func (b *Board) Surface() *raster.Surface {
	return b.surface
}

// HistoryLen returns the number of stored history entries.
func (b *Board) HistoryLen() int {
	return b.history.Len()
}

// Cursor returns the index of the displayed history entry.
func (b *Board) Cursor() int {
	return b.history.Cursor()
}

// CanUndo reports whether Undo would move the cursor.
func (b *Board) CanUndo() bool {
	return b.history.CanUndo()
}

// Current returns the history entry at the cursor.
func (b *Board) Current() state.Entry {
	return b.history.Current()
}

// BeginStroke starts a gesture at p. Freehand tools stamp the first dab
// immediately; shape tools only record the anchor. A gesture that is still
// active is ended first.
func (b *Board) BeginStroke(p image.Point, style state.Style) {
	if b.active != nil {
		log.Printf("[BOARD] Stroke begun while another is active, ending the previous one")
		b.EndStroke()
	}
	g := &gesture{style: style.Normalized(), anchor: p, last: p}
	b.active = g

	if g.style.Tool.Freehand() {
		b.surface.Dab(p, g.style.Width, b.inkColor(g.style))
		g.damage.Add(p, p, g.style.Width/2)
		b.changed()
	}
}

// ExtendStroke continues the active gesture to p. Freehand tools draw a
// segment from the previous point; shape tools repaint the preview area
// from the committed snapshot and redraw the outline from the anchor.
func (b *Board) ExtendStroke(p image.Point) {
	g := b.active
	if g == nil {
		return
	}

	switch {
	case g.style.Tool.Freehand():
		b.surface.Line(g.last, p, g.style.Width, b.inkColor(g.style))
		g.damage.Add(g.last, p, g.style.Width/2)
	case g.style.Tool.Shape():
		b.surface.RestoreRect(b.history.Current().Pixels(), g.damage.Bounds())
		g.damage.Reset()
		b.drawShape(g, p)
	default:
		g.last = p
		return
	}
	g.last = p
	b.changed()
}

func (b *Board) drawShape(g *gesture, p image.Point) {
	pad := g.style.Width / 2
	switch g.style.Tool {
	case state.ToolRectangle:
		b.surface.Rect(g.anchor, p, g.style.Width, g.style.Color)
		g.damage.Add(g.anchor, p, pad)
	case state.ToolCircle:
		r := radius(g.anchor, p)
		b.surface.Circle(g.anchor, r, g.style.Width, g.style.Color)
		g.damage.Add(g.anchor.Sub(image.Pt(r, r)), g.anchor.Add(image.Pt(r, r)), pad)
	}
}

func radius(center, p image.Point) int {
	d := p.Sub(center)
	return int(math.Round(math.Hypot(float64(d.X), float64(d.Y))))
}

func (b *Board) inkColor(s state.Style) color.RGBA {
	if s.Tool == state.ToolEraser {
		return b.surface.Background()
	}
	return s.Color
}

// EndStroke commits the active gesture as one history entry. Gestures of
// the select tool never touch pixels and commit nothing.
func (b *Board) EndStroke() {
	g := b.active
	if g == nil {
		return
	}
	b.active = nil

	switch {
	case g.style.Tool.Freehand():
		b.commit(state.OpStroke)
	case g.style.Tool.Shape():
		b.commit(state.OpShape)
	}
}

// CancelStroke abandons the active gesture, repainting the surface from
// the committed snapshot without adding a history entry.
func (b *Board) CancelStroke() {
	g := b.active
	if g == nil {
		return
	}
	b.active = nil
	if !g.damage.Empty() {
		b.surface.RestoreRect(b.history.Current().Pixels(), g.damage.Bounds())
		b.changed()
	}
	log.Printf("[BOARD] Cancelled %s gesture", g.style.Tool)
}

func (b *Board) commit(kind state.OpKind) {
	e := b.history.Append(kind, b.surface.Snapshot())
	log.Printf("[BOARD] Committed %s %s (%d/%d)", kind, e.ID, b.history.Cursor()+1, b.history.Len())
	b.changed()
}

// Clear fills the surface with the background color and commits it.
func (b *Board) Clear() {
	b.EndStroke()
	b.surface.Fill(b.surface.Background())
	b.commit(state.OpClear)
}

// Fill floods the whole surface with the current stroke color and commits it.
func (b *Board) Fill() {
	b.EndStroke()
	b.surface.Fill(b.style.Color)
	b.commit(state.OpFill)
}

// Undo moves the history cursor back one entry and repaints the surface
// from it. An active gesture is abandoned first. At the oldest entry it
// does nothing else.
func (b *Board) Undo() {
	b.CancelStroke()
	e, ok := b.history.Undo()
	if !ok {
		return
	}
	b.surface.Restore(e.Pixels())
	log.Printf("[BOARD] Undo to %s (%d/%d)", e.ID, b.history.Cursor()+1, b.history.Len())
	b.changed()
}

// Resize matches the surface to a new viewport size. The entry at the
// cursor is repainted at the origin; pixels that no longer fit are lost and
// new area is background. An active gesture is committed first.
func (b *Board) Resize(width, height int) error {
	if w, h := b.Size(); w == width && h == height {
		return nil
	}
	b.EndStroke()
	if err := b.surface.Resize(width, height, b.history.Current().Pixels()); err != nil {
		return fmt.Errorf("resize to %dx%d: %w", width, height, err)
	}
	log.Printf("[BOARD] Resized surface to %dx%d", width, height)
	b.changed()
	return nil
}
