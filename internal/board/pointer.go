package board

import (
	"fmt"
	"image"
)

// PointerKind is the phase of a normalized pointer or touch event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return fmt.Sprintf("pointer(%d)", int(k))
}

// PointerEvent is an input event from any device, in surface-local pixels.
type PointerEvent struct {
	Kind PointerKind
	Pos  image.Point
}

// HandlePointer routes a normalized event to the gesture operations using
// the board's current style.
func (b *Board) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		b.BeginStroke(ev.Pos, b.style)
	case PointerMove:
		b.ExtendStroke(ev.Pos)
	case PointerUp:
		b.EndStroke()
	case PointerCancel:
		b.CancelStroke()
	}
}
