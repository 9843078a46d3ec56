package state

import "image"

// Damage accumulates the area touched by a gesture so that previews can be
// undone by repainting only that area from the committed snapshot.
type Damage struct {
	area image.Rectangle
}

// Add grows the damaged area to include the box spanned by a and b, padded
// by pad pixels on every side.
func (d *Damage) Add(a, b image.Point, pad int) {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	r = image.Rect(r.Min.X-pad, r.Min.Y-pad, r.Max.X+pad+1, r.Max.Y+pad+1)
	d.area = d.area.Union(r)
}

// Bounds returns the accumulated area.
func (d *Damage) Bounds() image.Rectangle {
	return d.area
}

// Empty reports whether nothing has been recorded since the last Reset.
func (d *Damage) Empty() bool {
	return d.area.Empty()
}

// Reset forgets the accumulated area.
func (d *Damage) Reset() {
	d.area = image.Rectangle{}
}
