package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrEmptySurface is returned when a surface is requested with a non-positive size.
var ErrEmptySurface = errors.New("surface size must be positive")

// Surface is a mutable RGBA pixel buffer with a fixed background color.
type Surface struct {
	img        *image.RGBA
	background color.RGBA
}

// New creates a surface of the given size filled with the background color.
func New(width, height int, background color.RGBA) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySurface
	}
	s := &Surface{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: opaque(background),
	}
	s.Fill(s.background)
	return s, nil
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

// Bounds returns the surface rectangle, always anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Background returns the color used for clears, erasing and newly exposed area.
func (s *Surface) Background() color.RGBA { return s.background }

// At returns the pixel at (x, y). Out of bounds reads return the zero color.
func (s *Surface) At(x, y int) color.RGBA {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// Image exposes the live buffer for read-only rendering. Callers must not
// mutate it; use Snapshot for an independent copy.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a deep copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	return Clone(s.img)
}

// Clone deep-copies an RGBA image.
func Clone(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Fill paints every pixel with c.
func (s *Surface) Fill(c color.RGBA) {
	c = opaque(c)
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Restore repaints the surface from src. Pixels of src outside the surface
// are dropped and surface pixels not covered by src become background.
func (s *Surface) Restore(src *image.RGBA) {
	if src == nil {
		s.Fill(s.background)
		return
	}
	if src.Bounds() == s.img.Bounds() {
		copy(s.img.Pix, src.Pix)
		return
	}
	s.Fill(s.background)
	overlap := s.img.Bounds().Intersect(src.Bounds())
	draw.Draw(s.img, overlap, src, overlap.Min, draw.Src)
}

// RestoreRect repaints only the area r from src, with the same clipping
// and background rules as Restore.
func (s *Surface) RestoreRect(src *image.RGBA, r image.Rectangle) {
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(s.background), image.Point{}, draw.Src)
	if src == nil {
		return
	}
	overlap := r.Intersect(src.Bounds())
	draw.Draw(s.img, overlap, src, overlap.Min, draw.Src)
}

// Resize replaces the buffer with one of the new size and repaints it from src.
func (s *Surface) Resize(width, height int, src *image.RGBA) error {
	if width <= 0 || height <= 0 {
		return ErrEmptySurface
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.Restore(src)
	return nil
}

// ContentBounds returns the bounding box of pixels that differ from the
// background, or an empty rectangle for a blank surface.
func (s *Surface) ContentBounds() image.Rectangle {
	b := s.img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.img.RGBAAt(x, y) == s.background {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func (s *Surface) set(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return
	}
	i := s.img.PixOffset(x, y)
	s.img.Pix[i] = c.R
	s.img.Pix[i+1] = c.G
	s.img.Pix[i+2] = c.B
	s.img.Pix[i+3] = c.A
}
