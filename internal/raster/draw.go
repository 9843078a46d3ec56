package raster

import (
	"image"
	"image/color"
)

// Dab stamps a filled disk of the given diameter centered at p.
// A width of 1 or less sets a single pixel.
func (s *Surface) Dab(p image.Point, width int, c color.RGBA) {
	c = opaque(c)
	r := width / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.set(p.X+dx, p.Y+dy, c)
			}
		}
	}
}

// Line draws a connected segment from a to b, stamping a dab at every
// Bresenham step so consecutive segments join without gaps.
func (s *Surface) Line(a, b image.Point, width int, c color.RGBA) {
	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := abs(b.Y - y0)
	sx := -1
	if x0 < b.X {
		sx = 1
	}
	sy := -1
	if y0 < b.Y {
		sy = 1
	}
	err := dx - dy

	for {
		s.Dab(image.Pt(x0, y0), width, c)
		if x0 == b.X && y0 == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of the axis-aligned box with opposite corners a and b.
// Both corner pixels lie on the outline.
func (s *Surface) Rect(a, b image.Point, width int, c color.RGBA) {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	s.Line(image.Pt(x0, y0), image.Pt(x1, y0), width, c)
	s.Line(image.Pt(x1, y0), image.Pt(x1, y1), width, c)
	s.Line(image.Pt(x1, y1), image.Pt(x0, y1), width, c)
	s.Line(image.Pt(x0, y1), image.Pt(x0, y0), width, c)
}

// Circle draws the outline of a circle using the midpoint algorithm.
// A zero radius degenerates to a single dab at the center.
func (s *Surface) Circle(center image.Point, radius, width int, c color.RGBA) {
	if radius <= 0 {
		s.Dab(center, width, c)
		return
	}
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			s.Dab(image.Pt(center.X+p[0], center.Y+p[1]), width, c)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
