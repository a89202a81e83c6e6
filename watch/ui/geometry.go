// Package ui is the face's small retained-mode toolkit: text regions attached
// to a root layer, windows with load/unload handlers, and a window stack that
// repaints the framebuffer only when something changed.
package ui

import "image/color"

type Point struct {
	X, Y int
}

type Size struct {
	W, H int
}

type Rect struct {
	Origin Point
	Size   Size
}

// R is shorthand for a Rect literal.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

func (r Rect) MaxX() int { return r.Origin.X + r.Size.W }
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Origin.X && x < r.MaxX() && y >= r.Origin.Y && y < r.MaxY()
}

// Intersect returns the overlap of r and o; the zero Rect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.Origin.X, o.Origin.X)
	y0 := max(r.Origin.Y, o.Origin.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return R(x0, y0, x1-x0, y1-y0)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// Align is horizontal text alignment within a frame.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Palette used by the face.
var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Green = color.RGBA{G: 0xFF, A: 0xFF}
	Red   = color.RGBA{R: 0xFF, A: 0xFF}
	// Clear is a fully transparent colour; regions with a Clear background
	// draw only their glyphs.
	Clear = color.RGBA{}
)
