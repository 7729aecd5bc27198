package viewport

import "math"

// Point is a screen position in pixels
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in screen pixels
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the middle of the box
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Empty reports whether the box has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the box (edges included)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint of two points
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// axisCorrection returns the offset that keeps a box [lo, lo+size] usefully
// inside the frame [flo, flo+fsize] on one axis.
func axisCorrection(lo, size, flo, fsize float64) float64 {
	if size <= fsize {
		return (flo + fsize/2) - (lo + size/2)
	}
	if lo > flo {
		return flo - lo
	}
	if lo+size < flo+fsize {
		return (flo + fsize) - (lo + size)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
