// Package viewport holds the zoom/pan state of the displayed image and the
// arithmetic that keeps it consistent.
//
// The image's layout box has the image's natural size and is centred in the
// frame. The transform translates that box by the pan offset and scales it
// about its own centre, so on screen the image is centred at
// frame centre + pan and measures natural size * scale.
package viewport

import (
	"fmt"
	"math"
)

// Mode selects how the initial scale of a newly loaded image is chosen
type Mode string

const (
	// ModeFit scales the image to fit the frame, times a multiplier
	ModeFit Mode = "fit"
	// ModeFixed uses a fixed scale
	ModeFixed Mode = "fixed"
)

// Options configures a Transform
type Options struct {
	MinScale float64
	MaxScale float64
	// SettleTolerance is the smallest pan correction ClampPan applies.
	SettleTolerance float64
}

// DefaultOptions returns bounds [0.1, 5] and a half pixel settle tolerance
func DefaultOptions() Options {
	return Options{MinScale: 0.1, MaxScale: 5, SettleTolerance: 0.5}
}

// State is a snapshot of the transform
type State struct {
	Scale    float64
	PanX     float64
	PanY     float64
	MinScale float64
	MaxScale float64
}

// Matrix describes the transform to apply to the image element
type Matrix struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// String renders the matrix as a CSS-style transform
func (m Matrix) String() string {
	return fmt.Sprintf("translate(%gpx,%gpx) scale(%g)", m.TranslateX, m.TranslateY, m.Scale)
}

// Transform owns the viewport state.
// Mutators other than Reset are no-ops until an image is attached.
type Transform struct {
	state     State
	frame     Rect
	natW      float64
	natH      float64
	attached  bool
	tolerance float64
}

// New creates a transform at scale 1 with no image attached
func New(opts Options) *Transform {
	if opts.MinScale <= 0 || opts.MaxScale <= 0 || opts.MinScale > opts.MaxScale {
		def := DefaultOptions()
		opts.MinScale, opts.MaxScale = def.MinScale, def.MaxScale
	}
	t := &Transform{
		state: State{
			MinScale: opts.MinScale,
			MaxScale: opts.MaxScale,
		},
		tolerance: math.Max(0, opts.SettleTolerance),
	}
	t.state.Scale = t.clampScale(1)
	return t
}

// State returns a copy of the current state
func (t *Transform) State() State { return t.state }

// Scale returns the current scale
func (t *Transform) Scale() float64 { return t.state.Scale }

// Pan returns the current pan offset
func (t *Transform) Pan() Point { return Point{X: t.state.PanX, Y: t.state.PanY} }

// Frame returns the frame the image is shown in
func (t *Transform) Frame() Rect { return t.frame }

// Attached reports whether an image with known dimensions is displayed
func (t *Transform) Attached() bool { return t.attached }

// NaturalSize returns the dimensions of the attached image
func (t *Transform) NaturalSize() (float64, float64) { return t.natW, t.natH }

// Matrix returns the transform to apply to the image
func (t *Transform) Matrix() Matrix {
	return Matrix{TranslateX: t.state.PanX, TranslateY: t.state.PanY, Scale: t.state.Scale}
}

// ImageRect returns the on-screen box of the transformed image
func (t *Transform) ImageRect() Rect {
	w := t.natW * t.state.Scale
	h := t.natH * t.state.Scale
	return Rect{
		X: t.frame.CenterX() + t.state.PanX - w/2,
		Y: t.frame.CenterY() + t.state.PanY - h/2,
		W: w,
		H: h,
	}
}

// ScreenToImage maps a screen point to image pixel coordinates
func (t *Transform) ScreenToImage(p Point) Point {
	r := t.ImageRect()
	return Point{X: (p.X - r.X) / t.state.Scale, Y: (p.Y - r.Y) / t.state.Scale}
}

// ImageToScreen maps image pixel coordinates to a screen point
func (t *Transform) ImageToScreen(p Point) Point {
	r := t.ImageRect()
	return Point{X: r.X + p.X*t.state.Scale, Y: r.Y + p.Y*t.state.Scale}
}

// SetFrame updates the frame, e.g. after a terminal resize
func (t *Transform) SetFrame(frame Rect) {
	t.frame = frame
	if t.attached {
		t.ClampPan()
	}
}

// Attach records the natural size of the displayed image. It does not
// change the scale; use ComputeInitialFit for that.
func (t *Transform) Attach(naturalW, naturalH float64) {
	if naturalW <= 0 || naturalH <= 0 {
		return
	}
	t.natW, t.natH = naturalW, naturalH
	t.attached = true
}

// Detach forgets the displayed image; zoom and pan are ignored until the next Attach
func (t *Transform) Detach() {
	t.attached = false
	t.natW, t.natH = 0, 0
}

// Reset returns to scale 1 with no pan
func (t *Transform) Reset() Matrix {
	t.state.Scale = t.clampScale(1)
	t.state.PanX, t.state.PanY = 0, 0
	if t.attached {
		t.ClampPan()
	}
	return t.Matrix()
}

// ZoomTo sets the scale, keeping the image point under (anchorX, anchorY)
// at the same screen position, then clamps the pan.
func (t *Transform) ZoomTo(target, anchorX, anchorY float64) Matrix {
	if !t.attached || math.IsNaN(target) {
		return t.Matrix()
	}
	s := t.clampScale(target)
	t.state.PanX, t.state.PanY = t.anchoredPan(s, Point{X: anchorX, Y: anchorY})
	t.state.Scale = s
	t.ClampPan()
	return t.Matrix()
}

// ZoomBy changes the scale by delta, anchored at the frame centre
func (t *Transform) ZoomBy(delta float64) Matrix {
	c := t.frame.Center()
	return t.ZoomTo(t.state.Scale+delta, c.X, c.Y)
}

// PanBy moves the image without clamping. Callers clamp once the drag ends.
func (t *Transform) PanBy(dx, dy float64) Matrix {
	if !t.attached {
		return t.Matrix()
	}
	t.state.PanX += dx
	t.state.PanY += dy
	return t.Matrix()
}

// ComputeInitialFit chooses the scale for a freshly loaded image and
// attaches it. A missing natural size falls back to the container size;
// a degenerate container falls back to Reset.
func (t *Transform) ComputeInitialFit(containerW, containerH, naturalW, naturalH float64, mode Mode, fixedScale, fitMultiplier float64) Matrix {
	if naturalW <= 0 || naturalH <= 0 {
		naturalW, naturalH = containerW, containerH
	}
	if naturalW <= 0 || naturalH <= 0 {
		return t.Reset()
	}
	t.Attach(naturalW, naturalH)

	var s float64
	if mode == ModeFixed {
		s = fixedScale
	} else {
		fit := math.Min(containerW/math.Max(1, naturalW), containerH/math.Max(1, naturalH))
		s = fit * fitMultiplier
	}
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return t.Reset()
	}

	t.state.Scale = t.clampScale(s)
	t.state.PanX, t.state.PanY = 0, 0
	t.ClampPan()
	return t.Matrix()
}

// ClampPan corrects the pan so the image cannot drift out of the frame:
// per axis, an image no larger than the frame is centred and a larger one
// may not expose empty space at either edge. Reports whether pan changed.
func (t *Transform) ClampPan() bool {
	if !t.attached || t.frame.Empty() {
		return false
	}
	img := t.ImageRect()
	dx := axisCorrection(img.X, img.W, t.frame.X, t.frame.W)
	dy := axisCorrection(img.Y, img.H, t.frame.Y, t.frame.H)
	if math.Abs(dx) <= t.tolerance && math.Abs(dy) <= t.tolerance {
		return false
	}
	t.state.PanX += dx
	t.state.PanY += dy
	return true
}

// anchoredPan computes the pan at scale s that keeps the fractional image
// position under anchor fixed.
func (t *Transform) anchoredPan(s float64, anchor Point) (float64, float64) {
	img := t.ImageRect()
	relX, relY := 0.5, 0.5
	if img.W > 0 {
		relX = (anchor.X - img.X) / img.W
	}
	if img.H > 0 {
		relY = (anchor.Y - img.Y) / img.H
	}
	newW, newH := t.natW*s, t.natH*s
	centerX := anchor.X - relX*newW + newW/2
	centerY := anchor.Y - relY*newH + newH/2
	return centerX - t.frame.CenterX(), centerY - t.frame.CenterY()
}

func (t *Transform) clampScale(s float64) float64 {
	return clamp(s, t.state.MinScale, t.state.MaxScale)
}
