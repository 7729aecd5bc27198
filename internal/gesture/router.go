// Package gesture turns raw wheel, click, keyboard and pointer input into
// viewport and navigation commands.
package gesture

import (
	"time"

	"github.com/sirupsen/logrus"

	"lightbox/internal/viewport"
)

// Transformer is the part of the viewport the router drives
type Transformer interface {
	Scale() float64
	ImageRect() viewport.Rect
	ZoomTo(target, anchorX, anchorY float64) viewport.Matrix
	ZoomBy(delta float64) viewport.Matrix
	PanBy(dx, dy float64) viewport.Matrix
	Reset() viewport.Matrix
	ClampPan() bool
}

// Navigator is the part of the navigation controller the router drives
type Navigator interface {
	IsOpen() bool
	Next()
	Prev()
	Close()
}

// Options holds the gesture constants
type Options struct {
	ZoomStep         float64
	DoubleClickScale float64
	ClickZoomScale   float64
	ToggleThreshold  float64
	PrevBand         float64
	NextBand         float64
	WheelFactor      float64
	DragDeadZone     float64
	ClickDebounce    time.Duration
}

// DefaultOptions returns the stock gesture constants
func DefaultOptions() Options {
	return Options{
		ZoomStep:         0.25,
		DoubleClickScale: 2.5,
		ClickZoomScale:   2.2,
		ToggleThreshold:  1.1,
		PrevBand:         0.4,
		NextBand:         0.6,
		WheelFactor:      0.0015,
		DragDeadZone:     4,
		ClickDebounce:    220 * time.Millisecond,
	}
}

type pinchBaseline struct {
	distance     float64
	scaleAtStart float64
}

// Router owns the gesture session. It holds non-owning references to the
// transform and the navigator and never writes the transform directly.
type Router struct {
	transform Transformer
	nav       Navigator
	opts      Options

	pointers Tracker
	lastPan  viewport.Point
	pinch    *pinchBaseline
	dragged  bool
	clicks   clickMachine

	log *logrus.Entry
}

// NewRouter creates a router in the idle state
func NewRouter(transform Transformer, nav Navigator, opts Options) *Router {
	return &Router{
		transform: transform,
		nav:       nav,
		opts:      opts,
		clicks:    clickMachine{delay: opts.ClickDebounce},
		log:       logrus.WithField("component", "gesture"),
	}
}

// ClickState returns the state of the click machine
func (r *Router) ClickState() ClickState { return r.clicks.state }

// Pointers returns the number of tracked pointers
func (r *Router) Pointers() int { return r.pointers.Len() }

// Pinching reports whether a pinch baseline is set
func (r *Router) Pinching() bool { return r.pinch != nil }

// Reset clears the gesture session
func (r *Router) Reset() {
	r.pointers.Clear()
	r.pinch = nil
	r.dragged = false
	r.clicks.cancel()
}

// Click registers a single click at (x, y). The action is only taken when
// the returned timer expires without a double click in between. Clicks
// ending a drag are ignored and return false.
func (r *Router) Click(x, y float64) (Timer, bool) {
	if !r.nav.IsOpen() {
		return Timer{}, false
	}
	if r.dragged {
		r.dragged = false
		return Timer{}, false
	}
	return r.clicks.click(viewport.Point{X: x, Y: y}), true
}

// Expire delivers a click timer. Returns true when a click was committed.
func (r *Router) Expire(seq uint64) bool {
	at, ok := r.clicks.expire(seq)
	if !ok || !r.nav.IsOpen() {
		return false
	}
	r.commitClick(at)
	return true
}

// DoubleClick cancels a pending click and toggles zoom at (x, y)
func (r *Router) DoubleClick(x, y float64) {
	r.clicks.cancel()
	if !r.nav.IsOpen() {
		return
	}
	r.toggleZoom(r.opts.DoubleClickScale, x, y)
}

// commitClick: the left band goes back, the right band goes forward and
// the middle toggles zoom.
func (r *Router) commitClick(at viewport.Point) {
	img := r.transform.ImageRect()
	if img.W <= 0 {
		r.nav.Next()
		return
	}
	x := at.X - img.X
	switch {
	case x < img.W*r.opts.PrevBand:
		r.nav.Prev()
	case x > img.W*r.opts.NextBand:
		r.nav.Next()
	default:
		r.toggleZoom(r.opts.ClickZoomScale, at.X, at.Y)
	}
}

func (r *Router) toggleZoom(target, x, y float64) {
	if r.transform.Scale() > r.opts.ToggleThreshold {
		r.transform.Reset()
		return
	}
	r.transform.ZoomTo(target, x, y)
}

// Wheel zooms by a factor proportional to the vertical scroll delta,
// anchored at the pointer. It reports whether the host should suppress its
// default scroll handling.
func (r *Router) Wheel(deltaY, x, y float64) bool {
	if !r.nav.IsOpen() {
		return false
	}
	factor := 1 - deltaY*r.opts.WheelFactor
	r.transform.ZoomTo(r.transform.Scale()*factor, x, y)
	return true
}

// Key handles a key press while the viewer is open
func (r *Router) Key(ev KeyEvent) bool {
	if !r.nav.IsOpen() {
		return false
	}
	return r.run(Classify(ev))
}

// KeyPress handles a printable character while the viewer is open
func (r *Router) KeyPress(ch rune) bool {
	if !r.nav.IsOpen() {
		return false
	}
	return r.run(ClassifyRune(ch))
}

func (r *Router) run(cmd Command) bool {
	switch cmd {
	case CommandClose:
		r.Reset()
		r.nav.Close()
	case CommandPrev:
		r.nav.Prev()
	case CommandNext:
		r.nav.Next()
	case CommandZoomIn:
		r.transform.ZoomBy(r.opts.ZoomStep)
	case CommandZoomOut:
		r.transform.ZoomBy(-r.opts.ZoomStep)
	default:
		return false
	}
	r.log.Debugf("key command %s", cmd)
	return true
}

// PointerDown starts tracking a pointer
func (r *Router) PointerDown(id int, x, y float64) {
	if !r.nav.IsOpen() {
		return
	}
	p := viewport.Point{X: x, Y: y}
	if r.pointers.Len() == 0 {
		r.dragged = false
	}
	if !r.pointers.Add(id, p) {
		return
	}
	switch r.pointers.Len() {
	case 1:
		r.lastPan = p
	case MaxPointers:
		r.captureBaseline()
	}
}

// PointerMove pans with one pointer (only when zoomed in) and pinches
// with two.
func (r *Router) PointerMove(id int, x, y float64) {
	if !r.nav.IsOpen() || !r.pointers.Has(id) {
		return
	}
	p := viewport.Point{X: x, Y: y}
	r.pointers.Update(id, p)
	if r.pointers.Travel(id) > r.opts.DragDeadZone {
		r.dragged = true
	}

	switch r.pointers.Len() {
	case 1:
		dx, dy := p.X-r.lastPan.X, p.Y-r.lastPan.Y
		r.lastPan = p
		if r.transform.Scale() > 1 {
			r.transform.PanBy(dx, dy)
		}
	case MaxPointers:
		a, b, _ := r.pointers.Pair()
		if r.pinch == nil {
			r.captureBaseline()
			return
		}
		dist := viewport.Distance(a, b)
		mid := viewport.Midpoint(a, b)
		r.transform.ZoomTo(r.pinch.scaleAtStart*(dist/r.pinch.distance), mid.X, mid.Y)
	}
}

// PointerUp stops tracking a pointer and settles the pan
func (r *Router) PointerUp(id int) {
	r.release(id)
}

// PointerCancel is PointerUp for pointers the host lost
func (r *Router) PointerCancel(id int) {
	r.release(id)
}

func (r *Router) release(id int) {
	if !r.pointers.Remove(id) {
		return
	}
	if r.pointers.Len() < MaxPointers {
		r.pinch = nil
	}
	if p, ok := r.pointers.First(); ok {
		r.lastPan = p
	}
	r.transform.ClampPan()
}

func (r *Router) captureBaseline() {
	a, b, ok := r.pointers.Pair()
	if !ok {
		return
	}
	dist := viewport.Distance(a, b)
	if dist <= 0 {
		return
	}
	r.pinch = &pinchBaseline{distance: dist, scaleAtStart: r.transform.Scale()}
}
