// Package navigation tracks which image of the set is displayed and
// whether the viewer is open.
package navigation

import (
	"time"

	"github.com/sirupsen/logrus"

	"lightbox/internal/domain"
	"lightbox/internal/imageset"
	"lightbox/internal/viewport"
)

// Display is the surface the controller drives
type Display interface {
	// Show starts loading item; the result must be reported back with gen.
	Show(item domain.Item, gen uint64)
	// Clear drops the displayed image so it is no longer held in memory.
	Clear()
	// RequestFocus asks for input focus after delay. Best effort.
	RequestFocus(delay time.Duration)
}

// State of the controller
type State struct {
	CurrentIndex int
	IsOpen       bool
}

// Options configures the initial fit of every newly displayed image
type Options struct {
	Mode          viewport.Mode
	FixedScale    float64
	FitMultiplier float64
	FocusDelay    time.Duration
}

// Controller owns the navigation state. It only touches the transform
// through its public operations.
type Controller struct {
	set       *imageset.Set
	transform *viewport.Transform
	display   Display
	opts      Options

	state   State
	gen     uint64
	lastErr error
	log     *logrus.Entry
}

// New creates a closed controller at index 0
func New(set *imageset.Set, transform *viewport.Transform, display Display, opts Options) *Controller {
	return &Controller{
		set:       set,
		transform: transform,
		display:   display,
		opts:      opts,
		log:       logrus.WithField("component", "navigation"),
	}
}

// State returns a copy of the navigation state
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the viewer is showing an image
func (c *Controller) IsOpen() bool { return c.state.IsOpen }

// Generation is the token of the latest display request
func (c *Controller) Generation() uint64 { return c.gen }

// LastError is the most recent load failure of the displayed item
func (c *Controller) LastError() error { return c.lastErr }

// Count returns the number of items
func (c *Controller) Count() int { return c.set.Count() }

// Current returns the item at the current index
func (c *Controller) Current() (domain.Item, bool) {
	it, err := c.set.ItemAt(c.state.CurrentIndex)
	return it, err == nil
}

// Open displays the item at index and opens the viewer
func (c *Controller) Open(index int) {
	n := c.set.Count()
	if n == 0 {
		return
	}
	c.state.CurrentIndex = imageset.Wrap(index, n)
	c.state.IsOpen = true
	c.show()
	if c.display != nil {
		c.display.RequestFocus(c.opts.FocusDelay)
	}
}

// Next advances to the following item, wrapping past the last
func (c *Controller) Next() { c.step(1) }

// Prev goes back one item, wrapping past the first
func (c *Controller) Prev() { c.step(-1) }

func (c *Controller) step(delta int) {
	n := c.set.Count()
	if !c.state.IsOpen || n == 0 {
		return
	}
	c.state.CurrentIndex = (c.state.CurrentIndex + delta + n) % n
	c.show()
}

// Close hides the viewer and releases the displayed image.
// The current index is kept.
func (c *Controller) Close() {
	if !c.state.IsOpen {
		return
	}
	c.state.IsOpen = false
	c.gen++ // loads still in flight are now stale
	c.lastErr = nil
	c.transform.Detach()
	if c.display != nil {
		c.display.Clear()
	}
}

// Loaded applies the initial fit once the natural size of the item shown
// with gen is known. Stale completions are ignored and return false.
func (c *Controller) Loaded(gen uint64, naturalW, naturalH int) bool {
	if !c.current(gen) {
		c.log.Debugf("ignoring stale load %d (latest %d)", gen, c.gen)
		return false
	}
	frame := c.transform.Frame()
	c.transform.ComputeInitialFit(frame.W, frame.H, float64(naturalW), float64(naturalH),
		c.opts.Mode, c.opts.FixedScale, c.opts.FitMultiplier)
	return true
}

// LoadFailed falls back to an identity transform for the item shown with gen
func (c *Controller) LoadFailed(gen uint64, err error) bool {
	if !c.current(gen) {
		return false
	}
	c.log.Warnf("failed to load item %d: %v", c.state.CurrentIndex, err)
	c.lastErr = err
	c.transform.Reset()
	return true
}

func (c *Controller) current(gen uint64) bool {
	return c.state.IsOpen && gen == c.gen
}

func (c *Controller) show() {
	it, err := c.set.ItemAt(c.state.CurrentIndex)
	if err != nil {
		return
	}
	c.gen++
	c.lastErr = nil
	c.transform.Detach()
	if c.display != nil {
		c.display.Show(it, c.gen)
	}
}
