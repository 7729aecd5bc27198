package ui

import (
	"math"
	"time"
)

// clickSynth turns press/release pairs into clicks and double clicks the
// way a browser does: the second click of a quick pair is reported as a
// click followed by a double click.
type clickSynth struct {
	interval time.Duration
	slop     float64 // max distance between the clicks of a double click, in pixels

	pressed bool
	lastAt  time.Time
	lastX   float64
	lastY   float64
	count   int
}

func newClickSynth(interval time.Duration, slop float64) *clickSynth {
	return &clickSynth{interval: interval, slop: slop}
}

func (c *clickSynth) press() { c.pressed = true }

// release completes a click at (x, y) and reports whether it is the
// second click of a double click.
func (c *clickSynth) release(now time.Time, x, y float64) (click, double bool) {
	if !c.pressed {
		return false, false
	}
	c.pressed = false

	near := math.Hypot(x-c.lastX, y-c.lastY) <= c.slop
	if c.count == 1 && near && now.Sub(c.lastAt) <= c.interval {
		c.count = 0
		return true, true
	}
	c.count = 1
	c.lastAt = now
	c.lastX, c.lastY = x, y
	return true, false
}

func (c *clickSynth) reset() {
	c.pressed = false
	c.count = 0
}
