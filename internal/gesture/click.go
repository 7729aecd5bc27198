package gesture

import (
	"time"

	"lightbox/internal/viewport"
)

// ClickState is the state of the single/double click machine
type ClickState int

const (
	// Idle: no click waiting
	Idle ClickState = iota
	// PendingClick: a click waits for its debounce window to pass
	PendingClick
)

func (s ClickState) String() string {
	if s == PendingClick {
		return "pending-click"
	}
	return "idle"
}

// Timer asks the host to call Router.Expire(Seq) after Delay
type Timer struct {
	Seq   uint64
	Delay time.Duration
}

// clickMachine decides between a single click and a double click.
// A click moves Idle -> PendingClick and returns a timer; the timer firing
// with the current sequence commits the click, a double click or a newer
// click supersedes it.
type clickMachine struct {
	state ClickState
	seq   uint64
	at    viewport.Point
	delay time.Duration
}

func (m *clickMachine) click(at viewport.Point) Timer {
	m.seq++
	m.state = PendingClick
	m.at = at
	return Timer{Seq: m.seq, Delay: m.delay}
}

// cancel drops a pending click. It reports whether one was pending.
func (m *clickMachine) cancel() bool {
	pending := m.state == PendingClick
	m.state = Idle
	return pending
}

// expire returns the pending click position when seq is still current
func (m *clickMachine) expire(seq uint64) (viewport.Point, bool) {
	if m.state != PendingClick || seq != m.seq {
		return viewport.Point{}, false
	}
	m.state = Idle
	return m.at, true
}
