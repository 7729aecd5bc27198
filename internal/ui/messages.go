package ui

import (
	"lightbox/internal/domain"
	"lightbox/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// scanDoneMsg carries the result of the initial scan
type scanDoneMsg struct {
	result domain.ScanResult
	err    error
}

// clickTimerMsg delivers a gesture router click timer
type clickTimerMsg struct {
	seq uint64
}

// focusMsg moves keyboard input to the viewer
type focusMsg struct{}

// listPagerMsg contains the result of the listing pager
type listPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
