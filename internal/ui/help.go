package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lightbox/internal/pager"
)

// PagerOps hands the terminal to the ov pager and takes it back
type PagerOps struct {
	program *tea.Program
	page    func(string) error
}

// NewPagerOps creates pager operations for program
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program, page: pager.Page}
}

// SetProgram sets the program whose terminal is borrowed
func (h *PagerOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Show displays content in the pager, suspending the program meanwhile
func (h *PagerOps) Show(content string) error {
	if h.program == nil {
		return h.page(content)
	}
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	return h.page(content)
}
