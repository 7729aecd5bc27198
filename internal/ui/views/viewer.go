package views

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewerStatusRows is the number of rows below the image
const ViewerStatusRows = 1

// ViewerState is everything needed to draw the open viewer
type ViewerState struct {
	Image     image.Image
	Placement Placement
	Album     string
	File      string
	Index     int
	Count     int
	Zoom      float64
	Loading   bool
	Err       error
	Help      string // shown instead of the status line when set
}

// Viewer renders the image full screen with a status line
func (r *Renderer) Viewer(s ViewerState, width, height int) string {
	rows := height - ViewerStatusRows
	if rows < 1 {
		rows = 1
	}
	var img string
	if s.Help != "" {
		img = lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(s.Help)
	} else {
		img = r.canvas.Render(s.Image, s.Placement, width, rows)
	}
	return img + "\n" + r.status(s, width)
}

// Status returns the plain text of the status line
func (s ViewerState) Status() string {
	parts := []string{
		s.Album,
		s.File,
		fmt.Sprintf("%d/%d", s.Index+1, s.Count),
		fmt.Sprintf("%.0f%%", s.Zoom*100),
	}
	if s.Loading {
		parts = append(parts, "loading")
	}
	if s.Err != nil {
		parts = append(parts, "error: "+s.Err.Error())
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) status(s ViewerState, width int) string {
	text := truncate(s.Status(), width)
	if s.Err != nil {
		return r.styles.StatusError.Render(text)
	}
	return r.styles.Status.Render(text)
}
