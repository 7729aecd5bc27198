package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lightbox/internal/domain"
	"lightbox/internal/ui/services/navigation"
)

// Grid layout in terminal cells
const (
	GridCellWidth  = 24
	GridHeaderRows = 2 // title and its margin
	GridFooterRows = 2 // status and help
)

// GridColumns returns how many items fit side by side
func GridColumns(width int) int {
	if c := (width - 2) / GridCellWidth; c > 1 {
		return c
	}
	return 1
}

// GridRows returns how many item rows fit
func GridRows(height int) int {
	if r := height - GridHeaderRows - GridFooterRows; r > 1 {
		return r
	}
	return 1
}

// GridState is everything needed to draw the album grid
type GridState struct {
	Title    string
	Items    []domain.Item
	Nav      navigation.State
	Scanning bool
	Status   string
	Help     string
}

// Renderer draws the two screens of the program
type Renderer struct {
	styles *Styles
	canvas *Canvas
}

// NewRenderer creates a renderer with the default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles(), canvas: NewCanvas()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Grid renders the item grid
func (r *Renderer) Grid(s GridState, width, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(s.Title))
	b.WriteString("\n")

	switch {
	case s.Scanning:
		b.WriteString(r.styles.Loading.Render("Scanning..."))
		b.WriteString("\n")
	case len(s.Items) == 0:
		b.WriteString(r.styles.Dim.Render("No images found"))
		b.WriteString("\n")
	default:
		b.WriteString(r.renderRows(s))
	}

	status := s.Status
	if status == "" && len(s.Items) > 0 {
		status = fmt.Sprintf("%d/%d  %s", s.Nav.Cursor+1, len(s.Items), s.Items[s.Nav.Cursor].Source)
	}
	body := lipgloss.NewStyle().Height(height - GridFooterRows).MaxHeight(height - GridFooterRows).Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		r.styles.Status.Render(truncate(status, width)),
		r.styles.Help.Render(s.Help),
	)
}

func (r *Renderer) renderRows(s GridState) string {
	var b strings.Builder
	cols := s.Nav.Columns
	for row := 0; row < s.Nav.Rows; row++ {
		start := (s.Nav.RowOffset + row) * cols
		if start >= len(s.Items) {
			break
		}
		for col := 0; col < cols && start+col < len(s.Items); col++ {
			idx := start + col
			b.WriteString(r.renderItem(s.Items[idx], idx == s.Nav.Cursor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderItem(it domain.Item, selected bool) string {
	label := truncate(it.Album+"/"+it.Name(), GridCellWidth-2)
	cell := lipgloss.NewStyle().Width(GridCellWidth)
	if selected {
		return cell.Inherit(r.styles.SelectionBg).Render(r.styles.Highlight.Render("> " + label))
	}
	return cell.Render(r.styles.Item.Render("  " + label))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
