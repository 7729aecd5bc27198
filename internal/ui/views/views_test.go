package views

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lightbox/internal/domain"
	"lightbox/internal/ui/services/navigation"
)

func TestGridLayout(t *testing.T) {
	assert.Equal(t, 1, GridColumns(10))
	assert.Equal(t, 3, GridColumns(80))
	assert.Equal(t, 1, GridRows(3))
	assert.Equal(t, 20, GridRows(24))
}

func TestGridRendersVisibleItems(t *testing.T) {
	var items []domain.Item
	for i := 0; i < 9; i++ {
		items = append(items, domain.Item{Source: fmt.Sprintf("/g/a/img%d.png", i), Album: "a"})
	}
	r := NewRenderer()
	out := r.Grid(GridState{
		Title: "lightbox",
		Items: items,
		Nav:   navigation.State{Cursor: 4, RowOffset: 1, Rows: 1, Columns: 3},
	}, 80, 10)

	assert.Contains(t, out, "> a/img4.png")
	assert.Contains(t, out, "a/img3.png")
	assert.NotContains(t, out, "img0.png")
	assert.NotContains(t, out, "img6.png")
	assert.Contains(t, out, "5/9")
}

func TestGridEmptyAndScanning(t *testing.T) {
	r := NewRenderer()
	assert.Contains(t, r.Grid(GridState{Title: "x"}, 40, 10), "No images found")
	assert.Contains(t, r.Grid(GridState{Title: "x", Scanning: true}, 40, 10), "Scanning")
}

func TestViewerStatus(t *testing.T) {
	s := ViewerState{Album: "beach", File: "sun.png", Index: 2, Count: 7, Zoom: 0.25}
	assert.Equal(t, "beach  sun.png  3/7  25%", s.Status())

	s.Err = errors.New("bad data")
	assert.Contains(t, s.Status(), "error: bad data")
}

func TestViewerRendersRows(t *testing.T) {
	r := NewRenderer()
	out := r.Viewer(ViewerState{Count: 1, Zoom: 1}, 10, 6)
	assert.Len(t, strings.Split(out, "\n"), 6)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}
