package views

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRasterizePlacesImage(t *testing.T) {
	// 16x32 px image at scale 1 covers 2x2 cells = 2x4 canvas pixels,
	// starting at cell (1, 1)
	img := solid(16, 32, color.RGBA{R: 255, A: 255})
	p := Placement{X: 8, Y: 16, W: 16, H: 32, CellW: 8, CellH: 16}
	out := Rasterize(img, p, 4, 4, color.Black)

	require.Equal(t, image.Rect(0, 0, 4, 8), out.Bounds())
	assertRed(t, out.RGBAAt(1, 3))
	assertRed(t, out.RGBAAt(2, 4))
	assert.Equal(t, color.RGBA{A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{A: 255}, out.RGBAAt(3, 7))
}

func assertRed(t *testing.T, c color.RGBA) {
	t.Helper()
	assert.InDelta(t, 255, int(c.R), 2)
	assert.InDelta(t, 0, int(c.G), 2)
	assert.InDelta(t, 0, int(c.B), 2)
}

func TestRasterizeNilImage(t *testing.T) {
	out := Rasterize(nil, Placement{CellW: 8, CellH: 16}, 3, 2, color.White)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, out.RGBAAt(2, 3))
}

func TestRenderShape(t *testing.T) {
	c := NewCanvas()
	s := c.Render(solid(4, 4, color.White), Placement{W: 24, H: 48, CellW: 8, CellH: 16}, 3, 2)

	lines := strings.Split(s, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 6, strings.Count(s, upperHalf))
	assert.Empty(t, c.Render(nil, Placement{}, 0, 5))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0a00", hex(color.RGBA{R: 255, G: 10}))
}
