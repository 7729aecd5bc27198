package views

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// upperHalf is drawn with the upper pixel as foreground and the lower
// pixel as background, giving two pixels per terminal cell.
const upperHalf = "▀"

// Placement is where the image sits on screen, in terminal pixels
type Placement struct {
	X, Y, W, H   float64
	CellW, CellH float64
}

// Rasterize draws img at p onto a cols x 2*rows canvas over bg
func Rasterize(img image.Image, p Placement, cols, rows int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	if img == nil || p.CellW <= 0 || p.CellH <= 0 {
		return dst
	}
	b := img.Bounds()
	if b.Empty() || p.W <= 0 || p.H <= 0 {
		return dst
	}

	// source pixel -> canvas pixel; each cell is one canvas pixel wide and two tall
	sx := p.W / float64(b.Dx()) / p.CellW
	sy := p.H / float64(b.Dy()) / (p.CellH / 2)
	tx := p.X/p.CellW - sx*float64(b.Min.X)
	ty := p.Y/(p.CellH/2) - sy*float64(b.Min.Y)
	s2d := f64.Aff3{sx, 0, tx, 0, sy, ty}

	xdraw.ApproxBiLinear.Transform(dst, s2d, img, b, xdraw.Over, nil)
	return dst
}

// Canvas renders images as half-block cells
type Canvas struct {
	Background color.Color
	cache      map[[2]color.RGBA]string
}

// NewCanvas creates a canvas with a black background
func NewCanvas() *Canvas {
	return &Canvas{Background: color.Black, cache: make(map[[2]color.RGBA]string)}
}

// Render returns rows lines of cols cells
func (c *Canvas) Render(img image.Image, p Placement, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	raster := Rasterize(img, p, cols, rows, c.Background)

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := raster.RGBAAt(x, 2*y)
			bottom := raster.RGBAAt(x, 2*y+1)
			sb.WriteString(c.cell(top, bottom))
		}
	}
	return sb.String()
}

func (c *Canvas) cell(top, bottom color.RGBA) string {
	k := [2]color.RGBA{top, bottom}
	if s, ok := c.cache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(bottom))).
		Render(upperHalf)
	if len(c.cache) > 4096 {
		c.cache = make(map[[2]color.RGBA]string)
	}
	c.cache[k] = s
	return s
}

func hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}
