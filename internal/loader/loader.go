// Package loader decodes images off the UI goroutine.
package loader

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadedMsg carries the outcome of a Load. Gen is the navigation
// generation the load was started for.
type LoadedMsg struct {
	Gen    uint64
	Path   string
	Image  image.Image
	Width  int
	Height int
	Err    error
}

// Load returns a command that decodes path.
func Load(gen uint64, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := Decode(path)
		if err != nil {
			return LoadedMsg{Gen: gen, Path: path, Err: err}
		}
		b := img.Bounds()
		return LoadedMsg{Gen: gen, Path: path, Image: img, Width: b.Dx(), Height: b.Dy()}
	}
}

// Decode reads and decodes a single image file
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Size reads only the header of path
func Size(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
