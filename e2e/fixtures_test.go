//go:build e2e && unix

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary gallery directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateAlbum writes n small PNG images into workspace/name
func (tf *TUITestFramework) CreateAlbum(name string, n int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	for i := 0; i < n; i++ {
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("img%02d.png", i)), 64, 48, uint8(40*i)); err != nil {
			return "", err
		}
	}
	return dir, nil
}

func writePNG(path string, w, h int, shade uint8) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: shade, G: uint8(x * 4), B: uint8(y * 5), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
