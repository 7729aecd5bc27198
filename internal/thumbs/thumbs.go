// Package thumbs writes scaled-down copies of gallery images.
package thumbs

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"lightbox/internal/domain"
	"lightbox/internal/eventbus"
	"lightbox/internal/loader"
)

// Options controls thumbnail generation
type Options struct {
	Dir      string // output root
	MaxSize  uint   // bounding box edge in pixels
	Quality  int    // JPEG quality
	Progress io.Writer
}

// Report counts the outcome of a run
type Report struct {
	Created int
	Skipped int
	Failed  int
}

// Generator creates thumbnails and publishes progress on an optional bus
type Generator struct {
	opts Options
	bus  eventbus.EventBus
	log  *logrus.Entry
}

// NewGenerator creates a generator. bus may be nil.
func NewGenerator(opts Options, bus eventbus.EventBus) *Generator {
	if opts.MaxSize == 0 {
		opts.MaxSize = 320
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = jpeg.DefaultQuality
	}
	return &Generator{opts: opts, bus: bus, log: logrus.WithField("component", "thumbs")}
}

// Target returns the thumbnail path for item
func (g *Generator) Target(item domain.Item) string {
	name := filepath.Base(item.Source)
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return filepath.Join(g.opts.Dir, item.Album, name)
}

// Run processes every item. Failures are logged and counted.
func (g *Generator) Run(items []domain.Item) Report {
	var bar *progressbar.ProgressBar
	if g.opts.Progress != nil {
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetWriter(g.opts.Progress),
			progressbar.OptionSetDescription("thumbnails"),
			progressbar.OptionShowCount(),
		)
	}

	var rep Report
	for _, it := range items {
		created, err := g.One(it)
		switch {
		case err != nil:
			rep.Failed++
			g.log.Warnf("thumbnail for %s: %v", it.Source, err)
			if g.bus != nil {
				g.bus.Publish(eventbus.ErrorEvent{Message: "thumbnail failed", Err: err})
			}
		case created:
			rep.Created++
		default:
			rep.Skipped++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if g.bus != nil {
		g.bus.Publish(eventbus.ThumbnailsCompleteEvent{Created: rep.Created, Skipped: rep.Skipped, Failed: rep.Failed})
	}
	return rep
}

// One writes the thumbnail for item unless an up-to-date one exists.
// Reports whether a file was written.
func (g *Generator) One(item domain.Item) (bool, error) {
	target := g.Target(item)
	src, err := os.Stat(item.Source)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	if dst, err := os.Stat(target); err == nil && !dst.ModTime().Before(src.ModTime()) {
		return false, nil
	}

	img, err := loader.Decode(item.Source)
	if err != nil {
		return false, err
	}
	thumb := resize.Thumbnail(g.opts.MaxSize, g.opts.MaxSize, img, resize.Lanczos3)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, fmt.Errorf("create thumbnail dir: %w", err)
	}
	if err := g.write(target, thumb); err != nil {
		return false, err
	}
	if g.bus != nil {
		g.bus.Publish(eventbus.ThumbnailCreatedEvent{Source: item.Source, Target: target})
	}
	return true, nil
}

func (g *Generator) write(target string, img image.Image) error {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}

	switch strings.ToLower(filepath.Ext(target)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, flatten(img), &jpeg.Options{Quality: g.opts.Quality})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(target)
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return nil
}

// flatten composites img over white
func flatten(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(b)
	xdraw.Draw(out, b, image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(out, b, img, b.Min, xdraw.Over)
	return out
}
