package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"lightbox/internal/domain"
	"lightbox/internal/eventbus"
)

// Extensions lists the image file extensions treated as gallery items
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// DiscoveryService finds albums of images in the filesystem
type DiscoveryService interface {
	Scan(ctx context.Context, root string) (domain.ScanResult, error)
}

type discoveryService struct {
	bus     eventbus.EventBus
	exclude []string
	log     *logrus.Entry
}

// NewDiscoveryService creates a discovery service. Paths relative to the
// scanned root that match any exclude pattern are skipped. bus may be nil.
func NewDiscoveryService(bus eventbus.EventBus, exclude []string) DiscoveryService {
	return &discoveryService{
		bus:     bus,
		exclude: exclude,
		log:     logrus.WithField("component", "discovery"),
	}
}

func (ds *discoveryService) publish(e domain.DomainEvent) {
	if ds.bus != nil {
		ds.bus.Publish(e)
	}
}

// Scan reads root: each immediate sub-directory is an album, and loose
// images in root form an album named after root itself.
func (ds *discoveryService) Scan(ctx context.Context, root string) (domain.ScanResult, error) {
	result := domain.ScanResult{Root: root}
	ds.publish(eventbus.ScanStartedEvent{Root: root})

	entries, err := os.ReadDir(root)
	if err != nil {
		err = fmt.Errorf("scan %s: %w", root, err)
		ds.log.Error(err)
		ds.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to scan %s", root), Err: err})
		ds.publish(eventbus.ScanCompletedEvent{Result: result})
		return result, err
	}

	var dirs []os.DirEntry
	var loose []string
	for _, e := range entries {
		if ds.excluded(e.Name()) {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, e)
		} else if IsImage(e.Name()) {
			loose = append(loose, e.Name())
		}
	}
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name()) < strings.ToLower(dirs[j].Name())
	})

	if len(loose) > 0 {
		name := filepath.Base(filepath.Clean(root))
		album := buildAlbum(name, root, loose)
		result.Albums = append(result.Albums, album)
		ds.publish(eventbus.AlbumDiscoveredEvent{Album: album})
	}

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			ds.publish(eventbus.ScanCompletedEvent{Result: result})
			return result, err
		}
		album, err := ds.scanAlbum(root, d.Name())
		if err != nil {
			// one unreadable album does not stop the scan
			ds.log.Warn(err)
			ds.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to read album %s", d.Name()), Err: err})
			continue
		}
		if len(album.Items) == 0 {
			continue
		}
		result.Albums = append(result.Albums, album)
		ds.publish(eventbus.AlbumDiscoveredEvent{Album: album})
	}

	ds.log.Infof("found %d albums in %s", len(result.Albums), root)
	ds.publish(eventbus.ScanCompletedEvent{Result: result})
	return result, nil
}

func (ds *discoveryService) scanAlbum(root, name string) (domain.Album, error) {
	dir := filepath.Join(root, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.Album{}, fmt.Errorf("read album %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		if ds.excluded(name + "/" + e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	return buildAlbum(name, dir, files), nil
}

func (ds *discoveryService) excluded(rel string) bool {
	for _, pattern := range ds.exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			ds.log.Debugf("bad exclude pattern %q: %v", pattern, err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func buildAlbum(name, dir string, files []string) domain.Album {
	sort.Strings(files)
	album := domain.Album{Name: name, Path: dir}
	for _, f := range files {
		album.Items = append(album.Items, domain.Item{
			Source:  filepath.Join(dir, f),
			AltText: strings.TrimSuffix(f, filepath.Ext(f)),
			Album:   name,
		})
	}
	return album
}

// IsImage reports whether name has one of the accepted extensions
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
