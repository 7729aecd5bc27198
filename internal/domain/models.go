package domain

import "strings"

// Item is one viewable image
type Item struct {
	Source  string // path of the full-resolution image
	AltText string
	Album   string // album (directory) the item was found in
}

// Name returns the file name of the item's source
func (i Item) Name() string {
	if idx := strings.LastIndexAny(i.Source, `/\`); idx >= 0 {
		return i.Source[idx+1:]
	}
	return i.Source
}

// Album is a directory of images, in display order
type Album struct {
	Name  string
	Path  string
	Items []Item
}

// ScanResult is the outcome of scanning a gallery root
type ScanResult struct {
	Root   string
	Albums []Album
}

// Items flattens all albums into one ordered slice
func (r ScanResult) Items() []Item {
	var items []Item
	for _, a := range r.Albums {
		items = append(items, a.Items...)
	}
	return items
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning  bool
	ItemsFound  int
	CurrentPath string
}
