// Package imageset is the ordered, read-only collection of viewable items.
package imageset

import (
	"errors"
	"fmt"

	"lightbox/internal/domain"
)

// ErrIndex is returned by ItemAt when the set is empty
var ErrIndex = errors.New("imageset: index out of range")

// IndexError reports a lookup into an empty set
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("imageset: index %d out of range for %d items", e.Index, e.Count)
}

// Unwrap lets errors.Is match ErrIndex
func (e *IndexError) Unwrap() error { return ErrIndex }

// Set is built once and never mutated
type Set struct {
	items []domain.Item
}

// New builds a set from items in display order
func New(items []domain.Item) *Set {
	s := &Set{items: make([]domain.Item, len(items))}
	copy(s.items, items)
	return s
}

// FromScan builds a set from every album of a scan, in scan order
func FromScan(r domain.ScanResult) *Set {
	return New(r.Items())
}

// Count returns the number of items
func (s *Set) Count() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// ItemAt returns the item at index, wrapping out-of-range indexes
func (s *Set) ItemAt(index int) (domain.Item, error) {
	n := s.Count()
	if n == 0 {
		return domain.Item{}, &IndexError{Index: index, Count: 0}
	}
	return s.items[Wrap(index, n)], nil
}

// Items returns a copy of all items
func (s *Set) Items() []domain.Item {
	out := make([]domain.Item, s.Count())
	if s != nil {
		copy(out, s.items)
	}
	return out
}

// Wrap maps any index into [0, n). n must be positive.
func Wrap(index, n int) int {
	return ((index % n) + n) % n
}
