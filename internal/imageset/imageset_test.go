package imageset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbox/internal/domain"
)

func items(names ...string) []domain.Item {
	out := make([]domain.Item, len(names))
	for i, n := range names {
		out[i] = domain.Item{Source: "/g/" + n + ".jpg", AltText: n}
	}
	return out
}

func TestItemAtEmptySet(t *testing.T) {
	s := New(nil)
	_, err := s.ItemAt(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndex))

	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 0, ie.Count)
}

func TestItemAtWraps(t *testing.T) {
	s := New(items("a", "b", "c"))
	require.Equal(t, 3, s.Count())

	for idx, want := range map[int]string{0: "a", 2: "c", 3: "a", -1: "c", 7: "b"} {
		it, err := s.ItemAt(idx)
		require.NoError(t, err)
		assert.Equal(t, want, it.AltText, "index %d", idx)
	}
}

func TestSetIsImmutable(t *testing.T) {
	src := items("a", "b")
	s := New(src)
	src[0].AltText = "changed"

	got := s.Items()
	got[1].AltText = "changed too"

	first, _ := s.ItemAt(0)
	second, _ := s.ItemAt(1)
	assert.Equal(t, "a", first.AltText)
	assert.Equal(t, "b", second.AltText)
}

func TestFromScanKeepsAlbumOrder(t *testing.T) {
	r := domain.ScanResult{Albums: []domain.Album{
		{Name: "one", Items: items("a", "b")},
		{Name: "two", Items: items("c")},
	}}
	s := FromScan(r)
	require.Equal(t, 3, s.Count())
	last, _ := s.ItemAt(2)
	assert.Equal(t, "c", last.AltText)
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Items())
}
