package navigation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbox/internal/domain"
	"lightbox/internal/imageset"
	"lightbox/internal/viewport"
)

type shown struct {
	item domain.Item
	gen  uint64
}

type fakeDisplay struct {
	shows   []shown
	clears  int
	focuses []time.Duration
}

func (d *fakeDisplay) Show(item domain.Item, gen uint64) {
	d.shows = append(d.shows, shown{item, gen})
}
func (d *fakeDisplay) Clear()                           { d.clears++ }
func (d *fakeDisplay) RequestFocus(delay time.Duration) { d.focuses = append(d.focuses, delay) }

func (d *fakeDisplay) last() shown { return d.shows[len(d.shows)-1] }

func newController(t *testing.T, n int) (*Controller, *fakeDisplay, *viewport.Transform) {
	t.Helper()
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{Source: fmt.Sprintf("/g/%d.jpg", i), AltText: fmt.Sprint(i)}
	}
	tr := viewport.New(viewport.DefaultOptions())
	tr.SetFrame(viewport.Rect{W: 800, H: 600})
	d := &fakeDisplay{}
	c := New(imageset.New(items), tr, d, Options{
		Mode:          viewport.ModeFit,
		FixedScale:    0.2,
		FitMultiplier: 0.5,
		FocusDelay:    50 * time.Millisecond,
	})
	return c, d, tr
}

func TestOpenNextWrapScenario(t *testing.T) {
	c, d, _ := newController(t, 5)

	c.Open(2)
	assert.Equal(t, 2, c.State().CurrentIndex)
	assert.True(t, c.IsOpen())
	assert.Equal(t, "/g/2.jpg", d.last().item.Source)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, d.focuses)

	c.Next()
	assert.Equal(t, 3, c.State().CurrentIndex)
	c.Next()
	c.Next()
	assert.Equal(t, 0, c.State().CurrentIndex)
}

func TestWrapAroundClosure(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9} {
		for start := 0; start < n; start++ {
			c, _, _ := newController(t, n)
			c.Open(start)
			for i := 0; i < n; i++ {
				c.Next()
			}
			require.Equal(t, start, c.State().CurrentIndex, "next n=%d start=%d", n, start)
			for i := 0; i < n; i++ {
				c.Prev()
			}
			require.Equal(t, start, c.State().CurrentIndex, "prev n=%d start=%d", n, start)
		}
	}
}

func TestPrevFromFirstWraps(t *testing.T) {
	c, _, _ := newController(t, 4)
	c.Open(0)
	c.Prev()
	assert.Equal(t, 3, c.State().CurrentIndex)
}

func TestCloseKeepsIndexAndClears(t *testing.T) {
	c, d, tr := newController(t, 3)
	c.Open(1)
	require.True(t, c.Loaded(c.Generation(), 1000, 800))
	require.True(t, tr.Attached())

	c.Close()
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, c.State().CurrentIndex)
	assert.Equal(t, 1, d.clears)
	assert.False(t, tr.Attached())

	// closed: next/prev are no-ops
	c.Next()
	assert.Equal(t, 1, c.State().CurrentIndex)
}

func TestLoadedAppliesInitialFit(t *testing.T) {
	c, _, tr := newController(t, 2)
	c.Open(0)
	assert.False(t, tr.Attached(), "no transform before the image is loaded")

	require.True(t, c.Loaded(c.Generation(), 1600, 1200))
	assert.True(t, tr.Attached())
	assert.InDelta(t, 0.25, tr.Scale(), 1e-9) // min(0.5, 0.5) * 0.5
}

func TestStaleLoadIsIgnored(t *testing.T) {
	c, d, tr := newController(t, 3)
	c.Open(0)
	first := d.last().gen
	c.Next()
	second := d.last().gen
	require.NotEqual(t, first, second)

	assert.False(t, c.Loaded(first, 10, 10), "superseded load must not apply")
	assert.False(t, tr.Attached())

	assert.True(t, c.Loaded(second, 1600, 1200))
	assert.True(t, tr.Attached())
}

func TestLoadAfterCloseIsIgnored(t *testing.T) {
	c, d, tr := newController(t, 3)
	c.Open(0)
	gen := d.last().gen
	c.Close()

	assert.False(t, c.Loaded(gen, 100, 100))
	assert.False(t, tr.Attached())
}

func TestLoadFailedResets(t *testing.T) {
	c, _, tr := newController(t, 2)
	c.Open(0)
	boom := errors.New("corrupt")

	assert.True(t, c.LoadFailed(c.Generation(), boom))
	assert.Equal(t, boom, c.LastError())
	assert.Equal(t, 1.0, tr.Scale())

	c.Next()
	assert.NoError(t, c.LastError())
}

func TestEmptySetIsInert(t *testing.T) {
	c, d, _ := newController(t, 0)
	c.Open(3)
	c.Next()
	c.Close()
	assert.False(t, c.IsOpen())
	assert.Empty(t, d.shows)
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestOpenWrapsIndex(t *testing.T) {
	c, _, _ := newController(t, 5)
	c.Open(7)
	assert.Equal(t, 2, c.State().CurrentIndex)
	it, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "2", it.AltText)
}
