package lightbox

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbox/internal/domain"
	"lightbox/internal/gesture"
	"lightbox/internal/viewport"
)

type recordingDisplay struct {
	shows  []uint64
	clears int
}

func (d *recordingDisplay) Show(_ domain.Item, gen uint64) { d.shows = append(d.shows, gen) }
func (d *recordingDisplay) Clear()                         { d.clears++ }
func (d *recordingDisplay) RequestFocus(time.Duration)     {}

func gallery(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = domain.Item{Source: fmt.Sprintf("/g/%02d.png", i), AltText: fmt.Sprint(i), Album: "g"}
	}
	return items
}

func openLoaded(t *testing.T, n, index int) (*Lightbox, *recordingDisplay) {
	t.Helper()
	d := &recordingDisplay{}
	lb := New(d, DefaultOptions())
	lb.Resize(viewport.Rect{W: 1000, H: 800})
	require.NoError(t, lb.Init(gallery(n)))
	lb.Open(index)
	require.True(t, lb.Loaded(d.shows[len(d.shows)-1], 1000, 800))
	return lb, d
}

func TestInitTwiceIsRejected(t *testing.T) {
	d := &recordingDisplay{}
	lb := New(d, DefaultOptions())
	require.NoError(t, lb.Init(gallery(3)))
	router := lb.Router()

	err := lb.Init(gallery(5))
	assert.True(t, errors.Is(err, ErrAlreadyInitialized))
	assert.Equal(t, 3, lb.Count())
	assert.Same(t, router, lb.Router(), "no second set of handlers")
}

func TestEmptyGalleryIsInert(t *testing.T) {
	lb := New(&recordingDisplay{}, DefaultOptions())
	require.NoError(t, lb.Init(nil))
	assert.False(t, lb.Enabled())

	assert.NotPanics(t, func() {
		lb.Open(0)
		lb.Next()
		lb.Prev()
		lb.ZoomBy(0.25)
		lb.ResetZoom()
		lb.Close()
		lb.Loaded(1, 10, 10)
	})
	assert.False(t, lb.IsOpen())
	assert.Nil(t, lb.Router())
}

func TestOperationsBeforeInit(t *testing.T) {
	lb := New(&recordingDisplay{}, DefaultOptions())
	assert.NotPanics(t, func() {
		lb.Open(1)
		lb.ZoomBy(1)
	})
	_, _, ok := lb.Current()
	assert.False(t, ok)
}

func TestScenarioFiveItems(t *testing.T) {
	lb, _ := openLoaded(t, 5, 2)
	_, idx, _ := lb.Current()
	assert.Equal(t, 2, idx)

	lb.Next()
	_, idx, _ = lb.Current()
	assert.Equal(t, 3, idx)

	lb.Next()
	lb.Next()
	_, idx, _ = lb.Current()
	assert.Equal(t, 0, idx)
}

func TestZoomByTwentyTimesClampsAtMax(t *testing.T) {
	lb, _ := openLoaded(t, 2, 0)
	lb.ResetZoom()
	for i := 0; i < 20; i++ {
		lb.ZoomBy(0.25)
	}
	assert.InDelta(t, 5.0, lb.Transform().Scale(), 1e-9)
}

func TestResetZoomFromAnyState(t *testing.T) {
	lb, _ := openLoaded(t, 2, 0)
	lb.ZoomBy(1.5)
	lb.Transform().PanBy(120, -40)

	lb.ResetZoom()
	assert.Equal(t, 1.0, lb.Transform().Scale())
	assert.Equal(t, viewport.Point{}, lb.Transform().Pan())
}

func TestClickAtTenPercentGoesBack(t *testing.T) {
	lb, _ := openLoaded(t, 4, 1)
	lb.ResetZoom()
	img := lb.Transform().ImageRect()

	timer, ok := lb.Router().Click(img.X+img.W*0.1, img.CenterY())
	require.True(t, ok)
	require.True(t, lb.Router().Expire(timer.Seq))

	_, idx, _ := lb.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, lb.Transform().Scale(), "no zoom toggle")
}

func TestPinchDoublesScale(t *testing.T) {
	lb, _ := openLoaded(t, 1, 0)
	lb.ResetZoom()
	r := lb.Router()

	r.PointerDown(1, 450, 400)
	r.PointerDown(2, 550, 400)
	r.PointerMove(2, 650, 400)
	assert.InDelta(t, 2.0, lb.Transform().Scale(), 1e-9)
}

func TestInitialFitOnLoad(t *testing.T) {
	d := &recordingDisplay{}
	lb := New(d, DefaultOptions())
	lb.Resize(viewport.Rect{W: 1600, H: 800})
	require.NoError(t, lb.Init(gallery(2)))

	lb.Open(0)
	lb.ZoomBy(1) // ignored: nothing loaded yet
	require.True(t, lb.Loaded(d.shows[0], 800, 400))

	// min(1600/800, 800/400) * 0.2
	assert.InDelta(t, 0.4, lb.Transform().Scale(), 1e-9)
}

func TestSupersededLoadDoesNotApply(t *testing.T) {
	d := &recordingDisplay{}
	lb := New(d, DefaultOptions())
	lb.Resize(viewport.Rect{W: 1000, H: 1000})
	require.NoError(t, lb.Init(gallery(3)))

	lb.Open(0)
	lb.Next()
	assert.False(t, lb.Loaded(d.shows[0], 100, 100))
	assert.False(t, lb.Transform().Attached())
	assert.True(t, lb.Loaded(d.shows[1], 1000, 1000))
}

func TestCloseReleasesImage(t *testing.T) {
	lb, d := openLoaded(t, 3, 2)
	lb.Router().PointerDown(1, 10, 10)

	lb.Close()
	assert.False(t, lb.IsOpen())
	assert.Equal(t, 1, d.clears)
	assert.Equal(t, 0, lb.Router().Pointers())
	_, idx, _ := lb.Current()
	assert.Equal(t, 2, idx)
}

func TestLoadFailedFallsBackToReset(t *testing.T) {
	d := &recordingDisplay{}
	lb := New(d, DefaultOptions())
	require.NoError(t, lb.Init(gallery(1)))
	lb.Open(0)

	assert.True(t, lb.LoadFailed(d.shows[0], errors.New("bad header")))
	assert.Equal(t, 1.0, lb.Transform().Scale())
	assert.EqualError(t, lb.Controller().LastError(), "bad header")
}

func TestEscapeKeyCloses(t *testing.T) {
	lb, _ := openLoaded(t, 2, 0)
	assert.True(t, lb.Router().Key(gesture.KeyEvent{Code: 27}))
	assert.False(t, lb.IsOpen())
}
