// Package lightbox ties the image set, viewport transform, navigation
// controller and gesture router into the single object the UI talks to.
package lightbox

import (
	"errors"

	"github.com/sirupsen/logrus"

	"lightbox/internal/config"
	"lightbox/internal/domain"
	"lightbox/internal/gesture"
	"lightbox/internal/imageset"
	"lightbox/internal/navigation"
	"lightbox/internal/viewport"
)

// ErrAlreadyInitialized is returned by a second call to Init
var ErrAlreadyInitialized = errors.New("lightbox: already initialized")

// Options bundles the settings of every component
type Options struct {
	Viewport   viewport.Options
	Gesture    gesture.Options
	Navigation navigation.Options
}

// OptionsFromConfig converts the viewer section of the config file
func OptionsFromConfig(v config.ViewerSettings) Options {
	return Options{
		Viewport: viewport.Options{
			MinScale:        v.MinScale,
			MaxScale:        v.MaxScale,
			SettleTolerance: v.SettleTolerance,
		},
		Gesture: gesture.Options{
			ZoomStep:         v.ZoomStep,
			DoubleClickScale: v.DoubleClickScale,
			ClickZoomScale:   v.ClickZoomScale,
			ToggleThreshold:  v.ToggleThreshold,
			PrevBand:         v.PrevBand,
			NextBand:         v.NextBand,
			WheelFactor:      v.WheelFactor,
			DragDeadZone:     v.DragDeadZone,
			ClickDebounce:    v.ClickDebounce(),
		},
		Navigation: navigation.Options{
			Mode:          viewport.Mode(v.InitialMode),
			FixedScale:    v.InitialFixedScale,
			FitMultiplier: v.InitialFitScale,
			FocusDelay:    v.FocusDelay(),
		},
	}
}

// DefaultOptions returns the stock settings
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultViewerSettings())
}

// Lightbox owns all viewer state. Every operation is a no-op until Init
// has been called with at least one item.
type Lightbox struct {
	opts    Options
	display navigation.Display
	frame   viewport.Rect

	initialized bool
	set         *imageset.Set
	transform   *viewport.Transform
	controller  *navigation.Controller
	router      *gesture.Router

	log *logrus.Entry
}

// New creates an uninitialized lightbox that will drive display
func New(display navigation.Display, opts Options) *Lightbox {
	return &Lightbox{
		opts:    opts,
		display: display,
		log:     logrus.WithField("component", "lightbox"),
	}
}

// Init builds the image set and wires the components. It runs once; later
// calls return ErrAlreadyInitialized and leave the lightbox untouched. No
// items means the gallery is absent, which is not an error.
func (lb *Lightbox) Init(items []domain.Item) error {
	if lb.initialized {
		return ErrAlreadyInitialized
	}
	lb.initialized = true

	if len(items) == 0 {
		lb.log.Info("no images found, viewer disabled")
		return nil
	}

	lb.set = imageset.New(items)
	lb.transform = viewport.New(lb.opts.Viewport)
	lb.transform.SetFrame(lb.frame)
	lb.controller = navigation.New(lb.set, lb.transform, lb.display, lb.opts.Navigation)
	lb.router = gesture.NewRouter(lb.transform, lb.controller, lb.opts.Gesture)
	lb.log.Infof("viewer ready with %d images", lb.set.Count())
	return nil
}

// Enabled reports whether there is anything to show
func (lb *Lightbox) Enabled() bool { return lb.set != nil }

// Count returns the number of images
func (lb *Lightbox) Count() int { return lb.set.Count() }

// Items returns the images in display order
func (lb *Lightbox) Items() []domain.Item { return lb.set.Items() }

// Router returns the gesture router, nil while disabled
func (lb *Lightbox) Router() *gesture.Router { return lb.router }

// Transform returns the viewport transform, nil while disabled
func (lb *Lightbox) Transform() *viewport.Transform { return lb.transform }

// Controller returns the navigation controller, nil while disabled
func (lb *Lightbox) Controller() *navigation.Controller { return lb.controller }

// IsOpen reports whether the viewer is showing an image
func (lb *Lightbox) IsOpen() bool {
	return lb.Enabled() && lb.controller.IsOpen()
}

// Current returns the displayed item (or the last one, when closed)
func (lb *Lightbox) Current() (domain.Item, int, bool) {
	if !lb.Enabled() {
		return domain.Item{}, 0, false
	}
	it, ok := lb.controller.Current()
	return it, lb.controller.State().CurrentIndex, ok
}

// Resize sets the frame the image is shown in
func (lb *Lightbox) Resize(frame viewport.Rect) {
	lb.frame = frame
	if lb.Enabled() {
		lb.transform.SetFrame(frame)
	}
}

// Open shows the image at index
func (lb *Lightbox) Open(index int) {
	if !lb.Enabled() {
		return
	}
	lb.router.Reset()
	lb.controller.Open(index)
}

// Next shows the following image
func (lb *Lightbox) Next() {
	if lb.Enabled() {
		lb.controller.Next()
	}
}

// Prev shows the previous image
func (lb *Lightbox) Prev() {
	if lb.Enabled() {
		lb.controller.Prev()
	}
}

// Close hides the viewer
func (lb *Lightbox) Close() {
	if !lb.Enabled() {
		return
	}
	lb.router.Reset()
	lb.controller.Close()
}

// ZoomBy zooms around the frame centre
func (lb *Lightbox) ZoomBy(delta float64) {
	if lb.IsOpen() {
		lb.transform.ZoomBy(delta)
	}
}

// ResetZoom returns to scale 1 with no pan
func (lb *Lightbox) ResetZoom() {
	if lb.Enabled() {
		lb.transform.Reset()
	}
}

// Loaded reports the natural size of the image displayed with gen
func (lb *Lightbox) Loaded(gen uint64, w, h int) bool {
	return lb.Enabled() && lb.controller.Loaded(gen, w, h)
}

// LoadFailed reports that the image displayed with gen could not be decoded
func (lb *Lightbox) LoadFailed(gen uint64, err error) bool {
	return lb.Enabled() && lb.controller.LoadFailed(gen, err)
}
