package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"lightbox/internal/config"
	"lightbox/internal/discovery"
	"lightbox/internal/domain"
	"lightbox/internal/eventbus"
	"lightbox/internal/lightbox"
	"lightbox/internal/loader"
	"lightbox/internal/pager"
	"lightbox/internal/ui/input"
	inputtypes "lightbox/internal/ui/input/types"
	"lightbox/internal/ui/services/navigation"
	"lightbox/internal/ui/views"
	"lightbox/internal/viewport"
)

// clickSlop is how far apart, in pixels, the two clicks of a double click may be
const clickSlop = 16

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	scanner discovery.DiscoveryService
	root    string
	ctx     context.Context

	width       int
	height      int
	help        help.Model
	scanning    bool
	status      string
	inPagerMode bool

	lb           *lightbox.Lightbox
	nav          *navigation.Service
	inputHandler *input.Handler
	renderer     *views.Renderer
	clicks       *clickSynth
	pagerOps     *PagerOps

	// viewer state
	image   image.Image
	loading bool
	focused bool
	pending []tea.Cmd

	cellW, cellH float64
	wheelNotch   float64

	now   func() time.Time
	after func(time.Duration, tea.Msg) tea.Cmd
	load  func(uint64, string) tea.Cmd

	// Program reference for terminal management
	program *tea.Program
	log     *logrus.Entry
}

// NewModel creates a new UI model that shows the images found under root
func NewModel(bus eventbus.EventBus, cfg *config.Config, scanner discovery.DiscoveryService, root string) *Model {
	v := cfg.Viewer
	m := &Model{
		bus:          bus,
		config:       cfg,
		scanner:      scanner,
		root:         root,
		ctx:          context.Background(),
		help:         help.New(),
		scanning:     true,
		nav:          navigation.NewService(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		clicks:       newClickSynth(v.DoubleClickInterval(), clickSlop),
		pagerOps:     NewPagerOps(nil),
		cellW:        float64(v.CellWidth),
		cellH:        float64(v.CellHeight),
		wheelNotch:   v.WheelNotch,
		now:          time.Now,
		after: func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		},
		load: loader.Load,
		log:  logrus.WithField("component", "ui"),
	}
	m.lb = lightbox.New(modelDisplay{m}, lightbox.OptionsFromConfig(v))
	m.nav.OnMoved(func(e navigation.CursorMovedEvent) {
		m.log.Debugf("cursor %d -> %d", e.OldIndex, e.NewIndex)
	})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

// SetContext sets the context the scan runs under
func (m *Model) SetContext(ctx context.Context) {
	m.ctx = ctx
}

// Lightbox exposes the viewer state
func (m *Model) Lightbox() *lightbox.Lightbox { return m.lb }

// Init starts the scan
func (m *Model) Init() tea.Cmd {
	ctx, scanner, root := m.ctx, m.scanner, m.root
	return func() tea.Msg {
		result, err := scanner.Scan(ctx, root)
		return scanDoneMsg{result: result, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()

	case tea.KeyMsg:
		for _, action := range m.inputHandler.HandleKey(msg, modelContext{m}) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		if cmd := m.handleNonInputMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

// layout propagates the window size to the grid and the viewer frame
func (m *Model) layout() {
	m.nav.SetLayout(views.GridColumns(m.width), views.GridRows(m.height))
	rows := m.height - views.ViewerStatusRows
	if rows < 0 {
		rows = 0
	}
	m.lb.Resize(viewport.Rect{W: float64(m.width) * m.cellW, H: float64(rows) * m.cellH})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.OpenAction:
		idx := a.Index
		if idx < 0 {
			idx = m.nav.GetCursor()
		}
		m.open(idx)

	case inputtypes.ShowListAction:
		if m.lb.Enabled() {
			return m.showList()
		}

	case inputtypes.GestureKeyAction:
		if m.lb.Enabled() {
			m.lb.Router().Key(a.Key)
		}

	case inputtypes.ResetZoomAction:
		m.lb.ResetZoom()

	case inputtypes.CloseViewerAction:
		m.lb.Close()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) open(index int) {
	if !m.lb.Enabled() {
		return
	}
	m.clicks.reset()
	m.focused = false
	m.inputHandler.ChangeMode(inputtypes.ModeViewer)
	m.lb.Open(index)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.lb.IsOpen() {
		return m.viewerMouse(msg)
	}
	m.gridMouse(msg)
	return nil
}

// viewerMouse feeds the gesture router. The mouse is pointer 0; cell
// positions map to the centre of the cell in pixels.
func (m *Model) viewerMouse(msg tea.MouseMsg) tea.Cmd {
	router := m.lb.Router()
	x := (float64(msg.X) + 0.5) * m.cellW
	y := (float64(msg.Y) + 0.5) * m.cellH

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		router.Wheel(-m.wheelNotch, x, y)
	case msg.Button == tea.MouseButtonWheelDown:
		router.Wheel(m.wheelNotch, x, y)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		router.PointerDown(0, x, y)
		m.clicks.press()

	case msg.Action == tea.MouseActionMotion:
		router.PointerMove(0, x, y)

	case msg.Action == tea.MouseActionRelease:
		router.PointerUp(0)
		click, double := m.clicks.release(m.now(), x, y)
		if !click {
			return nil
		}
		timer, ok := router.Click(x, y)
		if !ok {
			return nil
		}
		if double {
			router.DoubleClick(x, y)
			return nil
		}
		return m.after(timer.Delay, clickTimerMsg{seq: timer.Seq})
	}
	return nil
}

func (m *Model) gridMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.nav.Navigate(navigation.DirectionUp)
	case msg.Button == tea.MouseButtonWheelDown:
		m.nav.Navigate(navigation.DirectionDown)
	case msg.Action == tea.MouseActionRelease:
		idx, ok := m.nav.IndexAt(msg.Y-views.GridHeaderRows, msg.X/views.GridCellWidth)
		if !ok {
			return
		}
		m.nav.MoveToIndex(idx)
		m.open(idx)
	}
}

// handleNonInputMsg handles everything but keys and mouse
func (m *Model) handleNonInputMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scanDoneMsg:
		m.scanning = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Scan failed: %v", msg.err)
		}
		if err := m.lb.Init(msg.result.Items()); err != nil && !errors.Is(err, lightbox.ErrAlreadyInitialized) {
			m.log.Errorf("init lightbox: %v", err)
		}
		m.nav.SetCount(m.lb.Count())
		if msg.err == nil {
			m.status = ""
		}

	case EventMsg:
		m.handleEvent(msg.Event)

	case loader.LoadedMsg:
		if msg.Err != nil {
			if m.lb.LoadFailed(msg.Gen, msg.Err) {
				m.image = nil
				m.loading = false
			}
			return nil
		}
		if m.lb.Loaded(msg.Gen, msg.Width, msg.Height) {
			m.image = msg.Image
			m.loading = false
		}

	case clickTimerMsg:
		if m.lb.Enabled() {
			m.lb.Router().Expire(msg.seq)
		}

	case focusMsg:
		if m.lb.IsOpen() {
			m.focused = true
		}

	case listPagerMsg:
		if msg.err != nil {
			m.log.Warnf("list pager failed: %v", msg.err)
			m.status = fmt.Sprintf("Pager failed: %v", msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
	}
	return nil
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.AlbumDiscoveredEvent:
		if m.scanning {
			m.status = fmt.Sprintf("Found album %s (%d images)", ev.Album.Name, len(ev.Album.Items))
		}
	case eventbus.ErrorEvent:
		m.status = ev.Message
	case eventbus.ConfigLoadedEvent:
		m.log.Debugf("config loaded for %s", ev.BaseDir)
	}
}

// showList pages the item table through ov, pausing rendering meanwhile
func (m *Model) showList() tea.Cmd {
	content := pager.Table(m.lb.Items())
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}
		err := m.pagerOps.Show(content)
		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return listPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	if m.lb.IsOpen() {
		return m.renderer.Viewer(m.viewerState(), m.width, m.height)
	}
	return m.renderer.Grid(views.GridState{
		Title:    "lightbox  " + m.root,
		Items:    m.lb.Items(),
		Nav:      m.nav.State(),
		Scanning: m.scanning,
		Status:   m.status,
		Help:     m.help.View(inputtypes.GridKeys),
	}, m.width, m.height)
}

func (m *Model) viewerState() views.ViewerState {
	item, idx, _ := m.lb.Current()
	t := m.lb.Transform()
	s := views.ViewerState{
		Image:   m.image,
		Album:   item.Album,
		File:    item.Name(),
		Index:   idx,
		Count:   m.lb.Count(),
		Zoom:    t.Scale(),
		Loading: m.loading,
		Err:     m.lb.Controller().LastError(),
	}
	if m.image != nil && t.Attached() {
		r := t.ImageRect()
		s.Placement = views.Placement{X: r.X, Y: r.Y, W: r.W, H: r.H, CellW: m.cellW, CellH: m.cellH}
	}
	if m.help.ShowAll {
		s.Help = m.help.View(inputtypes.ViewerKeys)
	}
	return s
}

// modelDisplay lets the navigation controller drive the model
type modelDisplay struct{ m *Model }

func (d modelDisplay) Show(item domain.Item, gen uint64) {
	d.m.image = nil
	d.m.loading = true
	d.m.pending = append(d.m.pending, d.m.load(gen, item.Source))
}

func (d modelDisplay) Clear() {
	m := d.m
	m.image = nil
	m.loading = false
	m.focused = false
	m.clicks.reset()
	m.inputHandler.ChangeMode(inputtypes.ModeGrid)
	if m.lb.Enabled() {
		m.nav.MoveToIndex(m.lb.Controller().State().CurrentIndex)
	}
}

func (d modelDisplay) RequestFocus(delay time.Duration) {
	d.m.pending = append(d.m.pending, d.m.after(delay, focusMsg{}))
}

// modelContext implements the input Context over the model
type modelContext struct{ m *Model }

func (c modelContext) CurrentIndex() int { return c.m.nav.GetCursor() }
func (c modelContext) TotalItems() int   { return c.m.lb.Count() }
func (c modelContext) ViewerOpen() bool  { return c.m.lb.IsOpen() && c.m.focused }
