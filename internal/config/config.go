package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"lightbox/internal/eventbus"
)

// FileName is the per-gallery config file created in the scanned directory
const FileName = ".lightbox.toml"

// Initial scale modes
const (
	ModeFit   = "fit"
	ModeFixed = "fixed"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	BaseDir  string         `toml:"base_dir"`
	LogLevel string         `toml:"log_level"`
	Viewer   ViewerSettings `toml:"viewer"`
	Scan     ScanSettings   `toml:"scan"`
	Thumbs   ThumbSettings  `toml:"thumbs"`
}

// ViewerSettings holds the zoom, click and timing constants of the viewer
type ViewerSettings struct {
	InitialMode       string  `toml:"initial_mode"`        // "fit" or "fixed"
	InitialFixedScale float64 `toml:"initial_fixed_scale"` // used when initial_mode = "fixed"
	InitialFitScale   float64 `toml:"initial_fit_scale"`   // multiplier on the fit-to-frame scale
	MinScale          float64 `toml:"min_scale"`
	MaxScale          float64 `toml:"max_scale"`
	ZoomStep          float64 `toml:"zoom_step"`
	DoubleClickScale  float64 `toml:"double_click_scale"`
	ClickZoomScale    float64 `toml:"click_zoom_scale"`
	ToggleThreshold   float64 `toml:"toggle_threshold"` // above this scale a toggle resets
	PrevBand          float64 `toml:"prev_band"`        // fraction of image width
	NextBand          float64 `toml:"next_band"`
	WheelFactor       float64 `toml:"wheel_factor"`
	WheelNotch        float64 `toml:"wheel_notch"` // wheel delta reported per terminal wheel step
	DragDeadZone      float64 `toml:"drag_dead_zone"`
	SettleTolerance   float64 `toml:"settle_tolerance"`
	ClickDebounceMS   int     `toml:"click_debounce_ms"`
	DoubleClickMS     int     `toml:"double_click_ms"`
	FocusDelayMS      int     `toml:"focus_delay_ms"`
	CellWidth         int     `toml:"cell_width"`  // pixels per terminal cell
	CellHeight        int     `toml:"cell_height"` // pixels per terminal cell
}

// ScanSettings controls album discovery
type ScanSettings struct {
	Exclude []string `toml:"exclude"` // doublestar patterns relative to base_dir
}

// ThumbSettings controls thumbnail generation
type ThumbSettings struct {
	Dir     string `toml:"dir"` // relative to base_dir unless absolute
	MaxSize int    `toml:"max_size"`
	Quality int    `toml:"quality"`
}

// ClickDebounce is how long a single click waits for a double click
func (v ViewerSettings) ClickDebounce() time.Duration {
	return time.Duration(v.ClickDebounceMS) * time.Millisecond
}

// DoubleClickInterval is the longest gap between two clicks of a double click
func (v ViewerSettings) DoubleClickInterval() time.Duration {
	return time.Duration(v.DoubleClickMS) * time.Millisecond
}

// FocusDelay is how long after opening the viewer asks for focus
func (v ViewerSettings) FocusDelay() time.Duration {
	return time.Duration(v.FocusDelayMS) * time.Millisecond
}

// ThumbsDir resolves the thumbnail directory against the base dir
func (c *Config) ThumbsDir() string {
	if filepath.IsAbs(c.Thumbs.Dir) {
		return c.Thumbs.Dir
	}
	return filepath.Join(c.BaseDir, c.Thumbs.Dir)
}

// DefaultViewerSettings returns the stock viewer constants
func DefaultViewerSettings() ViewerSettings {
	return ViewerSettings{
		InitialMode:       ModeFit,
		InitialFixedScale: 0.2,
		InitialFitScale:   0.2,
		MinScale:          0.1,
		MaxScale:          5,
		ZoomStep:          0.25,
		DoubleClickScale:  2.5,
		ClickZoomScale:    2.2,
		ToggleThreshold:   1.1,
		PrevBand:          0.4,
		NextBand:          0.6,
		WheelFactor:       0.0015,
		WheelNotch:        100,
		DragDeadZone:      4,
		SettleTolerance:   0.5,
		ClickDebounceMS:   220,
		DoubleClickMS:     400,
		FocusDelayMS:      50,
		CellWidth:         8,
		CellHeight:        16,
	}
}

// DefaultConfig returns the default configuration for a gallery root
func DefaultConfig(baseDir string) *Config {
	return &Config{
		Version:  1,
		BaseDir:  baseDir,
		LogLevel: "info",
		Viewer:   DefaultViewerSettings(),
		Scan: ScanSettings{
			Exclude: []string{"**/.*", "thumbs", "thumbs/**"},
		},
		Thumbs: ThumbSettings{
			Dir:     "thumbs",
			MaxSize: 320,
			Quality: 85,
		},
	}
}

// Validate replaces impossible values with defaults and reports what it fixed
func (c *Config) Validate() []string {
	def := DefaultViewerSettings()
	v := &c.Viewer
	var fixed []string

	fix := func(name string, bad bool, apply func()) {
		if bad {
			apply()
			fixed = append(fixed, name)
		}
	}

	fix("viewer.initial_mode", v.InitialMode != ModeFit && v.InitialMode != ModeFixed, func() { v.InitialMode = def.InitialMode })
	fix("viewer.min_scale", v.MinScale <= 0, func() { v.MinScale = def.MinScale })
	fix("viewer.max_scale", v.MaxScale <= 0, func() { v.MaxScale = def.MaxScale })
	fix("viewer.min_scale/max_scale", v.MinScale > v.MaxScale, func() {
		v.MinScale, v.MaxScale = def.MinScale, def.MaxScale
	})
	fix("viewer.initial_fixed_scale", v.InitialFixedScale <= 0, func() { v.InitialFixedScale = def.InitialFixedScale })
	fix("viewer.initial_fit_scale", v.InitialFitScale <= 0, func() { v.InitialFitScale = def.InitialFitScale })
	fix("viewer.zoom_step", v.ZoomStep <= 0, func() { v.ZoomStep = def.ZoomStep })
	fix("viewer.double_click_scale", v.DoubleClickScale <= 0, func() { v.DoubleClickScale = def.DoubleClickScale })
	fix("viewer.click_zoom_scale", v.ClickZoomScale <= 0, func() { v.ClickZoomScale = def.ClickZoomScale })
	fix("viewer.toggle_threshold", v.ToggleThreshold <= 0, func() { v.ToggleThreshold = def.ToggleThreshold })
	fix("viewer.prev_band/next_band", v.PrevBand <= 0 || v.NextBand >= 1 || v.PrevBand > v.NextBand, func() {
		v.PrevBand, v.NextBand = def.PrevBand, def.NextBand
	})
	fix("viewer.wheel_factor", v.WheelFactor <= 0, func() { v.WheelFactor = def.WheelFactor })
	fix("viewer.wheel_notch", v.WheelNotch <= 0, func() { v.WheelNotch = def.WheelNotch })
	fix("viewer.drag_dead_zone", v.DragDeadZone < 0, func() { v.DragDeadZone = def.DragDeadZone })
	fix("viewer.settle_tolerance", v.SettleTolerance < 0, func() { v.SettleTolerance = def.SettleTolerance })
	fix("viewer.click_debounce_ms", v.ClickDebounceMS <= 0, func() { v.ClickDebounceMS = def.ClickDebounceMS })
	fix("viewer.double_click_ms", v.DoubleClickMS <= 0, func() { v.DoubleClickMS = def.DoubleClickMS })
	fix("viewer.focus_delay_ms", v.FocusDelayMS < 0, func() { v.FocusDelayMS = def.FocusDelayMS })
	fix("viewer.cell_width", v.CellWidth <= 0, func() { v.CellWidth = def.CellWidth })
	fix("viewer.cell_height", v.CellHeight <= 0, func() { v.CellHeight = def.CellHeight })
	fix("thumbs.max_size", c.Thumbs.MaxSize <= 0, func() { c.Thumbs.MaxSize = 320 })
	fix("thumbs.quality", c.Thumbs.Quality <= 0 || c.Thumbs.Quality > 100, func() { c.Thumbs.Quality = 85 })
	fix("thumbs.dir", c.Thumbs.Dir == "", func() { c.Thumbs.Dir = "thumbs" })

	return fixed
}

// ConfigService handles configuration management
type ConfigService interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus eventbus.EventBus
	log *logrus.Entry
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{log: logrus.WithField("component", "config")}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig(filepath.Dir(path))
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for _, name := range cfg.Validate() {
		cs.log.Warnf("invalid %s in %s, using default", name, path)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{BaseDir: cfg.BaseDir})
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// LoadOrCreate loads the config file in dir, writing a default one when
// it is missing or unreadable.
func LoadOrCreate(svc ConfigService, dir string) *Config {
	log := logrus.WithField("component", "config")
	path := filepath.Join(dir, FileName)

	if _, err := os.Stat(path); err == nil {
		cfg, err := svc.LoadFromPath(path)
		if err == nil {
			log.Infof("loaded config from %s", path)
			return cfg
		}
		log.Warnf("ignoring config %s: %v", path, err)
	}

	log.Infof("creating new config for %s", dir)
	cfg := DefaultConfig(dir)
	if err := svc.SaveToPath(cfg, path); err != nil {
		log.Errorf("failed to save config: %v", err)
	}
	return cfg
}
