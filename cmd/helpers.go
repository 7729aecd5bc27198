package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"lightbox/internal/config"
	"lightbox/internal/discovery"
	"lightbox/internal/domain"
	"lightbox/internal/eventbus"
)

// resolveDir picks the gallery directory from --dir, the first argument
// or the working directory, in that order.
func resolveDir(args []string) (string, error) {
	dir := targetDir
	if dir == "" && len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("open gallery: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// setupLogging sends logrus output to the log file. The terminal belongs
// to the UI, so a log file that cannot be opened means no logging at all.
func setupLogging() func() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return func() {}
	}
	logrus.SetOutput(f)
	return func() { f.Close() }
}

func applyLogLevel(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// loadConfig loads or creates the gallery config and fixes invalid values
func loadConfig(bus eventbus.EventBus, dir string) *config.Config {
	svc := config.NewConfigServiceWithBus(bus)
	cfg := config.LoadOrCreate(svc, dir)
	applyLogLevel(cfg)
	for _, field := range cfg.Validate() {
		logrus.Warnf("config: invalid %s, using default", field)
	}
	return cfg
}

// scan runs discovery synchronously
func scan(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, dir string) (domain.ScanResult, error) {
	return discovery.NewDiscoveryService(bus, cfg.Scan.Exclude).Scan(ctx, dir)
}
