package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lightbox/internal/discovery"
	"lightbox/internal/eventbus"
	"lightbox/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [DIR]",
	Short: "Open the album grid and image viewer (default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}

	closeLog := setupLogging()
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()

	cfg := loadConfig(bus, dir)
	scanner := discovery.NewDiscoveryService(bus, cfg.Scan.Exclude)

	model := ui.NewModel(bus, cfg, scanner, dir)
	model.SetContext(ctx)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward scan progress to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventAlbumDiscovered,
		eventbus.EventScanCompleted,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	logrus.Infof("starting viewer for %s", dir)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logrus.Errorf("error running program: %v", err)
		return err
	}
	logrus.Info("viewer exited normally")
	return nil
}
