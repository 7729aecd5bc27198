package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lightbox/internal/eventbus"
	"lightbox/internal/thumbs"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs [DIR]",
	Short: "Write thumbnails for every album image",
	Long: `Writes a scaled-down copy of each image into the thumbnails directory
(thumbs/<album>/<file> by default), skipping thumbnails that are newer
than their source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThumbs,
}

func init() {
	thumbsCmd.Flags().Uint("size", 0, "bounding box edge in pixels (overrides config)")
	rootCmd.AddCommand(thumbsCmd)
}

func runThumbs(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}
	closeLog := setupLogging()
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()
	bus.Subscribe(eventbus.EventThumbnailCreated, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ThumbnailCreatedEvent); ok {
			logrus.Debugf("thumbnail %s -> %s", ev.Source, ev.Target)
		}
	})

	cfg := loadConfig(bus, dir)
	result, err := scan(cmd.Context(), bus, cfg, dir)
	if err != nil {
		return err
	}

	opts := thumbs.Options{
		Dir:      cfg.ThumbsDir(),
		MaxSize:  uint(max(cfg.Thumbs.MaxSize, 0)),
		Quality:  cfg.Thumbs.Quality,
		Progress: os.Stderr,
	}
	if size, _ := cmd.Flags().GetUint("size"); size > 0 {
		opts.MaxSize = size
	}

	rep := thumbs.NewGenerator(opts, bus).Run(result.Items())
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d created, %d up to date, %d failed\n", rep.Created, rep.Skipped, rep.Failed)
	if rep.Failed > 0 {
		return fmt.Errorf("%d thumbnails failed, see %s", rep.Failed, logPath)
	}
	return nil
}
