package cmd

import (
	"github.com/spf13/cobra"
)

var (
	targetDir string
	logPath   string
)

var rootCmd = &cobra.Command{
	Use:   "lightbox [DIR]",
	Short: "Browse image albums in the terminal",
	Long: `Lightbox scans a directory of albums (one sub-directory per album) and
shows the images in a grid. Any image opens in a full screen viewer with
mouse wheel, click and keyboard zoom, drag to pan and prev/next navigation.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runView,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&targetDir, "dir", "d", "", "gallery directory (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "lightbox.log", "log file path")
}
