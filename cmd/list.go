package cmd

import (
	"github.com/spf13/cobra"

	"lightbox/internal/eventbus"
	"lightbox/internal/pager"
)

var listCmd = &cobra.Command{
	Use:   "list [DIR]",
	Short: "List the images that the viewer would show",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("plain", false, "write to stdout instead of the pager")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir(args)
	if err != nil {
		return err
	}
	closeLog := setupLogging()
	defer closeLog()

	bus := eventbus.New()
	defer bus.Close()

	cfg := loadConfig(bus, dir)
	result, err := scan(cmd.Context(), bus, cfg, dir)
	if err != nil {
		return err
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return pager.Write(cmd.OutOrStdout(), result.Items())
	}
	return pager.Page(pager.Table(result.Items()))
}
