package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the colors assigned to new segments",
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	opts, err := loadOptions(cmd, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Palette (%d colors, segment i uses color i mod %d):\n", len(opts.Palette), len(opts.Palette))
	for i, c := range opts.Palette {
		fmt.Fprintf(out, "  %2d  %s\n", i, c)
	}
	return nil
}
