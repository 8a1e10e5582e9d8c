package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/segbar/pkg/render"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

var barWidth int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the initial partition",
	Long: `Print the partition the editor would start with: one row per segment
followed by a text rendering of the bar.

Examples:
  segbar show
  segbar show --count 5 --unit currency --total 2000`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addPartitionFlags(showCmd)
	showCmd.Flags().IntVarP(&barWidth, "width", "w", 40, "text bar width in characters")
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	opts, err := loadOptions(cmd, logger)
	if err != nil {
		return err
	}
	part := segment.New(opts)
	logger.Debug("partition created", "count", part.Len(), "unit", part.UnitType())

	if err := render.WriteSummary(cmd.OutOrStdout(), part.Snapshot(), barWidth); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
