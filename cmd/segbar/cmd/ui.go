package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/segbar/internal/logging"
	"github.com/OpenTraceLab/segbar/internal/ui"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the segmentation editor window",
	Long: `Launch the graphical editor. Click the pie or the bar to highlight a
segment, drag the pointers above the bar to move boundaries, and use the top
bar to change the segment count, the display unit and the currency total.

Examples:
  # Launch the editor
  segbar ui

  # Start with six segments shown as money
  segbar ui --count 6 --unit currency --total 2500

  # Launch with verbose logging
  segbar ui -v`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
	addPartitionFlags(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	base := newLogger(cmd)
	opts, err := loadOptions(cmd, base)
	if err != nil {
		return err
	}

	logs := logging.NewLineBuffer(200)
	logger := logging.Tee(base, cmd.ErrOrStderr(), logs).Named("ui")

	state := ui.NewState(segment.New(opts), logs, logger)
	state.SetFallbackTotal(opts.TotalValue)
	state.SetStatus("Ready")
	logger.Info("editor starting", "count", opts.InitialSegmentCount, "unit", opts.UnitType)

	return ui.Run(state, logger)
}
