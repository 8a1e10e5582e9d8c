package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/segbar/internal/config"
	"github.com/OpenTraceLab/segbar/internal/logging"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Partition flags shared by ui, show and replay
	segmentCount int
	unitType     string
	totalValue   float64
	minimumSize  float64
)

var rootCmd = &cobra.Command{
	Use:   "segbar",
	Short: "Interactive pie and bar segmentation editor",
	Long: `segbar splits a whole (100%, or a currency total) into adjacent
segments shown both as a pie chart and as a bar with draggable pointers.

Examples:
  segbar ui                                  # Launch the editor window
  segbar ui --count 6 --unit currency        # Six segments, shown as money
  segbar show --count 3                      # Print the initial partition
  segbar replay session.seg                  # Apply a scripted session
  segbar config                              # Print the effective config`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/segbar/config.json)")
}

// addPartitionFlags registers the flags that override the config file.
func addPartitionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&segmentCount, "count", "n", segment.DefaultSegmentCount, "initial number of segments (min 2)")
	cmd.Flags().StringVarP(&unitType, "unit", "u", string(segment.UnitPercent), "display unit: percent or currency")
	cmd.Flags().Float64Var(&totalValue, "total", segment.DefaultTotalValue, "currency total")
	cmd.Flags().Float64Var(&minimumSize, "min", segment.DefaultMinimumSize, "minimum segment size in percent")
}

func newLogger(cmd *cobra.Command) hclog.Logger {
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// loadOptions reads the config file and applies any partition flags the user
// set explicitly.
func loadOptions(cmd *cobra.Command, logger hclog.Logger) (segment.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return segment.Options{}, err
	}
	opts := cfg.Options(logger.Named("config"))

	flags := cmd.Flags()
	if flags.Lookup("count") == nil {
		return opts, nil
	}
	if flags.Changed("count") {
		if segmentCount < segment.MinSegmentCount {
			return opts, fmt.Errorf("--count must be at least %d, got %d", segment.MinSegmentCount, segmentCount)
		}
		opts.InitialSegmentCount = segmentCount
	}
	if flags.Changed("unit") {
		unit, ok := segment.ParseUnitType(unitType)
		if !ok {
			return opts, fmt.Errorf("--unit must be percent or currency, got %q", unitType)
		}
		opts.UnitType = unit
	}
	if flags.Changed("total") {
		if !segment.Positive(totalValue) {
			return opts, fmt.Errorf("--total must be a positive number, got %v", totalValue)
		}
		opts.TotalValue = totalValue
	}
	if flags.Changed("min") {
		if !segment.Positive(minimumSize) || minimumSize*segment.MinSegmentCount > segment.Whole {
			return opts, fmt.Errorf("--min must be a positive number of at most %g, got %v", segment.Whole/segment.MinSegmentCount, minimumSize)
		}
		opts.MinimumSegmentSize = minimumSize
	}
	if limit := segment.MaxSegmentCount(opts.MinimumSegmentSize); opts.InitialSegmentCount > limit {
		return opts, fmt.Errorf("--count %d does not fit: at most %d segments of %g%%", opts.InitialSegmentCount, limit, opts.MinimumSegmentSize)
	}
	return opts, nil
}
