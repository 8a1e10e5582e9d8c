package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/segbar/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults are applied and invalid values
are replaced, as JSON. Combine with --config to check a specific file.

Examples:
  segbar config
  segbar config --config ./segbar.json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	path := configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	logger.Debug("reading config", "path", path)

	opts, err := loadOptions(cmd, logger)
	if err != nil {
		return err
	}
	data, err := config.FromOptions(opts).JSON()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
