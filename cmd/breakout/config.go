package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would start with, after the
config file search, the difficulty preset and the variant rules are
applied. The output is valid YAML and can be saved as a custom config.

Examples:
  breakout config
  breakout config classic --difficulty hard > my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant := breakout.VariantBreakout
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see them", variant)
	}

	cfg, err := breakout.LoadConfig(variant)
	if err != nil {
		logger.Warn("config fallback", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config is invalid", "err", err)
	}

	data, err := config.MarshalBreakout(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
