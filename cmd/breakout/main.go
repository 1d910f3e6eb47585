// breakout is a brick-breaker for the terminal.
//
// Usage:
//
//	breakout list              - List rule-set variants
//	breakout play [variant]    - Play (no variant opens the selector)
//	breakout sim [variant]     - Run a headless session
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible serves
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

// logger reports to stderr; it is only used outside the alt screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "breakout",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is a brick-breaker that runs in your terminal.

Steer the paddle with the mouse or the arrow keys, serve with a click or
Space and clear the wall of bricks before you run out of balls.

Available commands:
  list     - Show the rule-set variants
  play     - Play a variant (no argument opens the selector)
  sim      - Run a headless session and print the result
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play classic --difficulty hard
  breakout sim --seed 42
  breakout config --difficulty easy`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

// applyGlobalFlags validates the shared flags and hands them to the game
// package before any session is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
