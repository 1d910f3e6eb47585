package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagMaxTicks  uint64
	flagAutopilot bool
	flagOffset    float64
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless session",
	Long: `Run a session without a terminal UI and print the outcome.

The paddle is steered by an autopilot that follows the ball, or parked in
the middle of the field with --autopilot=false. The ball is served as soon
as the session waits for a serve. Runs with the same seed and config are
identical, which makes sim handy for checking rule changes.

Examples:
  breakout sim
  breakout sim classic --seed 42
  breakout sim --autopilot=false --max-ticks 5000
  breakout sim --offset 12 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 200000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Let the paddle follow the ball")
	simCmd.Flags().Float64Var(&flagOffset, "offset", 0, "Autopilot aim offset from the paddle centre")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every turn and serve")
}

func runSim(cmd *cobra.Command, args []string) error {
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

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		input breakout.InputSource = breakout.FixedInput(cfg.Field.Width / 2)
		pilot *breakout.Autopilot
	)
	if flagAutopilot {
		pilot = breakout.NewAutopilot(flagOffset)
		input = pilot
	}

	s, err := breakout.NewGame(cfg, input, breakout.NewSimpleRNG(seed))
	if err != nil {
		return err
	}
	if pilot != nil {
		pilot.Attach(s)
	}

	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Info("simulation started", "variant", variant, "session", s.ID(), "seed", seed)

	res := simulate(s, flagMaxTicks)

	snap := s.Snapshot()
	fmt.Println()
	fmt.Printf("  Variant:     %s\n", variant)
	fmt.Printf("  Seed:        %d\n", seed)
	fmt.Printf("  Ticks:       %d\n", s.Ticks())
	fmt.Printf("  State:       %s\n", res.State)
	fmt.Printf("  Score:       %d\n", res.Score)
	fmt.Printf("  Balls left:  %d\n", res.TurnsLeft)
	fmt.Printf("  Bricks left: %d\n", res.BricksRemaining)
	fmt.Printf("  Hash:        %016x\n", snap.Hash())
	fmt.Println()

	if !res.State.Terminal() {
		logger.Warn("tick limit reached", "max", flagMaxTicks)
	}
	return nil
}

// simulate serves whenever the session waits and ticks until the session
// ends or maxTicks is reached.
func simulate(s *breakout.Session, maxTicks uint64) breakout.TickResult {
	var res breakout.TickResult
	for s.Ticks() < maxTicks {
		if s.State() == breakout.StateServing {
			if err := s.Launch(); err != nil {
				logger.Error("launch", "err", err)
				break
			}
			logger.Debug("ball served", "tick", s.Ticks())
		}

		res = s.Tick()
		if res.TurnLost {
			logger.Debug("turn lost", "tick", s.Ticks(), "score", res.Score, "left", res.TurnsLeft)
		}
		if res.State.Terminal() {
			logger.Info("game over", "state", res.State, "score", res.Score)
			break
		}
	}
	return res
}
