package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play breakout",
	Long: `Start playing. Without a variant an interactive selector lets you
pick the variant and the difficulty.

Controls:
  Mouse / Left/Right  - Move the paddle
  Click / Space       - Serve
  P/Esc               - Pause
  R                   - Restart (after game over)
  M                   - Mute
  Q/Ctrl+C            - Quit

Variants:
  breakout  - Paddle tests the whole ball, bricks test the ball's box
  classic   - Paddle tests the ball's left edge, bricks test one corner

Examples:
  breakout play
  breakout play classic
  breakout play breakout --difficulty hard --mute
  breakout play --log-file ./breakout.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume, 0 to 1")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session events to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	var variant string
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q, run 'breakout list' to see them", variant)
		}
	} else {
		preset, _ := config.ParsePreset(flagDifficulty) // Validated in applyGlobalFlags
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		variant = result.GameID
		cfg = result.Config
		breakout.SetDifficultyPreset(string(result.Difficulty))
	}

	// Surface config problems here; inside the alt screen they would only
	// show up as a message in place of the field.
	if _, err := breakout.LoadConfig(variant); err != nil {
		logger.Warn("config fallback", "err", err)
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	sessionLog, closeLog, err := openSessionLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
			player = nil
		}
		defer player.Close()
	}

	if err := tui.Run(game, tui.Options{
		Runtime: cfg,
		Player:  player,
		Logger:  sessionLog,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openSessionLog returns a logger writing to path, or one that discards
// everything when path is empty.
func openSessionLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	return l, func() { _ = f.Close() }, nil
}
