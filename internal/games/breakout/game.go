package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Variant identifiers registered with the registry.
const (
	VariantBreakout = "breakout"
	VariantClassic  = "classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration for a variant, applying the CLI config
// path and difficulty preset.
func LoadConfig(variant string) (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	if variant == VariantClassic {
		cfg = config.ClassicRules(cfg)
	}
	return cfg, nil
}

// Game adapts a Session to the registry.Game interface. It also serves as the
// session's InputSource: pointer moves and key nudges update the target the
// session polls on the next tick.
type Game struct {
	variant string

	session *Session
	runtime core.RuntimeConfig
	layout  Layout
	err     error // Config problem, shown instead of the field

	targetX        float64
	screenTooSmall bool
}

// New creates a game with the default rules.
func New() *Game {
	return &Game{variant: VariantBreakout}
}

// NewClassic creates a game with the classic rules: left-edge paddle test
// and point sampling for bricks.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Breakout (Classic)"
	}
	return "Breakout"
}

// Reset loads the config and starts a fresh session. The shell calls it
// again to restart after game over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.err = nil

	cfg, err := LoadConfig(g.variant)
	if err != nil {
		g.err = err
		g.session = nil
		return
	}

	session, err := NewGame(cfg, g, NewSimpleRNG(runtime.Seed))
	if err != nil {
		g.err = err
		g.session = nil
		return
	}

	g.session = session
	g.targetX = session.Field().Paddle.CenterX()
	g.layout = NewLayout(runtime.ScreenW, runtime.ScreenH, cfg.Field.Width, cfg.Field.Height)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	if g.session != nil {
		cfg := g.session.Config()
		g.layout = NewLayout(runtime.ScreenW, runtime.ScreenH, cfg.Field.Width, cfg.Field.Height)
	}
}

// Session returns the running session, or nil if the config was rejected.
func (g *Game) Session() *Session {
	return g.session
}

// SessionID returns the running session's identifier, or "" if none.
func (g *Game) SessionID() string {
	if g.session == nil {
		return ""
	}
	return g.session.ID().String()
}

// Err returns the error that prevented the session from starting.
func (g *Game) Err() error {
	return g.err
}

// CurrentPaddleTargetX implements InputSource.
func (g *Game) CurrentPaddleTargetX() float64 {
	return g.targetX
}

// Step feeds one frame of input to the session and advances it one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	cfg := g.session.Config()
	if in.HasPointer {
		g.targetX = g.layout.FieldX(in.PointerX)
	}
	if in.Has(core.ActionLeft) {
		g.targetX -= cfg.Paddle.KeyStep
	}
	if in.Has(core.ActionRight) {
		g.targetX += cfg.Paddle.KeyStep
	}
	// Keep nudges from piling up past the edges.
	paddle := g.session.Field().Paddle
	g.targetX = core.ClampF(g.targetX, paddle.Width/2, cfg.Field.Width-paddle.Width/2)

	if in.Has(core.ActionLaunch) {
		// Serve presses while the ball is moving are ignored.
		var te *TransitionError
		if err := g.session.Launch(); err != nil && !errors.As(err, &te) {
			g.err = err
		}
	}

	res := g.session.Tick()
	return core.StepResult{
		State:          g.State(),
		NextDelay:      res.NextDelay,
		Bounced:        res.Bounced || res.BricksDestroyedThisTick > 0,
		PaddleHit:      res.Contact == ContactPaddle,
		BrickDestroyed: res.BricksDestroyedThisTick > 0,
		TurnLost:       res.TurnLost,
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start game")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.session == nil {
		return
	}

	DrawField(dst, g.session, g.layout)
	DrawHUD(dst, g.session, g.layout, g.Title())
	DrawBanner(dst, g.session, g.layout)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Counters().Score,
		GameOver: st.Terminal(),
		Won:      st == StateWon,
		Serving:  st == StateServing,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(VariantBreakout, func() registry.Game {
		return New()
	})
	registry.Register(VariantClassic, func() registry.Game {
		return NewClassic()
	})
}
