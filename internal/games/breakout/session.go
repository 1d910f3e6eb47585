package breakout

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// InputSource supplies the paddle target, polled once at the start of every
// tick. The last known value wins; no events are queued.
type InputSource interface {
	CurrentPaddleTargetX() float64
}

// FixedInput is an InputSource that always reports the same target.
type FixedInput float64

// CurrentPaddleTargetX implements InputSource.
func (f FixedInput) CurrentPaddleTargetX() float64 { return float64(f) }

var (
	ErrNoInput  = errors.New("breakout: input source is required")
	ErrNoRandom = errors.New("breakout: random source is required")
)

// TickResult is the snapshot handed to the presentation layer after a tick.
type TickResult struct {
	BallPos                 mgl64.Vec2
	PaddleX                 float64
	BricksDestroyedThisTick int // 0 or 1
	DestroyedBrick          int // Index of the removed brick, -1 if none
	Bounced                 bool
	Contact                 Contact
	TurnLost                bool
	State                   State
	Score                   int
	TurnsLeft               int
	BricksRemaining         int
	NextDelay               time.Duration
}

// Session holds every piece of state for one game, from the first serve to
// Won or Lost. It is owned by a single driving loop and is not safe for
// concurrent use.
type Session struct {
	id       uuid.UUID
	cfg      config.BreakoutConfig
	field    *PlayField
	state    GameState
	resolver *Resolver
	pacer    *config.Pacer
	input    InputSource
	rng      RandomSource
	ticks    uint64
}

// NewGame validates cfg and lays out a fresh session in the Serving state.
func NewGame(cfg config.BreakoutConfig, input InputSource, rng RandomSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: invalid config: %w", err)
	}
	if input == nil {
		return nil, ErrNoInput
	}
	if rng == nil {
		return nil, ErrNoRandom
	}

	return &Session{
		id:       uuid.New(),
		cfg:      cfg,
		field:    NewPlayField(cfg),
		state:    NewGameState(cfg.Gameplay.Turns, cfg.BrickCount(), cfg.Gameplay.ScoreUnit),
		resolver: NewResolver(cfg.Rules, cfg.Bricks.Sampling),
		pacer:    config.NewPacer(cfg.Timing),
		input:    input,
		rng:      rng,
	}, nil
}

// Launch serves the ball: horizontal speed in [min_vx, max_vx) with a random
// sign, vertical speed in [min_vy, max_vy) heading down.
func (s *Session) Launch() error {
	if err := s.state.Launch(); err != nil {
		return err
	}

	vx := s.rng.Uniform(s.cfg.Ball.MinVX, s.cfg.Ball.MaxVX)
	if s.rng.Bool(0.5) {
		vx = -vx
	}
	vy := s.rng.Uniform(s.cfg.Ball.MinVY, s.cfg.Ball.MaxVY)
	s.field.Ball.Velocity = mgl64.Vec2{vx, vy}
	return nil
}

// Tick advances the session by one step. The paddle always follows the
// input; the ball only moves while in play. Won and Lost are terminal and a
// tick there changes nothing.
func (s *Session) Tick() TickResult {
	result := TickResult{DestroyedBrick: -1}
	if s.state.State.Terminal() {
		return s.fill(result)
	}

	s.ticks++
	s.field.Paddle.Follow(s.input.CurrentPaddleTargetX(), s.field.Width)

	if s.state.State != StateInPlay {
		return s.fill(result)
	}

	s.field.Ball.Move()

	res := s.resolver.Resolve(s.field)
	res.Apply(s.field)
	result.Contact = res.Contact
	result.Bounced = res.Bounced()
	if res.DestroyedBrick() {
		s.state.BrickDestroyed()
		result.BricksDestroyedThisTick = 1
		result.DestroyedBrick = res.Brick
	}

	if s.state.CheckWin() {
		return s.fill(result)
	}

	if s.field.Ball.Bottom() >= s.field.BoundaryY {
		result.TurnLost = true
		if s.state.LoseTurn() == StateServing {
			s.field.ResetBall()
		}
	}

	return s.fill(result)
}

func (s *Session) fill(r TickResult) TickResult {
	r.BallPos = s.field.Ball.Center
	r.PaddleX = s.field.Paddle.X
	r.State = s.state.State
	r.Score = s.state.Score
	r.TurnsLeft = s.state.TurnsLeft
	r.BricksRemaining = s.state.BricksRemaining
	r.NextDelay = s.pacer.Delay(s.state.Score)
	return r
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the validated configuration.
func (s *Session) Config() config.BreakoutConfig { return s.cfg }

// Field returns the entities. Callers must treat it as read-only.
func (s *Session) Field() *PlayField { return s.field }

// State returns the current phase.
func (s *Session) State() State { return s.state.State }

// Counters returns a copy of the score and turn counters.
func (s *Session) Counters() GameState { return s.state }

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 { return s.ticks }

// NextDelay returns the pacing delay for the current score.
func (s *Session) NextDelay() time.Duration { return s.pacer.Delay(s.state.Score) }
