package breakout

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// fixedRNG returns the same fraction of every range and the same coin flip.
type fixedRNG struct {
	frac float64
	flip bool
}

func (r fixedRNG) Uniform(lo, hi float64) float64 { return lo + r.frac*(hi-lo) }
func (r fixedRNG) Bool(float64) bool              { return r.flip }

// avoidInput keeps the paddle on the half of the field away from the ball.
type avoidInput struct {
	s *Session
}

func (a *avoidInput) CurrentPaddleTargetX() float64 {
	if a.s.Field().Ball.Center.X() < a.s.Field().Width/2 {
		return a.s.Field().Width
	}
	return 0
}

func newTestSession(t *testing.T, input InputSource, rng RandomSource) *Session {
	t.Helper()
	s, err := NewGame(config.DefaultBreakoutConfig(), input, rng)
	require.NoError(t, err)
	return s
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Field.Width = -1

	_, err := NewGame(cfg, FixedInput(0), NewSimpleRNG(1))
	require.Error(t, err)

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "field.width", cfgErr.Field)
	assert.Contains(t, err.Error(), "breakout: invalid config")
}

func TestNewGameRequiresSources(t *testing.T) {
	_, err := NewGame(config.DefaultBreakoutConfig(), nil, NewSimpleRNG(1))
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = NewGame(config.DefaultBreakoutConfig(), FixedInput(0), nil)
	assert.ErrorIs(t, err, ErrNoRandom)
}

func TestNewGameInitialState(t *testing.T) {
	s := newTestSession(t, FixedInput(200), NewSimpleRNG(1))

	assert.Equal(t, StateServing, s.State())
	assert.Equal(t, 2, s.Counters().TurnsLeft)
	assert.Equal(t, 40, s.Counters().BricksRemaining)
	assert.Equal(t, 20*time.Millisecond, s.NextDelay())
	assert.NotEqual(t, s.ID(), newTestSession(t, FixedInput(200), NewSimpleRNG(1)).ID())
}

func TestLaunchServeRanges(t *testing.T) {
	var sawLeft, sawRight bool
	for seed := int64(1); seed <= 200; seed++ {
		s := newTestSession(t, FixedInput(200), NewSimpleRNG(seed))
		require.NoError(t, s.Launch())

		v := s.Field().Ball.Velocity
		assert.GreaterOrEqual(t, math.Abs(v.X()), 1.0)
		assert.Less(t, math.Abs(v.X()), 4.0)
		assert.GreaterOrEqual(t, v.Y(), 2.0)
		assert.Less(t, v.Y(), 4.0)

		sawLeft = sawLeft || v.X() < 0
		sawRight = sawRight || v.X() > 0
	}
	assert.True(t, sawLeft, "some serves should go left")
	assert.True(t, sawRight, "some serves should go right")
}

func TestLaunchUsesRandomSource(t *testing.T) {
	s := newTestSession(t, FixedInput(200), fixedRNG{frac: 0.5, flip: true})
	require.NoError(t, s.Launch())
	assert.Equal(t, mgl64.Vec2{-2.5, 3}, s.Field().Ball.Velocity)

	err := s.Launch()
	var te *TransitionError
	assert.True(t, errors.As(err, &te))
}

func TestTickWhileServingMovesPaddleOnly(t *testing.T) {
	s := newTestSession(t, FixedInput(0), NewSimpleRNG(1))

	res := s.Tick()

	assert.Equal(t, StateServing, res.State)
	assert.Equal(t, 0.0, res.PaddleX)
	assert.Equal(t, mgl64.Vec2{200, 300}, res.BallPos)
	assert.Equal(t, -1, res.DestroyedBrick)

	s.input = FixedInput(1000)
	res = s.Tick()
	assert.Equal(t, 340.0, res.PaddleX)
}

func TestTickMovesBall(t *testing.T) {
	s := newTestSession(t, FixedInput(200), fixedRNG{frac: 0, flip: false})
	require.NoError(t, s.Launch())

	res := s.Tick()
	assert.Equal(t, StateInPlay, res.State)
	assert.Equal(t, mgl64.Vec2{201, 302}, res.BallPos)
	assert.False(t, res.Bounced)
	assert.Equal(t, uint64(1), s.Ticks())
}

func TestTurnLossResetsBall(t *testing.T) {
	s := newTestSession(t, FixedInput(0), fixedRNG{frac: 0, flip: false})
	require.NoError(t, s.Launch())

	// Paddle sits at 0..60, ball falls past x=300.
	s.field.Ball.Center = mgl64.Vec2{300, 556}

	res := s.Tick()
	assert.True(t, res.TurnLost)
	assert.Equal(t, StateServing, res.State)
	assert.Equal(t, 1, res.TurnsLeft)
	assert.Equal(t, mgl64.Vec2{200, 300}, res.BallPos)
	assert.False(t, s.Field().Ball.Moving())

	// The next serve works as usual.
	require.NoError(t, s.Launch())
	assert.Equal(t, StateInPlay, s.State())
}

func TestRunsToTerminationWithInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		in := &avoidInput{}
		s := newTestSession(t, in, NewSimpleRNG(seed))
		in.s = s

		prevBricks := s.Counters().BricksRemaining
		prevScore := s.Counters().Score
		for i := 0; i < 200000 && !s.State().Terminal(); i++ {
			if s.State() == StateServing {
				require.NoError(t, s.Launch())
			}
			res := s.Tick()

			dropped := prevBricks - res.BricksRemaining
			require.Contains(t, []int{0, 1}, dropped)
			require.Equal(t, dropped, res.BricksDestroyedThisTick)
			require.Equal(t, prevScore+10*dropped, res.Score)
			require.Equal(t, res.BricksRemaining, s.Field().AliveBricks())

			prevBricks, prevScore = res.BricksRemaining, res.Score
		}

		require.True(t, s.State().Terminal(), "seed %d did not terminate", seed)
		st := s.Counters()
		if s.State() == StateLost {
			assert.Equal(t, -1, st.TurnsLeft)
		} else {
			assert.Equal(t, 0, st.BricksRemaining)
		}
	}
}

func TestClearingAllBricksWins(t *testing.T) {
	s := newTestSession(t, FixedInput(200), NewSimpleRNG(7))
	require.NoError(t, s.Launch())

	vel := mgl64.Vec2{1, -2}
	for i := range s.field.Bricks {
		b := s.field.Bricks[i].Rect
		center := mgl64.Vec2{b.X + b.W/2, b.Y + b.H/2}
		s.field.Ball.Center = center.Sub(vel)
		s.field.Ball.Velocity = vel

		res := s.Tick()
		require.Equal(t, 1, res.BricksDestroyedThisTick, "brick %d", i)
		require.Equal(t, i, res.DestroyedBrick)
		if i < len(s.field.Bricks)-1 {
			require.Equal(t, StateInPlay, res.State)
		}
	}

	assert.Equal(t, StateWon, s.State())
	st := s.Counters()
	assert.Equal(t, 0, st.BricksRemaining)
	assert.Equal(t, 400, st.Score)
	assert.Equal(t, 2, st.TurnsLeft)
	assert.Equal(t, 0, s.Field().AliveBricks())
}

func TestTerminalTickIsNoop(t *testing.T) {
	s := newTestSession(t, FixedInput(0), fixedRNG{})
	for s.State() != StateLost {
		if s.State() == StateServing {
			require.NoError(t, s.Launch())
		}
		s.field.Ball.Center = mgl64.Vec2{300, 556}
		s.Tick()
	}

	before := s.Snapshot()
	res := s.Tick()
	after := s.Snapshot()

	assert.Equal(t, StateLost, res.State)
	assert.Equal(t, before.Hash(), after.Hash())
	assert.Equal(t, -1, res.TurnsLeft)

	err := s.Launch()
	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, StateLost, te.From)
}

func TestNextDelayFollowsScore(t *testing.T) {
	s := newTestSession(t, FixedInput(200), NewSimpleRNG(3))
	require.NoError(t, s.Launch())

	s.field.Ball.Center = mgl64.Vec2{29, 17}
	s.field.Ball.Velocity = mgl64.Vec2{0.5, -2}
	res := s.Tick()

	require.Equal(t, 1, res.BricksDestroyedThisTick)
	assert.Equal(t, 10, res.Score)
	assert.InDelta(t, 19.8, float64(res.NextDelay)/float64(time.Millisecond), 1e-3)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() uint64 {
		pilot := NewAutopilot(7)
		s, err := NewGame(config.DefaultBreakoutConfig(), pilot, NewSimpleRNG(12345))
		require.NoError(t, err)
		pilot.Attach(s)

		for range 3000 {
			if s.State() == StateServing {
				require.NoError(t, s.Launch())
			}
			s.Tick()
		}
		snap := s.Snapshot()
		return snap.Hash()
	}

	assert.Equal(t, run(), run(), "same seed and input must produce the same session")
}

func TestSnapshotReflectsSession(t *testing.T) {
	s := newTestSession(t, FixedInput(200), fixedRNG{frac: 0, flip: false})
	require.NoError(t, s.Launch())
	s.Tick()

	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, "in-play", snap.State)
	assert.Equal(t, 201.0, snap.BallX)
	assert.Equal(t, 302.0, snap.BallY)
	assert.Equal(t, 1.0, snap.BallVX)
	assert.Len(t, snap.BrickData, 40)

	other := snap
	other.BallX++
	assert.NotEqual(t, snap.Hash(), other.Hash())
}
