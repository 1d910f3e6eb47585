package breakout

import "math"

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	State           string
	Score           int
	TurnsLeft       int
	BricksRemaining int

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64

	// Brick alive flags in row-major order
	BrickData []bool
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	bricks := make([]bool, len(s.field.Bricks))
	for i, b := range s.field.Bricks {
		bricks[i] = b.Alive
	}

	return Snapshot{
		Tick:            s.ticks,
		State:           s.state.State.String(),
		Score:           s.state.Score,
		TurnsLeft:       s.state.TurnsLeft,
		BricksRemaining: s.state.BricksRemaining,
		BallX:           s.field.Ball.Center.X(),
		BallY:           s.field.Ball.Center.Y(),
		BallVX:          s.field.Ball.Velocity.X(),
		BallVY:          s.field.Ball.Velocity.Y(),
		PaddleX:         s.field.Paddle.X,
		BrickData:       bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TurnsLeft)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(v)
	}

	for _, alive := range snap.BrickData {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}
