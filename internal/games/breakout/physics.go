package breakout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Contact identifies what the ball hit during one resolver pass.
type Contact int

const (
	ContactNone Contact = iota
	ContactRightWall
	ContactLeftWall
	ContactTopWall
	ContactPaddle
	ContactBrick
)

// String returns a human-readable contact name.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactRightWall:
		return "right-wall"
	case ContactLeftWall:
		return "left-wall"
	case ContactTopWall:
		return "top-wall"
	case ContactPaddle:
		return "paddle"
	case ContactBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Resolution describes the outcome of one resolver pass. It is a plain value;
// nothing changes until Apply is called.
type Resolution struct {
	Contact    Contact
	FlipX      bool
	FlipY      bool
	Correction mgl64.Vec2 // Added to the ball centre after the flip
	Brick      int        // Index into PlayField.Bricks, -1 if none
}

// Bounced reports whether the ball hit a wall or the paddle.
// Brick hits are reported separately.
func (r Resolution) Bounced() bool {
	switch r.Contact {
	case ContactRightWall, ContactLeftWall, ContactTopWall, ContactPaddle:
		return true
	default:
		return false
	}
}

// DestroyedBrick reports whether the pass removed a brick.
func (r Resolution) DestroyedBrick() bool {
	return r.Brick >= 0
}

// Apply mutates the field according to the resolution.
func (r Resolution) Apply(f *PlayField) {
	if r.FlipX {
		f.Ball.BounceX()
	}
	if r.FlipY {
		f.Ball.BounceY()
	}
	f.Ball.Shift(r.Correction)
	if r.Brick >= 0 && r.Brick < len(f.Bricks) {
		f.Bricks[r.Brick].Alive = false
	}
}

// Resolver detects ball collisions against the walls, the paddle and the
// brick grid. Checks run in a fixed order and the first match wins, so a
// single pass corrects the ball for at most one contact and removes at most
// one brick.
type Resolver struct {
	wall     config.WallCorrection
	paddle   config.PaddleHit
	sampling config.BrickSampling
}

// NewResolver creates a resolver for the given rule set.
func NewResolver(rules config.RulesConfig, sampling config.BrickSampling) *Resolver {
	return &Resolver{
		wall:     rules.WallCorrection,
		paddle:   rules.PaddleHit,
		sampling: sampling,
	}
}

// Resolve inspects the field and returns the first collision found.
// The field is not modified.
func (r *Resolver) Resolve(f *PlayField) Resolution {
	ball := &f.Ball

	// Right wall
	if pen := ball.Right() - f.Width; pen >= 0 {
		return Resolution{
			Contact:    ContactRightWall,
			FlipX:      true,
			Correction: mgl64.Vec2{-r.pushback(pen), 0},
			Brick:      -1,
		}
	}

	// Left wall
	if pen := -ball.Left(); pen > 0 {
		return Resolution{
			Contact:    ContactLeftWall,
			FlipX:      true,
			Correction: mgl64.Vec2{r.pushback(pen), 0},
			Brick:      -1,
		}
	}

	// Top wall
	if pen := -ball.Top(); pen > 0 {
		return Resolution{
			Contact:    ContactTopWall,
			FlipY:      true,
			Correction: mgl64.Vec2{0, r.pushback(pen)},
			Brick:      -1,
		}
	}

	if r.hitsPaddle(ball, &f.Paddle) {
		pen := ball.Bottom() - f.Paddle.Top()
		return Resolution{
			Contact:    ContactPaddle,
			FlipY:      true,
			Correction: mgl64.Vec2{0, -r.pushback(pen)},
			Brick:      -1,
		}
	}

	if idx := r.findBrick(ball, f.Bricks); idx >= 0 {
		return Resolution{
			Contact: ContactBrick,
			FlipY:   true,
			Brick:   idx,
		}
	}

	return Resolution{Brick: -1}
}

// pushback returns how far to move the ball back out of a surface it
// penetrated by pen units.
func (r *Resolver) pushback(pen float64) float64 {
	if r.wall == config.WallClamp {
		return pen
	}
	return 2 * pen
}

// hitsPaddle applies the paddle contact rule. Only a descending ball that
// reached the paddle top without falling past its bottom edge bounces.
func (r *Resolver) hitsPaddle(ball *Ball, p *Paddle) bool {
	if ball.Velocity.Y() <= 0 {
		return false
	}
	if ball.Bottom() < p.Top() || ball.Top() > p.Bounds().Bottom() {
		return false
	}

	if r.paddle == config.PaddleHitLeftEdge {
		return ball.Left() >= p.Left() && ball.Left() <= p.Right()
	}
	return ball.Right() >= p.Left() && ball.Left() <= p.Right()
}

// findBrick returns the index of the first living brick the ball touches in
// row-major order, or -1.
func (r *Resolver) findBrick(ball *Ball, bricks []Brick) int {
	bounds := ball.Bounds()
	for i := range bricks {
		if !bricks[i].Alive {
			continue
		}
		if r.sampling == config.SamplePoint {
			if core.PointInside(bricks[i].Rect, ball.Left(), ball.Top()) {
				return i
			}
			continue
		}
		if core.Overlaps(bounds, bricks[i].Rect) {
			return i
		}
	}
	return -1
}
