// Package breakout implements the simulation core of a paddle-and-ball brick
// breaker: entities, collision resolution, the turn/score state machine and
// the tick driver. It never renders, sleeps or reads devices; the platform
// drives it one tick at a time.
package breakout

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is a circle moving through the field. Y grows downward.
type Ball struct {
	Center   mgl64.Vec2 // Position of the centre
	Velocity mgl64.Vec2 // Distance per tick
	Radius   float64
}

// Left returns the x-coordinate of the ball's left edge.
func (b *Ball) Left() float64 { return b.Center.X() - b.Radius }

// Right returns the x-coordinate of the ball's right edge.
func (b *Ball) Right() float64 { return b.Center.X() + b.Radius }

// Top returns the y-coordinate of the ball's top edge.
func (b *Ball) Top() float64 { return b.Center.Y() - b.Radius }

// Bottom returns the y-coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float64 { return b.Center.Y() + b.Radius }

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.Left(), b.Top(), 2*b.Radius, 2*b.Radius)
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.Center = b.Center.Add(b.Velocity)
}

// Shift moves the ball without touching its velocity.
func (b *Ball) Shift(d mgl64.Vec2) {
	b.Center = b.Center.Add(d)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Velocity[0] = -b.Velocity[0]
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Velocity[1] = -b.Velocity[1]
}

// Moving reports whether the ball has a non-zero velocity.
func (b *Ball) Moving() bool {
	return b.Velocity[0] != 0 || b.Velocity[1] != 0
}

// Paddle is the player's bat. Only X changes during a session.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
}

// Left returns the paddle's left edge.
func (p *Paddle) Left() float64 { return p.X }

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 { return p.X + p.Width }

// Top returns the paddle's top edge.
func (p *Paddle) Top() float64 { return p.Y }

// CenterX returns the paddle's horizontal centre.
func (p *Paddle) CenterX() float64 { return p.X + p.Width/2 }

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Follow centres the paddle on targetX, clamped so the paddle stays within
// [0, fieldWidth-width].
func (p *Paddle) Follow(targetX, fieldWidth float64) {
	p.X = core.ClampF(targetX-p.Width/2, 0, fieldWidth-p.Width)
}

// Brick is one cell of the brick grid.
type Brick struct {
	Rect  core.RectF
	Row   int
	Col   int
	Alive bool
}

// Color returns the brick's colour tier.
func (b Brick) Color() core.Color {
	return BrickColor(b.Row)
}

// BrickColor returns the colour tier of a brick row.
// Rows are coloured in pairs: red, orange, yellow, green, cyan, then blue.
func BrickColor(row int) core.Color {
	switch row {
	case 0, 1:
		return core.ColorRed
	case 2, 3:
		return core.ColorOrange
	case 4, 5:
		return core.ColorYellow
	case 6, 7:
		return core.ColorGreen
	case 8, 9:
		return core.ColorCyan
	default:
		return core.ColorBlue
	}
}

// Tint returns the ball and paddle colour for the number of turns left.
// Purely cosmetic.
func Tint(turnsLeft int) core.Color {
	switch turnsLeft {
	case 1:
		return core.ColorGray
	case 0:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// PlayField owns the entities of one session.
type PlayField struct {
	Width     float64
	Height    float64
	BoundaryY float64 // Ball bottom at or below this line loses the turn

	Ball   Ball
	Paddle Paddle
	Bricks []Brick // Row-major
}

// NewPlayField lays out a fresh field from a validated config: bricks in a
// rows×columns grid, paddle centred, ball resting at the field centre.
func NewPlayField(cfg config.BreakoutConfig) *PlayField {
	f := &PlayField{
		Width:     cfg.Field.Width,
		Height:    cfg.Field.Height,
		BoundaryY: cfg.BoundaryY(),
		Ball:      Ball{Radius: cfg.Ball.Radius},
		Paddle: Paddle{
			X:      (cfg.Field.Width - cfg.Paddle.Width) / 2,
			Y:      cfg.PaddleY(),
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Bricks: make([]Brick, 0, cfg.BrickCount()),
	}

	brickW := cfg.BrickWidth()
	for row := range cfg.Bricks.Rows {
		for col := range cfg.Bricks.Columns {
			f.Bricks = append(f.Bricks, Brick{
				Rect:  core.NewRectF(cfg.BrickColumnX(col), cfg.BrickRowY(row), brickW, cfg.Bricks.Height),
				Row:   row,
				Col:   col,
				Alive: true,
			})
		}
	}

	f.ResetBall()
	return f
}

// Center returns the field centre.
func (f *PlayField) Center() mgl64.Vec2 {
	return mgl64.Vec2{f.Width / 2, f.Height / 2}
}

// ResetBall puts the ball back at the field centre, at rest.
func (f *PlayField) ResetBall() {
	f.Ball.Center = f.Center()
	f.Ball.Velocity = mgl64.Vec2{}
}

// AliveBricks counts the bricks still standing.
func (f *PlayField) AliveBricks() int {
	count := 0
	for _, b := range f.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}
