// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the breakout game.
package config

import (
	"fmt"
	"math"
)

// BreakoutConfig contains all configuration for a breakout session.
// Distances are play-field units; the renderer scales them to cells.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
	Rules    RulesConfig    `yaml:"rules"`
}

// FieldConfig defines the play-field bounds.
type FieldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BoundaryOffset float64 `yaml:"boundary_offset"` // Boundary line sits this far above the bottom
}

// PaddleConfig defines paddle dimensions.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	YOffset float64 `yaml:"y_offset"` // Paddle top sits this far above the bottom
	KeyStep float64 `yaml:"key_step"` // Pointer nudge per arrow key press
}

// BallConfig defines the ball radius and the serve speed ranges.
// Ranges are half-open: [min, max).
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	MinVX  float64 `yaml:"min_vx"`
	MaxVX  float64 `yaml:"max_vx"`
	MinVY  float64 `yaml:"min_vy"`
	MaxVY  float64 `yaml:"max_vy"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows       int           `yaml:"rows"`
	Columns    int           `yaml:"columns"`
	Separation float64       `yaml:"separation"`
	Height     float64       `yaml:"height"`
	TopOffset  float64       `yaml:"top_offset"`
	Sampling   BrickSampling `yaml:"sampling"`
}

// GameplayConfig defines turns and scoring.
type GameplayConfig struct {
	Turns     int `yaml:"turns"`
	ScoreUnit int `yaml:"score_unit"`
}

// TimingConfig defines the inter-tick delay ramp.
// delay = max(min_delay_ms, base_delay_ms - score*speedup_per_point_ms)
type TimingConfig struct {
	BaseDelayMS       float64 `yaml:"base_delay_ms"`
	MinDelayMS        float64 `yaml:"min_delay_ms"`
	SpeedupPerPointMS float64 `yaml:"speedup_per_point_ms"`
}

// RulesConfig selects between collision rule variants.
type RulesConfig struct {
	WallCorrection WallCorrection `yaml:"wall_correction"`
	PaddleHit      PaddleHit      `yaml:"paddle_hit"`
}

// WallCorrection selects how a ball that penetrated a wall is moved back.
type WallCorrection string

const (
	WallMirror WallCorrection = "mirror" // Reflect by twice the penetration depth
	WallClamp  WallCorrection = "clamp"  // Place the ball flush against the wall
)

// PaddleHit selects which part of the ball is tested against the paddle span.
type PaddleHit string

const (
	PaddleHitSpan     PaddleHit = "span"      // Ball's horizontal extent overlaps the paddle
	PaddleHitLeftEdge PaddleHit = "left_edge" // Only the ball's left edge is tested
)

// BrickSampling selects how the ball is tested against bricks.
type BrickSampling string

const (
	SamplePoint BrickSampling = "point" // Top-left corner of the ball's bounds
	SampleBox   BrickSampling = "box"   // Full bounding box overlap
)

// ConfigError describes an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// BrickWidth returns the derived brick width: the row is split evenly between
// the columns after reserving a separation gap on both sides of every brick.
func (c BreakoutConfig) BrickWidth() float64 {
	if c.Bricks.Columns <= 0 {
		return 0
	}
	free := c.Field.Width - float64(c.Bricks.Columns+1)*c.Bricks.Separation
	return math.Floor(free / float64(c.Bricks.Columns))
}

// BrickRowY returns the top edge of the given brick row.
func (c BreakoutConfig) BrickRowY(row int) float64 {
	return c.Bricks.TopOffset + c.Bricks.Separation + float64(row)*(c.Bricks.Height+c.Bricks.Separation)
}

// BrickColumnX returns the left edge of the given brick column.
func (c BreakoutConfig) BrickColumnX(col int) float64 {
	return c.Bricks.Separation + float64(col)*(c.BrickWidth()+c.Bricks.Separation)
}

// BricksBottom returns the bottom edge of the last brick row.
func (c BreakoutConfig) BricksBottom() float64 {
	return c.BrickRowY(c.Bricks.Rows-1) + c.Bricks.Height
}

// PaddleY returns the paddle's top edge.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Field.Height - c.Paddle.YOffset
}

// BoundaryY returns the y-coordinate of the boundary line.
func (c BreakoutConfig) BoundaryY() float64 {
	return c.Field.Height - c.Field.BoundaryOffset
}

// BrickCount returns the size of the brick grid.
func (c BreakoutConfig) BrickCount() int {
	return c.Bricks.Rows * c.Bricks.Columns
}

// Validate checks the configuration and returns the first problem found as a
// *ConfigError, or nil.
func (c BreakoutConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	switch {
	case c.Field.Width <= 0:
		return invalid("field.width", "must be positive, got %v", c.Field.Width)
	case c.Field.Height <= 0:
		return invalid("field.height", "must be positive, got %v", c.Field.Height)
	case c.Field.BoundaryOffset < 0 || c.Field.BoundaryOffset >= c.Field.Height:
		return invalid("field.boundary_offset", "must be in [0, height), got %v", c.Field.BoundaryOffset)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.Field.Width:
		return invalid("paddle.width", "must be in (0, field.width], got %v", c.Paddle.Width)
	case c.Paddle.Height <= 0:
		return invalid("paddle.height", "must be positive, got %v", c.Paddle.Height)
	case c.Paddle.KeyStep < 0:
		return invalid("paddle.key_step", "must not be negative, got %v", c.Paddle.KeyStep)
	case c.Ball.Radius <= 0:
		return invalid("ball.radius", "must be positive, got %v", c.Ball.Radius)
	case 2*c.Ball.Radius >= c.Field.Width:
		return invalid("ball.radius", "ball does not fit the field width")
	case c.Ball.MinVX <= 0 || c.Ball.MaxVX < c.Ball.MinVX:
		return invalid("ball.min_vx", "need 0 < min_vx <= max_vx, got [%v, %v)", c.Ball.MinVX, c.Ball.MaxVX)
	case c.Ball.MinVY <= 0 || c.Ball.MaxVY < c.Ball.MinVY:
		return invalid("ball.min_vy", "need 0 < min_vy <= max_vy, got [%v, %v)", c.Ball.MinVY, c.Ball.MaxVY)
	case c.Ball.MaxVX >= c.Field.Width-2*c.Ball.Radius:
		return invalid("ball.max_vx", "must be below field.width - 2*radius, got %v", c.Ball.MaxVX)
	case c.Ball.MaxVY >= c.BoundaryY()-2*c.Ball.Radius:
		return invalid("ball.max_vy", "must be below the boundary line - 2*radius, got %v", c.Ball.MaxVY)
	case c.Bricks.Rows <= 0:
		return invalid("bricks.rows", "must be positive, got %d", c.Bricks.Rows)
	case c.Bricks.Columns <= 0:
		return invalid("bricks.columns", "must be positive, got %d", c.Bricks.Columns)
	case c.Bricks.Separation < 0:
		return invalid("bricks.separation", "must not be negative, got %v", c.Bricks.Separation)
	case c.Bricks.Height <= 0:
		return invalid("bricks.height", "must be positive, got %v", c.Bricks.Height)
	case c.BrickWidth() <= 0:
		return invalid("bricks.columns", "%d columns do not fit the field width", c.Bricks.Columns)
	case c.Gameplay.Turns < 1:
		return invalid("gameplay.turns", "must be at least 1, got %d", c.Gameplay.Turns)
	case c.Gameplay.ScoreUnit < 0:
		return invalid("gameplay.score_unit", "must not be negative, got %d", c.Gameplay.ScoreUnit)
	case c.Timing.MinDelayMS <= 0:
		return invalid("timing.min_delay_ms", "must be positive, got %v", c.Timing.MinDelayMS)
	case c.Timing.BaseDelayMS < c.Timing.MinDelayMS:
		return invalid("timing.base_delay_ms", "must be >= min_delay_ms, got %v", c.Timing.BaseDelayMS)
	case c.Timing.SpeedupPerPointMS < 0:
		return invalid("timing.speedup_per_point_ms", "must not be negative, got %v", c.Timing.SpeedupPerPointMS)
	}

	if c.PaddleY() <= c.BricksBottom() {
		return invalid("paddle.y_offset", "paddle overlaps the brick grid")
	}
	if c.PaddleY() >= c.BoundaryY() {
		return invalid("field.boundary_offset", "boundary line must lie below the paddle top")
	}
	if c.Field.Height/2-c.Ball.Radius <= c.BricksBottom() {
		return invalid("bricks.rows", "brick grid reaches the serve position")
	}

	switch c.Rules.WallCorrection {
	case WallMirror, WallClamp:
	default:
		return invalid("rules.wall_correction", "unknown mode %q", c.Rules.WallCorrection)
	}
	switch c.Rules.PaddleHit {
	case PaddleHitSpan, PaddleHitLeftEdge:
	default:
		return invalid("rules.paddle_hit", "unknown mode %q", c.Rules.PaddleHit)
	}
	switch c.Bricks.Sampling {
	case SamplePoint, SampleBox:
	default:
		return invalid("bricks.sampling", "unknown mode %q", c.Bricks.Sampling)
	}

	return nil
}

// checkFinite rejects NaN and infinite values, which slip through every
// ordered comparison below.
func (c BreakoutConfig) checkFinite() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"field.boundary_offset", c.Field.BoundaryOffset},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.y_offset", c.Paddle.YOffset},
		{"paddle.key_step", c.Paddle.KeyStep},
		{"ball.radius", c.Ball.Radius},
		{"ball.min_vx", c.Ball.MinVX},
		{"ball.max_vx", c.Ball.MaxVX},
		{"ball.min_vy", c.Ball.MinVY},
		{"ball.max_vy", c.Ball.MaxVY},
		{"bricks.separation", c.Bricks.Separation},
		{"bricks.height", c.Bricks.Height},
		{"bricks.top_offset", c.Bricks.TopOffset},
		{"timing.base_delay_ms", c.Timing.BaseDelayMS},
		{"timing.min_delay_ms", c.Timing.MinDelayMS},
		{"timing.speedup_per_point_ms", c.Timing.SpeedupPerPointMS},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid(f.name, "must be finite, got %v", f.v)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty input yields an
// empty preset, which leaves the config untouched.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
