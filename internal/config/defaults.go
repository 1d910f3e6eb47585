package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback when the embedded
// YAML cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:          400,
			Height:         600,
			BoundaryOffset: 40,
		},
		Paddle: PaddleConfig{
			Width:   60,
			Height:  10,
			YOffset: 60,
			KeyStep: 20,
		},
		Ball: BallConfig{
			Radius: 5,
			MinVX:  1.0,
			MaxVX:  4.0,
			MinVY:  2.0,
			MaxVY:  4.0,
		},
		Bricks: BricksConfig{
			Rows:       5,
			Columns:    8,
			Separation: 10,
			Height:     10,
			TopOffset:  0,
			Sampling:   SampleBox,
		},
		Gameplay: GameplayConfig{
			Turns:     3,
			ScoreUnit: 10,
		},
		Timing: TimingConfig{
			BaseDelayMS:       20,
			MinDelayMS:        5,
			SpeedupPerPointMS: 0.02, // score/50
		},
		Rules: RulesConfig{
			WallCorrection: WallMirror,
			PaddleHit:      PaddleHitSpan,
		},
	}
}

// ClassicRules switches a config to the classic rules:
// left-edge paddle test and single-point brick sampling.
func ClassicRules(cfg BreakoutConfig) BreakoutConfig {
	cfg.Rules.PaddleHit = PaddleHitLeftEdge
	cfg.Bricks.Sampling = SamplePoint
	return cfg
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
