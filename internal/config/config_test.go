package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseBreakout(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	// (400 - 9*10) / 8 = 38.75, floored
	if w := cfg.BrickWidth(); w != 38 {
		t.Errorf("BrickWidth() = %v, expected 38", w)
	}
	if y := cfg.BrickRowY(0); y != 10 {
		t.Errorf("BrickRowY(0) = %v, expected 10", y)
	}
	if y := cfg.BrickRowY(2); y != 50 {
		t.Errorf("BrickRowY(2) = %v, expected 50", y)
	}
	if x := cfg.BrickColumnX(1); x != 58 {
		t.Errorf("BrickColumnX(1) = %v, expected 58", x)
	}
	if b := cfg.BricksBottom(); b != 100 {
		t.Errorf("BricksBottom() = %v, expected 100", b)
	}
	if y := cfg.PaddleY(); y != 540 {
		t.Errorf("PaddleY() = %v, expected 540", y)
	}
	if y := cfg.BoundaryY(); y != 560 {
		t.Errorf("BoundaryY() = %v, expected 560", y)
	}
	if n := cfg.BrickCount(); n != 40 {
		t.Errorf("BrickCount() = %d, expected 40", n)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{"zero width", func(c *BreakoutConfig) { c.Field.Width = 0 }, "field.width"},
		{"negative height", func(c *BreakoutConfig) { c.Field.Height = -1 }, "field.height"},
		{"zero paddle width", func(c *BreakoutConfig) { c.Paddle.Width = 0 }, "paddle.width"},
		{"paddle wider than field", func(c *BreakoutConfig) { c.Paddle.Width = 500 }, "paddle.width"},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "ball.radius"},
		{"zero rows", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }, "bricks.rows"},
		{"zero columns", func(c *BreakoutConfig) { c.Bricks.Columns = 0 }, "bricks.columns"},
		{"too many columns", func(c *BreakoutConfig) { c.Bricks.Columns = 40 }, "bricks.columns"},
		{"zero turns", func(c *BreakoutConfig) { c.Gameplay.Turns = 0 }, "gameplay.turns"},
		{"zero min delay", func(c *BreakoutConfig) { c.Timing.MinDelayMS = 0 }, "timing.min_delay_ms"},
		{"base below min", func(c *BreakoutConfig) { c.Timing.BaseDelayMS = 1 }, "timing.base_delay_ms"},
		{"inverted vx range", func(c *BreakoutConfig) { c.Ball.MaxVX = 0.5 }, "ball.min_vx"},
		{"grid reaches serve", func(c *BreakoutConfig) { c.Bricks.Rows = 15 }, "bricks.rows"},
		{"boundary above paddle", func(c *BreakoutConfig) { c.Field.BoundaryOffset = 70 }, "field.boundary_offset"},
		{"unknown wall rule", func(c *BreakoutConfig) { c.Rules.WallCorrection = "bounce" }, "rules.wall_correction"},
		{"unknown paddle rule", func(c *BreakoutConfig) { c.Rules.PaddleHit = "center" }, "rules.paddle_hit"},
		{"unknown sampling", func(c *BreakoutConfig) { c.Bricks.Sampling = "ray" }, "bricks.sampling"},
		{"nan width", func(c *BreakoutConfig) { c.Field.Width = math.NaN() }, "field.width"},
		{"inf height", func(c *BreakoutConfig) { c.Field.Height = math.Inf(1) }, "field.height"},
		{"nan min delay", func(c *BreakoutConfig) { c.Timing.MinDelayMS = math.NaN() }, "timing.min_delay_ms"},
		{"inf max vy", func(c *BreakoutConfig) { c.Ball.MaxVY = math.Inf(1) }, "ball.max_vy"},
		{"nan key step", func(c *BreakoutConfig) { c.Paddle.KeyStep = math.NaN() }, "paddle.key_step"},
		{"vx crosses field", func(c *BreakoutConfig) { c.Ball.MaxVX = 390 }, "ball.max_vx"},
		{"vy crosses field", func(c *BreakoutConfig) { c.Ball.MaxVY = 550 }, "ball.max_vy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, expected *ConfigError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("ConfigError.Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestValidateRejectsNonFiniteYAML(t *testing.T) {
	for _, doc := range []string{
		"field:\n  width: .nan\n",
		"timing:\n  min_delay_ms: .nan\n",
		"ball:\n  radius: .inf\n",
	} {
		cfg, err := ParseBreakout([]byte(doc))
		if err != nil {
			t.Fatalf("ParseBreakout(%q) failed: %v", doc, err)
		}
		var cfgErr *ConfigError
		if err := cfg.Validate(); !errors.As(err, &cfgErr) {
			t.Errorf("Validate() for %q = %v, expected *ConfigError", doc, err)
		}
	}
}

func TestParsePartialYAML(t *testing.T) {
	cfg, err := ParseBreakout([]byte("gameplay:\n  turns: 7\n"))
	if err != nil {
		t.Fatalf("ParseBreakout() failed: %v", err)
	}
	if cfg.Gameplay.Turns != 7 {
		t.Errorf("Turns = %d, expected 7", cfg.Gameplay.Turns)
	}
	if cfg.Field.Width != 400 {
		t.Errorf("unspecified keys should keep defaults, width = %v", cfg.Field.Width)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("bricks:\n  rows: 3\n  sampling: point\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Bricks.Rows != 3 || cfg.Bricks.Sampling != SamplePoint {
		t.Errorf("custom values not applied: %+v", cfg.Bricks)
	}
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadBreakout() should fail for a missing custom path")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := MarshalBreakout(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("MarshalBreakout() failed: %v", err)
	}
	cfg, err := ParseBreakout(data)
	if err != nil {
		t.Fatalf("ParseBreakout() failed: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Error("marshalled config should decode to the same value")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Turns != 5 || easy.Paddle.Width != 80 {
		t.Errorf("easy preset not applied: turns=%d width=%v", easy.Gameplay.Turns, easy.Paddle.Width)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Gameplay.Turns != 2 || hard.Ball.MinVY != 3.0 {
		t.Errorf("hard preset not applied: %+v", hard)
	}

	fixed := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&fixed, DifficultyFixed)
	if fixed.Timing.SpeedupPerPointMS != 0 {
		t.Errorf("fixed preset should disable the speed ramp")
	}

	for _, cfg := range []BreakoutConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset config should stay valid: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestClassicRules(t *testing.T) {
	cfg := ClassicRules(DefaultBreakoutConfig())
	if cfg.Rules.PaddleHit != PaddleHitLeftEdge || cfg.Bricks.Sampling != SamplePoint {
		t.Errorf("ClassicRules() = %+v / %q", cfg.Rules, cfg.Bricks.Sampling)
	}
}

func TestPacerDelay(t *testing.T) {
	p := NewPacer(DefaultBreakoutConfig().Timing)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 20},
		{100, 18},
		{500, 10},
		{750, 5},
		{10000, 5}, // floored, never zero or negative
	}

	for _, tc := range tests {
		if got := p.DelayMS(tc.score); got != tc.expected {
			t.Errorf("DelayMS(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if d := p.Delay(0); d != 20*time.Millisecond {
		t.Errorf("Delay(0) = %v, expected 20ms", d)
	}
	if d := p.Delay(1 << 20); d <= 0 {
		t.Errorf("Delay at huge score must stay positive, got %v", d)
	}
}
