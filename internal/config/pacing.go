package config

import (
	"math"
	"time"
)

// Pacer turns the current score into the delay before the next tick.
// Higher scores shorten the delay linearly until it reaches the floor.
type Pacer struct {
	base     float64
	min      float64
	perPoint float64
}

// NewPacer creates a pacer from timing settings.
func NewPacer(cfg TimingConfig) *Pacer {
	return &Pacer{
		base:     cfg.BaseDelayMS,
		min:      cfg.MinDelayMS,
		perPoint: cfg.SpeedupPerPointMS,
	}
}

// DelayMS returns the delay in milliseconds for the given score.
func (p *Pacer) DelayMS(score int) float64 {
	return math.Max(p.min, p.base-float64(score)*p.perPoint)
}

// Delay returns the delay for the given score.
func (p *Pacer) Delay(score int) time.Duration {
	return time.Duration(p.DelayMS(score) * float64(time.Millisecond))
}
