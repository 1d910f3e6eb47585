package breakout

// RandomSource supplies the randomness used when serving the ball.
type RandomSource interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG, so a seed fully determines a session.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Only the top 53 bits are used so the result never rounds up to 1.
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a random float64 in [lo, hi).
func (r *SimpleRNG) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + r.Float64()*(hi-lo)
	if v >= hi {
		return lo
	}
	return v
}

// Bool returns true with probability p.
func (r *SimpleRNG) Bool(p float64) bool {
	return r.Float64() < p
}
