package breakout

// Autopilot is an InputSource that tracks the ball. It drives the headless
// simulator.
type Autopilot struct {
	session *Session
	offset  float64 // Aim this far from the paddle centre
}

// NewAutopilot creates an autopilot. Attach must be called before the first
// tick since the session needs its input at construction time.
func NewAutopilot(offset float64) *Autopilot {
	return &Autopilot{offset: offset}
}

// Attach binds the autopilot to the session it steers.
func (a *Autopilot) Attach(s *Session) {
	a.session = s
}

// CurrentPaddleTargetX implements InputSource.
func (a *Autopilot) CurrentPaddleTargetX() float64 {
	if a.session == nil {
		return 0
	}
	f := a.session.Field()
	return f.Ball.Center.X() + a.offset
}
