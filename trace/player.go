package trace

// Player is the consumer-side cursor over a Trace. An external clock calls
// Advance once per tick; Pause/Resume gate Advance without touching the
// cursor, StepForward moves regardless of pause state (manual stepping),
// and Reset rewinds to before the first step. The Player never mutates the
// trace it plays.
type Player struct {
	trace  *Trace
	cursor int // index of the current step; -1 before playback starts
	paused bool
}

// NewPlayer returns a Player positioned before the first step.
// Returns ErrNilTrace if t is nil.
func NewPlayer(t *Trace) (*Player, error) {
	if t == nil {
		return nil, ErrNilTrace
	}
	return &Player{trace: t, cursor: -1}, nil
}

// Current returns the step under the cursor, or false before the first
// Advance and after Reset.
func (p *Player) Current() (Step, bool) {
	if p.cursor < 0 || p.cursor >= p.trace.Len() {
		return Step{}, false
	}
	return p.trace.At(p.cursor), true
}

// Advance moves the cursor one step on an external tick. It is a no-op
// while paused or once the trace is exhausted; it reports whether the
// cursor moved.
func (p *Player) Advance() bool {
	if p.paused {
		return false
	}
	return p.StepForward()
}

// StepForward moves the cursor one step even while paused.
func (p *Player) StepForward() bool {
	if p.cursor+1 >= p.trace.Len() {
		return false
	}
	p.cursor++
	return true
}

// Pause stops Advance from moving the cursor until Resume.
func (p *Player) Pause() { p.paused = true }

// Resume re-enables Advance after Pause.
func (p *Player) Resume() { p.paused = false }

// Reset rewinds to before the first step and clears the pause flag.
func (p *Player) Reset() {
	p.cursor = -1
	p.paused = false
}

// Done reports whether the cursor sits on the sentinel step.
func (p *Player) Done() bool {
	return p.cursor == p.trace.Len()-1
}
