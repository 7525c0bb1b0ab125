package trace

// Recorder accumulates Steps for a generator and seals them into an
// immutable Trace. It enforces the two structural invariants every trace
// shares: the visited set grows in insertion order without duplicates, and
// the trace terminates with exactly one sentinel step.
//
// A Recorder is single-use: after Seal, further Record/Visit calls are
// rejected with ErrSealed.
type Recorder struct {
	steps   []Step
	visited []NodeID
	seen    map[NodeID]bool
	sealed  bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{seen: make(map[NodeID]bool)}
}

// Visit adds id to the visited set if unseen and reports whether it was
// added. Duplicate visits are ignored, keeping the set duplicate-free.
func (r *Recorder) Visit(id NodeID) bool {
	if r.sealed || r.seen[id] {
		return false
	}
	r.seen[id] = true
	r.visited = append(r.visited, id)
	return true
}

// Visited reports whether id is already in the visited set.
func (r *Recorder) Visited(id NodeID) bool { return r.seen[id] }

// Record appends a step snapshotting the current visited set and the given
// auxiliary structure. Both slices are copied, so callers may keep mutating
// their working queue or stack after the call.
func (r *Recorder) Record(active NodeID, aux []NodeID, msg string) error {
	if r.sealed {
		return ErrSealed
	}
	r.steps = append(r.steps, Step{
		Active:  active,
		Visited: snapshot(r.visited),
		Aux:     snapshot(aux),
		Msg:     msg,
	})
	return nil
}

// Last returns the most recently recorded step. The zero Step is returned
// when nothing has been recorded yet.
func (r *Recorder) Last() Step {
	if len(r.steps) == 0 {
		return Step{}
	}
	return r.steps[len(r.steps)-1]
}

// Seal appends the sentinel "complete" step and returns the finished Trace.
// The Recorder is unusable afterwards.
func (r *Recorder) Seal(msg string) *Trace {
	if r.sealed {
		return &Trace{steps: r.steps}
	}
	r.steps = append(r.steps, Step{
		Active:  None,
		Visited: snapshot(r.visited),
		Aux:     nil,
		Msg:     msg,
	})
	r.sealed = true
	return &Trace{steps: r.steps}
}

// snapshot copies ids so recorded steps stay stable while the caller's
// working slice keeps changing.
func snapshot(ids []NodeID) []NodeID {
	if len(ids) == 0 {
		return nil
	}
	cp := make([]NodeID, len(ids))
	copy(cp, ids)
	return cp
}
