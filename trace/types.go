// Package trace defines the Step and Trace types shared by every generator,
// the Recorder used to build traces, and the Player consumer contract.
package trace

import "errors"

// Sentinel errors for trace construction and playback.
var (
	// ErrNilTrace is returned when a nil *Trace is passed to NewPlayer.
	ErrNilTrace = errors.New("trace: trace is nil")

	// ErrSealed is returned when recording is attempted on a sealed Recorder.
	ErrSealed = errors.New("trace: recorder already sealed")
)

// NodeID identifies a node across all algotrace structures. IDs are stable
// for the lifetime of a structure so UI layers can diff renders cheaply.
type NodeID int

// None is the null NodeID, used as the Active field of sentinel steps.
const None NodeID = -1

// Step is one snapshot of algorithm state during a simulation.
//
//   - Active: the node the algorithm is currently acting on (None for the
//     terminal sentinel step).
//   - Visited: node IDs in first-visit order; duplicate-free.
//   - Aux: the auxiliary structure — queue front→rear or stack bottom→top.
//   - Msg: human-readable description of the transition.
//
// Slices in a Step belong to the trace; callers must not mutate them.
type Step struct {
	Active  NodeID
	Visited []NodeID
	Aux     []NodeID
	Msg     string
}

// Sentinel reports whether s is a terminal "complete" step:
// no active node and an empty auxiliary structure.
func (s Step) Sentinel() bool {
	return s.Active == None && len(s.Aux) == 0
}

// Trace is a finite, ordered, immutable sequence of Steps. Every trace ends
// with a sentinel step. Traces are never mutated during playback; consumers
// render by indexing into them.
type Trace struct {
	steps []Step
}

// Len returns the number of steps, sentinel included.
func (t *Trace) Len() int { return len(t.steps) }

// At returns the step at index i, 0 ≤ i < Len.
func (t *Trace) At(i int) Step { return t.steps[i] }

// Last returns the sentinel step terminating the trace.
func (t *Trace) Last() Step { return t.steps[len(t.steps)-1] }

// Messages returns the step messages in order, a convenience for tests
// and text renderers.
func (t *Trace) Messages() []string {
	msgs := make([]string, len(t.steps))
	for i, s := range t.steps {
		msgs[i] = s.Msg
	}
	return msgs
}
