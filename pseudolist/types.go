// Package pseudolist defines the array-backed pseudo linked list and error
// definitions for the cycle detection simulator.
package pseudolist

import (
	"errors"
	"fmt"
)

// Sentinel errors for pseudo-list construction.
var (
	// ErrIndexOutOfRange indicates a cycle target outside [0, len-1].
	ErrIndexOutOfRange = errors.New("pseudolist: cycle target index out of range")
)

// noCycle marks the absence of a tail redirect.
const noCycle = -1

// List is a linked list stand-in: values live in a fixed slice and "next
// pointers" are implied indices. An optional cycle target redirects the last
// element's next pointer back into the list, simulating a cycle with a
// single integer instead of pointer rewiring.
type List struct {
	values      []int
	cycleTarget int
}

// New returns a list over values with no cycle. The slice is copied so the
// caller's buffer stays independent.
func New(values []int) *List {
	cp := make([]int, len(values))
	copy(cp, values)
	return &List{values: cp, cycleTarget: noCycle}
}

// WithCycleTo redirects the tail's next pointer to index k, an O(1)
// "rewire". Returns ErrIndexOutOfRange unless 0 ≤ k < Len().
func (l *List) WithCycleTo(k int) error {
	if k < 0 || k >= len(l.values) {
		return fmt.Errorf("%w: k=%d, len=%d", ErrIndexOutOfRange, k, len(l.values))
	}
	l.cycleTarget = k
	return nil
}

// ClearCycle removes the tail redirect.
func (l *List) ClearCycle() { l.cycleTarget = noCycle }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.values) }

// Value returns the element at index i, 0 ≤ i < Len().
func (l *List) Value(i int) int { return l.values[i] }

// CycleTarget returns the tail redirect index and whether one is set.
func (l *List) CycleTarget() (int, bool) {
	if l.cycleTarget == noCycle {
		return 0, false
	}
	return l.cycleTarget, true
}

// next advances one hop from index i. ok is false when the pointer runs off
// the tail (the no-cycle signal); an out-of-range index is never produced.
func (l *List) next(i int) (int, bool) {
	if i == len(l.values)-1 {
		if l.cycleTarget == noCycle {
			return 0, false
		}
		return l.cycleTarget, true
	}
	return i + 1, true
}
