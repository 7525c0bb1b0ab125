package pseudolist

import (
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// Result is the outcome of one cycle detection run.
type Result struct {
	// Found reports whether the tortoise and hare met.
	Found bool

	// MeetingIndex is the index where they met; meaningful only when Found.
	MeetingIndex int

	// Inconclusive is set when the safety bound fired. A finite list always
	// either escapes or cycles within 3·Len() iterations, so this flags a
	// pointer-advance bug rather than a real outcome; tests sweep for it.
	Inconclusive bool

	// Iterations counts completed slow/fast advance rounds.
	Iterations int
}

// DetectCycle runs Floyd's tortoise-and-hare over l and returns the result
// with the full step trace. Both pointers start at index 0; each iteration
// advances the tortoise once and the hare twice, checking for the end of the
// list after each of the two hare sub-steps — running off the tail is the
// definitive no-cycle signal, emitted immediately even mid-double-step.
//
// Steps use list indices as node ids: Active is the tortoise, Aux holds the
// hare, and Visited accumulates the tortoise's path. Iterations are capped
// at 3·Len() as a termination guarantee; hitting the cap yields a terminal
// "inconclusive" step rather than an error.
func DetectCycle(l *List) (*Result, *trace.Trace) {
	rec := trace.NewRecorder()
	res := &Result{}

	n := l.Len()
	if n == 0 {
		_ = rec.Record(trace.None, nil, "empty list - no cycle possible")
		return res, rec.Seal("simulation complete")
	}

	slow, fast := 0, 0
	rec.Visit(0)
	_ = rec.Record(0, []trace.NodeID{0}, "tortoise and hare start at index 0")

	bound := 3 * n
	for res.Iterations < bound {
		res.Iterations++

		var ok bool
		if slow, ok = l.next(slow); !ok {
			// Unreachable: the hare runs off the tail first. Kept so a bad
			// redirect can never push the tortoise out of range.
			_ = rec.Record(trace.None, nil, "tortoise reached end of list - no cycle")
			return res, rec.Seal("simulation complete")
		}
		for hop := 0; hop < 2; hop++ {
			if fast, ok = l.next(fast); !ok {
				_ = rec.Record(trace.NodeID(slow), nil, "hare reached end of list - no cycle")
				return res, rec.Seal("simulation complete")
			}
		}

		rec.Visit(trace.NodeID(slow))
		if slow == fast {
			res.Found = true
			res.MeetingIndex = slow
			_ = rec.Record(trace.NodeID(slow), []trace.NodeID{trace.NodeID(fast)},
				fmt.Sprintf("tortoise and hare met at index %d - cycle detected", slow))
			return res, rec.Seal("simulation complete")
		}
		_ = rec.Record(trace.NodeID(slow), []trace.NodeID{trace.NodeID(fast)},
			fmt.Sprintf("tortoise at index %d, hare at index %d", slow, fast))
	}

	// Designed fallback, not a user-facing outcome: see Result.Inconclusive.
	res.Inconclusive = true
	_ = rec.Record(trace.None, nil,
		fmt.Sprintf("safety bound of %d iterations reached - inconclusive, assuming no cycle", bound))
	return res, rec.Seal("simulation complete")
}
