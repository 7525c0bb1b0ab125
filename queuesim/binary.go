// Package queuesim generates step traces of queue- and map-driven scans:
// binary-number generation through a FIFO and the two-sum complement scan.
package queuesim

import (
	"errors"
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// Sentinel errors for queue simulations.
var (
	// ErrCountOutOfRange indicates a binary-number count outside [1, 20].
	ErrCountOutOfRange = errors.New("queuesim: count out of range [1, 20]")
)

// maxBinaryCount bounds the generation: the queue doubles per level and 2^20
// strings is already far beyond what a visualization can show.
const maxBinaryCount = 20

// BinaryNumbers simulates the classic queue trick producing the binary
// representations of 1..n: seed a FIFO with "1", then n times dequeue the
// front f, output it, and enqueue f+"0" and f+"1". One step is recorded per
// dequeue/enqueue round.
//
// Step node ids number the generated strings in enqueue order ("1" is 0),
// Visited is the dequeued prefix, and Aux mirrors the queue contents.
// Returns ErrCountOutOfRange unless 1 ≤ n ≤ 20.
func BinaryNumbers(n int) (*trace.Trace, []string, error) {
	if n < 1 || n > maxBinaryCount {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrCountOutOfRange, n)
	}

	rec := trace.NewRecorder()
	out := make([]string, 0, n)

	// The queue holds string ids; id k names the k-th enqueued string.
	queue := []trace.NodeID{0}
	strs := []string{"1"}

	for i := 0; i < n; i++ {
		front := queue[0]
		queue = queue[1:]
		f := strs[front]
		out = append(out, f)
		rec.Visit(front)

		for _, suffix := range []string{"0", "1"} {
			strs = append(strs, f+suffix)
			queue = append(queue, trace.NodeID(len(strs)-1))
		}
		_ = rec.Record(front, queue,
			fmt.Sprintf("dequeued %q, enqueued %q and %q", f, f+"0", f+"1"))
	}

	return rec.Seal(fmt.Sprintf("generated %d binary numbers", n)), out, nil
}
