package queuesim

import (
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// Pair holds the indices of a two-sum solution, I < J.
type Pair struct {
	I, J int
}

// TwoSum scans nums left to right looking for two values summing to target,
// remembering the first index each value was seen at. The scan halts on the
// first hit; equal values pair with their own earlier occurrence. A nil Pair
// means no solution, reported by an explicit "no pair found" terminal step
// rather than silence.
//
// Step node ids are input indices: Active is the scan position, Visited the
// scanned prefix, and Aux the remembered indices in insertion order.
func TwoSum(nums []int, target int) (*trace.Trace, *Pair) {
	rec := trace.NewRecorder()
	seen := make(map[int]int, len(nums)) // value → first index
	remembered := make([]trace.NodeID, 0, len(nums))

	for i, v := range nums {
		rec.Visit(trace.NodeID(i))
		complement := target - v
		if j, ok := seen[complement]; ok {
			_ = rec.Record(trace.NodeID(i), remembered,
				fmt.Sprintf("nums[%d]=%d: complement %d seen at index %d - pair found",
					i, v, complement, j))
			return rec.Seal(fmt.Sprintf("found %d + %d = %d at indices [%d, %d]",
				nums[j], v, target, j, i)), &Pair{I: j, J: i}
		}

		// First occurrence wins; a repeated value keeps its earlier index.
		if _, dup := seen[v]; !dup {
			seen[v] = i
			remembered = append(remembered, trace.NodeID(i))
		}
		_ = rec.Record(trace.NodeID(i), remembered,
			fmt.Sprintf("nums[%d]=%d: complement %d not seen, remembered", i, v, complement))
	}

	return rec.Seal("no pair found"), nil
}
