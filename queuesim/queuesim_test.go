package queuesim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotrace/algotrace/queuesim"
	"github.com/algotrace/algotrace/trace"
)

// TestBinaryNumbers_Bounds verifies the [1, 20] input domain.
func TestBinaryNumbers_Bounds(t *testing.T) {
	for _, n := range []int{0, -3, 21, 100} {
		_, _, err := queuesim.BinaryNumbers(n)
		assert.ErrorIs(t, err, queuesim.ErrCountOutOfRange, "n=%d", n)
	}
	_, _, err := queuesim.BinaryNumbers(1)
	assert.NoError(t, err)
	_, _, err = queuesim.BinaryNumbers(20)
	assert.NoError(t, err)
}

// TestBinaryNumbers_FirstFive pins the exact output sequence for n=5.
func TestBinaryNumbers_FirstFive(t *testing.T) {
	tr, out, err := queuesim.BinaryNumbers(5)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "10", "11", "100", "101"}, out)
	require.Equal(t, 6, tr.Len(), "five rounds plus the sentinel")
	assert.Equal(t, `dequeued "1", enqueued "10" and "11"`, tr.At(0).Msg)
	assert.True(t, tr.Last().Sentinel())

	// After the first round the queue holds the two children of "1".
	assert.Equal(t, []trace.NodeID{1, 2}, tr.At(0).Aux)
	// Dequeue order is the id order: FIFO.
	assert.Equal(t, []trace.NodeID{0, 1, 2, 3, 4}, tr.Last().Visited)
}

// TestBinaryNumbers_ValuesAreBinary verifies every output parses back to
// its 1-based position.
func TestBinaryNumbers_ValuesAreBinary(t *testing.T) {
	_, out, err := queuesim.BinaryNumbers(12)
	require.NoError(t, err)
	require.Len(t, out, 12)
	for i, s := range out {
		val := 0
		for _, c := range s {
			val = val*2 + int(c-'0')
		}
		assert.Equal(t, i+1, val, "out[%d]=%q", i, s)
	}
}

// TestTwoSum_Found covers the canonical vectors.
func TestTwoSum_Found(t *testing.T) {
	tr, pair := queuesim.TwoSum([]int{2, 7, 11, 15}, 9)
	require.NotNil(t, pair)
	assert.Equal(t, queuesim.Pair{I: 0, J: 1}, *pair)
	assert.Contains(t, tr.At(1).Msg, "pair found")
	assert.Contains(t, tr.Last().Msg, "2 + 7 = 9")

	// Equal values pair across their two occurrences.
	_, pair = queuesim.TwoSum([]int{3, 3}, 6)
	require.NotNil(t, pair)
	assert.Equal(t, queuesim.Pair{I: 0, J: 1}, *pair)
}

// TestTwoSum_HaltsOnFirstHit verifies the scan stops at the earliest J.
func TestTwoSum_HaltsOnFirstHit(t *testing.T) {
	tr, pair := queuesim.TwoSum([]int{1, 8, 2, 7, 3}, 9)
	require.NotNil(t, pair)
	assert.Equal(t, queuesim.Pair{I: 0, J: 1}, *pair)
	assert.Equal(t, 3, tr.Len(), "two scan steps plus sentinel, indices 2+ never scanned")
}

// TestTwoSum_NoPair verifies the explicit negative terminal step.
func TestTwoSum_NoPair(t *testing.T) {
	tr, pair := queuesim.TwoSum([]int{1, 2, 3}, 100)
	assert.Nil(t, pair)
	require.Equal(t, 4, tr.Len())
	assert.True(t, tr.Last().Sentinel())
	assert.Equal(t, "no pair found", tr.Last().Msg)
}

// TestTwoSum_SelfComplementNeedsTwo verifies a single occurrence of half the
// target cannot pair with itself.
func TestTwoSum_SelfComplementNeedsTwo(t *testing.T) {
	_, pair := queuesim.TwoSum([]int{4, 1}, 8)
	assert.Nil(t, pair)
}

// TestTwoSum_EmptyInput verifies the degenerate scan still terminates
// explicitly.
func TestTwoSum_EmptyInput(t *testing.T) {
	tr, pair := queuesim.TwoSum(nil, 5)
	assert.Nil(t, pair)
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, "no pair found", tr.Last().Msg)
}

// TestTwoSum_RepeatedValueKeepsFirstIndex verifies the first-seen-index
// policy: a duplicate never overwrites its earlier occurrence.
func TestTwoSum_RepeatedValueKeepsFirstIndex(t *testing.T) {
	_, pair := queuesim.TwoSum([]int{5, 5, 5, 4}, 9)
	require.NotNil(t, pair)
	assert.Equal(t, queuesim.Pair{I: 0, J: 3}, *pair)
}
