package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotrace/algotrace/avl"
	"github.com/algotrace/algotrace/trace"
)

// checkInvariant walks every node verifying the AVL balance bound and that
// stored heights match recomputed ones.
func checkInvariant(t *testing.T, n *avl.Node) {
	t.Helper()
	if n == nil {
		return
	}
	bal := avl.Balance(n)
	require.LessOrEqual(t, bal, 1, "node %d over-balanced left", n.Value)
	require.GreaterOrEqual(t, bal, -1, "node %d over-balanced right", n.Value)

	wantH := 1 + maxInt(avl.Height(n.Left), avl.Height(n.Right))
	require.Equal(t, wantH, n.Height, "stale height at node %d", n.Value)

	checkInvariant(t, n.Left)
	checkInvariant(t, n.Right)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// rotationLog collects OnRotate events for assertions.
type rotationLog struct {
	kinds  []avl.RotationKind
	pivots []trace.NodeID
}

func (l *rotationLog) hook(kind avl.RotationKind, pivot trace.NodeID) {
	l.kinds = append(l.kinds, kind)
	l.pivots = append(l.pivots, pivot)
}

// TestTree_AscendingTripleSingleRotation is the canonical case: inserting
// 10, 20, 30 triggers exactly one left rotation at the node holding 10 and
// settles as {20: left=10, right=30} with all balance factors zero.
func TestTree_AscendingTripleSingleRotation(t *testing.T) {
	var log rotationLog
	tr := avl.New(avl.WithOnRotate(log.hook))

	assert.Equal(t, avl.OutcomeInserted, tr.Insert(10))
	assert.Equal(t, avl.OutcomeInserted, tr.Insert(20))
	assert.Equal(t, avl.OutcomeInserted, tr.Insert(30))

	require.Len(t, log.kinds, 1, "exactly one rotation")
	assert.Equal(t, avl.RotationRR, log.kinds[0], "ascending run is the right-right case")

	ten, ok := tr.Search(10)
	require.True(t, ok)
	assert.Equal(t, ten.ID, log.pivots[0], "pivot is the node holding 10")

	root := tr.Root()
	require.NotNil(t, root)
	assert.Equal(t, 20, root.Value)
	assert.Equal(t, 10, root.Left.Value)
	assert.Equal(t, 30, root.Right.Value)
	assert.Zero(t, avl.Balance(root))
	assert.Zero(t, avl.Balance(root.Left))
	assert.Zero(t, avl.Balance(root.Right))
	checkInvariant(t, root)
}

// TestTree_InsertRotationCases drives each of the four cases and checks the
// reported kind and the settled root.
func TestTree_InsertRotationCases(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		kind   avl.RotationKind
	}{
		{"LL", []int{30, 20, 10}, avl.RotationLL},
		{"RR", []int{10, 20, 30}, avl.RotationRR},
		{"LR", []int{30, 10, 20}, avl.RotationLR},
		{"RL", []int{10, 30, 20}, avl.RotationRL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var log rotationLog
			tr := avl.New(avl.WithOnRotate(log.hook))
			for _, v := range tc.values {
				tr.Insert(v)
			}
			require.Len(t, log.kinds, 1)
			assert.Equal(t, tc.kind, log.kinds[0])
			assert.Equal(t, 20, tr.Root().Value, "all four cases settle on 20 as root")
			checkInvariant(t, tr.Root())
		})
	}
}

// TestTree_DuplicateInsertNoOp verifies duplicate insertion reports
// OutcomeExists and changes nothing.
func TestTree_DuplicateInsertNoOp(t *testing.T) {
	tr := avl.New()
	tr.Insert(10)
	tr.Insert(20)
	before := tr.InorderValues()

	assert.Equal(t, avl.OutcomeExists, tr.Insert(10))
	assert.Equal(t, before, tr.InorderValues())
	assert.Equal(t, 2, tr.Len())
}

// TestTree_DeleteOutcomes covers absent-value no-op, leaf, single-child, and
// two-children (successor) deletes.
func TestTree_DeleteOutcomes(t *testing.T) {
	tr := avl.New()
	for _, v := range []int{40, 20, 60, 10, 30, 50, 70} {
		tr.Insert(v)
	}

	assert.Equal(t, avl.OutcomeNotFound, tr.Delete(99))
	assert.Equal(t, 7, tr.Len(), "failed delete must not change size")

	// Leaf.
	assert.Equal(t, avl.OutcomeDeleted, tr.Delete(10))
	// Node with one child (20 now has only 30).
	assert.Equal(t, avl.OutcomeDeleted, tr.Delete(20))
	// Root with two children: replaced by its inorder successor 50.
	assert.Equal(t, avl.OutcomeDeleted, tr.Delete(40))

	assert.Equal(t, []int{30, 50, 60, 70}, tr.InorderValues())
	assert.Equal(t, 50, tr.Root().Value, "successor value moves into the root")
	checkInvariant(t, tr.Root())
}

// TestTree_DeleteRebalances forces the delete-side rotation: removing from
// the shallow side of a lopsided (but legal) tree must rotate.
func TestTree_DeleteRebalances(t *testing.T) {
	var log rotationLog
	tr := avl.New(avl.WithOnRotate(log.hook))
	for _, v := range []int{20, 10, 30, 40} {
		tr.Insert(v)
	}
	require.Empty(t, log.kinds, "setup must not rotate")

	assert.Equal(t, avl.OutcomeDeleted, tr.Delete(10))
	require.Len(t, log.kinds, 1)
	assert.Equal(t, avl.RotationRR, log.kinds[0])
	assert.Equal(t, 30, tr.Root().Value)
	checkInvariant(t, tr.Root())
}

// TestTree_SearchAndVisitHook verifies search outcomes and that OnVisit
// observes the descent.
func TestTree_SearchAndVisitHook(t *testing.T) {
	visits := 0
	tr := avl.New(avl.WithOnVisit(func(trace.NodeID) { visits++ }))
	for _, v := range []int{20, 10, 30} {
		tr.Insert(v)
	}

	n, ok := tr.Search(30)
	require.True(t, ok)
	assert.Equal(t, 30, n.Value)

	_, ok = tr.Search(25)
	assert.False(t, ok, "miss is a valid outcome")
	assert.Positive(t, visits)
}

// TestTree_IDStableAcrossRotation verifies rotations move links, not ids:
// ids reflect insertion order even after the tree restructures.
func TestTree_IDStableAcrossRotation(t *testing.T) {
	tr := avl.New()
	tr.Insert(10)
	tr.Insert(20)
	tr.Insert(30) // rotation: 20 becomes root

	for i, v := range []int{10, 20, 30} {
		n, ok := tr.Search(v)
		require.True(t, ok)
		assert.EqualValues(t, i, n.ID, "id of %d must match insertion order", v)
	}
}

// TestTree_RandomizedInvariantSweep hammers the tree with seeded random
// inserts and deletes, checking the AVL invariant and sorted inorder after
// every operation.
func TestTree_RandomizedInvariantSweep(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	tr := avl.New()
	live := map[int]bool{}

	for i := 0; i < 300; i++ {
		v := rng.Intn(120)
		if rng.Intn(3) == 0 {
			out := tr.Delete(v)
			if live[v] {
				assert.Equal(t, avl.OutcomeDeleted, out)
				delete(live, v)
			} else {
				assert.Equal(t, avl.OutcomeNotFound, out)
			}
		} else {
			out := tr.Insert(v)
			if live[v] {
				assert.Equal(t, avl.OutcomeExists, out)
			} else {
				assert.Equal(t, avl.OutcomeInserted, out)
				live[v] = true
			}
		}

		checkInvariant(t, tr.Root())
		vals := tr.InorderValues()
		require.Len(t, vals, len(live))
		for j := 1; j < len(vals); j++ {
			require.Less(t, vals[j-1], vals[j], "inorder must stay strictly ascending")
		}
	}
}
