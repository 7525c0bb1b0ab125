package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotrace/algotrace/graph"
	"github.com/algotrace/algotrace/trace"
)

func nodes(ids ...trace.NodeID) []graph.Node {
	ns := make([]graph.Node, len(ids))
	for i, id := range ids {
		ns[i] = graph.Node{ID: id}
	}
	return ns
}

// TestBuildAdjacency_SortedBothDirections verifies each edge appears in both
// neighbor lists and lists come back ascending.
func TestBuildAdjacency_SortedBothDirections(t *testing.T) {
	ns := nodes(0, 1, 2, 3)
	es := []graph.Edge{{From: 3, To: 0}, {From: 0, To: 1}, {From: 2, To: 0}}

	adj := graph.BuildAdjacency(ns, es)

	assert.Equal(t, []trace.NodeID{1, 2, 3}, adj.Neighbors(0))
	assert.Equal(t, []trace.NodeID{0}, adj.Neighbors(1))
	assert.Equal(t, []trace.NodeID{0}, adj.Neighbors(2))
	assert.Equal(t, []trace.NodeID{0}, adj.Neighbors(3))
}

// TestBuildAdjacency_Idempotent verifies two builds over the same input are
// identical (the determinism contract traversals rely on).
func TestBuildAdjacency_Idempotent(t *testing.T) {
	ns := nodes(0, 1, 2)
	es := []graph.Edge{{From: 1, To: 2}, {From: 0, To: 2}, {From: 1, To: 2}}

	first := graph.BuildAdjacency(ns, es)
	second := graph.BuildAdjacency(ns, es)
	assert.Equal(t, first, second)
	assert.Equal(t, []trace.NodeID{2}, first.Neighbors(1), "duplicate edge collapses")
}

// TestBuildAdjacency_DanglingEdge verifies edges naming unknown ids are
// skipped without panicking and without inventing vertices.
func TestBuildAdjacency_DanglingEdge(t *testing.T) {
	ns := nodes(0, 1)
	es := []graph.Edge{{From: 0, To: 1}, {From: 1, To: 9}}

	adj := graph.BuildAdjacency(ns, es)
	assert.Equal(t, []trace.NodeID{1}, adj.Neighbors(0))
	assert.Equal(t, []trace.NodeID{0}, adj.Neighbors(1))
	assert.False(t, adj.Has(9), "unknown endpoint must not be materialized")
}

// TestBuildAdjacency_IsolatedNode verifies nodes without edges keep an
// (empty) entry so traversals can detect them.
func TestBuildAdjacency_IsolatedNode(t *testing.T) {
	adj := graph.BuildAdjacency(nodes(0, 1), nil)
	assert.True(t, adj.Has(0))
	assert.Empty(t, adj.Neighbors(0))
}

// TestRandom_Validation verifies parameter and RNG checks.
func TestRandom_Validation(t *testing.T) {
	_, _, err := graph.Random(0, 0, graph.WithSeed(1))
	assert.ErrorIs(t, err, graph.ErrTooFewNodes)

	_, _, err = graph.Random(3, -1, graph.WithSeed(1))
	assert.ErrorIs(t, err, graph.ErrBadEdgeCount)

	_, _, err = graph.Random(3, 0)
	assert.ErrorIs(t, err, graph.ErrNeedRandSource, "missing RNG must be rejected")
}

// TestRandom_SeededAndConnected verifies reproducibility under a fixed seed
// and connectivity of the generated graph.
func TestRandom_SeededAndConnected(t *testing.T) {
	ns1, es1, err := graph.Random(8, 3, graph.WithSeed(42))
	require.NoError(t, err)
	ns2, es2, err := graph.Random(8, 3, graph.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, ns1, ns2, "same seed, same nodes")
	assert.Equal(t, es1, es2, "same seed, same edges")
	require.GreaterOrEqual(t, len(es1), 7, "spanning tree needs n-1 edges")

	// Connectivity: walk the adjacency from node 0 and count reached nodes.
	adj := graph.BuildAdjacency(ns1, es1)
	seen := map[trace.NodeID]bool{0: true}
	stack := []trace.NodeID{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nbr := range adj.Neighbors(cur) {
			if !seen[nbr] {
				seen[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}
	assert.Len(t, seen, 8, "random graph must be connected")
}

// TestLabels_Fallback verifies empty labels fall back to the decimal id.
func TestLabels_Fallback(t *testing.T) {
	m := graph.Labels([]graph.Node{{ID: 0, Label: "root"}, {ID: 7}})
	assert.Equal(t, "root", m[0])
	assert.Equal(t, "7", m[7])
}
