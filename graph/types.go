// Package graph holds the node/edge input model and the sorted adjacency
// builder used by the traversal step generators.
package graph

import (
	"errors"
	"strconv"

	"github.com/algotrace/algotrace/trace"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewNodes indicates a random-graph size below the minimum.
	ErrTooFewNodes = errors.New("graph: node count too small")

	// ErrBadEdgeCount indicates a negative extra-edge count.
	ErrBadEdgeCount = errors.New("graph: extra edge count negative")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("graph: rng is required")
)

// Node is a graph vertex as supplied by the input layer. X and Y are
// layout hints for renderers and play no algorithmic role.
type Node struct {
	ID    trace.NodeID
	Label string
	Value int
	X, Y  float64
}

// Edge is one undirected edge between two node ids. Graphs store one edge
// per unordered pair; adjacency in both directions is derived, not stored.
type Edge struct {
	From, To trace.NodeID
}

// Adjacency maps a node id to its neighbor ids sorted ascending. The sort
// order is a contract: traversal generators enqueue/push neighbors in this
// order, which is what makes their traces reproducible.
type Adjacency map[trace.NodeID][]trace.NodeID

// Neighbors returns the ascending-sorted neighbor ids of id, or nil when
// id has no entry.
func (a Adjacency) Neighbors(id trace.NodeID) []trace.NodeID { return a[id] }

// Has reports whether id has an adjacency entry.
func (a Adjacency) Has(id trace.NodeID) bool {
	_, ok := a[id]
	return ok
}

// Labels builds the id→label lookup traversal generators use for step
// messages. Nodes with an empty Label fall back to their decimal id.
func Labels(nodes []Node) map[trace.NodeID]string {
	m := make(map[trace.NodeID]string, len(nodes))
	for _, n := range nodes {
		if n.Label != "" {
			m[n.ID] = n.Label
		} else {
			m[n.ID] = strconv.Itoa(int(n.ID))
		}
	}
	return m
}
