package graph

import (
	"sort"

	"github.com/algotrace/algotrace/trace"
)

// BuildAdjacency derives the undirected adjacency mapping from node and
// edge lists. Every node gets an entry (possibly empty); every edge inserts
// both directions; neighbor lists come back ascending by id with duplicates
// collapsed, so repeated builds over the same input yield identical maps.
//
// Edges naming an id absent from nodes are skipped — a dangling reference
// must not invent a vertex, and must never panic.
func BuildAdjacency(nodes []Node, edges []Edge) Adjacency {
	adj := make(Adjacency, len(nodes))
	for _, n := range nodes {
		adj[n.ID] = nil
	}
	for _, e := range edges {
		if !adj.Has(e.From) || !adj.Has(e.To) {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	for id, nbrs := range adj {
		adj[id] = sortDedup(nbrs)
	}
	return adj
}

// sortDedup sorts ids ascending and removes adjacent duplicates in place.
func sortDedup(ids []trace.NodeID) []trace.NodeID {
	if len(ids) < 2 {
		return ids
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
