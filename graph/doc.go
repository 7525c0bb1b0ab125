// Package graph models visualization input graphs: integer-id nodes, one
// undirected edge per unordered pair, and adjacency derived on demand.
//
// Determinism
//
//	BuildAdjacency sorts every neighbor list ascending by id and collapses
//	duplicates. Traversal generators consume neighbors in that order, so the
//	same node/edge lists always produce the same step trace. Building twice
//	from the same input yields identical maps.
//
// Random graphs
//
//	Random produces small connected demo graphs for tests and the CLI. The
//	RNG is explicit (WithSeed / WithRand); there is no hidden global source.
//
// Complexity: BuildAdjacency is O(V + E log E); Random is O(V + E).
package graph
