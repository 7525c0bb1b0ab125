// Package traverse generates replayable step traces of queue-based BFS and
// stack-based DFS over a graph.Adjacency.
//
// What
//
//   - BFS(adj, start): FIFO frontier, visited-on-enqueue. One step per
//     dequeue, one step per fresh enqueue.
//   - DFS(adj, start): LIFO stack, visited-on-pop. One step per visiting
//     pop, one per push, and a distinct skip step when an already-visited
//     duplicate is popped.
//   - Both end with a sentinel "traversal complete" step and accept
//     WithLabels (message text) and WithOnStep (per-step observer).
//
// Why
//
//	The two disciplines are simulated rather than merely executed: the point
//	is the trace, not the visit order. A player scrubbing the trace can show
//	exactly when a node entered the frontier, when it was popped, and when a
//	duplicate pop was skipped.
//
// Determinism
//
//	Adjacency lists are ascending-sorted by contract (see package graph).
//	BFS enqueues in ascending order; DFS pushes in descending order so that
//	ascending ids are popped first. Identical inputs yield identical traces.
//
// Edge cases
//
//	A start id with no adjacency entry is an isolated node: the trace is
//	exactly two steps (the start node's own dequeue/pop, then the sentinel).
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) steps generated.
//   - Memory: O(V + E) for the trace itself.
package traverse
