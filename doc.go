// Package algotrace generates step-by-step, replayable traces of classic
// data-structure algorithms — the engine behind animated visualizations of
// arrays, stacks, queues, linked lists, trees, AVL trees and graphs.
//
// 🚀 What is algotrace?
//
//	A pure-Go library of deterministic step generators:
//		• Graph traversal: BFS (queue) and DFS (stack) with full step traces
//		• Tree traversal: inorder / preorder / postorder step traces
//		• Tree reconstruction: rebuild a binary tree from pre+in / post+in sequences
//		• AVL engine: insert/delete with height tracking and all four rotations
//		• Cycle detection: Floyd's tortoise & hare over an index-based pseudo-list
//		• Queue simulations: binary-number generation and two-sum scanning
//
// ✨ Why algotrace?
//
//   - Deterministic – identical inputs always yield identical traces;
//     randomized demo generators are explicitly seedable.
//   - Replayable – every generator returns a finite, immutable Step Trace
//     that a Player can scrub, pause and resume without re-running anything.
//   - Hookable – OnVisit, OnRotate, OnStep callbacks for custom logic.
//   - Pure Go core – no cgo, small surface, explicit errors.
//
// Packages:
//
//	trace/      — Step, Trace, Recorder and the Player consumer contract
//	graph/      — node/edge lists, sorted adjacency, seedable random graphs
//	traverse/   — BFS and DFS step generators
//	binarytree/ — tree walks, reconstruction from traversal sequences
//	avl/        — self-balancing BST with rotation hooks
//	pseudolist/ — Floyd cycle detection over an array-backed list
//	queuesim/   — binary-number and two-sum queue simulations
//	input/      — boundary validation of raw integer input
//
// A trace is produced eagerly and consumed by index:
//
//	tr, err := traverse.BFS(adj, 0)
//	p, _ := trace.NewPlayer(tr)
//	for p.Advance() {
//		render(p.Current())
//	}
package algotrace
