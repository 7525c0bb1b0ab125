// Package binarytree walks and reconstructs binary trees for visualization.
//
// What
//
//   - Walk(root, order): simulate the recursive inorder/preorder/postorder
//     walk of a static tree, emitting "go left"/"visit"/"go right" steps
//     whose Aux is the live recursion path.
//   - BuildFromPreIn / BuildFromPostIn: rebuild the unique tree from a
//     preorder-or-postorder sequence paired with the inorder sequence,
//     after validating lengths, in-sequence uniqueness, and set equality.
//   - InorderValues / PreorderValues / PostorderValues: plain collectors.
//   - Random: seedable unbalanced search tree for demos and round-trip tests.
//
// Why
//
//	Reconstruction and traversal are inverses: for any tree with unique
//	values, feeding its preorder and inorder collections back into
//	BuildFromPreIn yields the same shape. The validation layer turns every
//	malformed input into a named sentinel error before a single node exists.
//
// Complexity: Walk and the collectors are O(n); reconstruction is O(n) after
// the O(n) precondition pass, using a value→index map over inorder.
package binarytree
