package avl

import "github.com/algotrace/algotrace/trace"

// Tree is an AVL search tree with unique integer values. It owns a
// per-session id allocator, so node ids stay unique and stable across
// inserts, deletes, and rotations — rotations rearrange links, never ids.
//
// Invariant after every Insert/Delete settles: for every node,
// |Balance(node)| ≤ 1 and Height(node) = 1 + max of the child heights.
type Tree struct {
	root *Node
	ids  *trace.IDAlloc
	size int
	opts Options
}

// New returns an empty Tree carrying the given hooks for its lifetime.
func New(opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree{ids: trace.NewIDAlloc(), opts: o}
}

// Root returns the current root node. The root identity can change on any
// Insert or Delete; callers must re-read it after structural operations and
// must not retain references across them.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of values in the tree.
func (t *Tree) Len() int { return t.size }

// Insert adds value to the tree, rebalancing as needed. Inserting a value
// already present is a no-op reported as OutcomeExists.
func (t *Tree) Insert(value int) Outcome {
	out := OutcomeInserted
	t.root = t.insert(t.root, value, &out)
	if out == OutcomeInserted {
		t.size++
	}
	return out
}

// Delete removes value from the tree, rebalancing as needed. Deleting an
// absent value is a no-op reported as OutcomeNotFound.
func (t *Tree) Delete(value int) Outcome {
	out := OutcomeDeleted
	t.root = t.delete(t.root, value, &out)
	if out == OutcomeDeleted {
		t.size--
	}
	return out
}

// Search descends from the root by value comparison. A miss is a valid
// outcome reported by the boolean, not an error.
func (t *Tree) Search(value int) (*Node, bool) {
	n := t.root
	for n != nil {
		t.visit(n)
		switch {
		case value < n.Value:
			n = n.Left
		case value > n.Value:
			n = n.Right
		default:
			return n, true
		}
	}
	return nil, false
}

// InorderValues returns the tree's values in ascending order.
func (t *Tree) InorderValues() []int {
	out := make([]int, 0, t.size)
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		rec(n.Left)
		out = append(out, n.Value)
		rec(n.Right)
	}
	rec(t.root)
	return out
}

// insert is the recursive BST insert with bottom-up rebalancing. Every
// level returns the (possibly new) subtree root and the caller rebinds its
// child link — root identity is never assumed stable.
func (t *Tree) insert(n *Node, value int, out *Outcome) *Node {
	if n == nil {
		return &Node{ID: t.ids.Next(), Value: value, Height: 1}
	}
	t.visit(n)
	switch {
	case value < n.Value:
		n.Left = t.insert(n.Left, value, out)
	case value > n.Value:
		n.Right = t.insert(n.Right, value, out)
	default:
		// Duplicate insert: no-op, subtree untouched and still balanced.
		*out = OutcomeExists
		return n
	}

	reheight(n)
	bal := Balance(n)

	// The four insert cases are mutually exclusive and keyed by where the
	// new value went relative to the heavy child; first match wins.
	switch {
	case bal > 1 && value < n.Left.Value:
		t.rotated(RotationLL, n.ID)
		return rotateRight(n)
	case bal < -1 && value > n.Right.Value:
		t.rotated(RotationRR, n.ID)
		return rotateLeft(n)
	case bal > 1 && value > n.Left.Value:
		t.rotated(RotationLR, n.ID)
		n.Left = rotateLeft(n.Left)
		return rotateRight(n)
	case bal < -1 && value < n.Right.Value:
		t.rotated(RotationRL, n.ID)
		n.Right = rotateRight(n.Right)
		return rotateLeft(n)
	}
	return n
}

// delete is the recursive BST delete with bottom-up rebalancing. A node
// with two children swaps in its inorder successor's value (keeping its own
// id) and removes the successor from the right subtree.
func (t *Tree) delete(n *Node, value int, out *Outcome) *Node {
	if n == nil {
		*out = OutcomeNotFound
		return nil
	}
	t.visit(n)
	switch {
	case value < n.Value:
		n.Left = t.delete(n.Left, value, out)
	case value > n.Value:
		n.Right = t.delete(n.Right, value, out)
	default:
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		succ := leftmost(n.Right)
		n.Value = succ.Value
		// The successor's value now lives here; drop its old node. This
		// inner delete always finds its target, so the outcome is kept.
		var inner Outcome
		n.Right = t.delete(n.Right, succ.Value, &inner)
	}

	reheight(n)
	bal := Balance(n)

	// Rebalancing after delete keys on the child's balance sign — the
	// deleted value is gone, so it cannot steer the case selection.
	switch {
	case bal > 1 && Balance(n.Left) >= 0:
		t.rotated(RotationLL, n.ID)
		return rotateRight(n)
	case bal > 1 && Balance(n.Left) < 0:
		t.rotated(RotationLR, n.ID)
		n.Left = rotateLeft(n.Left)
		return rotateRight(n)
	case bal < -1 && Balance(n.Right) <= 0:
		t.rotated(RotationRR, n.ID)
		return rotateLeft(n)
	case bal < -1 && Balance(n.Right) > 0:
		t.rotated(RotationRL, n.ID)
		n.Right = rotateRight(n.Right)
		return rotateLeft(n)
	}
	return n
}

// leftmost returns the smallest node of a non-nil subtree.
func leftmost(n *Node) *Node {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func (t *Tree) visit(n *Node) {
	if t.opts.OnVisit != nil {
		t.opts.OnVisit(n.ID)
	}
}

func (t *Tree) rotated(kind RotationKind, pivot trace.NodeID) {
	if t.opts.OnRotate != nil {
		t.opts.OnRotate(kind, pivot)
	}
}
