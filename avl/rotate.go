package avl

// Height returns the stored height of n, 0 for a nil subtree.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// Balance returns height(left) − height(right) for n, 0 for nil.
func Balance(n *Node) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// reheight recomputes n's height from its children.
func reheight(n *Node) {
	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		n.Height = l + 1
	} else {
		n.Height = r + 1
	}
}

// rotateRight restructures
//
//	    y            x
//	   / \          / \
//	  x   C   →    A   y
//	 / \              / \
//	A   B            B   C
//
// recomputing heights of y then x, and returns x as the new subtree root.
// The caller must rebind its reference; the old root is stale afterwards.
func rotateRight(y *Node) *Node {
	x := y.Left
	y.Left = x.Right
	x.Right = y
	reheight(y)
	reheight(x)
	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(x *Node) *Node {
	y := x.Right
	x.Right = y.Left
	y.Left = x
	reheight(x)
	reheight(y)
	return y
}
