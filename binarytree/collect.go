package binarytree

// InorderValues returns the values of the tree rooted at root in
// left-node-right order, ascending for a search tree.
func InorderValues(root *Node) []int {
	var out []int
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		rec(n.Left)
		out = append(out, n.Value)
		rec(n.Right)
	}
	rec(root)
	return out
}

// PreorderValues returns the values in node-left-right order.
func PreorderValues(root *Node) []int {
	var out []int
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		rec(n.Left)
		rec(n.Right)
	}
	rec(root)
	return out
}

// PostorderValues returns the values in left-right-node order.
func PostorderValues(root *Node) []int {
	var out []int
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		rec(n.Left)
		rec(n.Right)
		out = append(out, n.Value)
	}
	rec(root)
	return out
}

// SameShape reports whether two trees have identical structure and values
// (node ids are allowed to differ).
func SameShape(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && SameShape(a.Left, b.Left) && SameShape(a.Right, b.Right)
}
