package binarytree

import (
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// treeWalker carries the recursion state of one Walk call.
type treeWalker struct {
	order  Order
	rec    *trace.Recorder
	path   []trace.NodeID // recursion stack, root at the bottom
	values []int
}

// Walk simulates a recursive traversal of the static tree rooted at root and
// returns the step trace together with the visited values in visit order.
//
// Each node emits a "go left from X" step immediately before descending into
// an existing left child, a "visit X" step at the position the order
// dictates, and a "go right from X" step before descending right. The Aux of
// every step is the current recursion path, root at the bottom. A nil root
// yields a sentinel-only trace.
//
// Returns ErrUnknownOrder if order is outside the enum.
func Walk(root *Node, order Order) (*trace.Trace, []int, error) {
	if order != Inorder && order != Preorder && order != Postorder {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}
	w := &treeWalker{order: order, rec: trace.NewRecorder()}
	w.walk(root)
	return w.rec.Seal(order.String() + " traversal complete"), w.values, nil
}

// walk recurses through n per the configured order.
func (w *treeWalker) walk(n *Node) {
	if n == nil {
		return
	}
	w.path = append(w.path, n.ID)

	if w.order == Preorder {
		w.visit(n)
	}
	if n.Left != nil {
		w.record(n, fmt.Sprintf("go left from %d", n.Value))
		w.walk(n.Left)
	}
	if w.order == Inorder {
		w.visit(n)
	}
	if n.Right != nil {
		w.record(n, fmt.Sprintf("go right from %d", n.Value))
		w.walk(n.Right)
	}
	if w.order == Postorder {
		w.visit(n)
	}

	w.path = w.path[:len(w.path)-1]
}

// visit records the visit step and accumulates the node's value.
func (w *treeWalker) visit(n *Node) {
	w.rec.Visit(n.ID)
	w.record(n, fmt.Sprintf("visit %d", n.Value))
	w.values = append(w.values, n.Value)
}

func (w *treeWalker) record(n *Node, msg string) {
	_ = w.rec.Record(n.ID, w.path, msg)
}
