// Package binarytree defines the owned binary tree node, traversal orders,
// and error definitions for tree walking and reconstruction.
package binarytree

import (
	"errors"
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// Sentinel errors for tree walking and reconstruction.
var (
	// ErrUnknownOrder is returned for a traversal order outside the enum.
	ErrUnknownOrder = errors.New("binarytree: unknown traversal order")

	// ErrLengthMismatch indicates the two traversal sequences differ in length.
	ErrLengthMismatch = errors.New("binarytree: traversal sequences differ in length")

	// ErrDuplicateValue indicates a value occurs twice within one sequence.
	ErrDuplicateValue = errors.New("binarytree: duplicate value in sequence")

	// ErrSequenceMismatch indicates a value present in one sequence is
	// missing from the other.
	ErrSequenceMismatch = errors.New("binarytree: sequences are not value-equal")

	// ErrValueNotFound is the defensive check for a root value absent from
	// the inorder window during reconstruction. Unreachable when the
	// precondition checks pass.
	ErrValueNotFound = errors.New("binarytree: value not found in inorder sequence")

	// ErrTooFewValues indicates a random-tree size below the minimum.
	ErrTooFewValues = errors.New("binarytree: value count too small")

	// ErrNeedRandSource indicates Random was invoked without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("binarytree: rng is required")
)

// Node is a binary tree node. Children are exclusively owned by their
// parent; trees never share subtrees or contain cycles.
type Node struct {
	ID    trace.NodeID
	Value int
	Left  *Node
	Right *Node
}

// Order selects the traversal discipline of Walk.
type Order int

const (
	// Inorder visits left subtree, node, right subtree.
	Inorder Order = iota
	// Preorder visits node, left subtree, right subtree.
	Preorder
	// Postorder visits left subtree, right subtree, node.
	Postorder
)

// String returns the lowercase order name.
func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder maps an order name to its Order value.
// Returns ErrUnknownOrder for anything else.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "inorder":
		return Inorder, nil
	case "preorder":
		return Preorder, nil
	case "postorder":
		return Postorder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}
