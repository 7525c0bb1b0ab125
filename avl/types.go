// Package avl defines node, outcome, rotation, and option types for the
// self-balancing search tree engine.
package avl

import (
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// Node is an AVL tree node. Height is maintained bottom-up after every
// structural change; a leaf has height 1 and a nil subtree height 0.
// Children are exclusively owned by their parent.
type Node struct {
	ID     trace.NodeID
	Value  int
	Height int
	Left   *Node
	Right  *Node
}

// Outcome classifies the result of a tree operation. Duplicate inserts and
// deletes of absent values are valid outcomes, not errors.
type Outcome int

const (
	// OutcomeInserted: a new node was added.
	OutcomeInserted Outcome = iota
	// OutcomeExists: the value was already present; insert was a no-op.
	OutcomeExists
	// OutcomeDeleted: the value was found and removed.
	OutcomeDeleted
	// OutcomeNotFound: the value was absent; delete was a no-op.
	OutcomeNotFound
)

// String returns a short human-readable outcome description.
func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeExists:
		return "already exists"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeNotFound:
		return "not found"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// RotationKind names the four imbalance cases.
type RotationKind int

const (
	// RotationLL: left-left imbalance, fixed by a single right rotation.
	RotationLL RotationKind = iota
	// RotationRR: right-right imbalance, fixed by a single left rotation.
	RotationRR
	// RotationLR: left-right imbalance, fixed by left-rotating the left
	// child then right-rotating the node.
	RotationLR
	// RotationRL: right-left imbalance, the mirror of LR.
	RotationRL
)

// String returns the conventional two-letter case name.
func (k RotationKind) String() string {
	switch k {
	case RotationLL:
		return "LL"
	case RotationRR:
		return "RR"
	case RotationLR:
		return "LR"
	case RotationRL:
		return "RL"
	default:
		return fmt.Sprintf("rotation(%d)", int(k))
	}
}

// Option configures a Tree at construction time.
type Option func(*Options)

// Options holds the observation hooks a Tree carries for its lifetime.
type Options struct {
	// OnVisit, if non-nil, fires for every node compared during a descent
	// (insert, delete, and the recursive successor removal).
	OnVisit func(id trace.NodeID)

	// OnRotate, if non-nil, fires once per applied rotation case with the
	// id of the unbalanced pivot node. An LR or RL fires once, not twice.
	OnRotate func(kind RotationKind, pivot trace.NodeID)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options { return Options{} }

// WithOnVisit registers the per-comparison hook.
func WithOnVisit(fn func(id trace.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRotate registers the per-rotation hook.
func WithOnRotate(fn func(kind RotationKind, pivot trace.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}
