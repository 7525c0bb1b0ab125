// Package traverse defines options and error definitions for the BFS and
// DFS step generators.
package traverse

import (
	"errors"
	"strconv"

	"github.com/algotrace/algotrace/trace"
)

// Sentinel errors for traversal generation.
var (
	// ErrNilAdjacency is returned when a nil adjacency map is passed.
	ErrNilAdjacency = errors.New("traverse: adjacency is nil")
)

// Option configures traversal generation via functional arguments.
type Option func(*Options)

// Options holds parameters shared by BFS and DFS.
type Options struct {
	// Labels maps node ids to display names used in step messages.
	// Missing entries fall back to the decimal id.
	Labels map[trace.NodeID]string

	// OnStep, if non-nil, observes every step as it is recorded, in order.
	// Steps are already immutable snapshots when delivered.
	OnStep func(trace.Step)
}

// DefaultOptions returns Options with no labels and no hook.
func DefaultOptions() Options { return Options{} }

// WithLabels sets the id→name lookup for step messages.
func WithLabels(labels map[trace.NodeID]string) Option {
	return func(o *Options) {
		if labels != nil {
			o.Labels = labels
		}
	}
}

// WithOnStep registers a callback observing each recorded step.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// label resolves id to its display name.
func (o *Options) label(id trace.NodeID) string {
	if name, ok := o.Labels[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}
