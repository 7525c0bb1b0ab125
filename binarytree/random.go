package binarytree

import (
	"fmt"
	"math/rand"

	"github.com/algotrace/algotrace/trace"
)

// Option customizes the random tree generator.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. A nil RNG is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Random builds an unbalanced search tree of n distinct values by inserting
// a shuffled value sequence, for demos and property tests. Values are drawn
// from [0, 4n) so gaps exist for follow-up insertions.
//
// An RNG must be supplied via WithSeed or WithRand, otherwise
// ErrNeedRandSource is returned.
func Random(n int, opts ...Option) (*Node, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least 1", ErrTooFewValues, n)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		return nil, ErrNeedRandSource
	}

	perm := c.rng.Perm(4 * n)
	ids := trace.NewIDAlloc()
	var root *Node
	for _, v := range perm[:n] {
		root = bstInsert(root, v, ids)
	}
	return root, nil
}

// bstInsert is a plain (non-balancing) search tree insert; duplicates are
// impossible here because values come from a permutation.
func bstInsert(n *Node, value int, ids *trace.IDAlloc) *Node {
	if n == nil {
		return &Node{ID: ids.Next(), Value: value}
	}
	if value < n.Value {
		n.Left = bstInsert(n.Left, value, ids)
	} else if value > n.Value {
		n.Right = bstInsert(n.Right, value, ids)
	}
	return n
}
