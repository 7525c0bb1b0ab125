package graph

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/algotrace/algotrace/trace"
)

// Option customizes the random graph generator.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG for stochastic construction.
// A nil RNG is ignored; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a deterministic RNG from seed. Use this in tests and
// examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Random builds a connected undirected demo graph of n nodes: a random
// spanning tree plus up to extra additional distinct non-loop edges.
// Node ids are 0..n-1, labels "N0".."N<n-1>", and positions lie on a unit
// circle so renderers have a usable default layout.
//
// Determinism is explicit: an RNG must be supplied via WithSeed or WithRand,
// otherwise ErrNeedRandSource is returned.
func Random(n, extra int, opts ...Option) ([]Node, []Edge, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: n=%d, need at least 1", ErrTooFewNodes, n)
	}
	if extra < 0 {
		return nil, nil, fmt.Errorf("%w: extra=%d", ErrBadEdgeCount, extra)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		return nil, nil, ErrNeedRandSource
	}

	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		nodes[i] = Node{
			ID:    trace.NodeID(i),
			Label: fmt.Sprintf("N%d", i),
			Value: i,
			X:     math.Cos(angle),
			Y:     math.Sin(angle),
		}
	}

	// Spanning tree: each node past the first attaches to a random earlier
	// node, guaranteeing connectivity with exactly n-1 edges.
	edges := make([]Edge, 0, n-1+extra)
	have := make(map[[2]trace.NodeID]bool, n-1+extra)
	for i := 1; i < n; i++ {
		u, v := orient(trace.NodeID(c.rng.Intn(i)), trace.NodeID(i))
		edges = append(edges, Edge{From: u, To: v})
		have[[2]trace.NodeID{u, v}] = true
	}

	// Extra edges: random distinct non-loop pairs. Attempts are bounded so a
	// near-complete graph cannot stall the generator.
	for added, attempts := 0, 0; added < extra && attempts < 10*(extra+1); attempts++ {
		u, v := orient(trace.NodeID(c.rng.Intn(n)), trace.NodeID(c.rng.Intn(n)))
		if u == v || have[[2]trace.NodeID{u, v}] {
			continue
		}
		edges = append(edges, Edge{From: u, To: v})
		have[[2]trace.NodeID{u, v}] = true
		added++
	}

	return nodes, edges, nil
}

// orient returns the pair with the smaller id first, the canonical form for
// an unordered edge.
func orient(u, v trace.NodeID) (trace.NodeID, trace.NodeID) {
	if u > v {
		return v, u
	}
	return u, v
}
