package traverse

import (
	"fmt"

	"github.com/algotrace/algotrace/graph"
	"github.com/algotrace/algotrace/trace"
)

// dfsWalker encapsulates mutable DFS simulation state.
type dfsWalker struct {
	adj   graph.Adjacency
	opts  Options
	stack []trace.NodeID // LIFO, top at the end
	rec   *trace.Recorder
}

// DFS simulates stack-based depth-first traversal from start over adj and
// returns the full step trace.
//
// Semantics differ from BFS on purpose: the visited set starts empty and a
// node is marked visited only when popped, never when pushed. The stack may
// therefore hold duplicates; popping an already-visited node emits a
// distinct "already visited" skip step and changes nothing else. Unvisited
// neighbors are pushed in descending id order — each push its own step — so
// the ascending neighbor is on top and visited first.
//
// Returns ErrNilAdjacency for a nil adjacency map.
func DFS(adj graph.Adjacency, start trace.NodeID, opts ...Option) (*trace.Trace, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &dfsWalker{
		adj:   adj,
		opts:  o,
		stack: []trace.NodeID{start},
		rec:   trace.NewRecorder(),
	}
	w.loop()

	tr := w.rec.Seal("traversal complete")
	w.emitSentinel(tr)
	return tr, nil
}

// loop processes the stack until empty.
func (w *dfsWalker) loop() {
	for len(w.stack) > 0 {
		cur := w.pop()
		if !w.rec.Visit(cur) {
			w.record(cur, fmt.Sprintf("%s already visited, skipped", w.opts.label(cur)))
			continue
		}
		w.record(cur, fmt.Sprintf("popped %s, marked visited", w.opts.label(cur)))
		w.pushNeighbors(cur)
	}
}

// pop removes and returns the stack top.
func (w *dfsWalker) pop() trace.NodeID {
	cur := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return cur
}

// pushNeighbors pushes cur's unvisited neighbors in descending id order,
// one step per push.
func (w *dfsWalker) pushNeighbors(cur trace.NodeID) {
	nbrs := w.adj.Neighbors(cur)
	for i := len(nbrs) - 1; i >= 0; i-- {
		nbr := nbrs[i]
		if w.rec.Visited(nbr) {
			continue
		}
		w.stack = append(w.stack, nbr)
		w.record(cur, fmt.Sprintf("pushed %s", w.opts.label(nbr)))
	}
}

// record appends a step snapshotting the current stack and feeds the
// OnStep hook.
func (w *dfsWalker) record(active trace.NodeID, msg string) {
	_ = w.rec.Record(active, w.stack, msg)
	if w.opts.OnStep != nil {
		w.opts.OnStep(w.rec.Last())
	}
}

// emitSentinel delivers the sealed trace's sentinel step to the hook.
func (w *dfsWalker) emitSentinel(tr *trace.Trace) {
	if w.opts.OnStep != nil {
		w.opts.OnStep(tr.Last())
	}
}
