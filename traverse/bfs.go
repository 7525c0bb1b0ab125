package traverse

import (
	"fmt"

	"github.com/algotrace/algotrace/graph"
	"github.com/algotrace/algotrace/trace"
)

// bfsWalker encapsulates mutable BFS simulation state.
type bfsWalker struct {
	adj      graph.Adjacency
	opts     Options
	frontier []trace.NodeID // FIFO, front at index 0
	rec      *trace.Recorder
}

// BFS simulates breadth-first traversal from start over adj and returns the
// full step trace.
//
// Semantics: the frontier and the visited set are both seeded with start;
// neighbors are marked visited at enqueue time, so the frontier never holds
// duplicates. Each dequeue emits one step, and each freshly enqueued
// neighbor emits its own step. A start id absent from adj is treated as an
// isolated node and yields a two-step trace (dequeue + complete).
//
// Returns ErrNilAdjacency for a nil adjacency map.
func BFS(adj graph.Adjacency, start trace.NodeID, opts ...Option) (*trace.Trace, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &bfsWalker{
		adj:      adj,
		opts:     o,
		frontier: []trace.NodeID{start},
		rec:      trace.NewRecorder(),
	}
	w.rec.Visit(start)
	w.loop()

	tr := w.rec.Seal("traversal complete")
	w.emitSentinel(tr)
	return tr, nil
}

// loop processes the frontier until empty.
func (w *bfsWalker) loop() {
	for len(w.frontier) > 0 {
		cur := w.dequeue()
		for _, nbr := range w.adj.Neighbors(cur) {
			if w.rec.Visited(nbr) {
				continue
			}
			w.enqueue(cur, nbr)
		}
	}
}

// dequeue pops the frontier front and records the dequeue step.
func (w *bfsWalker) dequeue() trace.NodeID {
	cur := w.frontier[0]
	w.frontier = w.frontier[1:]
	w.record(cur, fmt.Sprintf("dequeued %s", w.opts.label(cur)))
	return cur
}

// enqueue marks nbr visited, appends it to the frontier, and records the
// enqueue step with cur still active.
func (w *bfsWalker) enqueue(cur, nbr trace.NodeID) {
	w.rec.Visit(nbr)
	w.frontier = append(w.frontier, nbr)
	w.record(cur, fmt.Sprintf("visited %s, enqueued", w.opts.label(nbr)))
}

// record appends a step snapshotting the current frontier and feeds the
// OnStep hook.
func (w *bfsWalker) record(active trace.NodeID, msg string) {
	_ = w.rec.Record(active, w.frontier, msg)
	if w.opts.OnStep != nil {
		w.opts.OnStep(w.rec.Last())
	}
}

// emitSentinel delivers the sealed trace's sentinel step to the hook.
func (w *bfsWalker) emitSentinel(tr *trace.Trace) {
	if w.opts.OnStep != nil {
		w.opts.OnStep(tr.Last())
	}
}
