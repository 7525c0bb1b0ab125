// Package trace defines the central artifact of algotrace: the Step Trace.
//
// What
//
//   - Step: one snapshot of algorithm state — active node, visited set
//     (insertion-ordered, duplicate-free), auxiliary structure (queue or
//     stack contents), and a message.
//   - Trace: a finite, ordered, immutable Step sequence, always terminated
//     by a sentinel step (Active == None, empty Aux).
//   - Recorder: the builder generators use; it snapshots slices per step and
//     enforces the visited-set and sentinel invariants.
//   - Player: the consumer contract — a cursor advanced one index per
//     external tick, with pause, resume, reset, and manual step-forward.
//   - IDAlloc: per-session NodeID allocator for generators that create nodes.
//
// Why
//
//	Every generator in this module reduces to the same hard problem:
//	deterministically simulate an algorithm state machine and emit a faithful
//	replayable record of it. Centralizing the record format means playback,
//	scrubbing, and testing work identically across BFS, AVL, Floyd's and the
//	queue simulations.
//
// Determinism
//
//	Traces are produced eagerly and never mutated afterwards; playing a
//	trace twice renders the same frames. Recorder copies every slice it
//	stores, so a generator's working queue/stack cannot retroactively change
//	recorded steps.
package trace
