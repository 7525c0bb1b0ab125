// Package avl implements the self-balancing search tree engine behind the
// AVL visualizations.
//
// What
//
//   - Tree: insert, delete, and search over unique integer values with
//     automatic height tracking and rebalancing.
//   - Four rotation cases (LL, RR, LR, RL). On insert the case is keyed by
//     where the inserted value went relative to the heavy child; on delete
//     it is keyed by the heavy child's balance sign, because the deleted
//     value no longer exists to compare against.
//   - Hooks: WithOnVisit fires per comparison, WithOnRotate fires once per
//     applied case with the pivot's id — the channel a step-trace consumer
//     uses to animate descents and rotations.
//
// Ownership
//
//	Every structural mutation returns the possibly-new subtree root and the
//	parent rebinds its link; the Tree rebinds its root the same way. Callers
//	must treat nodes obtained before a mutation as invalidated. Node ids are
//	stable across rotations (links move, ids do not), which is what lets a
//	renderer animate a rotation instead of redrawing from scratch.
//
// Outcomes, not errors
//
//	Duplicate insert, delete of an absent value, and search misses are
//	normal completions reported via Outcome / bool.
//
// Complexity: O(log n) per operation, O(1) rotations per insert and
// O(log n) rotations per delete, worst case.
package avl
