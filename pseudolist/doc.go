// Package pseudolist simulates Floyd's cycle detection over an
// index-addressable stand-in for a linked list.
//
// Instead of a pointer graph, the list is a fixed value slice whose "next"
// relation is i → i+1, with one optional redirect: the tail may point back
// to any index (WithCycleTo), injecting a cycle in O(1) without mutating a
// real link structure. Advancing past the tail without a redirect is the
// "reached end" no-cycle signal; an out-of-range index is never constructed.
//
// DetectCycle emits one step per tortoise/hare round so a player can animate
// both pointers, and caps iterations at 3·Len() to guarantee termination
// even against a pointer-advance bug; the cap surfaces as an Inconclusive
// result, never an exception.
package pseudolist
