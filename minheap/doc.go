// Package minheap provides an array-backed binary min-heap keyed by
// float64 with stable handles, built for algorithms that need true
// decrease-key (not the lazy duplicate-push workaround).
//
// What:
//
//   - Push returns an integer handle that stays valid across every
//     internal sift swap, so callers can keep one back-pointer per item
//     and address it later in O(1).
//   - Update performs decrease-key through a handle in O(log n).
//   - Pop removes the minimum-keyed item; its handle becomes stale.
//   - Verify walks the array and checks the heap ordering invariant,
//     for callers that want a self-check mode while debugging.
//
// Why:
//
//   - container/heap forces interface boxing and offers no stable
//     addressing: Fix needs the current slot, which moves on every swap.
//   - Wavefront and shortest-path solvers must tighten a pending item's
//     key without re-inserting it (one insertion per item is often a
//     correctness condition, not an optimisation).
//
// Complexity:
//
//   - Push, Pop, Update: O(log n).
//   - Len, Peek:         O(1).
//   - Verify:            O(n).
//
// Errors:
//
//   - ErrOrdering: Verify found a child with a smaller key than its parent.
//
// Misuse of handles (updating a popped item, popping an empty heap) is a
// programming error and panics rather than returning an error.
package minheap
