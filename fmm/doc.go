// Package fmm implements the Fast Marching Method for boundary-value
// problems of the Eikonal equation F(x)|∇T(x)| = 1 on uniform 2D grids.
//
// The solver freezes grid nodes in strictly increasing order of absolute
// distance from the zero-level interface. Each accepted node's value
// depends only on neighbours frozen earlier, so a single monotone pass
// over a min-priority queue produces the solution — no iteration, no
// relaxation sweeps.
//
// What:
//
//   - Reinit rewrites a (possibly noisy) level-set field in place as a
//     true signed-distance function, preserving the input sign per node.
//   - ExtendVelocity additionally propagates boundary-defined velocity
//     values outward so that ∇T·∇f = 0 (velocity constant along the
//     distance gradient).
//   - WithMask excludes nodes from both update and propagation; masked
//     nodes keep their input value and status.
//
// Algorithm outline:
//
//  1. Frozen set: scan grid edges for sign changes, interpolate sub-grid
//     crossing distances d = h·|φᵢ|/|φᵢ−φⱼ| per axis, combine axes, and
//     freeze the adjacent nodes at the result.
//  2. Trial set: every unfrozen, unmasked neighbour of a frozen node gets
//     a first candidate value and a single priority-queue insertion.
//  3. March: pop the minimum-keyed trial node, freeze it, finalise its
//     velocity if active, then re-update its unfrozen neighbours —
//     strictly smaller candidates go through decrease-key, never
//     re-insertion.
//  4. Restore: signs from the input field are reapplied to the marched
//     magnitudes. Nodes unreachable from the interface stay None at
//     their pre-solve value ("distance unknown").
//
// Per-node update: for each axis the frozen neighbour with the smaller
// absolute value is the upwind contributor; contributions accumulate into
// a·T² − b·T + c = 0 with 1/h² weights and the larger root is taken.
// Degenerate cases (no contributing axis, negative discriminant) fall
// back to a one-dimensional estimate, never to an error.
//
// Complexity:
//
//   - Time:  O(N log N) for N grid nodes — every node is pushed at most
//     once and each pop or decrease-key costs O(log N).
//   - Space: O(N) for the working fields, status table, and back-pointers.
//
// Errors (sentinel):
//
//   - ErrNilMesh      — the mesh pointer is nil.
//   - ErrFieldSize    — len(phi) does not match the mesh node count.
//   - ErrVelocitySize — len(vel) does not match the mesh node count.
//   - ErrMaskSize     — the mask length does not match the mesh node count.
//
// With WithHeapCheck, a failed queue self-check surfaces as an error
// wrapping minheap.ErrOrdering; this mode exists for debugging the queue
// collaborator, not for normal operation.
//
// Concurrency: a single call owns all of its state. Independent calls on
// disjoint fields may run on separate goroutines; within one call the
// march is strictly sequential by construction (causality).
package fmm
