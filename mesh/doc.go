// Package mesh models a uniform two-dimensional structured grid as a flat,
// row-major enumeration of nodes with constant spacing.
//
// What:
//
//   - Mesh wraps a Width×Height node grid with uniform spacing h.
//   - Row-major indexing: node (x, y) lives at index y*Width + x.
//   - 4-connected neighbour lookups (West, East, South, North) return the
//     OutOfBounds sentinel past a grid edge instead of wrapping.
//   - Physical positions: node (x, y) sits at (x·h, y·h).
//
// Why:
//
//   - Level-set fields: one scalar per node, addressed by node index.
//   - Finite-difference stencils: O(1) neighbour access without allocation.
//   - Wavefront solvers: an explicit boundary sentinel keeps hot loops
//     branch-light.
//
// Complexity:
//
//   - New:        O(1) time and memory (no per-node storage).
//   - Index, Coordinate, Position, InBounds, Neighbour: O(1).
//   - Neighbours: O(1), returns a fixed [4]int.
//
// Errors:
//
//   - ErrEmptyMesh:  width or height below one node.
//   - ErrBadSpacing: spacing is zero, negative, or not finite.
package mesh
