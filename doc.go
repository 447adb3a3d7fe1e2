// Package fastmarch solves boundary-value problems of the Eikonal
// equation on uniform 2D grids using the Fast Marching Method:
//
//	F(x) | grad T(x) | = 1
//
// 🚀 What is fastmarch?
//
//	A small, dependency-light library for level-set workflows:
//		• Reinitialise a noisy level-set field into a true signed-distance function
//		• Extend boundary-defined velocities outward along the distance gradient
//		• Discretise the zero contour into interpolated points and segments
//		• Save and load fields as plain text, binary, or ParaView VTK
//
// ✨ Why choose fastmarch?
//
//   - Single-pass, monotone solver – nodes freeze in causal order, no iteration
//   - True decrease-key priority queue – O(log n) updates via stable handles
//   - Pure Go – no cgo, no hidden deps
//   - Per-call solver state – independent runs are safe on separate goroutines
//
// Everything is organized under five subpackages:
//
//	mesh/     — uniform W×H grid: indexing, spacing, 4-neighbour lookups
//	minheap/  — binary min-heap with stable handles and decrease-key
//	fmm/      — the fast-marching solver: Reinit and ExtendVelocity
//	boundary/ — zero-contour discretisation into points and segments
//	lsio/     — TXT / BIN / VTK persistence of level-set fields
//
// Quick ASCII example:
//
//	    + + + + +
//	    + - - - +        negative inside, positive outside:
//	    + - - - +        the zero contour threads the sign changes
//	    + + + + +
//
//	fmm.Reinit rewrites the field so |grad φ| = 1 everywhere reachable.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/lvlset/fastmarch
package fastmarch
