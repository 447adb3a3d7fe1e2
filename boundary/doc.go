// Package boundary discretises the zero contour of a level-set field
// into an explicit set of points and line segments.
//
// What:
//
//   - Points lie where the field is exactly zero at a grid node, or where
//     linear interpolation places the zero crossing on a grid edge whose
//     endpoint values differ in sign.
//   - Segments link the points cell by cell: each grid cell cut by the
//     contour contributes one segment (two in the ambiguous saddle case).
//   - Each point carries an integral length — half the length of every
//     segment it belongs to — so field quantities sampled at boundary
//     points can be integrated along the contour.
//
// Why:
//
//   - Shape optimisation loops integrate sensitivities over the contour.
//   - Visualisation and export of the implicit interface as a polyline.
//   - Validation: the contour's total length is a cheap global check on
//     a reinitialised signed-distance field.
//
// Complexity:
//
//   - Discretise: O(W×H) time and memory.
//
// Errors:
//
//   - ErrNilMesh:   the mesh pointer is nil.
//   - ErrFieldSize: len(phi) does not match the mesh node count.
package boundary
