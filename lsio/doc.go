// Package lsio reads and writes level-set fields in three formats:
// plain text, a compact binary encoding, and ParaView VTK.
//
// What:
//
//   - TXT: one node value per line in row-major order, optionally
//     prefixed with the node's physical x/y position. Loadable.
//   - BIN: little-endian raw float64 values behind a magic/version/
//     dimensions header, so a loader can reject files written for a
//     different grid. Loadable.
//   - VTK: an ASCII RECTILINEAR_GRID dataset ParaView opens directly,
//     with the signed distance as point data and, optionally, a second
//     scalar block holding the extension velocity. Write-only.
//
// All functions take io.Writer / io.Reader; composing with files,
// buffers, or compression is the caller's business. DatapointName builds
// the conventional zero-padded file names for optimisation trajectories
// ("level-set_0042.vtk").
//
// Errors:
//
//   - ErrNilMesh:           the mesh pointer is nil.
//   - ErrFieldSize:         field length does not match the mesh.
//   - ErrBadMagic:          the binary stream is not a level-set field file.
//   - ErrBadVersion:        the binary format version is unsupported.
//   - ErrDimensionMismatch: the file was written for a different grid.
//
// I/O failures are wrapped with context and satisfy errors.Is against
// the underlying error.
package lsio
