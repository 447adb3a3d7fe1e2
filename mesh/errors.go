package mesh

import "errors"

var (
	// ErrEmptyMesh indicates the mesh must span at least one node per axis.
	ErrEmptyMesh = errors.New("mesh: width and height must be at least 1")
	// ErrBadSpacing indicates the grid spacing is zero, negative, or not finite.
	ErrBadSpacing = errors.New("mesh: spacing must be positive and finite")
)
