package boundary

import "errors"

var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed.
	ErrNilMesh = errors.New("boundary: mesh is nil")
	// ErrFieldSize indicates len(phi) does not equal the mesh node count.
	ErrFieldSize = errors.New("boundary: field length must equal mesh node count")
)
