package lsio

import "errors"

var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed.
	ErrNilMesh = errors.New("lsio: mesh is nil")
	// ErrFieldSize indicates the field length does not equal the mesh node count.
	ErrFieldSize = errors.New("lsio: field length must equal mesh node count")
	// ErrBadMagic indicates the stream does not start with the level-set field magic.
	ErrBadMagic = errors.New("lsio: bad magic, not a level-set field file")
	// ErrBadVersion indicates an unsupported binary format version.
	ErrBadVersion = errors.New("lsio: unsupported binary format version")
	// ErrDimensionMismatch indicates the file dimensions differ from the mesh.
	ErrDimensionMismatch = errors.New("lsio: file dimensions do not match mesh")
)
