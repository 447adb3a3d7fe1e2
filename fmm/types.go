package fmm

import "errors"

// Sentinel errors returned by the solver entry points.
var (
	// ErrNilMesh indicates a nil *mesh.Mesh was passed.
	ErrNilMesh = errors.New("fmm: mesh is nil")

	// ErrFieldSize indicates len(phi) does not equal the mesh node count.
	ErrFieldSize = errors.New("fmm: field length must equal mesh node count")

	// ErrVelocitySize indicates len(vel) does not equal the mesh node count.
	ErrVelocitySize = errors.New("fmm: velocity length must equal mesh node count")

	// ErrMaskSize indicates the mask length does not equal the mesh node count.
	ErrMaskSize = errors.New("fmm: mask length must equal mesh node count")
)

// NodeStatus is the marching state of a single grid node.
//
// Transitions are monotone and one-directional: None → Trial → Frozen.
// Masked is assigned once from the caller's mask before the solve begins
// and never changes; masked nodes are excluded from update and
// propagation alike.
type NodeStatus uint8

const (
	// None marks a node not yet reached by the march. Nodes still None
	// after a run are unreachable from the interface: their field value
	// is the pre-solve input and must be treated as "distance unknown".
	None NodeStatus = iota

	// Trial marks a node with a provisional candidate value pending in
	// the priority queue.
	Trial

	// Frozen marks a node whose distance (and velocity, if active) is
	// final and will never be revisited.
	Frozen

	// Masked marks a node excluded from the solve by the caller's mask.
	Masked
)

// String returns the status name for diagnostics.
func (s NodeStatus) String() string {
	switch s {
	case None:
		return "None"
	case Trial:
		return "Trial"
	case Frozen:
		return "Frozen"
	case Masked:
		return "Masked"
	default:
		return "Unknown"
	}
}

// Options configures a single solver run.
//
// Mask      – optional per-node exclusion flags (len = mesh node count).
//
//	Masked nodes are never frozen, never queued, and keep their
//	input field value untouched.
//
// HeapCheck – verify the priority queue's ordering invariant after every
//
//	pop. Debugging aid for the queue collaborator; adds O(n) per
//	pop and is off by default.
type Options struct {
	Mask      []bool
	HeapCheck bool
}

// Option is a functional option for configuring a solver run.
type Option func(*Options)

// WithMask excludes the flagged nodes from the solve. The mask length is
// validated against the mesh node count at the entry point (ErrMaskSize).
func WithMask(mask []bool) Option {
	return func(o *Options) {
		o.Mask = mask
	}
}

// WithHeapCheck enables the priority-queue self-check after each pop.
// A detected violation aborts the run with an error wrapping
// minheap.ErrOrdering.
func WithHeapCheck() Option {
	return func(o *Options) {
		o.HeapCheck = true
	}
}

// DefaultOptions returns the zero configuration: no mask, no heap check.
func DefaultOptions() Options {
	return Options{}
}
