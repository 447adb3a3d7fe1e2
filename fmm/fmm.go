package fmm

import (
	"fmt"
	"math"

	"github.com/lvlset/fastmarch/mesh"
	"github.com/lvlset/fastmarch/minheap"
)

// Reinit rewrites phi in place as a true signed-distance function of its
// own zero contour, preserving the sign of every node's input value.
//
// Returns the final per-node statuses: nodes still None are unreachable
// from the interface (fully enclosed by masked nodes, or the field never
// changes sign) and keep their pre-solve value.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMesh).
//  2. len(phi) must equal m.NumNodes() (ErrFieldSize).
//  3. A mask passed via WithMask must have the same length (ErrMaskSize).
//
// Complexity: O(N log N) time, O(N) memory, N = m.NumNodes().
func Reinit(m *mesh.Mesh, phi []float64, opts ...Option) ([]NodeStatus, error) {
	r, err := newMarcher(m, phi, nil, opts)
	if err != nil {
		return nil, err
	}

	return r.march()
}

// ExtendVelocity reinitialises phi exactly as Reinit does and
// additionally fills vel by the extension scheme: every node frozen
// during the march receives the weighted average of its upwind
// neighbours' velocities, which enforces ∇T·∇f = 0 (velocity constant
// along the distance gradient).
//
// Precondition: the caller must supply velocity values in vel at the
// nodes adjacent to the zero contour (the nodes frozen during
// initialisation). Those entries are treated as exact boundary data and
// are never recomputed. Violating the precondition leaves the extension
// ill-defined; entries at nodes that never freeze are left untouched,
// never zero-filled.
//
// Validation adds ErrVelocitySize when len(vel) ≠ m.NumNodes().
//
// Complexity: O(N log N) time, O(N) memory.
func ExtendVelocity(m *mesh.Mesh, phi, vel []float64, opts ...Option) ([]NodeStatus, error) {
	r, err := newMarcher(m, phi, vel, opts)
	if err != nil {
		return nil, err
	}

	return r.march()
}

// axisDirs groups the four neighbour directions into the two grid axes.
var axisDirs = [2][2]mesh.Direction{
	{mesh.West, mesh.East},
	{mesh.South, mesh.North},
}

// marcher holds the mutable state of a single fast-marching run.
// All buffers are private to the run; nothing is shared between calls.
type marcher struct {
	m       *mesh.Mesh
	phi     []float64 // caller's signed-distance field, rewritten at the end
	vel     []float64 // caller's velocity field, nil in distance mode
	srcPhi  []float64 // copy of the input field: sign source and crossing data
	dist    []float64 // working unsigned distances (magnitudes)
	extVel  []float64 // working velocities, nil in distance mode
	status  []NodeStatus
	heapPtr []int // node → heap handle; meaningful only while Trial
	heap    *minheap.Heap
	check   bool // verify heap ordering after every pop
}

// newMarcher validates inputs, applies options, and allocates the
// per-run buffers.
func newMarcher(m *mesh.Mesh, phi, vel []float64, opts []Option) (*marcher, error) {
	// 1) Build Options from functional opts.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the mesh and field sizes.
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.NumNodes()
	if len(phi) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldSize, len(phi), n)
	}
	if vel != nil && len(vel) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVelocitySize, len(vel), n)
	}
	if cfg.Mask != nil && len(cfg.Mask) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMaskSize, len(cfg.Mask), n)
	}

	// 3) Allocate working state. The solver marches magnitudes on private
	//    copies so the caller-owned field keeps its sign information until
	//    the final restore.
	r := &marcher{
		m:       m,
		phi:     phi,
		vel:     vel,
		srcPhi:  append([]float64(nil), phi...),
		dist:    make([]float64, n),
		status:  make([]NodeStatus, n),
		heapPtr: make([]int, n),
		heap:    minheap.New(n),
		check:   cfg.HeapCheck,
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	if vel != nil {
		r.extVel = append([]float64(nil), vel...)
	}

	// 4) Apply the mask before anything else; masking takes precedence
	//    over every later phase.
	if cfg.Mask != nil {
		for i, masked := range cfg.Mask {
			if masked {
				r.status[i] = Masked
			}
		}
	}

	return r, nil
}

// march runs the four solver phases to completion and returns the final
// statuses.
func (r *marcher) march() ([]NodeStatus, error) {
	r.initFrozen()
	r.initTrial()
	if err := r.propagate(); err != nil {
		return nil, err
	}
	r.restore()

	return append([]NodeStatus(nil), r.status...), nil
}

// initFrozen scans every grid edge for a sign change of the input field
// and freezes the adjacent nodes at their interpolated distance.
//
// For a node i with value φᵢ and a neighbour j with φᵢ·φⱼ < 0, the
// sub-grid crossing distance along that axis is d = h·|φᵢ|/|φᵢ−φⱼ|.
// Contributions from both crossing axes combine as 1/√(Σ 1/dα²), the
// quadratic update rule restricted to the crossing directions.
// A node lying exactly on the contour (φᵢ == 0) freezes at distance 0.
// Masked nodes are skipped even when adjacent to a crossing, and masked
// neighbours never contribute a crossing.
func (r *marcher) initFrozen() {
	h := r.m.Spacing()
	n := r.m.NumNodes()
	for node := 0; node < n; node++ {
		if r.status[node] == Masked {
			continue
		}
		phi := r.srcPhi[node]
		if phi == 0 {
			r.status[node] = Frozen
			r.dist[node] = 0

			continue
		}

		// Per-axis minimal crossing distance, then inverse-square sum.
		crossed := false
		invSq := 0.0
		for axis := 0; axis < 2; axis++ {
			dAxis := math.Inf(1)
			for _, dir := range axisDirs[axis] {
				nb := r.m.Neighbour(node, dir)
				if nb == mesh.OutOfBounds || r.status[nb] == Masked {
					continue
				}
				if phi*r.srcPhi[nb] < 0 {
					d := h * math.Abs(phi) / math.Abs(phi-r.srcPhi[nb])
					if d < dAxis {
						dAxis = d
					}
				}
			}
			if !math.IsInf(dAxis, 1) {
				crossed = true
				invSq += 1 / (dAxis * dAxis)
			}
		}
		if crossed {
			r.status[node] = Frozen
			r.dist[node] = 1 / math.Sqrt(invSq)
		}
	}
}

// initTrial gives every unfrozen, unmasked neighbour of a frozen node its
// first candidate value and a single heap insertion with a recorded
// back-pointer.
func (r *marcher) initTrial() {
	n := r.m.NumNodes()
	for node := 0; node < n; node++ {
		if r.status[node] != Frozen {
			continue
		}
		for _, nb := range r.m.Neighbours(node) {
			if nb == mesh.OutOfBounds || r.status[nb] != None {
				continue
			}
			val := r.updateNode(nb)
			r.status[nb] = Trial
			r.dist[nb] = val
			r.heapPtr[nb] = r.heap.Push(nb, val)
		}
	}
}

// propagate is the solver loop: pop the minimum trial node, freeze it,
// and re-update its unfrozen, unmasked neighbours.
//
// Loop invariant: the heap contains exactly the Trial nodes, keyed by
// their current candidate magnitude, and the popped key sequence is
// non-decreasing (causality).
func (r *marcher) propagate() error {
	for r.heap.Len() > 0 {
		// 1) Pop the minimum-keyed trial node; its value is final.
		node, key := r.heap.Pop()
		if r.check {
			if err := r.heap.Verify(); err != nil {
				return fmt.Errorf("fmm: heap self-check after freezing node %d: %w", node, err)
			}
		}

		// 2) Freeze it and, in velocity mode, finalise its velocity.
		r.status[node] = Frozen
		r.dist[node] = key
		if r.extVel != nil {
			r.finaliseVelocity(node)
		}

		// 3) Re-update neighbours from the grown frozen set.
		for _, nb := range r.m.Neighbours(node) {
			if nb == mesh.OutOfBounds {
				continue
			}
			switch r.status[nb] {
			case Frozen, Masked:
				continue
			case Trial:
				// Monotone tightening only: never increase a trial key.
				if val := r.updateNode(nb); val < r.dist[nb] {
					r.dist[nb] = val
					r.heap.Update(r.heapPtr[nb], val)
				}
			case None:
				val := r.updateNode(nb)
				r.status[nb] = Trial
				r.dist[nb] = val
				r.heapPtr[nb] = r.heap.Push(nb, val)
			}
		}
	}

	return nil
}

// restore writes the marched magnitudes back into the caller's buffers.
// Signs come from the input field; nodes never frozen (None or Masked)
// keep their input value, and in velocity mode their velocity entries
// stay untouched as well.
func (r *marcher) restore() {
	n := r.m.NumNodes()
	for node := 0; node < n; node++ {
		if r.status[node] != Frozen {
			continue
		}
		if r.srcPhi[node] < 0 {
			r.phi[node] = -r.dist[node]
		} else {
			r.phi[node] = r.dist[node]
		}
		if r.extVel != nil {
			r.vel[node] = r.extVel[node]
		}
	}
}
