package fmm

import (
	"math"

	"github.com/lvlset/fastmarch/mesh"
)

// updateNode computes the candidate unsigned distance at node from its
// currently frozen neighbours.
//
// For each grid axis the frozen neighbour with the smaller absolute value
// is the upwind contributor (the standard upwind choice: the smaller value
// is the side the wavefront expands from). Each contributing axis adds
// 1/h²-weighted terms to the quadratic a·T² − b·T + c = 0; the returned
// root is the larger one, since the distance must exceed every upwind
// neighbour's value.
func (r *marcher) updateNode(node int) float64 {
	h := r.m.Spacing()
	invH2 := 1 / (h * h)

	var a, b, c float64
	minUpwind := math.Inf(1)
	for axis := 0; axis < 2; axis++ {
		upwind := math.Inf(1)
		for _, dir := range axisDirs[axis] {
			nb := r.m.Neighbour(node, dir)
			if nb == mesh.OutOfBounds || r.status[nb] != Frozen {
				continue
			}
			if r.dist[nb] < upwind {
				upwind = r.dist[nb]
			}
		}
		if math.IsInf(upwind, 1) {
			// No frozen neighbour on this axis: it contributes nothing.
			continue
		}
		a += invH2
		b += 2 * upwind * invH2
		c += upwind * upwind * invH2
		if upwind < minUpwind {
			minUpwind = upwind
		}
	}
	c -= 1

	return r.solveQuadratic(a, b, c, minUpwind)
}

// solveQuadratic returns the larger root of a·T² − b·T + c = 0.
//
// Degenerate cases recover locally, never as failures:
//   - a == 0: no axis contributed (guarded; cannot occur once the trial
//     set exists) — fall back to the best upwind value plus h.
//   - negative discriminant: sharp gradient mismatch between the axes —
//     fall back to the one-dimensional estimate from the axis with the
//     smaller upwind value, plus h.
func (r *marcher) solveQuadratic(a, b, c, minUpwind float64) float64 {
	h := r.m.Spacing()
	if a == 0 {
		return minUpwind + h
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return minUpwind + h
	}

	return (b + math.Sqrt(disc)) / (2 * a)
}

// finaliseVelocity sets the extension velocity at a just-frozen node as
// the weighted average of its upwind neighbours' velocities, using the
// same per-axis coefficients wα = (T − Tα)/h² as the distance solve.
// This enforces ∇T·∇f = 0: the velocity stays constant along the
// distance gradient.
//
// When every weight vanishes (the node's distance equals its upwind
// neighbours'), the velocity is copied from the smallest-valued frozen
// neighbour instead of dividing by zero.
func (r *marcher) finaliseVelocity(node int) {
	h := r.m.Spacing()
	invH2 := 1 / (h * h)
	t := r.dist[node]

	var num, den float64
	nearest := mesh.OutOfBounds
	nearestDist := math.Inf(1)
	for axis := 0; axis < 2; axis++ {
		upwind := mesh.OutOfBounds
		for _, dir := range axisDirs[axis] {
			nb := r.m.Neighbour(node, dir)
			if nb == mesh.OutOfBounds || r.status[nb] != Frozen {
				continue
			}
			if upwind == mesh.OutOfBounds || r.dist[nb] < r.dist[upwind] {
				upwind = nb
			}
		}
		if upwind == mesh.OutOfBounds {
			continue
		}
		if r.dist[upwind] < nearestDist {
			nearestDist = r.dist[upwind]
			nearest = upwind
		}
		if w := (t - r.dist[upwind]) * invH2; w > 0 {
			num += w * r.extVel[upwind]
			den += w
		}
	}

	if den > 0 {
		r.extVel[node] = num / den
	} else if nearest != mesh.OutOfBounds {
		r.extVel[node] = r.extVel[nearest]
	}
}
