// File: fmm/example_test.go
package fmm_test

import (
	"fmt"

	"github.com/lvlset/fastmarch/fmm"
	"github.com/lvlset/fastmarch/mesh"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Reinit
////////////////////////////////////////////////////////////////////////////////

// ExampleReinit reinitialises a one-dimensional strip whose values
// already form an exact signed-distance function: the march reproduces
// the input, demonstrating idempotence.
// Scenario:
//
//   - 4×1 strip, spacing h = 1.
//   - Interface halfway between nodes 1 and 2 (values −0.5 and +0.5).
//   - Output preserves each node's sign and distance.
func ExampleReinit() {
	m, _ := mesh.New(4, 1, 1.0)
	phi := []float64{-1.5, -0.5, 0.5, 1.5}

	stat, _ := fmm.Reinit(m, phi)
	fmt.Println("field:", phi)
	fmt.Println("status:", stat[0], stat[1], stat[2], stat[3])

	// Output:
	// field: [-1.5 -0.5 0.5 1.5]
	// status: Frozen Frozen Frozen Frozen
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExtendVelocity
////////////////////////////////////////////////////////////////////////////////

// ExampleExtendVelocity extends a boundary velocity outward from the
// interface. The boundary nodes (1 and 2) carry velocity 3; the
// extension fills the remaining nodes with the same value, since a
// constant field is a fixed point of the scheme.
func ExampleExtendVelocity() {
	m, _ := mesh.New(4, 1, 1.0)
	phi := []float64{-1.5, -0.5, 0.5, 1.5}
	vel := []float64{0, 3, 3, 0}

	_, _ = fmm.ExtendVelocity(m, phi, vel)
	fmt.Println("velocity:", vel)

	// Output:
	// velocity: [3 3 3 3]
}
