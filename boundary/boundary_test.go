package boundary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlset/fastmarch/boundary"
	"github.com/lvlset/fastmarch/mesh"
)

// TestDiscretise_Validation verifies the precondition errors.
func TestDiscretise_Validation(t *testing.T) {
	m, err := mesh.New(3, 3, 1.0)
	require.NoError(t, err)

	_, err = boundary.Discretise(nil, make([]float64, 9))
	assert.ErrorIs(t, err, boundary.ErrNilMesh)

	_, err = boundary.Discretise(m, make([]float64, 4))
	assert.ErrorIs(t, err, boundary.ErrFieldSize)
}

// TestDiscretise_PlanarInterpolated checks a vertical interface crossing
// grid edges at sub-grid positions: one interpolated point per row, one
// segment per cell row, total length equal to the grid height.
func TestDiscretise_PlanarInterpolated(t *testing.T) {
	m, err := mesh.New(5, 5, 1.0)
	require.NoError(t, err)
	phi := make([]float64, m.NumNodes())
	for node := range phi {
		x, _ := m.Coordinate(node)
		phi[node] = float64(x) - 1.5
	}

	c, err := boundary.Discretise(m, phi)
	require.NoError(t, err)

	assert.Len(t, c.Points, 5, "one crossing per row")
	assert.Len(t, c.Segments, 4, "one segment per cell row")
	assert.InDelta(t, 4.0, c.Length, 1e-12, "contour spans the grid height")

	var endPoints, midPoints int
	for _, p := range c.Points {
		assert.InDelta(t, 1.5, p.X, 1e-12, "crossing interpolated to x=1.5")
		switch {
		case math.Abs(p.Length-0.5) < 1e-12:
			endPoints++
		case math.Abs(p.Length-1.0) < 1e-12:
			midPoints++
		}
	}
	assert.Equal(t, 2, endPoints, "contour end points carry half a segment")
	assert.Equal(t, 3, midPoints, "interior points carry two half segments")
}

// TestDiscretise_NodeExactZeros checks a contour running exactly through
// grid nodes: shared cell edges must not produce duplicate segments.
func TestDiscretise_NodeExactZeros(t *testing.T) {
	m, err := mesh.New(5, 5, 1.0)
	require.NoError(t, err)
	phi := make([]float64, m.NumNodes())
	for node := range phi {
		x, _ := m.Coordinate(node)
		phi[node] = float64(x) - 2
	}

	c, err := boundary.Discretise(m, phi)
	require.NoError(t, err)

	assert.Len(t, c.Points, 5, "one node-exact zero per row")
	assert.Len(t, c.Segments, 4, "segments on the shared column appear once")
	assert.InDelta(t, 4.0, c.Length, 1e-12)
	for _, p := range c.Points {
		assert.InDelta(t, 2.0, p.X, 1e-12, "points sit on the zero column")
	}
}

// TestDiscretise_SaddleCell checks the ambiguous four-crossing cell: two
// segments, paired by minimal total length.
func TestDiscretise_SaddleCell(t *testing.T) {
	m, err := mesh.New(2, 2, 1.0)
	require.NoError(t, err)
	phi := []float64{-1, 1, 1, -1}

	c, err := boundary.Discretise(m, phi)
	require.NoError(t, err)

	assert.Len(t, c.Points, 4, "one crossing per cell edge")
	assert.Len(t, c.Segments, 2, "saddle cell splits into two segments")
	assert.InDelta(t, math.Sqrt2, c.Length, 1e-12, "two diagonal half-cell cuts")
}

// TestDiscretise_NoContour verifies a single-signed field yields an
// empty contour.
func TestDiscretise_NoContour(t *testing.T) {
	m, err := mesh.New(3, 3, 1.0)
	require.NoError(t, err)
	phi := make([]float64, m.NumNodes())
	for node := range phi {
		phi[node] = 1.0
	}

	c, err := boundary.Discretise(m, phi)
	require.NoError(t, err)
	assert.Empty(t, c.Points)
	assert.Empty(t, c.Segments)
	assert.Zero(t, c.Length)
}
