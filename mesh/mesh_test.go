package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lvlset/fastmarch/mesh"
)

//----------------------------------------------------------------------------//
// Constructor Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions and bad spacing.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		spacing float64
		err     error
	}{
		{"ZeroWidth", 0, 3, 1.0, mesh.ErrEmptyMesh},
		{"ZeroHeight", 3, 0, 1.0, mesh.ErrEmptyMesh},
		{"NegativeWidth", -1, 3, 1.0, mesh.ErrEmptyMesh},
		{"ZeroSpacing", 3, 3, 0, mesh.ErrBadSpacing},
		{"NegativeSpacing", 3, 3, -0.5, mesh.ErrBadSpacing},
		{"NaNSpacing", 3, 3, math.NaN(), mesh.ErrBadSpacing},
		{"InfSpacing", 3, 3, math.Inf(1), mesh.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.New(tc.w, tc.h, tc.spacing)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%g) error = %v; want %v", tc.w, tc.h, tc.spacing, err, tc.err)
			}
		})
	}
}

// TestNew_Accessors checks the basic dimension accessors on a 4×3 mesh.
func TestNew_Accessors(t *testing.T) {
	m, err := mesh.New(4, 3, 0.5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Errorf("dimensions = %d×%d; want 4×3", m.Width(), m.Height())
	}
	if m.NumNodes() != 12 {
		t.Errorf("NumNodes = %d; want 12", m.NumNodes())
	}
	if m.Spacing() != 0.5 {
		t.Errorf("Spacing = %g; want 0.5", m.Spacing())
	}
}

//----------------------------------------------------------------------------//
// Indexing Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate_RoundTrip verifies Index and Coordinate are inverses
// over every node of a 5×4 mesh.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	m, err := mesh.New(5, 4, 1.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			idx := m.Index(x, y)
			gx, gy := m.Coordinate(idx)
			if gx != x || gy != y {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
	if m.Index(0, 0) != 0 || m.Index(4, 3) != 19 {
		t.Errorf("row-major corners: Index(0,0)=%d Index(4,3)=%d; want 0, 19",
			m.Index(0, 0), m.Index(4, 3))
	}
}

// TestPosition checks physical positions scale with spacing.
func TestPosition(t *testing.T) {
	m, err := mesh.New(3, 3, 2.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	px, py := m.Position(m.Index(2, 1))
	if px != 4.0 || py != 2.0 {
		t.Errorf("Position(2,1) = (%g,%g); want (4,2)", px, py)
	}
}

//----------------------------------------------------------------------------//
// Neighbour Tests
//----------------------------------------------------------------------------//

// TestNeighbour_Interior verifies all four directions for an interior node.
func TestNeighbour_Interior(t *testing.T) {
	m, err := mesh.New(3, 3, 1.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	centre := m.Index(1, 1)
	want := map[mesh.Direction]int{
		mesh.West:  m.Index(0, 1),
		mesh.East:  m.Index(2, 1),
		mesh.South: m.Index(1, 0),
		mesh.North: m.Index(1, 2),
	}
	for dir, expect := range want {
		if got := m.Neighbour(centre, dir); got != expect {
			t.Errorf("Neighbour(centre, %d) = %d; want %d", dir, got, expect)
		}
	}
}

// TestNeighbour_Edges verifies the OutOfBounds sentinel on grid edges
// and that Neighbours agrees with Neighbour direction by direction.
func TestNeighbour_Edges(t *testing.T) {
	m, err := mesh.New(3, 2, 1.0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	corner := m.Index(0, 0)
	if m.Neighbour(corner, mesh.West) != mesh.OutOfBounds {
		t.Error("West of (0,0) should be OutOfBounds")
	}
	if m.Neighbour(corner, mesh.South) != mesh.OutOfBounds {
		t.Error("South of (0,0) should be OutOfBounds")
	}
	if m.Neighbour(corner, mesh.East) != m.Index(1, 0) {
		t.Error("East of (0,0) should be (1,0)")
	}

	for node := 0; node < m.NumNodes(); node++ {
		nbs := m.Neighbours(node)
		for dir := mesh.Direction(0); dir < mesh.NumDirections; dir++ {
			if nbs[dir] != m.Neighbour(node, dir) {
				t.Errorf("Neighbours(%d)[%d] disagrees with Neighbour", node, dir)
			}
		}
	}
}
