package mesh

import "math"

// OutOfBounds is the sentinel returned by Neighbour (and filled into
// Neighbours) when a node has no neighbour in the requested direction,
// i.e. the node lies on the corresponding grid edge.
const OutOfBounds = -1

// Direction selects one of the four orthogonal neighbours of a node.
type Direction int

const (
	// West is the neighbour at (x-1, y).
	West Direction = iota
	// East is the neighbour at (x+1, y).
	East
	// South is the neighbour at (x, y-1).
	South
	// North is the neighbour at (x, y+1).
	North

	// NumDirections is the number of orthogonal neighbour directions.
	NumDirections = 4
)

// offsets maps each Direction to its (dx, dy) grid offset.
var offsets = [NumDirections][2]int{
	West:  {-1, 0},
	East:  {1, 0},
	South: {0, -1},
	North: {0, 1},
}

// Mesh is a uniform Width×Height node grid with constant spacing.
// It is immutable once built; all methods are safe for concurrent use.
type Mesh struct {
	width   int
	height  int
	spacing float64
	nNodes  int
}

// New constructs a Mesh of width×height nodes separated by spacing.
// Returns ErrEmptyMesh if either dimension is below 1,
// ErrBadSpacing if spacing is not a positive finite number.
// Complexity: O(1) time and memory.
func New(width, height int, spacing float64) (*Mesh, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyMesh
	}
	if spacing <= 0 || math.IsInf(spacing, 1) || math.IsNaN(spacing) {
		return nil, ErrBadSpacing
	}

	return &Mesh{
		width:   width,
		height:  height,
		spacing: spacing,
		nNodes:  width * height,
	}, nil
}

// NumNodes returns the total node count (Width × Height).
func (m *Mesh) NumNodes() int { return m.nNodes }

// Width returns the number of nodes along the x axis.
func (m *Mesh) Width() int { return m.width }

// Height returns the number of nodes along the y axis.
func (m *Mesh) Height() int { return m.height }

// Spacing returns the uniform grid spacing h.
func (m *Mesh) Spacing() float64 { return m.spacing }

// InBounds reports whether grid coordinates (x, y) lie on the mesh.
// Complexity: O(1).
func (m *Mesh) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps grid coordinates (x, y) to the row-major node index y*Width + x.
// Complexity: O(1).
func (m *Mesh) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major node index back to grid coordinates (x, y).
// Complexity: O(1).
func (m *Mesh) Coordinate(node int) (x, y int) {
	return node % m.width, node / m.width
}

// Position returns the physical position of a node: (x·h, y·h).
// Complexity: O(1).
func (m *Mesh) Position(node int) (px, py float64) {
	x, y := m.Coordinate(node)

	return float64(x) * m.spacing, float64(y) * m.spacing
}

// Neighbour returns the node index of the 4-connected neighbour of node
// in direction dir, or OutOfBounds when the node lies on that grid edge.
// Complexity: O(1).
func (m *Mesh) Neighbour(node int, dir Direction) int {
	x, y := m.Coordinate(node)
	nx, ny := x+offsets[dir][0], y+offsets[dir][1]
	if !m.InBounds(nx, ny) {
		return OutOfBounds
	}

	return m.Index(nx, ny)
}

// Neighbours returns all four orthogonal neighbours of node, indexed by
// Direction, with OutOfBounds filled in for edge directions.
// Complexity: O(1), no allocation.
func (m *Mesh) Neighbours(node int) [NumDirections]int {
	var nbs [NumDirections]int
	for dir := Direction(0); dir < NumDirections; dir++ {
		nbs[dir] = m.Neighbour(node, dir)
	}

	return nbs
}
