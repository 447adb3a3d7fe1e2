package boundary

import (
	"math"

	"github.com/lvlset/fastmarch/mesh"
)

// Point is one discretised boundary point: its physical position and the
// integral length associated with it (half the length of each segment
// the point belongs to).
type Point struct {
	X, Y   float64
	Length float64
}

// Segment links two boundary points (indices into Contour.Points) across
// one grid cell.
type Segment struct {
	Start, End int
	Length     float64
}

// Contour is the discretised zero contour of a level-set field.
type Contour struct {
	Points   []Point
	Segments []Segment
	// Length is the total contour length, the sum of all segment lengths.
	Length float64
}

// pointKey identifies a boundary point uniquely so that points shared
// between cells are stored once. Node-exact zeros key on the node index
// (edge == -1); interpolated crossings key on the lower node of the edge
// plus the edge direction.
type pointKey struct {
	node int
	edge int
}

// Discretise computes the boundary points and segments of phi's zero
// contour on m.
//
// Points are collected from nodes where phi is exactly zero and from
// grid edges whose endpoint values differ in sign, with the crossing
// position linearly interpolated as t = φᵢ/(φᵢ−φⱼ) along the edge.
// Each grid cell then contributes segments between the points on its
// perimeter: two points give one segment; four points (a saddle cell)
// give the two-segment pairing with the smaller total length; any other
// count leaves the cell uncut.
//
// Complexity: O(W×H) time and memory.
func Discretise(m *mesh.Mesh, phi []float64) (*Contour, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(phi) != m.NumNodes() {
		return nil, ErrFieldSize
	}

	d := &discretiser{
		m:     m,
		phi:   phi,
		c:     &Contour{},
		index: make(map[pointKey]int),
		seen:  make(map[[2]int]bool),
	}

	// Walk every cell; shared points are deduplicated through the index.
	for y := 0; y < m.Height()-1; y++ {
		for x := 0; x < m.Width()-1; x++ {
			d.cutCell(x, y)
		}
	}

	d.computeLengths()

	return d.c, nil
}

// discretiser accumulates contour state while walking the grid cells.
type discretiser struct {
	m     *mesh.Mesh
	phi   []float64
	c     *Contour
	index map[pointKey]int
	seen  map[[2]int]bool // canonical point pairs already linked
}

// cutCell collects the boundary points on the perimeter of the cell with
// lower-left node (x, y) and links them into segments.
func (d *discretiser) cutCell(x, y int) {
	m := d.m
	corners := [4]int{
		m.Index(x, y),
		m.Index(x+1, y),
		m.Index(x+1, y+1),
		m.Index(x, y+1),
	}
	// Perimeter edges as corner pairs, with the direction of each edge
	// from its lower node (East for horizontal, North for vertical).
	edges := [4][2]int{
		{corners[0], corners[1]},
		{corners[1], corners[2]},
		{corners[3], corners[2]},
		{corners[0], corners[3]},
	}
	edgeDirs := [4]mesh.Direction{mesh.East, mesh.North, mesh.East, mesh.North}

	var pts []int
	seen := make(map[int]bool, 4)
	add := func(idx int) {
		if !seen[idx] {
			seen[idx] = true
			pts = append(pts, idx)
		}
	}

	for _, node := range corners {
		if d.phi[node] == 0 {
			add(d.nodePoint(node))
		}
	}
	for e, pair := range edges {
		lo, hi := pair[0], pair[1]
		if d.phi[lo]*d.phi[hi] < 0 {
			add(d.edgePoint(lo, hi, edgeDirs[e]))
		}
	}

	switch len(pts) {
	case 2:
		d.link(pts[0], pts[1])
	case 4:
		// Saddle cell: of the two pairings that keep the contour inside
		// the cell, take the one with the smaller total length.
		if d.dist(pts[0], pts[1])+d.dist(pts[2], pts[3]) <=
			d.dist(pts[0], pts[3])+d.dist(pts[1], pts[2]) {
			d.link(pts[0], pts[1])
			d.link(pts[2], pts[3])
		} else {
			d.link(pts[0], pts[3])
			d.link(pts[1], pts[2])
		}
	}
}

// nodePoint returns the point index for a node lying exactly on the
// contour, adding it on first sight.
func (d *discretiser) nodePoint(node int) int {
	key := pointKey{node: node, edge: -1}
	if idx, ok := d.index[key]; ok {
		return idx
	}
	px, py := d.m.Position(node)
	d.c.Points = append(d.c.Points, Point{X: px, Y: py})
	d.index[key] = len(d.c.Points) - 1

	return d.index[key]
}

// edgePoint returns the point index for the interpolated crossing on the
// edge from node lo in direction dir, adding it on first sight.
func (d *discretiser) edgePoint(lo, hi int, dir mesh.Direction) int {
	key := pointKey{node: lo, edge: int(dir)}
	if idx, ok := d.index[key]; ok {
		return idx
	}
	t := d.phi[lo] / (d.phi[lo] - d.phi[hi])
	px, py := d.m.Position(lo)
	if dir == mesh.East {
		px += t * d.m.Spacing()
	} else {
		py += t * d.m.Spacing()
	}
	d.c.Points = append(d.c.Points, Point{X: px, Y: py})
	d.index[key] = len(d.c.Points) - 1

	return d.index[key]
}

// link appends a segment between two point indices. A segment whose both
// endpoints are node-exact zeros lies on a shared cell edge and is seen
// from both cells; the canonical-pair set keeps it once.
func (d *discretiser) link(a, b int) {
	key := [2]int{a, b}
	if b < a {
		key = [2]int{b, a}
	}
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.c.Segments = append(d.c.Segments, Segment{Start: a, End: b})
}

// dist is the Euclidean distance between two stored points.
func (d *discretiser) dist(a, b int) float64 {
	pa, pb := d.c.Points[a], d.c.Points[b]

	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

// computeLengths fills in segment lengths, per-point integral lengths
// (half of every incident segment), and the total contour length.
func (d *discretiser) computeLengths() {
	for i := range d.c.Segments {
		s := &d.c.Segments[i]
		s.Length = d.dist(s.Start, s.End)
		d.c.Points[s.Start].Length += 0.5 * s.Length
		d.c.Points[s.End].Length += 0.5 * s.Length
		d.c.Length += s.Length
	}
}
