package lsio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/lvlset/fastmarch/mesh"
)

const (
	magic   = "LVLSETFD"
	version = uint32(1)
)

// binHeader frames the binary field format: magic, format version, and
// the grid dimensions the field was written for.
type binHeader struct {
	Magic   [8]byte
	Version uint32
	Width   uint32
	Height  uint32
}

// DatapointName builds the conventional zero-padded file name for one
// datapoint of an optimisation trajectory, e.g.
// DatapointName("level-set", 42, "vtk") → "level-set_0042.vtk".
func DatapointName(prefix string, datapoint int, ext string) string {
	return fmt.Sprintf("%s_%04d.%s", prefix, datapoint, ext)
}

// validate runs the shared mesh/field checks for the save functions.
func validate(m *mesh.Mesh, phi []float64) error {
	if m == nil {
		return ErrNilMesh
	}
	if len(phi) != m.NumNodes() {
		return fmt.Errorf("%w: got %d, want %d", ErrFieldSize, len(phi), m.NumNodes())
	}

	return nil
}

// SaveTXT writes phi as one value per line in row-major node order.
// With withXY, each line is prefixed by the node's physical position:
// "x y value". Values are formatted so that LoadTXT round-trips exactly.
func SaveTXT(w io.Writer, m *mesh.Mesh, phi []float64, withXY bool) error {
	if err := validate(m, phi); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for node, v := range phi {
		if withXY {
			px, py := m.Position(node)
			if _, err := fmt.Fprintf(bw, "%s %s ",
				strconv.FormatFloat(px, 'g', -1, 64),
				strconv.FormatFloat(py, 'g', -1, 64)); err != nil {
				return fmt.Errorf("lsio: write txt: %w", err)
			}
		}
		if _, err := fmt.Fprintf(bw, "%s\n", strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return fmt.Errorf("lsio: write txt: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("lsio: write txt: %w", err)
	}

	return nil
}

// LoadTXT reads a field written by SaveTXT for mesh m. With withXY the
// leading position columns are parsed and discarded; only the trailing
// value column is kept.
func LoadTXT(r io.Reader, m *mesh.Mesh, withXY bool) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.NumNodes()
	phi := make([]float64, n)
	br := bufio.NewReader(r)
	for node := 0; node < n; node++ {
		var v float64
		var err error
		if withXY {
			var px, py float64
			_, err = fmt.Fscan(br, &px, &py, &v)
		} else {
			_, err = fmt.Fscan(br, &v)
		}
		if err != nil {
			return nil, fmt.Errorf("lsio: read txt value %d of %d: %w", node, n, err)
		}
		phi[node] = v
	}

	return phi, nil
}

// SaveBIN writes phi as little-endian float64 values behind a
// magic/version/dimensions header.
func SaveBIN(w io.Writer, m *mesh.Mesh, phi []float64) error {
	if err := validate(m, phi); err != nil {
		return err
	}
	hdr := binHeader{
		Version: version,
		Width:   uint32(m.Width()),
		Height:  uint32(m.Height()),
	}
	copy(hdr.Magic[:], magic)
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("lsio: write bin header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, phi); err != nil {
		return fmt.Errorf("lsio: write bin field: %w", err)
	}

	return nil
}

// LoadBIN reads a field written by SaveBIN and checks it was written for
// a grid of m's dimensions (ErrDimensionMismatch otherwise).
func LoadBIN(r io.Reader, m *mesh.Mesh) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	var hdr binHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("lsio: read bin header: %w", err)
	}
	if string(hdr.Magic[:]) != magic {
		return nil, ErrBadMagic
	}
	if hdr.Version != version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadVersion, hdr.Version, version)
	}
	if int(hdr.Width) != m.Width() || int(hdr.Height) != m.Height() {
		return nil, fmt.Errorf("%w: file %d×%d, mesh %d×%d",
			ErrDimensionMismatch, hdr.Width, hdr.Height, m.Width(), m.Height())
	}
	phi := make([]float64, m.NumNodes())
	if err := binary.Read(r, binary.LittleEndian, phi); err != nil {
		return nil, fmt.Errorf("lsio: read bin field: %w", err)
	}

	return phi, nil
}

// SaveVTK writes the field as an ASCII ParaView RECTILINEAR_GRID dataset
// with the signed distance as point data. A non-nil vel adds a second
// scalar block holding the extension velocity.
func SaveVTK(w io.Writer, m *mesh.Mesh, phi, vel []float64) error {
	if err := validate(m, phi); err != nil {
		return err
	}
	if vel != nil && len(vel) != m.NumNodes() {
		return fmt.Errorf("%w: velocity got %d, want %d", ErrFieldSize, len(vel), m.NumNodes())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(bw, "Para0\n")
	fmt.Fprintf(bw, "ASCII\n")
	fmt.Fprintf(bw, "DATASET RECTILINEAR_GRID\n")
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", m.Width(), m.Height(), 1)
	fmt.Fprintf(bw, "X_COORDINATES %d double\n", m.Width())
	for i := 0; i < m.Width(); i++ {
		fmt.Fprintf(bw, "%g ", float64(i)*m.Spacing())
	}
	fmt.Fprintf(bw, "\nY_COORDINATES %d double\n", m.Height())
	for i := 0; i < m.Height(); i++ {
		fmt.Fprintf(bw, "%g ", float64(i)*m.Spacing())
	}
	fmt.Fprintf(bw, "\nZ_COORDINATES 1 double\n0\n\n")

	fmt.Fprintf(bw, "POINT_DATA %d\n", m.NumNodes())
	fmt.Fprintf(bw, "SCALARS level-set double 1\n")
	fmt.Fprintf(bw, "LOOKUP_TABLE default\n")
	for _, v := range phi {
		fmt.Fprintf(bw, "%g\n", v)
	}
	if vel != nil {
		fmt.Fprintf(bw, "SCALARS velocity double 1\n")
		fmt.Fprintf(bw, "LOOKUP_TABLE default\n")
		for _, v := range vel {
			fmt.Fprintf(bw, "%g\n", v)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("lsio: write vtk: %w", err)
	}

	return nil
}
