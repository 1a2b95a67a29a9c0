// Package raster owns the ESRI ASCII raster data model used to exchange
// state between the hydraulic model and the succession model.
//
// Responsibilities: the Grid type, its text codec, and matrix views.
// Grids are value-semantic: every transformation returns a new Grid, and
// no component mutates a Grid it did not construct itself.
package raster

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Header holds the six fields of an ESRI ASCII raster header. The same
// record doubles as the target-grid parameters for regridding, so one
// raster's footprint can be reused to interpolate another onto it.
type Header struct {
	Ncols       int
	Nrows       int
	Xllcorner   float64
	Yllcorner   float64
	Cellsize    float64
	NodataValue float64
}

// Cells returns the number of cells the header describes.
func (h Header) Cells() int { return h.Ncols * h.Nrows }

// Grid is a regular raster: a Header plus Ncols*Nrows values stored
// row-major with row 0 as the topmost row.
type Grid struct {
	Header
	Data []float64
}

// New constructs a Grid from a header and a flat row-major data slice.
// The slice is used directly, not copied.
func New(h Header, data []float64) (*Grid, error) {
	if h.Ncols <= 0 || h.Nrows <= 0 {
		return nil, &FormatError{Detail: fmt.Sprintf("ncols and nrows must be positive, got %d x %d", h.Ncols, h.Nrows)}
	}
	if len(data) != h.Cells() {
		return nil, &FormatError{Detail: fmt.Sprintf(
			"data length %d does not equal ncols*nrows (%d*%d = %d)",
			len(data), h.Ncols, h.Nrows, h.Cells())}
	}
	return &Grid{Header: h, Data: data}, nil
}

// Clone returns a deep copy of g sharing no storage with it.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return &Grid{Header: g.Header, Data: data}
}

// Matrix returns the grid data reshaped to an Nrows x Ncols dense
// array. The array is a copy; modifying it does not touch g.
func (g *Grid) Matrix() *sparse.DenseArray {
	m := sparse.ZerosDense(g.Nrows, g.Ncols)
	copy(m.Elements, g.Data)
	return m
}

// MatrixReplaceNodata is Matrix with every NODATA cell replaced by v.
// Useful when handing the grid to numeric code that has no sentinel
// concept.
func (g *Grid) MatrixReplaceNodata(v float64) *sparse.DenseArray {
	m := g.Matrix()
	for i, e := range m.Elements {
		if e == g.NodataValue {
			m.Elements[i] = v
		}
	}
	return m
}

// Equal reports whether g and o match exactly: every header field and
// every data element. Intended for regression fixtures; interpolation
// output needs a tolerance compare instead.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.Header != o.Header || len(g.Data) != len(o.Data) {
		return false
	}
	for i, v := range g.Data {
		if v != o.Data[i] {
			return false
		}
	}
	return true
}
