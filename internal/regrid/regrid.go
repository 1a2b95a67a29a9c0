// Package regrid projects scattered hydraulic-mesh samples onto a
// regular raster grid.
//
// The hydraulic model reports shear stress at unstructured flow-element
// centers; the succession model wants it on the vegetation raster's
// grid. Regrid bridges the two with piecewise-linear interpolation over
// the Delaunay triangulation of the mesh points.
package regrid

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"

	"github.com/virtualwatershed/ripcas/internal/raster"
)

// MeshSeries holds per-element center coordinates and a scalar field
// sampled over a leading time dimension: Field[t][i] is the value at
// element i and time step t. Only the final time step is consumed by
// Regrid; the model always runs from the most recent hydraulic state.
type MeshSeries struct {
	X, Y  []float64
	Field [][]float64
}

// Latest returns the field values at the last time step, or nil when
// the series is empty.
func (m *MeshSeries) Latest() []float64 {
	if len(m.Field) == 0 {
		return nil
	}
	return m.Field[len(m.Field)-1]
}

// Regrid interpolates the series' final time step onto the raster
// described by h. Target sample coordinates are the cell origins
// x = xll + j*cellsize, y = yll + k*cellsize. Points outside the convex
// hull of the mesh come out as NODATA. A mesh too degenerate to
// triangulate (fewer than three non-collinear points) yields an
// all-NODATA grid rather than an error.
func Regrid(m *MeshSeries, h raster.Header) (*raster.Grid, error) {
	field := m.Latest()
	if len(m.X) != len(m.Y) || len(field) != len(m.X) {
		return nil, fmt.Errorf("regrid: mismatched mesh lengths: %d x, %d y, %d values",
			len(m.X), len(m.Y), len(field))
	}
	if h.Ncols <= 0 || h.Nrows <= 0 {
		return nil, fmt.Errorf("regrid: target grid must have positive dimensions, got %d x %d", h.Ncols, h.Nrows)
	}

	vals := sparse.ZerosDense(h.Nrows, h.Ncols)
	li, err := newLinearInterpolator(m.X, m.Y, field)
	if err != nil {
		// degenerate mesh: every target point is undefined
		for i := range vals.Elements {
			vals.Elements[i] = math.NaN()
		}
	} else {
		for k := 0; k < h.Nrows; k++ {
			y := h.Yllcorner + float64(k)*h.Cellsize
			for j := 0; j < h.Ncols; j++ {
				x := h.Xllcorner + float64(j)*h.Cellsize
				vals.Elements[k*h.Ncols+j] = li.at(x, y)
			}
		}
	}

	// The mesh and the vegetation rasters disagree on whether row 0 is
	// the bottom or the top of the domain; flipping here aligns the
	// interpolated grid with the raster convention. Verified against
	// the reference data set. Do not derive this from the header.
	flipud(vals)

	data := vals.Elements
	for i, v := range data {
		if math.IsNaN(v) {
			data[i] = h.NodataValue
		}
	}
	return raster.New(h, data)
}

// flipud reverses the row order of a 2-D dense array in place.
func flipud(a *sparse.DenseArray) {
	nrows, ncols := a.Shape[0], a.Shape[1]
	for top, bot := 0, nrows-1; top < bot; top, bot = top+1, bot-1 {
		for j := 0; j < ncols; j++ {
			a.Elements[top*ncols+j], a.Elements[bot*ncols+j] =
				a.Elements[bot*ncols+j], a.Elements[top*ncols+j]
		}
	}
}
