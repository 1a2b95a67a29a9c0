// Package meshdata reads D-FLOW map output: the NetCDF file carrying
// flow-element center coordinates and the shear-stress time series.
package meshdata

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/virtualwatershed/ripcas/internal/regrid"
)

// Variable names in D-FLOW map output. The element centers are the x
// and y centers of the finite flow elements.
const (
	xCenterVar = "FlowElem_xcc"
	yCenterVar = "FlowElem_ycc"

	// DefaultShearVar is the bed shear stress series variable.
	DefaultShearVar = "taus"
)

// ReadShearSeries loads the element centers and the named shear-stress
// series from the NetCDF file at path. An empty shearVar selects
// DefaultShearVar. The series variable must be two-dimensional with
// time leading; all time steps are loaded, and the regridder picks the
// last one.
func ReadShearSeries(path, shearVar string) (*regrid.MeshSeries, error) {
	if shearVar == "" {
		shearVar = DefaultShearVar
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh data: %w", err)
	}
	defer f.Close()
	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	x, err := readVector(cf, xCenterVar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	y, err := readVector(cf, yCenterVar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dims := cf.Header.Lengths(shearVar)
	if len(dims) == 0 {
		return nil, fmt.Errorf("%s: missing variable %s", path, shearVar)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("%s: variable %s: want 2 dimensions (time, element), got %d", path, shearVar, len(dims))
	}
	flat, err := readAll(cf, shearVar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	nt, ne := dims[0], dims[1]
	if ne != len(x) {
		return nil, fmt.Errorf("%s: variable %s has %d elements per step, mesh has %d centers", path, shearVar, ne, len(x))
	}
	field := make([][]float64, nt)
	for t := 0; t < nt; t++ {
		field[t] = flat[t*ne : (t+1)*ne]
	}
	return &regrid.MeshSeries{X: x, Y: y, Field: field}, nil
}

func readVector(cf *cdf.File, name string) ([]float64, error) {
	dims := cf.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("missing variable %s", name)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("variable %s: want 1 dimension, got %d", name, len(dims))
	}
	return readAll(cf, name)
}

// readAll reads a whole variable and widens it to float64. D-FLOW
// writes coordinates as doubles and shear as floats, so both payload
// types show up in practice.
func readAll(cf *cdf.File, name string) ([]float64, error) {
	r := cf.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading variable %s: %w", name, err)
	}
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("variable %s: unsupported payload type %T", name, buf)
	}
}
