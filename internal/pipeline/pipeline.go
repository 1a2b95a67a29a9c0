// Package pipeline wires the mesh reader, the regridder and the
// succession engine into the single coupling step exposed to callers:
// one D-FLOW shear output in, one updated vegetation raster out.
package pipeline

import (
	"github.com/virtualwatershed/ripcas/internal/landtable"
	"github.com/virtualwatershed/ripcas/internal/meshdata"
	"github.com/virtualwatershed/ripcas/internal/raster"
	"github.com/virtualwatershed/ripcas/internal/regrid"
	"github.com/virtualwatershed/ripcas/internal/succession"
)

// InputError reports a Params field left at its zero value: neither an
// in-memory value nor a path was supplied.
type InputError struct {
	What string
}

func (e *InputError) Error() string { return "pipeline: no " + e.What + " input provided" }

// GridInput names a raster either already in memory or on disk.
// The zero value is invalid; build one with GridValue or GridFile.
type GridInput struct {
	grid *raster.Grid
	path string
}

// GridValue wraps an in-memory Grid.
func GridValue(g *raster.Grid) GridInput { return GridInput{grid: g} }

// GridFile names an ESRI ASCII raster on disk.
func GridFile(path string) GridInput { return GridInput{path: path} }

func (in GridInput) resolve(what string) (*raster.Grid, error) {
	switch {
	case in.grid != nil:
		return in.grid, nil
	case in.path != "":
		return raster.DecodeFile(in.path)
	default:
		return nil, &InputError{What: what}
	}
}

// MeshInput names shear mesh data either already in memory or in a
// D-FLOW NetCDF file on disk.
type MeshInput struct {
	series *regrid.MeshSeries
	path   string
}

// MeshValue wraps an in-memory mesh series.
func MeshValue(m *regrid.MeshSeries) MeshInput { return MeshInput{series: m} }

// MeshFile names a D-FLOW NetCDF file on disk.
func MeshFile(path string) MeshInput { return MeshInput{path: path} }

func (in MeshInput) resolve(shearVar string) (*regrid.MeshSeries, error) {
	switch {
	case in.series != nil:
		return in.series, nil
	case in.path != "":
		return meshdata.ReadShearSeries(in.path, shearVar)
	default:
		return nil, &InputError{What: "shear mesh"}
	}
}

// TableInput names a resistance table either already built or in a
// landscape workbook on disk.
type TableInput struct {
	table succession.ResistanceTable
	path  string
}

// TableValue wraps an already-built table.
func TableValue(t succession.ResistanceTable) TableInput { return TableInput{table: t} }

// TableFile names a landscape workbook on disk.
func TableFile(path string) TableInput { return TableInput{path: path} }

func (in TableInput) resolve(cols landtable.Columns) (succession.ResistanceTable, error) {
	switch {
	case in.table != nil:
		return in.table, nil
	case in.path != "":
		if cols == (landtable.Columns{}) {
			cols = landtable.DefaultColumns()
		}
		return landtable.Read(in.path, cols)
	default:
		return nil, &InputError{What: "resistance table"}
	}
}

// Params configures one coupling step. Vegetation, Zone, Shear and
// Table are required; ShearVar and Columns fall back to the D-FLOW and
// workbook defaults when zero.
type Params struct {
	Vegetation GridInput
	Zone       GridInput
	Shear      MeshInput
	Table      TableInput

	// ShearVar overrides the NetCDF shear variable name.
	ShearVar string
	// Columns overrides the workbook column names.
	Columns landtable.Columns
}

// Result carries the outputs of one coupling step.
type Result struct {
	// Vegetation is the updated vegetation map.
	Vegetation *raster.Grid
	// Shear is the mesh shear stress regridded onto the raster grid.
	Shear *raster.Grid
	// Roughness is the Manning n map for the next hydraulic run.
	Roughness *raster.Grid
}

// Run performs one succession step: resolve the inputs, regrid the
// latest shear state onto the vegetation raster's footprint, update the
// vegetation map against the resistance table, and derive the roughness
// map for the next hydraulic run. All logic lives in the component
// packages; Run only threads parameters.
func Run(p Params) (*Result, error) {
	veg, err := p.Vegetation.resolve("vegetation grid")
	if err != nil {
		return nil, err
	}
	zone, err := p.Zone.resolve("zone grid")
	if err != nil {
		return nil, err
	}
	series, err := p.Shear.resolve(p.ShearVar)
	if err != nil {
		return nil, err
	}
	table, err := p.Table.resolve(p.Columns)
	if err != nil {
		return nil, err
	}

	shear, err := regrid.Regrid(series, veg.Header)
	if err != nil {
		return nil, err
	}
	updated, err := succession.Step(veg, zone, shear, table)
	if err != nil {
		return nil, err
	}
	return &Result{
		Vegetation: updated,
		Shear:      shear,
		Roughness:  succession.RoughnessGrid(updated, table),
	}, nil
}
