// Package succession implements the CASiMiR per-cell vegetation update
// rule: compare modelled shear stress against per-class resistance and
// reseed or age each cell for one time step.
package succession

import (
	"fmt"
	"sort"

	"github.com/virtualwatershed/ripcas/internal/raster"
)

// LandUse carries the per-class parameters read from the landscape
// workbook.
type LandUse struct {
	// ShearResistance is the shear stress (N/m2) above which the class
	// is destroyed and the cell reseeds from the zone map.
	ShearResistance float64
	// ManningN is the hydraulic roughness fed back to the flow model.
	ManningN float64
}

// ResistanceTable maps vegetation class codes to their landscape
// parameters. Built once from the workbook; read-only afterwards.
type ResistanceTable map[int]LandUse

// ValidationError reports vegetation class codes present in the
// vegetation grid but absent from the resistance table. It is raised
// before any cell is processed so a bad table fails once and
// deterministically instead of at whichever cell is looked up first.
type ValidationError struct {
	Missing []int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("succession: vegetation codes missing from resistance table: %v", e.Missing)
}

// Step applies one succession step and returns the updated vegetation
// map as a new Grid; none of the inputs are modified.
//
// The three grids must be cell-aligned: identical ncols and nrows.
// Corner and cellsize agreement is the caller's contract and is not
// checked. Per cell: bare ground (code 0) is left alone; a cell whose
// shear exceeds its class resistance reseeds from the zone map; any
// cell with valid shear and vegetation data then ages by one, which
// deliberately includes cells reseeded in the same pass, so a reset
// cell comes out at age one rather than at the raw zone code. Cells
// where shear or vegetation is NODATA pass through unchanged.
func Step(veg, zone, shear *raster.Grid, table ResistanceTable) (*raster.Grid, error) {
	if err := checkAligned(veg, zone, shear); err != nil {
		return nil, err
	}
	if err := checkCodes(veg, table); err != nil {
		return nil, err
	}

	out := veg.Clone()
	for i, v := range veg.Data {
		code := int(v)
		if code == 0 {
			continue
		}
		valid := shear.Data[i] != shear.NodataValue && v != veg.NodataValue
		if !valid {
			continue
		}
		if shear.Data[i] > table[code].ShearResistance {
			out.Data[i] = zone.Data[i]
		}
		out.Data[i]++
	}
	return out, nil
}

// RoughnessGrid maps each vegetation class in veg to its Manning n
// value, producing the roughness raster handed back to the hydraulic
// model for its next run. NODATA cells and codes without a table entry
// come out as NODATA.
func RoughnessGrid(veg *raster.Grid, table ResistanceTable) *raster.Grid {
	out := veg.Clone()
	for i, v := range veg.Data {
		lu, ok := table[int(v)]
		if v == veg.NodataValue || !ok {
			out.Data[i] = veg.NodataValue
			continue
		}
		out.Data[i] = lu.ManningN
	}
	return out
}

func checkAligned(veg, zone, shear *raster.Grid) error {
	if zone.Ncols != veg.Ncols || zone.Nrows != veg.Nrows {
		return fmt.Errorf("succession: zone grid is %dx%d, vegetation grid is %dx%d",
			zone.Ncols, zone.Nrows, veg.Ncols, veg.Nrows)
	}
	if shear.Ncols != veg.Ncols || shear.Nrows != veg.Nrows {
		return fmt.Errorf("succession: shear grid is %dx%d, vegetation grid is %dx%d",
			shear.Ncols, shear.Nrows, veg.Ncols, veg.Nrows)
	}
	return nil
}

// checkCodes collects every distinct code that the per-cell rule could
// look up (nonzero, non-NODATA) and verifies table membership up front.
func checkCodes(veg *raster.Grid, table ResistanceTable) error {
	seen := make(map[int]bool)
	for _, v := range veg.Data {
		if v == veg.NodataValue {
			continue
		}
		if code := int(v); code != 0 {
			seen[code] = true
		}
	}
	var missing []int
	for code := range seen {
		if _, ok := table[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return &ValidationError{Missing: missing}
	}
	return nil
}
