// Package landtable reads the landscape workbook that parameterises the
// succession model: one row per vegetation class, with the class code,
// its shear resistance and its Manning roughness.
package landtable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/virtualwatershed/ripcas/internal/succession"
)

// Columns names the workbook columns used to build the resistance
// table. The workbook may carry the code header more than once (map
// colour code and vegetation class code); the LAST occurrence is used,
// matching the original watershed parameterisation.
type Columns struct {
	Code       string
	Resistance string
	Roughness  string
}

// DefaultColumns returns the column names of the standard workbook.
func DefaultColumns() Columns {
	return Columns{Code: "Code", Resistance: "shear_resis", Roughness: "n_val"}
}

// Read parses the first sheet of the workbook at path into a
// ResistanceTable. The first row is taken as the header row; rows with
// an empty code cell are skipped. The roughness column is optional —
// classes default to zero roughness when it is absent.
func Read(path string, cols Columns) (succession.ResistanceTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening landscape workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s: sheet %q is empty", path, sheet)
	}

	codeIdx, resIdx, nIdx := -1, -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case cols.Code:
			codeIdx = i // last occurrence wins
		case cols.Resistance:
			resIdx = i
		case cols.Roughness:
			nIdx = i
		}
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("workbook %s: no %q column", path, cols.Code)
	}
	if resIdx < 0 {
		return nil, fmt.Errorf("workbook %s: no %q column", path, cols.Resistance)
	}

	table := make(succession.ResistanceTable)
	for rn, row := range rows[1:] {
		codeCell := cellAt(row, codeIdx)
		if codeCell == "" {
			continue
		}
		code, err := parseCode(codeCell)
		if err != nil {
			return nil, fmt.Errorf("workbook %s row %d: bad code %q", path, rn+2, codeCell)
		}
		res, err := strconv.ParseFloat(cellAt(row, resIdx), 64)
		if err != nil {
			return nil, fmt.Errorf("workbook %s row %d: bad %s value %q", path, rn+2, cols.Resistance, cellAt(row, resIdx))
		}
		var n float64
		if nIdx >= 0 {
			if cell := cellAt(row, nIdx); cell != "" {
				if n, err = strconv.ParseFloat(cell, 64); err != nil {
					return nil, fmt.Errorf("workbook %s row %d: bad %s value %q", path, rn+2, cols.Roughness, cell)
				}
			}
		}
		table[code] = succession.LandUse{ShearResistance: res, ManningN: n}
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("workbook %s: no class rows", path)
	}
	return table, nil
}

// cellAt returns the trimmed cell value, tolerating the short rows
// excelize produces when trailing cells are empty.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCode accepts integer codes whether the sheet stores them as
// integers or as floats like "2.0".
func parseCode(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, fmt.Errorf("non-integer code %v", v)
	}
	return int(v), nil
}
