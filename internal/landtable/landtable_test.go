package landtable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/virtualwatershed/ripcas/internal/succession"
)

// writeWorkbook saves a minimal landscape workbook and returns its path.
// The header carries the Code column twice, as the real workbook does;
// the first copy holds map colour codes that must be ignored.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for rn, row := range rows {
		for cn, v := range row {
			cell, err := excelize.CoordinatesToCellName(cn+1, rn+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "landscape.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadUsesLastCodeColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "Description", "Code", "shear_resis", "n_val"},
		{101, "cottonwood", 2, 5.0, 0.12},
		{102, "willow", 3, 2.0, 0.08},
	})

	table, err := Read(path, DefaultColumns())
	require.NoError(t, err)
	want := succession.ResistanceTable{
		2: {ShearResistance: 5, ManningN: 0.12},
		3: {ShearResistance: 2, ManningN: 0.08},
	}
	require.Equal(t, want, table)
}

func TestReadRoughnessColumnOptional(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "shear_resis"},
		{2, 5.0},
	})

	table, err := Read(path, DefaultColumns())
	require.NoError(t, err)
	require.Equal(t, succession.ResistanceTable{2: {ShearResistance: 5}}, table)
}

func TestReadSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "shear_resis"},
		{2, 5.0},
		{"", ""},
		{3, 2.0},
	})

	table, err := Read(path, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, table, 2)
}

func TestReadMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "n_val"},
		{2, 0.12},
	})

	_, err := Read(path, DefaultColumns())
	require.Error(t, err)
	require.Contains(t, err.Error(), "shear_resis")
}

func TestReadBadCode(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "shear_resis"},
		{"riparian", 5.0},
	})

	_, err := Read(path, DefaultColumns())
	require.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultColumns())
	require.Error(t, err)
}
