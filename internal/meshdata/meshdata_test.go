package meshdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/virtualwatershed/ripcas/internal/testutil"
)

func TestReadShearSeriesMissingFile(t *testing.T) {
	_, err := ReadShearSeries(filepath.Join(t.TempDir(), "nope.nc"), "")
	testutil.AssertError(t, err)
}

func TestReadShearSeriesNotNetCDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.nc")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("not a netcdf file"), 0o644))
	_, err := ReadShearSeries(path, "")
	testutil.AssertError(t, err)
}
