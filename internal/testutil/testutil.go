// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code
// duplication across test files.
package testutil

import (
	"testing"

	"github.com/virtualwatershed/ripcas/internal/raster"
)

// Nodata is the sentinel used by test fixtures.
const Nodata = -9999.0

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// RowGrid builds a one-row grid with unit cellsize and the standard
// NODATA sentinel — the compact shape most rule tests want.
func RowGrid(t *testing.T, data []float64) *raster.Grid {
	t.Helper()
	g, err := raster.New(raster.Header{
		Ncols: len(data), Nrows: 1, Cellsize: 1, NodataValue: Nodata,
	}, data)
	if err != nil {
		t.Fatalf("building test grid: %v", err)
	}
	return g
}
