package raster

import (
	"errors"
	"testing"
)

func TestNewRejectsLengthMismatch(t *testing.T) {
	h := Header{Ncols: 3, Nrows: 2, Cellsize: 1, NodataValue: -9999}
	if _, err := New(h, []float64{1, 2, 3, 4, 5}); err == nil {
		t.Fatal("expected error for 5 values on a 3x2 grid")
	} else {
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected *FormatError, got %T: %v", err, err)
		}
	}
}

func TestNewRejectsNonPositiveDims(t *testing.T) {
	if _, err := New(Header{Ncols: 0, Nrows: 2}, nil); err == nil {
		t.Fatal("expected error for zero ncols")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := New(Header{Ncols: 2, Nrows: 1, Cellsize: 1, NodataValue: -9999}, []float64{1, 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := g.Clone()
	c.Data[0] = 99
	if g.Data[0] != 1 {
		t.Errorf("mutating clone changed original: got %v", g.Data[0])
	}
	if !g.Equal(g.Clone()) {
		t.Error("fresh clone should compare equal")
	}
}

func TestMatrixShapeAndValues(t *testing.T) {
	g, _ := New(Header{Ncols: 3, Nrows: 2, Cellsize: 1, NodataValue: -9999},
		[]float64{1, 2, 3, 4, 5, 6})
	m := g.Matrix()
	if m.Shape[0] != 2 || m.Shape[1] != 3 {
		t.Fatalf("shape = %v, want [2 3]", m.Shape)
	}
	if got := m.Get(1, 2); got != 6 {
		t.Errorf("m[1][2] = %v, want 6", got)
	}
	// matrix is a copy
	m.Elements[0] = 42
	if g.Data[0] != 1 {
		t.Errorf("mutating matrix changed grid: got %v", g.Data[0])
	}
}

func TestMatrixReplaceNodata(t *testing.T) {
	g, _ := New(Header{Ncols: 2, Nrows: 1, Cellsize: 1, NodataValue: -9999},
		[]float64{-9999, 7})
	m := g.MatrixReplaceNodata(0)
	if m.Elements[0] != 0 || m.Elements[1] != 7 {
		t.Errorf("elements = %v, want [0 7]", m.Elements)
	}
	// original grid keeps its sentinel
	if g.Data[0] != -9999 {
		t.Errorf("grid data changed: got %v", g.Data[0])
	}
}

func TestEqualIsExact(t *testing.T) {
	h := Header{Ncols: 2, Nrows: 1, Xllcorner: 10, Yllcorner: 20, Cellsize: 1, NodataValue: -9999}
	a, _ := New(h, []float64{1, 2})
	b, _ := New(h, []float64{1, 2})
	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	b.Data[1] = 2.0000001
	if a.Equal(b) {
		t.Error("equality must not tolerate numeric noise")
	}
	h2 := h
	h2.Xllcorner = 11
	c, _ := New(h2, []float64{1, 2})
	if a.Equal(c) {
		t.Error("differing headers should not be equal")
	}
	if a.Equal(nil) {
		t.Error("nil should not be equal")
	}
}
