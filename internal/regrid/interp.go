package regrid

import (
	"errors"
	"math"

	"github.com/fogleman/delaunay"
)

// linearInterpolator evaluates a piecewise-linear surface over the
// Delaunay triangulation of scattered sample points. Point location
// uses a visibility walk seeded from the previous hit, which is near
// constant time for the raster sweep pattern of consecutive queries.
type linearInterpolator struct {
	tri  *delaunay.Triangulation
	vals []float64
	last int
}

var errDegenerate = errors.New("regrid: mesh points do not form a triangulation")

func newLinearInterpolator(xs, ys, vals []float64) (*linearInterpolator, error) {
	pts := make([]delaunay.Point, len(xs))
	for i := range xs {
		pts[i] = delaunay.Point{X: xs[i], Y: ys[i]}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, errDegenerate
	}
	if len(tri.Triangles) == 0 {
		return nil, errDegenerate
	}
	return &linearInterpolator{tri: tri, vals: vals}, nil
}

// at returns the interpolated value at (x, y), or NaN when the point
// lies outside the convex hull of the samples.
func (li *linearInterpolator) at(x, y float64) float64 {
	t, w0, w1, w2 := li.locate(x, y)
	if t < 0 {
		return math.NaN()
	}
	li.last = t
	a := li.tri.Triangles[3*t]
	b := li.tri.Triangles[3*t+1]
	c := li.tri.Triangles[3*t+2]
	return w0*li.vals[a] + w1*li.vals[b] + w2*li.vals[c]
}

// locate finds the triangle containing (x, y) and its barycentric
// weights, or -1 when the point is outside the hull. The walk crosses
// into the neighbour opposite the most negative weight until the point
// is enclosed or a hull edge is crossed; skinny triangles can stall the
// walk, so a full scan backstops it before declaring the point outside.
func (li *linearInterpolator) locate(x, y float64) (int, float64, float64, float64) {
	nt := len(li.tri.Triangles) / 3
	t := li.last
	if t < 0 || t >= nt {
		t = 0
	}
	for step := 0; step <= nt; step++ {
		w0, w1, w2, exit := li.weights(t, x, y)
		if exit < 0 {
			return t, w0, w1, w2
		}
		e := li.tri.Halfedges[3*t+exit]
		if e < 0 {
			break
		}
		t = e / 3
	}
	for t = 0; t < nt; t++ {
		w0, w1, w2, exit := li.weights(t, x, y)
		if exit < 0 {
			return t, w0, w1, w2
		}
	}
	return -1, 0, 0, 0
}

// weights returns the barycentric weights of (x, y) in triangle t and,
// when the point is outside it, the local index of the edge to cross.
// exit is -1 when the point is inside or on the boundary.
func (li *linearInterpolator) weights(t int, x, y float64) (w0, w1, w2 float64, exit int) {
	pts := li.tri.Points
	a := pts[li.tri.Triangles[3*t]]
	b := pts[li.tri.Triangles[3*t+1]]
	c := pts[li.tri.Triangles[3*t+2]]

	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if det == 0 {
		// zero-area sliver: step across its first edge
		return 0, 0, 0, 0
	}
	w0 = ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / det
	w1 = ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / det
	w2 = 1 - w0 - w1

	const eps = 1e-12
	if w0 >= -eps && w1 >= -eps && w2 >= -eps {
		return w0, w1, w2, -1
	}
	// edge opposite vertex i is halfedge (i+1)%3 in the triangulation's
	// edge layout
	i := 0
	wmin := w0
	if w1 < wmin {
		i, wmin = 1, w1
	}
	if w2 < wmin {
		i = 2
	}
	return w0, w1, w2, (i + 1) % 3
}
