// Package graphical solves two-variable linear programs by enumerating the
// vertices of the feasible polygon, and plots the polygon.
package graphical

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"q.log/lpdemo/model"
)

const (
	// DefaultEpsilon is the feasibility tolerance.
	DefaultEpsilon = 1e-9

	parallelTol  = 1e-9
	duplicateTol = 1e-6
)

var (
	ErrNotTwoVariables  = errors.New("graphical: model must have exactly two variables")
	ErrNoFeasibleRegion = errors.New("graphical: no feasible region")
)

// Point is a vertex of the feasible region.
type Point struct {
	X, Y float64
}

// Result holds the feasible polygon and its best vertex.
type Result struct {
	// Vertices are ordered counter-clockwise around their centroid, with
	// Values[i] the objective at Vertices[i].
	Vertices []Point
	Values   []float64

	Best      Point
	BestValue float64
	Sense     model.Sense
}

// line is a1*x + a2*y = b.
type line struct{ a1, a2, b float64 }

// Solve enumerates the pairwise intersections of the constraint boundaries
// and the axes, keeps the feasible ones and evaluates the objective there.
// An unbounded region is not detected: only its vertices are compared.
func Solve(m *model.Model, eps float64) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.NumCols != 2 {
		return nil, errors.Wrapf(ErrNotTwoVariables, "got %d", m.NumCols)
	}

	lines := make([]line, 0, m.NumRows+2)
	for i := range m.NumRows {
		lines = append(lines, line{m.A.At(i, 0), m.A.At(i, 1), m.B.At(i, 0)})
	}
	lines = append(lines, line{1, 0, 0}, line{0, 1, 0})

	var pts []Point
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			p, ok := intersect(lines[i], lines[j])
			if !ok || p.X < -eps || p.Y < -eps {
				continue
			}
			if m.Feasible([]float64{p.X, p.Y}, eps) && !contains(pts, p) {
				pts = append(pts, p)
			}
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoFeasibleRegion
	}

	sortCounterClockwise(pts)

	c := m.C.RawRowView(0)
	res := &Result{Vertices: pts, Values: make([]float64, len(pts)), Sense: m.Sense}
	for i, p := range pts {
		res.Values[i] = floats.Dot(c, []float64{p.X, p.Y})
	}
	best := floats.MaxIdx(res.Values)
	if m.Sense == model.Minimize {
		best = floats.MinIdx(res.Values)
	}
	res.Best, res.BestValue = pts[best], res.Values[best]

	return res, nil
}

// intersect solves the 2x2 system by Cramer's rule.
func intersect(l1, l2 line) (Point, bool) {
	coef := mat.NewDense(2, 2, []float64{l1.a1, l1.a2, l2.a1, l2.a2})
	det := mat.Det(coef)
	if math.Abs(det) < parallelTol {
		return Point{}, false
	}
	return Point{
		X: (l1.b*l2.a2 - l2.b*l1.a2) / det,
		Y: (l1.a1*l2.b - l2.a1*l1.b) / det,
	}, true
}

func contains(pts []Point, p Point) bool {
	for _, q := range pts {
		if math.Abs(p.X-q.X) < duplicateTol && math.Abs(p.Y-q.Y) < duplicateTol {
			return true
		}
	}
	return false
}

func sortCounterClockwise(pts []Point) {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	sort.SliceStable(pts, func(i, j int) bool {
		return math.Atan2(pts[i].Y-cy, pts[i].X-cx) < math.Atan2(pts[j].Y-cy, pts[j].X-cx)
	})
}
