// Package transport builds initial plans for the transportation problem.
package transport

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// exhaustedTol is how close to zero a supply or demand must get before the
// northwest-corner walk moves past it.
const exhaustedTol = 1e-9

var (
	ErrShapeMismatch = errors.New("transport: shape mismatch")
	ErrNegative      = errors.New("transport: negative supply or demand")
	ErrNonFinite     = errors.New("transport: NaN or Inf value")
)

// Plan is a shipping plan: X[i,j] units go from source i to destination j.
type Plan struct {
	X    *mat.Dense
	Cost float64

	// RemainingSupply and RemainingDemand are what the plan leaves unshipped
	// or unmet; both are zero for a balanced problem.
	RemainingSupply []float64
	RemainingDemand []float64
}

// Balanced reports whether all supply was shipped and all demand met.
func (p *Plan) Balanced() bool {
	return floats.Sum(p.RemainingSupply) <= exhaustedTol && floats.Sum(p.RemainingDemand) <= exhaustedTol
}

// NorthwestCorner fills the plan from the top-left cell, shipping as much as
// possible and moving down when a source is exhausted and right when a
// destination is satisfied. The inputs are not modified.
func NorthwestCorner(cost [][]float64, supply, demand []float64) (*Plan, error) {
	m, n := len(supply), len(demand)
	if m == 0 || n == 0 || len(cost) != m {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d cost rows, %d sources, %d destinations", len(cost), m, n)
	}
	costs := mat.NewDense(m, n, nil)
	for i, row := range cost {
		if len(row) != n {
			return nil, errors.Wrapf(ErrShapeMismatch, "cost row %d has %d entries, want %d", i, len(row), n)
		}
		costs.SetRow(i, row)
	}
	if err := checkFinite(costs.RawMatrix().Data, supply, demand); err != nil {
		return nil, err
	}
	for _, q := range append(append([]float64(nil), supply...), demand...) {
		if q < 0 {
			return nil, errors.Wrapf(ErrNegative, "%g", q)
		}
	}

	s := append([]float64(nil), supply...)
	d := append([]float64(nil), demand...)
	x := mat.NewDense(m, n, nil)

	i, j := 0, 0
	for i < m && j < n {
		q := math.Min(s[i], d[j])
		x.Set(i, j, q)
		s[i] -= q
		d[j] -= q
		if s[i] <= exhaustedTol {
			i++
		}
		if d[j] <= exhaustedTol {
			j++
		}
	}

	var shipped mat.Dense
	shipped.MulElem(x, costs)
	plan := &Plan{
		X:               x,
		Cost:            mat.Sum(&shipped),
		RemainingSupply: s,
		RemainingDemand: d,
	}
	klog.V(2).Infof("transport: northwest corner plan %dx%d, cost %g", m, n, plan.Cost)
	return plan, nil
}

func checkFinite(vs ...[]float64) error {
	for _, v := range vs {
		for _, f := range v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return errors.Wrapf(ErrNonFinite, "%v", f)
			}
		}
	}
	return nil
}
