package simplex

import (
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"q.log/lpdemo/model"
)

// Solve solves md with the tableau simplex method.
//
// Unbounded problems are not an error: they come back with Status Unbounded.
// Malformed models fail with ErrShapeMismatch or ErrNonFinite, negative
// right-hand sides with ErrInfeasibleStandardForm. If the pivot budget runs
// out, Solve returns both a Solution with Status IterationLimit and an error
// wrapping ErrIterationLimit.
func Solve(md *model.Model, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts)
	if err := validate(md, o.Epsilon); err != nil {
		return nil, err
	}

	t := newTableau(md)
	status, iters, err := t.run(o)

	sol := &Solution{
		Status:     status,
		Basis:      append([]int(nil), t.basis...),
		Iterations: iters,
	}
	switch status {
	case Unbounded:
		sol.Objective = math.Inf(1)
		if md.Sense == model.Minimize {
			sol.Objective = math.Inf(-1)
		}
	default:
		sol.X = t.primal()
		sol.Objective = t.objective()
		if md.Sense == model.Minimize {
			sol.Objective = -sol.Objective
		}
		if math.Abs(sol.Objective) <= o.Epsilon {
			sol.Objective = 0
		}
	}

	klog.V(2).Infof("simplex: %s after %d pivots (%s rule, %dx%d), z=%g",
		sol.Status, sol.Iterations, o.Rule, md.NumRows, md.NumCols, sol.Objective)

	return sol, err
}

func validate(md *model.Model, eps float64) error {
	if err := md.Validate(); err != nil {
		return err
	}
	for i := range md.NumRows {
		if b := md.B.At(i, 0); b < -eps {
			return errors.Wrapf(ErrInfeasibleStandardForm, "b[%d] = %g", i, b)
		}
	}
	return nil
}

// run pivots until a terminal status and returns it with the pivot count.
func (t *tableau) run(o Options) (Status, int, error) {
	limit := o.iterationLimit(t.m, t.n)
	for it := 0; ; it++ {
		col := o.Rule.EnteringColumn(t.reduced(), o.Epsilon)
		if col < 0 {
			return Optimal, it, nil
		}

		row := t.leavingRow(col, o.Epsilon, o.Rule)
		if row < 0 {
			klog.V(4).Infof("simplex: column %d improves without bound", col)
			return Unbounded, it, nil
		}

		if it >= limit {
			return IterationLimit, it, errors.Wrapf(ErrIterationLimit, "%d pivots with %s rule", limit, o.Rule)
		}

		leaving := t.basis[row]
		pv := t.data.At(row, col)
		t.pivot(row, col, o.Epsilon)

		klog.V(4).Infof("simplex: pivot %d: x%d enters, x%d leaves row %d (pivot %g), z=%g",
			it+1, col, leaving, row, pv, t.objective())

		if o.Observer != nil {
			o.Observer(t.snapshot(it+1, col, row, leaving, pv))
		}
	}
}
