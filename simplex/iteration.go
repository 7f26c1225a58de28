package simplex

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Iteration describes the tableau right after one pivot.
type Iteration struct {
	Index    int // 1-based pivot count
	Entering int // column that entered the basis
	Leaving  int // column that left the basis
	Row      int
	Pivot    float64

	// Objective is the internal maximization value, before any sign
	// correction for Minimize.
	Objective float64

	// Tableau and Basis are copies owned by the receiver.
	Tableau mat.Matrix
	Basis   []int
}

// Verify checks the tableau invariants within eps: every basic column is the
// unit vector of its row with a zero reduced cost, and no basic value is
// negative.
func (it Iteration) Verify(eps float64) error {
	r, c := it.Tableau.Dims()
	m, rhs := r-1, c-1
	if len(it.Basis) != m {
		return errors.Wrapf(ErrBrokenInvariant, "%d basis entries for %d rows", len(it.Basis), m)
	}

	for i, b := range it.Basis {
		for k := range m {
			want := 0.0
			if k == i {
				want = 1
			}
			if got := it.Tableau.At(k, b); math.Abs(got-want) > eps {
				return errors.Wrapf(ErrBrokenInvariant, "basic column %d: T[%d,%d] = %g, want %g", b, k, b, got, want)
			}
		}
		if rc := it.Tableau.At(m, b); math.Abs(rc) > eps {
			return errors.Wrapf(ErrBrokenInvariant, "basic column %d has reduced cost %g", b, rc)
		}
		if v := it.Tableau.At(i, rhs); v < -eps {
			return errors.Wrapf(ErrBrokenInvariant, "row %d has negative basic value %g", i, v)
		}
	}
	return nil
}
