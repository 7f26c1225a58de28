package simplex

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"q.log/lpdemo/model"
)

// tableau is the dense simplex tableau of an m-row, n-variable model.
// Columns [0,n) are decision variables, [n,n+m) slacks and n+m the rhs; row
// m is the objective row.
type tableau struct {
	m, n  int
	data  *mat.Dense
	basis []int
}

func newTableau(md *model.Model) *tableau {
	m, n := md.NumRows, md.NumCols
	rhs := n + m

	data := mat.NewDense(m+1, n+m+1, nil)
	data.Slice(0, m, 0, n).(*mat.Dense).Copy(md.A)

	basis := make([]int, m)
	for i := range m {
		data.Set(i, n+i, 1)
		// b in (-eps, 0) passed validation; start it at zero.
		data.Set(i, rhs, max(md.B.At(i, 0), 0))
		basis[i] = n + i
	}

	obj := data.RawRowView(m)
	for j := range n {
		c := md.C.At(0, j)
		if md.Sense == model.Minimize {
			c = -c
		}
		obj[j] = -c
	}

	return &tableau{m: m, n: n, data: data, basis: basis}
}

// reduced returns the objective row without the rhs cell. It aliases the
// tableau.
func (t *tableau) reduced() []float64 {
	return t.data.RawRowView(t.m)[:t.n+t.m]
}

func (t *tableau) rhs(row int) float64 {
	return t.data.At(row, t.n+t.m)
}

// objective is the internal (maximization) objective value.
func (t *tableau) objective() float64 {
	return t.data.At(t.m, t.n+t.m)
}

// leavingRow runs the ratio test on col and returns -1 if no entry is above
// eps.
func (t *tableau) leavingRow(col int, eps float64, rule PivotRule) int {
	best := Candidate{Row: -1}
	for i := range t.m {
		a := t.data.At(i, col)
		if a <= eps {
			continue
		}
		cand := Candidate{Row: i, Basic: t.basis[i], Ratio: t.rhs(i) / a}
		switch {
		case best.Row < 0 || cand.Ratio < best.Ratio-eps:
			best = cand
		case cand.Ratio <= best.Ratio+eps && rule.PreferOnTie(cand, best):
			best = cand
		}
	}
	return best.Row
}

// pivot makes (row, col) a unit column and records col as basic in row.
func (t *tableau) pivot(row, col int, eps float64) {
	pr := t.data.RawRowView(row)
	floats.Scale(1/pr[col], pr)
	pr[col] = 1

	for i := 0; i <= t.m; i++ {
		if i == row {
			continue
		}
		r := t.data.RawRowView(i)
		floats.AddScaled(r, -r[col], pr)
		r[col] = 0
	}
	t.basis[row] = col

	// Rounding can leave basic values just below zero.
	rhs := t.n + t.m
	for i := range t.m {
		if v := t.data.At(i, rhs); v < 0 && v >= -eps {
			t.data.Set(i, rhs, 0)
		}
	}
}

// primal reads the decision variables off the basis.
func (t *tableau) primal() []float64 {
	x := make([]float64, t.n)
	for i, b := range t.basis {
		if b < t.n {
			x[b] = t.rhs(i)
		}
	}
	return x
}

func (t *tableau) snapshot(index, entering, row, leaving int, pivot float64) Iteration {
	return Iteration{
		Index:     index,
		Entering:  entering,
		Leaving:   leaving,
		Row:       row,
		Pivot:     pivot,
		Objective: t.objective(),
		Tableau:   mat.DenseCopyOf(t.data),
		Basis:     append([]int(nil), t.basis...),
	}
}
