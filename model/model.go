package model

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Model is a linear program in inequality form:
//
//	maximize or minimize  C·x
//	subject to            A·x <= B, x >= 0
type Model struct {
	//A constraints matrix, NumRows x NumCols
	A *mat.Dense

	//B constraints rhs, NumRows x 1
	B *mat.Dense

	//C objective function coefficients, 1 x NumCols
	C *mat.Dense

	Sense Sense

	// RowNames and ColNames are optional labels; when set they have one
	// entry per row and column.
	RowNames []string
	ColNames []string

	NumRows int
	NumCols int
}

// NewModel returns a zero model with the given shape. It panics if either
// dimension is not positive, like mat.NewDense.
func NewModel(numRows, numCols int) *Model {
	return &Model{
		A:       mat.NewDense(numRows, numCols, nil),
		B:       mat.NewDense(numRows, 1, nil),
		C:       mat.NewDense(1, numCols, nil),
		NumRows: numRows,
		NumCols: numCols,
	}
}

// FromSlices builds a model from row-major constraint coefficients. The
// inputs are copied.
func FromSlices(a [][]float64, b, c []float64, sense Sense) (*Model, error) {
	if len(a) == 0 || len(c) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "empty constraint matrix or objective")
	}
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d constraint rows, %d rhs values", len(a), len(b))
	}

	m := NewModel(len(a), len(c))
	aVec := make([]float64, 0, len(a)*len(c))
	for r, row := range a {
		if len(row) != len(c) {
			return nil, errors.Wrapf(ErrShapeMismatch, "row %d has %d coefficients, want %d", r, len(row), len(c))
		}
		aVec = append(aVec, row...)
	}
	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(b); err != nil {
		return nil, err
	}
	if err := m.SetC(c); err != nil {
		return nil, err
	}
	m.Sense = sense

	return m, nil
}

func (m *Model) SetC(cVec []float64) error {
	if len(cVec) != m.NumCols {
		return errors.Wrap(ErrShapeMismatch, "number of objective coefficients")
	}

	m.C = mat.NewDense(1, m.NumCols, append([]float64(nil), cVec...))

	return nil
}

// SetA replaces the constraint matrix with the row-major values in aVec.
func (m *Model) SetA(aVec []float64) error {
	if len(aVec) != m.NumCols*m.NumRows {
		return errors.Wrap(ErrShapeMismatch, "number of variables and/or constraints")
	}

	m.A = mat.NewDense(m.NumRows, m.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (m *Model) SetB(bVec []float64) error {
	if len(bVec) != m.NumRows {
		return errors.Wrap(ErrShapeMismatch, "number of constraints")
	}

	m.B = mat.NewDense(m.NumRows, 1, append([]float64(nil), bVec...))

	return nil
}

// AddRow appends the constraint rVec·x <= rhs.
func (m *Model) AddRow(rVec []float64, rhs float64) error {
	if len(rVec) != m.NumCols {
		return errors.Wrap(ErrShapeMismatch, "wrong len of rVec")
	}

	m.A = mat.DenseCopyOf(m.A.Grow(1, 0))
	m.A.SetRow(m.NumRows, rVec)

	m.B = mat.DenseCopyOf(m.B.Grow(1, 0))
	m.B.Set(m.NumRows, 0, rhs)

	if m.RowNames != nil {
		m.RowNames = append(m.RowNames, fmt.Sprintf("r%d", m.NumRows))
	}

	m.NumRows++
	return nil
}

func (m *Model) RemoveRow(r int) error {
	if r < 0 || r >= m.NumRows {
		return errors.Wrapf(ErrOutOfRange, "row %d", r)
	}
	if m.NumRows == 1 {
		return errors.Wrap(ErrShapeMismatch, "cannot remove the last row")
	}

	auxA := mat.NewDense(m.NumRows-1, m.NumCols, nil)
	auxB := mat.NewDense(m.NumRows-1, 1, nil)
	dst := 0
	for row := range m.NumRows {
		if row == r {
			continue
		}
		auxA.SetRow(dst, m.A.RawRowView(row))
		auxB.Set(dst, 0, m.B.At(row, 0))
		dst++
	}

	m.A = auxA
	m.B = auxB
	if m.RowNames != nil {
		m.RowNames = append(m.RowNames[:r:r], m.RowNames[r+1:]...)
	}
	m.NumRows--

	return nil
}

// RemoveEmptyRows deletes rows whose coefficients are all zero and whose
// rhs is nonnegative, since every x >= 0 satisfies them. An empty row with a
// negative rhs is kept. The last remaining row is never removed. It returns
// the number of rows deleted.
func (m *Model) RemoveEmptyRows() int {
	removed := 0
	for r := m.NumRows - 1; r >= 0 && m.NumRows > 1; r-- {
		if m.B.At(r, 0) < 0 || floats.Norm(m.A.RawRowView(r), math.Inf(1)) != 0 {
			continue
		}
		if err := m.RemoveRow(r); err != nil {
			break
		}
		removed++
	}
	return removed
}

// MultiplyConstraint scales row and its rhs by mul.
func (m *Model) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= m.NumRows {
		return errors.Wrapf(ErrOutOfRange, "row %d", row)
	}

	floats.Scale(mul, m.A.RawRowView(row))
	m.B.Set(row, 0, m.B.At(row, 0)*mul)
	return nil
}

// Clone returns a deep copy of m.
func (m *Model) Clone() *Model {
	c := &Model{
		A:       mat.DenseCopyOf(m.A),
		B:       mat.DenseCopyOf(m.B),
		C:       mat.DenseCopyOf(m.C),
		Sense:   m.Sense,
		NumRows: m.NumRows,
		NumCols: m.NumCols,
	}
	if m.RowNames != nil {
		c.RowNames = append([]string(nil), m.RowNames...)
	}
	if m.ColNames != nil {
		c.ColNames = append([]string(nil), m.ColNames...)
	}
	return c
}

// Validate checks that the sense is known, that the matrices agree with
// NumRows and NumCols and that they hold only finite values.
func (m *Model) Validate() error {
	if m == nil || m.A == nil || m.B == nil || m.C == nil {
		return ErrNilModel
	}
	if m.Sense != Maximize && m.Sense != Minimize {
		return errors.Wrapf(ErrUnknownSense, "sense %d", int(m.Sense))
	}
	if m.NumRows <= 0 || m.NumCols <= 0 {
		return errors.Wrapf(ErrShapeMismatch, "model is %dx%d", m.NumRows, m.NumCols)
	}
	if r, c := m.A.Dims(); r != m.NumRows || c != m.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "A is %dx%d, want %dx%d", r, c, m.NumRows, m.NumCols)
	}
	if r, c := m.B.Dims(); r != m.NumRows || c != 1 {
		return errors.Wrapf(ErrShapeMismatch, "B is %dx%d, want %dx1", r, c, m.NumRows)
	}
	if r, c := m.C.Dims(); r != 1 || c != m.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "C is %dx%d, want 1x%d", r, c, m.NumCols)
	}
	if m.RowNames != nil && len(m.RowNames) != m.NumRows {
		return errors.Wrapf(ErrShapeMismatch, "%d row names for %d rows", len(m.RowNames), m.NumRows)
	}
	if m.ColNames != nil && len(m.ColNames) != m.NumCols {
		return errors.Wrapf(ErrShapeMismatch, "%d column names for %d columns", len(m.ColNames), m.NumCols)
	}

	for _, d := range []struct {
		name string
		m    *mat.Dense
	}{{"A", m.A}, {"B", m.B}, {"C", m.C}} {
		r, c := d.m.Dims()
		for i := range r {
			for j := range c {
				if v := d.m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
					return errors.Wrapf(ErrNonFinite, "%s[%d,%d] = %v", d.name, i, j, v)
				}
			}
		}
	}

	return nil
}

// Objective returns C·x.
func (m *Model) Objective(x []float64) float64 {
	return floats.Dot(m.C.RawRowView(0), x)
}

// Feasible reports whether x satisfies A·x <= B and x >= 0 within eps.
func (m *Model) Feasible(x []float64, eps float64) bool {
	if len(x) != m.NumCols {
		return false
	}
	for _, v := range x {
		if v < -eps {
			return false
		}
	}

	var ax mat.VecDense
	ax.MulVec(m.A, mat.NewVecDense(len(x), x))
	for i := range m.NumRows {
		if ax.AtVec(i) > m.B.At(i, 0)+eps {
			return false
		}
	}
	return true
}

// ColName returns the label of column j, defaulting to x<j>.
func (m *Model) ColName(j int) string {
	if j < len(m.ColNames) && m.ColNames[j] != "" {
		return m.ColNames[j]
	}
	return fmt.Sprintf("x%d", j)
}

// Format writes c, A and b the same way the solver trace does.
func (m *Model) Format(w io.Writer) {
	fmt.Fprintf(w, "%s\n", m.Sense)
	fmt.Fprintf(w, "c = %v\n", mat.Formatted(m.C, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "A = %v\n", mat.Formatted(m.A, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "b = %v\n", mat.Formatted(m.B.T(), mat.Prefix("    "), mat.Squeeze()))
}
