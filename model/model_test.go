package model_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"q.log/lpdemo/model"
)

func exampleModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.FromSlices(
		[][]float64{{1, 1}, {1, 0}, {0, 1}},
		[]float64{4, 2.5, 3},
		[]float64{3, 5},
		model.Maximize,
	)
	require.NoError(t, err)
	return m
}

func TestFromSlices(t *testing.T) {
	m := exampleModel(t)
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.NumRows)
	assert.Equal(t, 2, m.NumCols)
	assert.Equal(t, 2.5, m.B.At(1, 0))
	assert.Equal(t, 5.0, m.C.At(0, 1))
	assert.Equal(t, model.Maximize, m.Sense)
}

func TestFromSlicesCopiesInput(t *testing.T) {
	a := [][]float64{{1, 2}}
	b := []float64{3}
	c := []float64{4, 5}
	m, err := model.FromSlices(a, b, c, model.Minimize)
	require.NoError(t, err)

	a[0][0], b[0], c[0] = 100, 100, 100
	assert.Equal(t, 1.0, m.A.At(0, 0))
	assert.Equal(t, 3.0, m.B.At(0, 0))
	assert.Equal(t, 4.0, m.C.At(0, 0))
}

func TestFromSlicesShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		b    []float64
		c    []float64
	}{
		{"empty", nil, nil, nil},
		{"rhs length", [][]float64{{1, 1}}, []float64{1, 2}, []float64{1, 1}},
		{"ragged row", [][]float64{{1, 1}, {1}}, []float64{1, 2}, []float64{1, 1}},
		{"objective length", [][]float64{{1, 1}}, []float64{1}, []float64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.FromSlices(tc.a, tc.b, tc.c, model.Maximize)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrShapeMismatch), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	m := exampleModel(t)
	m.A.Set(1, 1, math.NaN())
	assert.True(t, errors.Is(m.Validate(), model.ErrNonFinite))

	m = exampleModel(t)
	m.B.Set(0, 0, math.Inf(1))
	assert.True(t, errors.Is(m.Validate(), model.ErrNonFinite))

	m = exampleModel(t)
	m.NumRows = 2
	assert.True(t, errors.Is(m.Validate(), model.ErrShapeMismatch))

	m = exampleModel(t)
	m.ColNames = []string{"x"}
	assert.True(t, errors.Is(m.Validate(), model.ErrShapeMismatch))

	m = exampleModel(t)
	m.Sense = model.Sense(7)
	assert.True(t, errors.Is(m.Validate(), model.ErrUnknownSense))

	var nilModel *model.Model
	assert.True(t, errors.Is(nilModel.Validate(), model.ErrNilModel))
}

func TestAddRow(t *testing.T) {
	m := exampleModel(t)

	require.NoError(t, m.AddRow([]float64{2, 1}, 7))
	assert.Equal(t, 4, m.NumRows)
	assert.Equal(t, 7.0, m.B.At(3, 0))
	assert.Equal(t, []float64{2, 1}, m.A.RawRowView(3))
	require.NoError(t, m.Validate())

	m.RowNames = []string{"a", "b", "c", "d"}
	require.NoError(t, m.AddRow([]float64{0, 1}, 1))
	assert.Equal(t, "r4", m.RowNames[4])

	assert.True(t, errors.Is(m.AddRow([]float64{1}, 1), model.ErrShapeMismatch))
}

func TestSetters(t *testing.T) {
	m := model.NewModel(2, 2)
	require.NoError(t, m.SetA([]float64{1, 2, 3, 4}))
	require.NoError(t, m.SetB([]float64{5, 6}))
	require.NoError(t, m.SetC([]float64{7, 8}))
	assert.Equal(t, []float64{3, 4}, m.A.RawRowView(1))
	assert.Equal(t, 6.0, m.B.At(1, 0))
	assert.Equal(t, 8.0, m.C.At(0, 1))

	assert.True(t, errors.Is(m.SetA([]float64{1}), model.ErrShapeMismatch))
	assert.True(t, errors.Is(m.SetB([]float64{1}), model.ErrShapeMismatch))
	assert.True(t, errors.Is(m.SetC([]float64{1, 2, 3}), model.ErrShapeMismatch))
}

func TestRemoveRow(t *testing.T) {
	m := exampleModel(t)
	m.RowNames = []string{"total", "capX", "capY"}

	require.NoError(t, m.RemoveRow(1))
	assert.Equal(t, 2, m.NumRows)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{1, 1, 0, 1}), m.A))
	assert.Equal(t, []float64{4, 3}, m.B.RawMatrix().Data)
	assert.Equal(t, []string{"total", "capY"}, m.RowNames)
	require.NoError(t, m.Validate())

	assert.True(t, errors.Is(m.RemoveRow(5), model.ErrOutOfRange))
	require.NoError(t, m.RemoveRow(0))
	assert.True(t, errors.Is(m.RemoveRow(0), model.ErrShapeMismatch))
}

func TestRemoveEmptyRows(t *testing.T) {
	m, err := model.FromSlices(
		[][]float64{{0, 0}, {1, 1}, {0, 0}, {0, 0}},
		[]float64{3, 4, -1, 0},
		[]float64{1, 1},
		model.Maximize,
	)
	require.NoError(t, err)
	m.RowNames = []string{"slack", "total", "broken", "zero"}

	assert.Equal(t, 2, m.RemoveEmptyRows())
	assert.Equal(t, []string{"total", "broken"}, m.RowNames)
	assert.Equal(t, []float64{4, -1}, m.B.RawMatrix().Data)

	only, err := model.FromSlices([][]float64{{0}}, []float64{1}, []float64{1}, model.Maximize)
	require.NoError(t, err)
	assert.Zero(t, only.RemoveEmptyRows())
	assert.Equal(t, 1, only.NumRows)
}

func TestMultiplyConstraint(t *testing.T) {
	m := exampleModel(t)
	require.NoError(t, m.MultiplyConstraint(0, -2))
	assert.Equal(t, []float64{-2, -2}, m.A.RawRowView(0))
	assert.Equal(t, -8.0, m.B.At(0, 0))
	assert.True(t, errors.Is(m.MultiplyConstraint(3, 1), model.ErrOutOfRange))
}

func TestCloneIsDeep(t *testing.T) {
	m := exampleModel(t)
	m.ColNames = []string{"x", "y"}
	c := m.Clone()
	c.A.Set(0, 0, 42)
	c.ColNames[0] = "z"
	assert.Equal(t, 1.0, m.A.At(0, 0))
	assert.Equal(t, "x", m.ColNames[0])
}

func TestFeasibleAndObjective(t *testing.T) {
	m := exampleModel(t)
	assert.True(t, m.Feasible([]float64{1, 3}, 1e-9))
	assert.True(t, m.Feasible([]float64{0, 0}, 1e-9))
	assert.False(t, m.Feasible([]float64{2, 3}, 1e-9))
	assert.False(t, m.Feasible([]float64{-1, 0}, 1e-9))
	assert.False(t, m.Feasible([]float64{1}, 1e-9))
	assert.Equal(t, 18.0, m.Objective([]float64{1, 3}))
}

func TestParseSense(t *testing.T) {
	for in, want := range map[string]model.Sense{
		"max": model.Maximize, "Maximize": model.Maximize,
		" min ": model.Minimize, "MINIMIZE": model.Minimize,
	} {
		got, err := model.ParseSense(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := model.ParseSense("sideways")
	assert.True(t, errors.Is(err, model.ErrUnknownSense))
	assert.Equal(t, "min", model.Minimize.String())
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	exampleModel(t).Format(&buf)
	out := buf.String()
	assert.Contains(t, out, "max")
	assert.Contains(t, out, "c = ")
	assert.Contains(t, out, "A = ")
	assert.Contains(t, out, "b = ")
}
