package transport_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"q.log/lpdemo/transport"
)

func TestNorthwestCorner(t *testing.T) {
	cost := [][]float64{
		{2, 3, 1},
		{5, 4, 8},
		{5, 6, 8},
	}
	supply := []float64{20, 30, 25}
	demand := []float64{10, 35, 30}

	plan, err := transport.NorthwestCorner(cost, supply, demand)
	require.NoError(t, err)

	want := mat.NewDense(3, 3, []float64{
		10, 10, 0,
		0, 25, 5,
		0, 0, 25,
	})
	assert.True(t, mat.Equal(want, plan.X), "got\n%v", mat.Formatted(plan.X))
	assert.Equal(t, 390.0, plan.Cost)
	assert.True(t, plan.Balanced())

	assert.Equal(t, []float64{20, 30, 25}, supply, "input must not change")
	assert.Equal(t, []float64{10, 35, 30}, demand, "input must not change")
}

func TestNorthwestCornerUnbalanced(t *testing.T) {
	plan, err := transport.NorthwestCorner(
		[][]float64{{1, 2}, {3, 4}},
		[]float64{5, 5},
		[]float64{4, 3},
	)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{4, 1, 0, 2}), plan.X))
	assert.Equal(t, 4.0+2+8, plan.Cost)
	assert.False(t, plan.Balanced())
	assert.Equal(t, []float64{0, 3}, plan.RemainingSupply)
	assert.Equal(t, []float64{0, 0}, plan.RemainingDemand)
}

func TestNorthwestCornerErrors(t *testing.T) {
	_, err := transport.NorthwestCorner(nil, nil, nil)
	assert.True(t, errors.Is(err, transport.ErrShapeMismatch))

	_, err = transport.NorthwestCorner([][]float64{{1, 2}}, []float64{1}, []float64{1})
	assert.True(t, errors.Is(err, transport.ErrShapeMismatch))

	_, err = transport.NorthwestCorner([][]float64{{1}}, []float64{-1}, []float64{1})
	assert.True(t, errors.Is(err, transport.ErrNegative))

	_, err = transport.NorthwestCorner([][]float64{{math.Inf(1)}}, []float64{1}, []float64{1})
	assert.True(t, errors.Is(err, transport.ErrNonFinite))
}
