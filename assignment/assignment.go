// Package assignment solves the assignment problem by exhaustive search over
// permutations. It is meant for the small instances used in teaching; the
// work grows as n!.
package assignment

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
	"k8s.io/klog/v2"
)

// MaxSize bounds n; 10! permutations already take a noticeable moment.
const MaxSize = 10

var (
	ErrNotSquare = errors.New("assignment: cost matrix is not square")
	ErrEmpty     = errors.New("assignment: empty cost matrix")
	ErrTooLarge  = errors.New("assignment: too many workers for exhaustive search")
	ErrNonFinite = errors.New("assignment: NaN or Inf cost")
)

// Result is an optimal assignment: worker i does task Perm[i].
type Result struct {
	Perm []int
	Cost float64
}

// Solve returns a minimum-cost assignment for the square matrix cost. When
// several permutations share the minimum, the first one generated wins.
func Solve(cost [][]float64) (*Result, error) {
	n := len(cost)
	if n == 0 {
		return nil, ErrEmpty
	}
	if n > MaxSize {
		return nil, errors.Wrapf(ErrTooLarge, "n = %d, max %d", n, MaxSize)
	}
	for i, row := range cost {
		if len(row) != n {
			return nil, errors.Wrapf(ErrNotSquare, "row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrNonFinite, "cost[%d][%d] = %v", i, j, v)
			}
		}
	}

	best := &Result{Cost: math.Inf(1)}
	perm := make([]int, n)
	gen := combin.NewPermutationGenerator(n, n)
	var seen int
	for gen.Next() {
		gen.Permutation(perm)
		seen++
		c := 0.0
		for i, j := range perm {
			c += cost[i][j]
		}
		if c < best.Cost {
			best.Cost = c
			best.Perm = append(best.Perm[:0], perm...)
		}
	}

	klog.V(2).Infof("assignment: %d permutations, best cost %g", seen, best.Cost)
	return best, nil
}
