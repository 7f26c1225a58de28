// Package simplex solves small linear programs with the tableau form of the
// primal simplex method.
//
// A model.Model describes
//
//	maximize (or minimize) c·x  subject to  A·x <= b, x >= 0
//
// with b >= 0, so the slack basis is a feasible starting vertex. Solve builds
// the (m+1)x(n+m+1) tableau
//
//	[ A  I | b ]
//	[ -c 0 | 0 ]
//
// and pivots until no reduced cost is below -eps (Optimal), or until an
// improving column has no positive entry (Unbounded). Minimization is done by
// maximizing -c and negating the reported objective.
//
// Pivot selection is a PivotRule. Dantzig (most negative reduced cost, lowest
// row on ratio ties) is the default; Bland (lowest improving index, lowest
// basic index on ties) never cycles. Every run is bounded by an iteration
// limit and reports ErrIterationLimit when it is hit.
//
// Models that need a Phase 1 (negative right-hand sides) are rejected with
// ErrInfeasibleStandardForm. Solve never modifies its input and keeps no
// state between calls, so concurrent calls are safe.
package simplex
