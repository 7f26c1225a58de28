package simplex

import (
	"github.com/pkg/errors"

	"q.log/lpdemo/model"
)

var (
	// ErrShapeMismatch is the model sentinel, re-exported so callers of Solve
	// only need this package.
	ErrShapeMismatch = model.ErrShapeMismatch

	// ErrNonFinite is returned for NaN or ±Inf coefficients.
	ErrNonFinite = model.ErrNonFinite

	// ErrInfeasibleStandardForm is returned when a right-hand side is negative,
	// so the origin is not a feasible starting vertex.
	ErrInfeasibleStandardForm = errors.New("simplex: negative right-hand side, origin is not feasible")

	// ErrIterationLimit is returned when the pivot loop exceeds its budget,
	// usually because of degenerate cycling under the Dantzig rule.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrBrokenInvariant is returned by Iteration.Verify.
	ErrBrokenInvariant = errors.New("simplex: tableau invariant violated")

	ErrUnknownRule = errors.New("simplex: unknown pivot rule")
)
