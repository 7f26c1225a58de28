package model

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when matrix and vector dimensions disagree.
	ErrShapeMismatch = errors.New("model: shape mismatch")

	// ErrOutOfRange is returned for a row or column index outside the model.
	ErrOutOfRange = errors.New("model: index out of range")

	// ErrNonFinite is returned when a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("model: NaN or Inf coefficient")

	ErrNilModel = errors.New("model: nil model")

	ErrUnknownSense = errors.New("model: unknown optimization sense")
)
