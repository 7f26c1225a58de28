package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Sense is the optimization direction of a model.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	switch s {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	}
	return "unknown"
}

// ParseSense accepts "max", "maximize", "min" and "minimize", in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	}
	return 0, errors.Wrapf(ErrUnknownSense, "%q", s)
}
