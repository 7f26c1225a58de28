package simplex

import (
	"strings"

	"github.com/pkg/errors"
)

// Candidate is a row that passed the ratio test.
type Candidate struct {
	Row   int
	Basic int // variable currently basic in Row
	Ratio float64
}

// PivotRule chooses the entering column and settles ratio-test ties.
type PivotRule interface {
	// EnteringColumn returns the column to bring into the basis, or -1 when
	// no reduced cost is below -eps.
	EnteringColumn(reduced []float64, eps float64) int

	// PreferOnTie reports whether cand should replace best when both rows
	// give the same minimum ratio. Rows are offered in ascending order.
	PreferOnTie(cand, best Candidate) bool

	String() string
}

// Dantzig picks the most negative reduced cost (first one on ties) and keeps
// the lowest row on ratio ties. It may cycle on degenerate problems.
type Dantzig struct{}

func (Dantzig) EnteringColumn(reduced []float64, eps float64) int {
	col := -1
	low := -eps
	for j, v := range reduced {
		if v < low {
			low = v
			col = j
		}
	}
	return col
}

func (Dantzig) PreferOnTie(_, _ Candidate) bool { return false }

func (Dantzig) String() string { return "dantzig" }

// Bland picks the lowest-index improving column and, on ratio ties, the row
// whose basic variable has the lowest index.
type Bland struct{}

func (Bland) EnteringColumn(reduced []float64, eps float64) int {
	for j, v := range reduced {
		if v < -eps {
			return j
		}
	}
	return -1
}

func (Bland) PreferOnTie(cand, best Candidate) bool { return cand.Basic < best.Basic }

func (Bland) String() string { return "bland" }

// ParseRule maps "dantzig" and "bland" to their rules.
func ParseRule(name string) (PivotRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dantzig":
		return Dantzig{}, nil
	case "bland":
		return Bland{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownRule, "%q", name)
}
