package instance

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"q.log/lpdemo/model"
)

// Op is the relation of a constraint row.
type Op string

const (
	LE Op = "<="
	GE Op = ">="
	EQ Op = "="
)

// ParseOp accepts "<=", ">=", "=" and their spelled-out forms.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<=", "≤", "le", "leq":
		return LE, nil
	case ">=", "≥", "ge", "geq":
		return GE, nil
	case "=", "==", "eq":
		return EQ, nil
	}
	return "", errors.Wrapf(ErrUnknownOp, "%q", s)
}

// Row is one constraint before conversion to <= form.
type Row struct {
	Name         string
	Coefficients []float64
	Op           Op
	RHS          float64
}

// Build assembles a model from an objective and rows of any Op. A >= row is
// negated into a <= row and an = row becomes a <= row plus its negation;
// negated rows get a "-" name suffix. Negation can leave a negative rhs,
// which the solver rejects. Rows with no coefficients that every x >= 0
// satisfies are dropped.
func Build(sense model.Sense, objective []float64, rows []Row, colNames []string) (*model.Model, error) {
	var (
		a       [][]float64
		b       []float64
		names   []string
		negated []int
		named   bool
	)
	add := func(r Row, negate bool) {
		name := r.Name
		if negate {
			negated = append(negated, len(a))
			if name != "" {
				name += "-"
			}
		}
		a = append(a, r.Coefficients)
		b = append(b, r.RHS)
		names = append(names, name)
		named = named || name != ""
	}
	for _, r := range rows {
		switch r.Op {
		case GE:
			add(r, true)
		case EQ:
			add(r, false)
			add(r, true)
		default:
			add(r, false)
		}
	}

	m, err := model.FromSlices(a, b, objective, sense)
	if err != nil {
		return nil, err
	}
	for _, i := range negated {
		if err := m.MultiplyConstraint(i, -1); err != nil {
			return nil, err
		}
	}
	if named {
		m.RowNames = names
	}
	if len(colNames) > 0 {
		if len(colNames) != len(objective) {
			return nil, errors.Wrapf(model.ErrShapeMismatch, "%d variable names for %d variables", len(colNames), len(objective))
		}
		m.ColNames = append([]string(nil), colNames...)
	}
	if n := m.RemoveEmptyRows(); n > 0 {
		klog.V(2).Infof("instance: dropped %d empty rows", n)
	}
	return m, nil
}

// RangeRows turns lb <= coef·x <= ub into rows. Bounds at or beyond
// ±math.MaxFloat64 (GLPK's "no bound") are treated as absent, so a free row
// yields nothing.
func RangeRows(name string, coef []float64, lb, ub float64) []Row {
	lower, upper := lb > -math.MaxFloat64, ub < math.MaxFloat64
	switch {
	case lower && upper && lb == ub:
		return []Row{{Name: name, Coefficients: coef, Op: EQ, RHS: lb}}
	case lower && upper:
		return []Row{
			{Name: name + ".lo", Coefficients: coef, Op: GE, RHS: lb},
			{Name: name + ".up", Coefficients: coef, Op: LE, RHS: ub},
		}
	case upper:
		return []Row{{Name: name, Coefficients: coef, Op: LE, RHS: ub}}
	case lower:
		return []Row{{Name: name, Coefficients: coef, Op: GE, RHS: lb}}
	}
	return nil
}
