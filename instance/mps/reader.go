// Package mps reads MPS files through GLPK. Importing it registers the
// ".mps" extension with instance.ReadFile.
package mps

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"q.log/lpdemo/instance"
	"q.log/lpdemo/model"
)

// ErrUnsupportedBound is returned for variables whose lower bound is not 0.
var ErrUnsupportedBound = errors.New("mps: only variables with lower bound 0 are supported")

func init() {
	instance.Register(".mps", Read)
}

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// Read is NewReader(path).Read().
func Read(path string) (*model.Model, error) {
	return NewReader(path).Read()
}

// Read returns the file's model in <= form. Finite column upper bounds
// are appended as extra rows. A file needs at least one constraint row.
func (r *Reader) Read() (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s", r.filename)
	}

	numCols := lp.NumCols()
	klog.V(2).Infof("mps: %s has %d rows, %d columns", r.filename, lp.NumRows(), numCols)

	sense := model.Minimize
	if lp.ObjDir() == glpk.MAX {
		sense = model.Maximize
	}

	//populate obj function
	cVec := make([]float64, numCols)
	colNames := make([]string, numCols)
	for c := 1; c <= numCols; c++ {
		cVec[c-1] = lp.ObjCoef(c)
		colNames[c-1] = lp.ColName(c)
	}

	//populate constraints
	var rows []instance.Row
	for i := 1; i <= lp.NumRows(); i++ {
		rowVec := make([]float64, numCols)
		idxs, vals := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			rowVec[v-1] = vals[k]
		}
		rows = append(rows, instance.RangeRows(lp.RowName(i), rowVec, lp.RowLB(i), lp.RowUB(i))...)
	}

	m, err := instance.Build(sense, cVec, rows, colNames)
	if err != nil {
		return nil, errors.Wrap(err, r.filename)
	}

	for c := 1; c <= numCols; c++ {
		lb, ub := lp.ColLB(c), lp.ColUB(c)
		if lb != 0 {
			return nil, errors.Wrapf(ErrUnsupportedBound, "column %s has lower bound %g", lp.ColName(c), lb)
		}
		if ub >= math.MaxFloat64 {
			continue
		}
		rowVec := make([]float64, numCols)
		rowVec[c-1] = 1
		if err := m.AddRow(rowVec, ub); err != nil {
			return nil, errors.Wrap(err, r.filename)
		}
		if m.RowNames != nil {
			m.RowNames[m.NumRows-1] = lp.ColName(c) + ".ub"
		}
	}

	return m, nil
}
