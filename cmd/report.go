package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"q.log/lpdemo/model"
	"q.log/lpdemo/simplex"
)

var ErrUnknownOutput = errors.New("cmd: unknown output format")

// SolutionReport is the machine-readable form of a simplex result.
// Objective is omitted when it is infinite.
type SolutionReport struct {
	Problem   string          `json:"problem"`
	Sense     string          `json:"sense"`
	Status    string          `json:"status"`
	Objective *float64        `json:"objective,omitempty"`
	Variables []VariableValue `json:"variables,omitempty"`
	Pivots    int             `json:"pivots"`

	z float64
}

type VariableValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func newSolutionReport(path string, m *model.Model, sol *simplex.Solution) *SolutionReport {
	r := &SolutionReport{
		Problem: path,
		Sense:   m.Sense.String(),
		Status:  sol.Status.String(),
		Pivots:  sol.Iterations,
		z:       sol.Objective,
	}
	if !math.IsInf(sol.Objective, 0) {
		z := sol.Objective
		r.Objective = &z
	}
	for j, x := range sol.X {
		r.Variables = append(r.Variables, VariableValue{Name: m.ColName(j), Value: x})
	}
	return r
}

func printSolutionText(w io.Writer, r *SolutionReport) {
	fmt.Fprintf(w, "%s: %s\n", r.Sense, r.Status)
	for _, v := range r.Variables {
		fmt.Fprintf(w, "  %s = %g\n", v.Name, v.Value)
	}
	fmt.Fprintf(w, "z* = %g\n", r.z)
	fmt.Fprintf(w, "pivots: %d\n", r.Pivots)
}

// printSolution writes r as text (format ""), json or yaml.
func printSolution(w io.Writer, r *SolutionReport, format string) error {
	switch format {
	case "", "text":
		printSolutionText(w, r)
		return nil
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(data)
		return err
	}
	return errors.Wrapf(ErrUnknownOutput, "%q", format)
}
