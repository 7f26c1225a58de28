package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/lpdemo/cmd"
	"q.log/lpdemo/config"
	"q.log/lpdemo/simplex"
)

func testdata(name string) string {
	return filepath.Join("..", "instance", "testdata", name)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cmd.NewRootCommand(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSimplexCommand(t *testing.T) {
	out, err := run(t, "simplex", testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "max: optimal")
	assert.Contains(t, out, "x = 1\n")
	assert.Contains(t, out, "y = 3\n")
	assert.Contains(t, out, "z* = 18\n")
	assert.Contains(t, out, "pivots: 2\n")
	assert.NotContains(t, out, "true")
}

func TestSimplexCommandOutputFormats(t *testing.T) {
	out, err := run(t, "simplex", "-o", "yaml", testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "status: optimal\n")
	assert.Contains(t, out, "objective: 18\n")
	assert.Contains(t, out, "pivots: 2\n")
	assert.Contains(t, out, "name: x\n")

	out, err = run(t, "simplex", "--output", "json", testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "optimal"`)
	assert.Contains(t, out, `"objective": 18`)

	path := filepath.Join(t.TempDir(), "unbounded.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sense: max\nobjective: [1, 1]\nconstraints:\n  - {coefficients: [1, -1], rhs: 1}\n"), 0o600))
	out, err = run(t, "simplex", "-o", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "unbounded"`)
	assert.NotContains(t, out, "objective")

	out, err = run(t, "simplex", path)
	require.NoError(t, err)
	assert.Contains(t, out, "z* = +Inf\n")

	_, err = run(t, "simplex", "-o", "xml", testdata("production.yaml"))
	assert.True(t, errors.Is(err, cmd.ErrUnknownOutput), "got %v", err)
}

func TestSimplexCommandShowModelAndRule(t *testing.T) {
	out, err := run(t, "simplex", "--show-model", "--rule", "bland", testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "A = ")
	assert.Contains(t, out, "z* = 18\n")
}

func TestSimplexCommandIterationLimit(t *testing.T) {
	out, err := run(t, "simplex", "--max-iterations", "1", testdata("production.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, simplex.ErrIterationLimit), "got %v", err)
	assert.Contains(t, out, "iteration-limit")
}

func TestSimplexCommandRejectsNegativeRHS(t *testing.T) {
	// mixed.json turns "x + y >= -2" into "-x - y <= 2" but "x - y = 0"
	// gives a -0 rhs, which is accepted.
	out, err := run(t, "simplex", testdata("mixed.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "min: optimal")

	path := filepath.Join(t.TempDir(), "neg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sense: max\nobjective: [1]\nconstraints:\n  - {coefficients: [1], op: '>=', rhs: 1}\n"), 0o600))
	_, err = run(t, "simplex", path)
	assert.True(t, errors.Is(err, simplex.ErrInfeasibleStandardForm), "got %v", err)
}

func TestSimplexCommandErrors(t *testing.T) {
	_, err := run(t, "simplex")
	assert.Error(t, err, "file argument is required")

	_, err = run(t, "simplex", "--rule", "nope", testdata("production.yaml"))
	assert.True(t, errors.Is(err, simplex.ErrUnknownRule), "got %v", err)

	_, err = run(t, "simplex", testdata("missing.yaml"))
	assert.Error(t, err)
}

func TestGraphicalCommand(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "region.png")
	out, err := run(t, "graphical", "--plot", plot, testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:")
	assert.Contains(t, out, "max: (1, 3), z* = 18")
	assert.Contains(t, out, "plot written to")
	_, err = os.Stat(plot)
	assert.NoError(t, err)
}

func TestGraphicalCommandUsesSolverSettings(t *testing.T) {
	_, err := run(t, "graphical", "--epsilon=-1", testdata("production.yaml"))
	assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)

	t.Setenv("LPDEMO_EPSILON", "-1")
	_, err = run(t, "graphical", testdata("production.yaml"))
	assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)

	t.Setenv("LPDEMO_EPSILON", "1e-6")
	out, err := run(t, "graphical", testdata("production.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "max: (1, 3), z* = 18")
}

func TestAssignmentCommand(t *testing.T) {
	out, err := run(t, "assignment", testdata("assignment.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "0 -> 1\n")
	assert.Contains(t, out, "1 -> 0\n")
	assert.Contains(t, out, "total cost: 13\n")
}

func TestTransportCommand(t *testing.T) {
	out, err := run(t, "transport", testdata("transport.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "plan:")
	assert.Contains(t, out, "total cost: 390\n")
	assert.NotContains(t, out, "unmet demand")
}
