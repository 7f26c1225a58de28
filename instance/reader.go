package instance

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"q.log/lpdemo/model"
)

var (
	ErrUnknownFormat = errors.New("instance: unknown file format")
	ErrUnknownOp     = errors.New("instance: unknown constraint relation")
)

// ReadFunc reads a model from a file.
type ReadFunc func(path string) (*model.Model, error)

var (
	readersMu sync.RWMutex
	readers   = map[string]ReadFunc{
		".yaml": ReadDocument,
		".yml":  ReadDocument,
		".json": ReadDocument,
	}
)

// Register makes fn the reader for files with extension ext (".mps").
// A later registration for the same extension replaces the earlier one.
func Register(ext string, fn ReadFunc) {
	readersMu.Lock()
	defer readersMu.Unlock()
	readers[strings.ToLower(ext)] = fn
}

// Formats lists the registered extensions.
func Formats() []string {
	readersMu.RLock()
	defer readersMu.RUnlock()
	exts := make([]string, 0, len(readers))
	for ext := range readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ReadFile reads a model with the reader registered for path's extension.
func ReadFile(path string) (*model.Model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	readersMu.RLock()
	fn, ok := readers[ext]
	readersMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "%s (known: %s)", path, strings.Join(Formats(), ", "))
	}
	return fn(path)
}

// Document is the YAML/JSON form of a linear program. It is decoded with
// YAML 1.2 rules, so names such as y, n, on or no stay strings.
type Document struct {
	Name        string       `yaml:"name,omitempty"`
	Sense       string       `yaml:"sense"`
	Variables   []string     `yaml:"variables,omitempty"`
	Objective   []float64    `yaml:"objective"`
	Constraints []Constraint `yaml:"constraints"`
}

type Constraint struct {
	Name         string    `yaml:"name,omitempty"`
	Coefficients []float64 `yaml:"coefficients"`
	Op           string    `yaml:"op,omitempty"` // defaults to "<="
	RHS          float64   `yaml:"rhs"`
}

// Model converts the document, rewriting >= and = rows into <= rows.
func (d *Document) Model() (*model.Model, error) {
	sense, err := model.ParseSense(d.Sense)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(d.Constraints))
	for i, c := range d.Constraints {
		op := LE
		if c.Op != "" {
			if op, err = ParseOp(c.Op); err != nil {
				return nil, errors.Wrapf(err, "constraint %d", i)
			}
		}
		rows[i] = Row{Name: c.Name, Coefficients: c.Coefficients, Op: op, RHS: c.RHS}
	}
	return Build(sense, d.Objective, rows, d.Variables)
}

// ParseDocument decodes a YAML or JSON model. Unknown fields are rejected.
func ParseDocument(data []byte) (*model.Model, error) {
	var d Document
	if err := decodeStrict(data, &d); err != nil {
		return nil, errors.Wrap(err, "decoding model")
	}
	return d.Model()
}

func ReadDocument(path string) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	m, err := ParseDocument(data)
	return m, errors.Wrap(err, path)
}

// AssignmentDocument is a square cost matrix: worker i doing task j costs
// Cost[i][j].
type AssignmentDocument struct {
	Cost [][]float64 `yaml:"cost"`
}

// TransportDocument is a transportation problem: Cost[i][j] per unit shipped
// from source i to destination j.
type TransportDocument struct {
	Cost   [][]float64 `yaml:"cost"`
	Supply []float64   `yaml:"supply"`
	Demand []float64   `yaml:"demand"`
}

func ReadAssignment(path string) (*AssignmentDocument, error) {
	var d AssignmentDocument
	if err := readInto(path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func ReadTransport(path string) (*TransportDocument, error) {
	var d TransportDocument
	if err := readInto(path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func readInto(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return errors.Wrapf(decodeStrict(data, v), "decoding %s", path)
}

// decodeStrict decodes a single YAML (or JSON) document into v, rejecting
// unknown fields. An empty input decodes to the zero value.
func decodeStrict(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}
