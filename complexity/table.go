// Package complexity loads red-black tree benchmark results and derives the
// series plotted against a linear reference.
package complexity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names required in the input header.
const (
	ColN      = "n"
	ColInsert = "insert_time"
	ColDelete = "delete_time"
)

// Record is one row of the benchmark table.
type Record struct {
	N          int
	InsertTime float64
	DeleteTime float64
}

// Table holds the benchmark results column-wise, in file order.
type Table struct {
	N      []int
	Insert []float64
	Delete []float64
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.N) }

// Record returns row i.
func (t *Table) Record(i int) Record {
	return Record{N: t.N[i], InsertTime: t.Insert[i], DeleteTime: t.Delete[i]}
}

// Ascending reports whether n never decreases from one row to the next.
func (t *Table) Ascending() bool {
	for i := 1; i < len(t.N); i++ {
		if t.N[i] < t.N[i-1] {
			return false
		}
	}
	return true
}

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", path, ErrMissingInput, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Read parses a benchmark CSV. Extra columns are ignored and cells may be
// padded with whitespace.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: empty table", ErrMalformedData)
	}
	for _, rec := range records {
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
	}

	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, df.Err)
	}
	if err := requireColumns(df, ColN, ColInsert, ColDelete); err != nil {
		return nil, err
	}

	n, err := intColumn(df, ColN)
	if err != nil {
		return nil, err
	}
	for i, v := range n {
		if v < 0 {
			return nil, fmt.Errorf("%w: row %d: negative %s %d", ErrMalformedData, i+1, ColN, v)
		}
	}
	ins, err := floatColumn(df, ColInsert)
	if err != nil {
		return nil, err
	}
	del, err := floatColumn(df, ColDelete)
	if err != nil {
		return nil, err
	}
	return &Table{N: n, Insert: ins, Delete: del}, nil
}

func requireColumns(df dataframe.DataFrame, names ...string) error {
	have := make(map[string]bool)
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range names {
		if !have[name] {
			return fmt.Errorf("%w: missing column %q", ErrMalformedData, name)
		}
	}
	return nil
}

func intColumn(df dataframe.DataFrame, name string) ([]int, error) {
	s := df.Col(name)
	if s.Type() != series.Int || s.HasNaN() {
		return nil, fmt.Errorf("%w: column %q is not integer", ErrMalformedData, name)
	}
	v, err := s.Int()
	if err != nil {
		return nil, fmt.Errorf("%w: column %q: %v", ErrMalformedData, name, err)
	}
	return v, nil
}

func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	s := df.Col(name)
	switch s.Type() {
	case series.Int, series.Float:
	default:
		return nil, fmt.Errorf("%w: column %q is not numeric", ErrMalformedData, name)
	}
	if s.HasNaN() {
		return nil, fmt.Errorf("%w: column %q has empty or NaN values", ErrMalformedData, name)
	}
	v := s.Float()
	for _, x := range v {
		if math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: column %q has non-finite values", ErrMalformedData, name)
		}
	}
	return v, nil
}
