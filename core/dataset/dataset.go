package dataset

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Shape describes the size of a dataset without carrying its values.
type Shape struct {
	Rows    int
	Columns int
}

// Shape returns itself so a bare Shape can stand in for a full Dataset
// wherever only the dimensions are needed.
func (s Shape) Shape() Shape { return s }

// Dataset is an ordered set of named columns of equal length.
// It is read-only once constructed; every transform returns a copy.
type Dataset struct {
	names  []string
	index  map[string]int
	values [][]any // column-major
	rows   int
}

// New creates a dataset from row-major values.
// Every row must have exactly one value per column.
func New(columns []string, rows ...[]any) (*Dataset, error) {
	d, err := newEmpty(columns)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrColumnLength, i, len(row), len(columns))
		}
		for c, v := range row {
			d.values[c] = append(d.values[c], v)
		}
	}
	d.rows = len(rows)

	return d, nil
}

// FromColumns creates a dataset from column-major values.
// The slices are copied, so the caller may keep mutating its own.
func FromColumns(names []string, columns ...[]any) (*Dataset, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrColumnLength, len(names), len(columns))
	}

	d, err := newEmpty(names)
	if err != nil {
		return nil, err
	}

	for i, col := range columns {
		if i > 0 && len(col) != len(columns[0]) {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d", ErrColumnLength, names[i], len(col), len(columns[0]))
		}
		d.values[i] = slices.Clone(col)
	}
	if len(columns) > 0 {
		d.rows = len(columns[0])
	}

	return d, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and fixtures.
func MustNew(columns []string, rows ...[]any) *Dataset {
	d, err := New(columns, rows...)
	if err != nil {
		panic(err)
	}
	return d
}

func newEmpty(names []string) (*Dataset, error) {
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateColumn, dups)
	}

	d := &Dataset{
		names:  slices.Clone(names),
		index:  make(map[string]int, len(names)),
		values: make([][]any, len(names)),
	}
	for i, name := range names {
		d.index[name] = i
	}
	return d, nil
}

// Rows returns the number of records.
func (d *Dataset) Rows() int {
	if d == nil {
		return 0
	}
	return d.rows
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.names)
}

// Shape returns the row and column counts.
func (d *Dataset) Shape() Shape {
	if d == nil {
		return Shape{}
	}
	return Shape{Rows: d.rows, Columns: len(d.names)}
}

// Empty reports whether the dataset has no records.
func (d *Dataset) Empty() bool {
	return d.Rows() == 0
}

// Row returns a copy of the i-th record. It panics if i is out of range.
func (d *Dataset) Row(i int) []any {
	if i < 0 || i >= d.rows {
		panic(fmt.Sprintf("dataset: row index %d out of range [0, %d)", i, d.rows))
	}
	return lo.Map(d.values, func(col []any, _ int) any { return col[i] })
}

// Column returns a copy of the named column's values.
func (d *Dataset) Column(name string) ([]any, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(d.values[i]), true
}

// Head returns a copy holding at most the first n records.
func (d *Dataset) Head(n int) *Dataset {
	n = max(0, min(n, d.Rows()))
	c := d.Clone()
	for i := range c.values {
		c.values[i] = c.values[i][:n:n]
	}
	c.rows = n
	return c
}

// Clone returns a deep copy of the column slices. Cell values themselves
// are copied by assignment.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return &Dataset{index: map[string]int{}}
	}
	c := &Dataset{
		names:  slices.Clone(d.names),
		index:  make(map[string]int, len(d.index)),
		values: make([][]any, len(d.values)),
		rows:   d.rows,
	}
	for k, v := range d.index {
		c.index[k] = v
	}
	for i, col := range d.values {
		c.values[i] = slices.Clone(col)
	}
	return c
}

// setColumn replaces the values of column i in place. Only used on copies.
func (d *Dataset) setColumn(i int, values []any) {
	d.values[i] = values
}
