// SPDX-License-Identifier: MIT

// Package table - Table storage & derivations.
//
// Purpose:
//   - Hold records row-major as [][]Value, one slice per record.
//   - Never mutate after construction: derivations copy the row headers and
//     share nothing the caller can write through.
//   - Keep every traversal in row order so results are deterministic.
//
// Complexity quicksheet:
//   - New/Builder: O(r*c) validation; Value/Row: O(1)/O(c); Column: O(r);
//     WithColumn/ReplaceColumn/Select: O(r*c); SortBy: O(r log r * k).

package table

import (
	"fmt"
	"slices"
)

// Operation tags for error wrapping.
const (
	opNew           = "New"
	opValue         = "Value"
	opColumn        = "Column"
	opFloats        = "Floats"
	opWithColumn    = "WithColumn"
	opReplaceColumn = "ReplaceColumn"
	opSelect        = "Select"
	opSortBy        = "SortBy"
	opRow           = "Row"
)

// Table is an immutable, ordered sequence of records over a Schema.
type Table struct {
	schema Schema
	index  map[string]int // column name → position
	rows   [][]Value      // row-major records; len(rows[i]) == len(schema)
}

// New validates schema and rows and returns a Table owning copies of both.
//
// Errors:
//   - ErrEmptySchema, ErrEmptyColumnName, ErrDuplicateColumn (schema).
//   - ErrRowWidth, ErrKindMismatch, ErrNaNInf (rows), wrapped with the row index.
//
// Complexity: O(r*c).
func New(schema Schema, rows ...[]Value) (*Table, error) {
	idx, err := indexSchema(schema)
	if err != nil {
		return nil, tableErrorf(opNew, err)
	}
	t := &Table{
		schema: slices.Clone(schema),
		index:  idx,
		rows:   make([][]Value, 0, len(rows)),
	}
	for i, row := range rows {
		if err = validateRow(t.schema, row); err != nil {
			return nil, tableErrorf(opNew, fmt.Errorf("row %d: %w", i, err))
		}
		t.rows = append(t.rows, slices.Clone(row))
	}

	return t, nil
}

// Schema returns a copy of the table's schema.
func (t *Table) Schema() Schema { return slices.Clone(t.schema) }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.schema) }

// Has reports whether the schema contains a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of name in the schema.
func (t *Table) ColumnIndex(name string) (int, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	return j, nil
}

// ColumnKind returns the kind of column name.
func (t *Table) ColumnKind(name string) (Kind, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return Invalid, err
	}

	return t.schema[j].Kind, nil
}

// Row returns a copy of record i.
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, tableErrorf(opRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	return slices.Clone(t.rows[i]), nil
}

// Value returns the cell at (row, column name).
func (t *Table) Value(row int, name string) (Value, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return Value{}, tableErrorf(opValue, err)
	}
	if row < 0 || row >= len(t.rows) {
		return Value{}, tableErrorf(opValue, fmt.Errorf("row %d: %w", row, ErrOutOfRange))
	}

	return t.rows[row][j], nil
}

// Column returns a copy of every value of column name, in row order.
func (t *Table) Column(name string) ([]Value, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, tableErrorf(opColumn, err)
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}

	return out, nil
}

// Floats returns the numbers of a Number column, in row order.
// Errors: ErrUnknownColumn, ErrKindMismatch (column is not Number).
func (t *Table) Floats(name string) ([]float64, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, tableErrorf(opFloats, err)
	}
	if t.schema[j].Kind != Number {
		return nil, columnErrorf(opFloats, name, ErrKindMismatch)
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j].num
	}

	return out, nil
}

// Rows calls f for every record in order; f receives a Row handle that is
// valid only for the duration of the call. Iteration stops when f returns false.
func (t *Table) Rows(f func(r Row) bool) {
	for i := range t.rows {
		if !f(Row{t: t, i: i}) {
			return
		}
	}
}

// WithColumn returns a new table with col appended after the existing columns.
//
// Errors:
//   - ErrDuplicateColumn when col.Name already exists.
//   - ErrRowWidth when len(values) != Len().
//   - ErrKindMismatch / ErrNaNInf for offending values.
func (t *Table) WithColumn(col Column, values []Value) (*Table, error) {
	if t.Has(col.Name) {
		return nil, columnErrorf(opWithColumn, col.Name, ErrDuplicateColumn)
	}
	if len(values) != len(t.rows) {
		return nil, columnErrorf(opWithColumn, col.Name,
			fmt.Errorf("got %d values for %d rows: %w", len(values), len(t.rows), ErrRowWidth))
	}
	schema := append(slices.Clone(t.schema), col)
	idx, err := indexSchema(schema)
	if err != nil {
		return nil, columnErrorf(opWithColumn, col.Name, err)
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		v := values[i]
		if v.kind != col.Kind {
			return nil, columnErrorf(opWithColumn, col.Name, fmt.Errorf("row %d: %w", i, ErrKindMismatch))
		}
		if !v.finite() {
			return nil, columnErrorf(opWithColumn, col.Name, fmt.Errorf("row %d: %w", i, ErrNaNInf))
		}
		nr := make([]Value, len(row), len(row)+1)
		copy(nr, row)
		rows[i] = append(nr, v)
	}

	return &Table{schema: schema, index: idx, rows: rows}, nil
}

// ReplaceColumn returns a new table where column name holds values.
// The column keeps its position and kind.
func (t *Table) ReplaceColumn(name string, values []Value) (*Table, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, tableErrorf(opReplaceColumn, err)
	}
	if len(values) != len(t.rows) {
		return nil, columnErrorf(opReplaceColumn, name,
			fmt.Errorf("got %d values for %d rows: %w", len(values), len(t.rows), ErrRowWidth))
	}
	kind := t.schema[j].Kind
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		v := values[i]
		if v.kind != kind {
			return nil, columnErrorf(opReplaceColumn, name, fmt.Errorf("row %d: %w", i, ErrKindMismatch))
		}
		if !v.finite() {
			return nil, columnErrorf(opReplaceColumn, name, fmt.Errorf("row %d: %w", i, ErrNaNInf))
		}
		nr := slices.Clone(row)
		nr[j] = v
		rows[i] = nr
	}

	return &Table{schema: slices.Clone(t.schema), index: t.index, rows: rows}, nil
}

// Select returns a new table holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	pos := make([]int, len(names))
	schema := make(Schema, len(names))
	for k, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, tableErrorf(opSelect, err)
		}
		pos[k] = j
		schema[k] = t.schema[j]
	}
	idx, err := indexSchema(schema)
	if err != nil {
		return nil, tableErrorf(opSelect, err)
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		nr := make([]Value, len(pos))
		for k, j := range pos {
			nr[k] = row[j]
		}
		rows[i] = nr
	}

	return &Table{schema: schema, index: idx, rows: rows}, nil
}

// Filter returns a new table with the records for which keep returns true,
// in their original order.
func (t *Table) Filter(keep func(r Row) bool) *Table {
	rows := make([][]Value, 0, len(t.rows))
	for i, row := range t.rows {
		if keep(Row{t: t, i: i}) {
			rows = append(rows, slices.Clone(row))
		}
	}

	return &Table{schema: slices.Clone(t.schema), index: t.index, rows: rows}
}

// SortBy returns a new table ordered ascending by the named columns
// (lexicographic over the tuple). The sort is stable.
func (t *Table) SortBy(names ...string) (*Table, error) {
	pos := make([]int, len(names))
	for k, name := range names {
		j, err := t.ColumnIndex(name)
		if err != nil {
			return nil, tableErrorf(opSortBy, err)
		}
		pos[k] = j
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		rows[i] = slices.Clone(row)
	}
	slices.SortStableFunc(rows, func(a, b []Value) int {
		for _, j := range pos {
			if c := Compare(a[j], b[j]); c != 0 {
				return c
			}
		}
		return 0
	})

	return &Table{schema: slices.Clone(t.schema), index: t.index, rows: rows}, nil
}

// Row is a read-only handle on one record of a Table.
type Row struct {
	t *Table
	i int
}

// Index returns the record's position in its table.
func (r Row) Index() int { return r.i }

// Get returns the value of column name in this record.
func (r Row) Get(name string) (Value, error) { return r.t.Value(r.i, name) }

// Values returns a copy of the record.
func (r Row) Values() []Value { return slices.Clone(r.t.rows[r.i]) }
