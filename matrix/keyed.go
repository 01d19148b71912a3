// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tollgrid/table"
)

const (
	opNewKeyed  = "NewKeyed"
	opKeyedAt   = "Keyed.At"
	opKeyedTbl  = "Keyed.Table"
	opFromTable = "FromTable"
)

// Keyed is a square matrix whose rows and columns are both labelled by the
// same ascending key sequence (toll location ids, for instance).
// Row i and column i always carry keys[i].
type Keyed struct {
	keys  []table.Value
	index map[table.Key]int
	mat   *Dense
}

// NewKeyed labels the square matrix m with keys. Keys must be unique and
// len(keys) must equal the matrix order. Rows and columns are permuted so
// that the stored keys are ascending (table.Compare); m itself is not mutated.
//
// Errors: ErrNoKeys, ErrNilMatrix, ErrDimensionMismatch, ErrDuplicateKey.
// Complexity: O(n log n + n²).
func NewKeyed(keys []table.Value, m Matrix) (*Keyed, error) {
	if len(keys) == 0 {
		return nil, matrixErrorf(opNewKeyed, ErrNoKeys)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opNewKeyed, err)
	}
	n := m.Rows()
	if len(keys) != n {
		return nil, matrixErrorf(opNewKeyed, fmt.Errorf("%d keys for order %d: %w", len(keys), n, ErrDimensionMismatch))
	}

	// Sort a permutation instead of the keys, so rows/cols follow their labels.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(a, b int) int { return table.Compare(keys[a], keys[b]) })

	sorted := make([]table.Value, n)
	index := make(map[table.Key]int, n)
	for i, p := range perm {
		sorted[i] = keys[p]
		k := keys[p].Key()
		if _, dup := index[k]; dup {
			return nil, matrixErrorf(opNewKeyed, fmt.Errorf("key %s: %w", keys[p], ErrDuplicateKey))
		}
		index[k] = i
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewKeyed, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(perm[i], perm[j]); err != nil {
				return nil, matrixErrorf(opNewKeyed, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opNewKeyed, err)
			}
		}
	}

	return &Keyed{keys: sorted, index: index, mat: out}, nil
}

// newKeyedSorted wraps already-ascending unique keys and a matching Dense
// without copying; used by kernels that built both themselves.
func newKeyedSorted(keys []table.Value, index map[table.Key]int, m *Dense) *Keyed {
	return &Keyed{keys: keys, index: index, mat: m}
}

// Len returns the matrix order (number of keys).
func (k *Keyed) Len() int { return len(k.keys) }

// Keys returns a copy of the ascending key sequence.
func (k *Keyed) Keys() []table.Value { return slices.Clone(k.keys) }

// Dense returns a copy of the underlying matrix.
func (k *Keyed) Dense() *Dense { return k.mat.clone() }

// IndexOf returns the row/column position of key.
func (k *Keyed) IndexOf(key table.Value) (int, bool) {
	i, ok := k.index[key.Key()]
	return i, ok
}

// At returns cell(row key, column key).
// Errors: ErrUnknownKey.
func (k *Keyed) At(row, col table.Value) (float64, error) {
	i, ok := k.IndexOf(row)
	if !ok {
		return 0, matrixErrorf(opKeyedAt, fmt.Errorf("row key %s: %w", row, ErrUnknownKey))
	}
	j, ok := k.IndexOf(col)
	if !ok {
		return 0, matrixErrorf(opKeyedAt, fmt.Errorf("column key %s: %w", col, ErrUnknownKey))
	}

	return k.mat.data[i*k.mat.c+j], nil
}

// Table renders the matrix as a table: the first column (indexName) holds the
// row keys, followed by one Number column per key named by the key's string
// form, in key order.
//
// Errors: table.ErrDuplicateColumn when two keys render to the same name
// (or collide with indexName), table.ErrKindMismatch for mixed key kinds.
func (k *Keyed) Table(indexName string) (*table.Table, error) {
	n := len(k.keys)
	schema := make(table.Schema, 0, n+1)
	schema = append(schema, table.Column{Name: indexName, Kind: k.keys[0].Kind()})
	for _, key := range k.keys {
		schema = append(schema, table.Column{Name: key.String(), Kind: table.Number})
	}
	b, err := table.NewBuilder(schema)
	if err != nil {
		return nil, matrixErrorf(opKeyedTbl, err)
	}
	b.Grow(n)
	row := make([]table.Value, n+1)
	for i, key := range k.keys {
		row[0] = key
		base := i * n
		for j := 0; j < n; j++ {
			row[j+1] = table.NumberValue(k.mat.data[base+j])
		}
		if err = b.Append(row...); err != nil {
			return nil, matrixErrorf(opKeyedTbl, err)
		}
	}

	return b.Build(), nil
}

// FromTable is the inverse of Keyed.Table: indexName holds the row keys and
// every other column must be a Number column named after exactly one row key.
// Column order in the table is irrelevant.
//
// Errors: table.ErrUnknownColumn (indexName missing), ErrNoKeys (no rows),
// ErrDimensionMismatch (column count differs from row count),
// ErrUnknownKey (a column names no row key), table.ErrKindMismatch
// (non-Number value column), ErrDuplicateKey.
func FromTable(t *table.Table, indexName string) (*Keyed, error) {
	keys, err := t.Column(indexName)
	if err != nil {
		return nil, matrixErrorf(opFromTable, err)
	}
	n := len(keys)
	if n == 0 {
		return nil, matrixErrorf(opFromTable, ErrNoKeys)
	}
	if t.Width()-1 != n {
		return nil, matrixErrorf(opFromTable, fmt.Errorf("%d value columns for %d rows: %w", t.Width()-1, n, ErrDimensionMismatch))
	}

	// Column position in the matrix = row position of the key it names.
	byName := make(map[string]int, n)
	for i, key := range keys {
		byName[key.String()] = i
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opFromTable, err)
	}
	for _, col := range t.Schema() {
		if col.Name == indexName {
			continue
		}
		j, ok := byName[col.Name]
		if !ok {
			return nil, matrixErrorf(opFromTable, fmt.Errorf("column %q: %w", col.Name, ErrUnknownKey))
		}
		xs, ferr := t.Floats(col.Name)
		if ferr != nil {
			return nil, matrixErrorf(opFromTable, ferr)
		}
		for i, x := range xs {
			if err = m.Set(i, j, x); err != nil {
				return nil, matrixErrorf(opFromTable, err)
			}
		}
	}

	return NewKeyed(keys, m)
}
