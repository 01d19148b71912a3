// SPDX-License-Identifier: MIT

package table

import "fmt"

// Column names a column and fixes the kind of every value stored in it.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered column list of a Table.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}

	return out
}

// indexSchema validates s and builds the name→position map.
// Validation order: empty schema → empty name → invalid kind → duplicate.
func indexSchema(s Schema) (map[string]int, error) {
	if len(s) == 0 {
		return nil, ErrEmptySchema
	}
	idx := make(map[string]int, len(s))
	for i, c := range s {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if !c.Kind.valid() {
			return nil, fmt.Errorf("column %q: kind %s: %w", c.Name, c.Kind, ErrKindMismatch)
		}
		if _, dup := idx[c.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", c.Name, ErrDuplicateColumn)
		}
		idx[c.Name] = i
	}

	return idx, nil
}

// validateRow checks one record against the schema: width, kinds and
// numeric policy. Returns plain sentinels wrapped with the column position.
func validateRow(s Schema, row []Value) error {
	if len(row) != len(s) {
		return fmt.Errorf("got %d values for %d columns: %w", len(row), len(s), ErrRowWidth)
	}
	for j, v := range row {
		if v.kind != s[j].Kind {
			return fmt.Errorf("column %q: got %s, want %s: %w", s[j].Name, v.kind, s[j].Kind, ErrKindMismatch)
		}
		if !v.finite() {
			return fmt.Errorf("column %q: %w", s[j].Name, ErrNaNInf)
		}
	}

	return nil
}
