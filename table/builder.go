// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"slices"
)

const opAppend = "Builder.Append"

// Builder accumulates validated records for a fixed schema.
// The zero Builder is not usable; call NewBuilder.
type Builder struct {
	schema Schema
	index  map[string]int
	rows   [][]Value
}

// NewBuilder validates schema and returns an empty Builder for it.
func NewBuilder(schema Schema) (*Builder, error) {
	idx, err := indexSchema(schema)
	if err != nil {
		return nil, tableErrorf(opNew, err)
	}

	return &Builder{schema: slices.Clone(schema), index: idx}, nil
}

// Grow reserves room for n more records.
func (b *Builder) Grow(n int) { b.rows = slices.Grow(b.rows, n) }

// Append validates values against the schema and appends them as a record.
// On error the builder is left unchanged.
func (b *Builder) Append(values ...Value) error {
	if err := validateRow(b.schema, values); err != nil {
		return tableErrorf(opAppend, fmt.Errorf("row %d: %w", len(b.rows), err))
	}
	b.rows = append(b.rows, slices.Clone(values))

	return nil
}

// Len returns the number of records appended so far.
func (b *Builder) Len() int { return len(b.rows) }

// Build returns the accumulated Table. The builder must not be reused.
func (b *Builder) Build() *Table {
	t := &Table{schema: b.schema, index: b.index, rows: b.rows}
	b.rows = nil

	return t
}
