// SPDX-License-Identifier: MIT

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/tollgrid/table"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	opReadCSV  = "ReadCSV"
	opReadFile = "ReadFile"
	opWriteCSV = "WriteCSV"
)

// ReadFile opens path and reads it with ReadCSV.
func ReadFile(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadFile, err)
	}
	defer f.Close()

	t, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opReadFile, path, err)
	}

	return t, nil
}

// ReadCSV reads a header record followed by data records.
//
// Kinds: WithKinds entries win; every other column is Number when all of
// its cells parse as finite floats (vacuously true for zero rows) and
// String otherwise.
//
// Errors: ErrNoHeader, ErrParse (with row and column), csv.ParseError,
// and table errors (duplicate or empty header names).
func ReadCSV(r io.Reader, opts ...Option) (*table.Table, error) {
	o := gatherOptions(opts...)

	// BOMOverride honours a UTF-16 BOM and strips a UTF-8 one.
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ioErrorf(opReadCSV, ErrNoHeader)
	}
	if err != nil {
		return nil, ioErrorf(opReadCSV, err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, ioErrorf(opReadCSV, err)
	}

	schema := make(table.Schema, len(header))
	for j, name := range header {
		name = strings.TrimSpace(name)
		kind, ok := o.kinds[name]
		if !ok {
			kind = inferKind(records, j)
		}
		schema[j] = table.Column{Name: name, Kind: kind}
	}

	b, err := table.NewBuilder(schema)
	if err != nil {
		return nil, ioErrorf(opReadCSV, err)
	}
	b.Grow(len(records))
	row := make([]table.Value, len(schema))
	for i, rec := range records {
		for j, col := range schema {
			if row[j], err = parseCell(col.Kind, rec[j]); err != nil {
				return nil, ioErrorf(opReadCSV, fmt.Errorf("row %d, column %q: %w", i, col.Name, err))
			}
		}
		if err = b.Append(row...); err != nil {
			return nil, ioErrorf(opReadCSV, err)
		}
	}

	return b.Build(), nil
}

// WriteCSV writes the header and every record; cells use Value.String.
func WriteCSV(w io.Writer, t *table.Table, opts ...Option) error {
	if t == nil {
		return ioErrorf(opWriteCSV, table.ErrNilTable)
	}
	o := gatherOptions(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	if err := cw.Write(t.Schema().Names()); err != nil {
		return ioErrorf(opWriteCSV, err)
	}
	var err error
	rec := make([]string, t.Width())
	t.Rows(func(r table.Row) bool {
		for j, v := range r.Values() {
			rec[j] = v.String()
		}
		err = cw.Write(rec)
		return err == nil
	})
	if err != nil {
		return ioErrorf(opWriteCSV, err)
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return ioErrorf(opWriteCSV, err)
	}

	return nil
}

// inferKind returns Number when every cell of column j is a finite float.
func inferKind(records [][]string, j int) table.Kind {
	for _, rec := range records {
		if _, ok := parseNumber(rec[j]); !ok {
			return table.String
		}
	}

	return table.Number
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// parseCell converts s to a Value of the given kind.
func parseCell(kind table.Kind, s string) (table.Value, error) {
	switch kind {
	case table.Number:
		f, ok := parseNumber(s)
		if !ok {
			return table.Value{}, fmt.Errorf("%q as number: %w", s, ErrParse)
		}
		return table.NumberValue(f), nil
	case table.Time:
		s = strings.TrimSpace(s)
		for _, layout := range []string{table.TimeLayout, table.ClockLayout} {
			if tm, err := time.Parse(layout, s); err == nil {
				return table.TimeValue(tm), nil
			}
		}
		return table.Value{}, fmt.Errorf("%q as time: %w", s, ErrParse)
	default:
		return table.StringValue(s), nil
	}
}
