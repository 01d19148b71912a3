// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/katalvlaran/tollgrid/tableio"
	"gopkg.in/yaml.v3"
)

// Renderer writes result tables in the configured output format.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a renderer for one of the accepted formats.
func NewRenderer(w io.Writer, format string) *Renderer {
	return &Renderer{w: w, format: format}
}

// Table renders t.
func (r *Renderer) Table(t *table.Table) error {
	switch r.format {
	case FormatJSON:
		return r.json(t)
	case FormatYAML:
		return r.yaml(t)
	case FormatCSV:
		return tableio.WriteCSV(r.w, t)
	case FormatMarkdown:
		return r.pretty(t, true)
	default:
		return r.pretty(t, false)
	}
}

func (r *Renderer) pretty(t *table.Table, markdown bool) error {
	if t.Len() == 0 {
		_, err := fmt.Fprintln(r.w, "(0 rows)")
		return err
	}

	tw := prettytable.NewWriter()
	tw.SetOutputMirror(r.w)
	tw.SetStyle(prettytable.StyleLight)

	names := t.Schema().Names()
	header := make(prettytable.Row, len(names))
	for i, name := range names {
		header[i] = name
	}
	tw.AppendHeader(header)

	t.Rows(func(row table.Row) bool {
		vals := row.Values()
		out := make(prettytable.Row, len(vals))
		for i, v := range vals {
			out[i] = v.String()
		}
		tw.AppendRow(out)
		return true
	})

	if markdown {
		tw.RenderMarkdown()
	} else {
		tw.Render()
	}

	return nil
}

// json emits an array of objects whose keys follow the column order.
func (r *Renderer) json(t *table.Table) error {
	names := t.Schema().Names()
	results := make([]orderedRow, 0, t.Len())
	t.Rows(func(row table.Row) bool {
		vals := row.Values()
		obj := orderedRow{names: names, values: make([]any, len(vals))}
		for i, v := range vals {
			obj.values[i] = plain(v)
		}
		results = append(results, obj)
		return true
	})

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// orderedRow is one JSON object with keys in schema order.
type orderedRow struct {
	names  []string
	values []any
}

// MarshalJSON writes the object keys in column order.
func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// yaml emits a sequence of mappings that keeps the column order.
func (r *Renderer) yaml(t *table.Table) error {
	names := t.Schema().Names()
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	var err error
	t.Rows(func(row table.Row) bool {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, v := range row.Values() {
			var val yaml.Node
			if err = val.Encode(plain(v)); err != nil {
				return false
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: names[i]},
				&val,
			)
		}
		doc.Content = append(doc.Content, m)
		return true
	})
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// plain converts a cell for the structured encoders. Integral numbers
// become int64 so ids print as 1001400 rather than 1.0014e+06.
func plain(v table.Value) any {
	if f, ok := v.Float(); ok {
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	}
	if s, ok := v.Text(); ok {
		return s
	}

	return v.String()
}
