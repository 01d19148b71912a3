// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"time"

	"github.com/katalvlaran/tollgrid/table"
	"github.com/katalvlaran/tollgrid/tableio"
	"github.com/spf13/cobra"
)

// loadDataset reads a CSV dataset and logs its shape.
func loadDataset(cmd *cobra.Command, path string, opts ...tableio.Option) (*table.Table, error) {
	t, err := tableio.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	GetLogger(cmd.Context()).Debug("dataset loaded", "path", path, "rows", t.Len(), "columns", t.Width())

	return t, nil
}

// emit renders the result table and logs the command summary.
func emit(cmd *cobra.Command, start time.Time, t *table.Table) error {
	if err := GetRenderer(cmd.Context()).Table(t); err != nil {
		return err
	}
	GetLogger(cmd.Context()).Debug("command finished",
		"command", cmd.Name(), "rows", t.Len(), "duration", time.Since(start))

	return nil
}

// singleColumn builds a one-column table from values of one kind.
func singleColumn(name string, kind table.Kind, values []table.Value) (*table.Table, error) {
	b, err := table.NewBuilder(table.Schema{{Name: name, Kind: kind}})
	if err != nil {
		return nil, err
	}
	b.Grow(len(values))
	for _, v := range values {
		if err = b.Append(v); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// parseKey reads a key given on the command line: a number when it parses
// as one, text otherwise.
func parseKey(s string) table.Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return table.NumberValue(f)
	}
	return table.StringValue(s)
}
