// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"testing"

	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/require"
)

// num is a shorthand for table.NumberValue.
func num(f float64) table.Value { return table.NumberValue(f) }

// str is a shorthand for table.StringValue.
func str(s string) table.Value { return table.StringValue(s) }

// numbers builds a one-column Number table or fails the test.
func numbers(t *testing.T, name string, xs ...float64) *table.Table {
	t.Helper()
	rows := make([][]table.Value, len(xs))
	for i, x := range xs {
		rows[i] = []table.Value{num(x)}
	}
	tb, err := table.New(table.Schema{{Name: name, Kind: table.Number}}, rows...)
	require.NoError(t, err)

	return tb
}

// pairs builds a (key, value) table with the given column names.
func pairs(t *testing.T, keyName string, keyKind table.Kind, valueName string, rows ...[]table.Value) *table.Table {
	t.Helper()
	tb, err := table.New(table.Schema{
		{Name: keyName, Kind: keyKind},
		{Name: valueName, Kind: table.Number},
	}, rows...)
	require.NoError(t, err)

	return tb
}
