// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/tollgrid/internal/cli"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New(table.Schema{
		{Name: "id", Kind: table.Number},
		{Name: "name", Kind: table.String},
		{Name: "distance", Kind: table.Number},
	},
		[]table.Value{table.NumberValue(1001400), table.StringValue("a"), table.NumberValue(9.7)},
		[]table.Value{table.NumberValue(1001402), table.StringValue("b"), table.NumberValue(20)},
	)
	require.NoError(t, err)
	return tb
}

func render(t *testing.T, format string, tb *table.Table) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, cli.NewRenderer(&buf, format).Table(tb))
	return buf.String()
}

func TestRendererJSON(t *testing.T) {
	t.Parallel()
	out := render(t, cli.FormatJSON, sample(t))
	assert.JSONEq(t, `[
		{"id": 1001400, "name": "a", "distance": 9.7},
		{"id": 1001402, "name": "b", "distance": 20}
	]`, out)

	// Keys follow the column order, not the alphabet.
	id, name, dist := strings.Index(out, `"id"`), strings.Index(out, `"name"`), strings.Index(out, `"distance"`)
	require.True(t, id >= 0 && name >= 0 && dist >= 0, out)
	assert.Less(t, id, name)
	assert.Less(t, name, dist)
}

func TestRendererYAMLKeepsColumnOrder(t *testing.T) {
	t.Parallel()
	out := render(t, cli.FormatYAML, sample(t))
	assert.Equal(t, "- id: 1001400\n  name: a\n  distance: 9.7\n- id: 1001402\n  name: b\n  distance: 20\n", out)
}

func TestRendererCSV(t *testing.T) {
	t.Parallel()
	out := render(t, cli.FormatCSV, sample(t))
	assert.Equal(t, "id,name,distance\n1001400,a,9.7\n1001402,b,20\n", out)
}

func TestRendererText(t *testing.T) {
	t.Parallel()
	out := render(t, cli.FormatText, sample(t))
	assert.Contains(t, out, "DISTANCE")
	assert.Contains(t, out, "1001400")
	assert.Contains(t, out, "9.7")

	md := render(t, cli.FormatMarkdown, sample(t))
	assert.Contains(t, strings.ToLower(md), "| id")
	assert.Contains(t, md, "1001402")
}

func TestRendererEmpty(t *testing.T) {
	t.Parallel()
	empty, err := table.New(table.Schema{{Name: "route", Kind: table.Number}})
	require.NoError(t, err)

	assert.Equal(t, "(0 rows)\n", render(t, cli.FormatText, empty))
	assert.JSONEq(t, "[]", render(t, cli.FormatJSON, empty))
	assert.Equal(t, "route\n", render(t, cli.FormatCSV, empty))
}
