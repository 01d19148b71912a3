// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"
	"time"

	"github.com/katalvlaran/tollgrid/coverage"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/spf13/cobra"
)

// NewCoverageCommand creates the coverage command.
func NewCoverageCommand() *cobra.Command {
	var incompleteOnly bool
	cmd := &cobra.Command{
		Use:   "coverage <dataset-2.csv>",
		Short: "Check that every (id, id_2) pair covers a full week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := coverage.Check(t)
			if err != nil {
				return err
			}
			groups := rep.Groups
			if incompleteOnly {
				groups = rep.Incomplete()
			}

			schema := table.Schema{}
			for _, name := range []string{coverage.DefaultIDColumn, coverage.DefaultID2Column} {
				kind, kerr := t.ColumnKind(name)
				if kerr != nil {
					return kerr
				}
				schema = append(schema, table.Column{Name: name, Kind: kind})
			}
			schema = append(schema,
				table.Column{Name: "complete", Kind: table.String},
				table.Column{Name: "span", Kind: table.String},
			)
			b, err := table.NewBuilder(schema)
			if err != nil {
				return err
			}
			for _, g := range groups {
				row := append(g.Key[:len(g.Key):len(g.Key)],
					table.StringValue(strconv.FormatBool(g.Complete)),
					table.StringValue(g.Span.String()),
				)
				if err = b.Append(row...); err != nil {
					return err
				}
			}
			GetLogger(cmd.Context()).Debug("coverage checked",
				"groups", len(rep.Groups), "incomplete", len(rep.Incomplete()))

			return emit(cmd, start, b.Build())
		},
	}
	cmd.Flags().BoolVar(&incompleteOnly, "incomplete", false, "Only list groups that miss part of the week")

	return cmd
}
