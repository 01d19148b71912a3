// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/spf13/cobra"
)

// NewCarMatrixCommand creates the car-matrix command.
func NewCarMatrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "car-matrix <dataset-1.csv>",
		Short: "Pivot vehicle counts into an id_1 × id_2 car matrix",
		Example: `  tollgrid car-matrix dataset-1.csv
  tollgrid car-matrix dataset-1.csv -o csv > car-matrix.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			k, err := matrix.CarMatrix(t)
			if err != nil {
				return err
			}
			out, err := k.Table(matrix.CarStartColumn)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
}

// NewRescaleCommand creates the rescale command.
func NewRescaleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescale <dataset-1.csv>",
		Short: "Build the car matrix and rescale it around a threshold",
		Long: `Build the car matrix, then multiply every cell above the threshold by the
"above" factor and every other cell by the "below" factor, rounding half away
from zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			cfg := GetConfig(cmd.Context())
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			k, err := matrix.CarMatrix(t)
			if err != nil {
				return err
			}
			if k, err = k.Rescale(cfg.RescaleOptions()...); err != nil {
				return err
			}
			out, err := k.Table(matrix.CarStartColumn)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().Float64("rescale-threshold", matrix.DefaultRescaleThreshold, "Cells strictly above this use the above factor")
	cmd.Flags().Float64("rescale-above", matrix.DefaultRescaleAbove, "Factor for cells above the threshold")
	cmd.Flags().Float64("rescale-below", matrix.DefaultRescaleBelow, "Factor for the other cells")
	cmd.Flags().Int("rescale-decimals", matrix.DefaultRescaleDecimals, "Rounding precision")

	return cmd
}

// NewCarTypesCommand creates the car-types command.
func NewCarTypesCommand() *cobra.Command {
	var annotate bool
	cmd := &cobra.Command{
		Use:   "car-types <dataset-1.csv>",
		Short: "Count car values per bucket (low < 15 ≤ medium < 25 ≤ high)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			if annotate {
				out, err := aggregate.Categorize(t)
				if err != nil {
					return err
				}
				return emit(cmd, start, out)
			}

			counts, err := aggregate.TypeCount(t)
			if err != nil {
				return err
			}
			b, err := table.NewBuilder(table.Schema{
				{Name: aggregate.DefaultLabelColumn, Kind: table.String},
				{Name: "count", Kind: table.Number},
			})
			if err != nil {
				return err
			}
			for _, c := range counts {
				if err = b.Append(table.StringValue(c.Label), table.NumberValue(float64(c.Count))); err != nil {
					return err
				}
			}
			return emit(cmd, start, b.Build())
		},
	}
	cmd.Flags().BoolVar(&annotate, "annotate", false, "Print the dataset with a car_type column instead of counts")

	return cmd
}

// NewBusIndexesCommand creates the bus-indexes command.
func NewBusIndexesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bus-indexes <dataset-1.csv>",
		Short: "List rows whose bus value exceeds twice the mean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := aggregate.BusIndexes(t)
			if err != nil {
				return err
			}
			vals := make([]table.Value, len(idx))
			for i, n := range idx {
				vals[i] = table.NumberValue(float64(n))
			}
			out, err := singleColumn("index", table.Number, vals)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
}

// NewRoutesCommand creates the routes command.
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes <dataset-1.csv>",
		Short: "List routes whose mean truck value exceeds a threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			cfg := GetConfig(cmd.Context())
			t, err := loadDataset(cmd, args[0])
			if err != nil {
				return err
			}
			routes, err := aggregate.FilterRoutes(t, aggregate.WithThreshold(cfg.GroupThreshold))
			if err != nil {
				return err
			}
			kind, err := t.ColumnKind(aggregate.DefaultRouteColumn)
			if err != nil {
				return err
			}
			out, err := singleColumn(aggregate.DefaultRouteColumn, kind, routes)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().Float64("group-threshold", aggregate.DefaultRouteThreshold, "Keep routes whose mean truck value is strictly above this")

	return cmd
}
