// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/katalvlaran/tollgrid/aggregate"
	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/table"
	"github.com/katalvlaran/tollgrid/toll"
	"github.com/spf13/cobra"
)

// distanceIndexColumn heads the key column of a rendered distance matrix.
const distanceIndexColumn = "id"

// roadDistances loads dataset-3 and builds its symmetric distance matrix.
func roadDistances(cmd *cobra.Command, path string, cumulative bool) (*matrix.Keyed, error) {
	t, err := loadDataset(cmd, path)
	if err != nil {
		return nil, err
	}
	var opts []matrix.Option
	if cumulative {
		opts = append(opts, matrix.WithCumulative())
	}

	return matrix.DistanceMatrix(t, opts...)
}

// unrolledRoads is roadDistances followed by Unroll.
func unrolledRoads(cmd *cobra.Command, path string, cumulative bool) (*table.Table, error) {
	k, err := roadDistances(cmd, path, cumulative)
	if err != nil {
		return nil, err
	}

	return matrix.Unroll(k)
}

// NewDistanceCommand creates the distance command.
func NewDistanceCommand() *cobra.Command {
	var cumulative bool
	cmd := &cobra.Command{
		Use:   "distance <dataset-3.csv>",
		Short: "Build the symmetric distance matrix of a road list",
		Long: `Build the symmetric distance matrix of a road list: cell(a,b) is the sum of
the a→b and b→a entries, the diagonal is zero.

With --cumulative every cell becomes the shortest chain of known roads.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			k, err := roadDistances(cmd, args[0], cumulative)
			if err != nil {
				return err
			}
			out, err := k.Table(distanceIndexColumn)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Close the matrix under shortest paths")

	return cmd
}

// NewUnrollCommand creates the unroll command.
func NewUnrollCommand() *cobra.Command {
	var cumulative bool
	cmd := &cobra.Command{
		Use:   "unroll <dataset-3.csv>",
		Short: "List every ordered location pair of the distance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			out, err := unrolledRoads(cmd, args[0], cumulative)
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Unroll the shortest-path matrix")

	return cmd
}

// NewWithinCommand creates the within command.
func NewWithinCommand() *cobra.Command {
	var (
		reference  string
		cumulative bool
	)
	cmd := &cobra.Command{
		Use:   "within <dataset-3.csv> --reference ID",
		Short: "List ids whose mean distance is within a percentage of the reference id's",
		Long: `Unroll the distance matrix, average the distance per id_start and list every
id whose mean lies within ±percent of the reference id's mean (bounds included).`,
		Example: `  tollgrid within dataset-3.csv --reference 1001400
  tollgrid within dataset-3.csv --reference 1001400 --percent 0.25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			cfg := GetConfig(cmd.Context())
			u, err := unrolledRoads(cmd, args[0], cumulative)
			if err != nil {
				return err
			}
			out, err := aggregate.IDsWithinPercent(u, parseKey(reference), aggregate.WithPercent(cfg.WithinPercent))
			if err != nil {
				return err
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "Reference id_start")
	cmd.Flags().Float64("percent", aggregate.DefaultPercent, "Band half-width as a fraction of the reference mean")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Use shortest-path distances")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

// NewTollsCommand creates the tolls command.
func NewTollsCommand() *cobra.Command {
	var (
		timeWindows bool
		cumulative  bool
	)
	cmd := &cobra.Command{
		Use:   "tolls <dataset-3.csv>",
		Short: "Compute per-vehicle toll rates for every location pair",
		Long: `Unroll the distance matrix and append one rate column per vehicle class
(distance × coefficient; coefficients come from the rates config section).

With --time-windows every pair is priced for each day of the week and each
time window: weekday windows scale by 0.8 / 1.2 / 0.8, weekends by 0.7.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			cfg := GetConfig(cmd.Context())
			u, err := unrolledRoads(cmd, args[0], cumulative)
			if err != nil {
				return err
			}
			rates := toll.WithRates(cfg.RateList()...)
			out, err := toll.CalculateRates(u, rates)
			if err != nil {
				return err
			}
			if timeWindows {
				if out, err = toll.ExpandWeek(out); err != nil {
					return err
				}
				if out, err = toll.ApplyTimeWindows(out, rates); err != nil {
					return err
				}
			}
			return emit(cmd, start, out)
		},
	}
	cmd.Flags().BoolVar(&timeWindows, "time-windows", false, "Price every pair per day and time window")
	cmd.Flags().BoolVar(&cumulative, "cumulative", false, "Use shortest-path distances")

	return cmd
}
