package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphengine/tensorcore/tensor"
)

func newAliasCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Write through a row-major view and read through aliasing views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := parseInts(cfg.GetString("alias-shape"))
			if err != nil {
				return err
			}
			at, err := parseInts(cfg.GetString("at"))
			if err != nil {
				return err
			}
			return runAlias(cmd, tensor.Shape(shape), at, cfg.GetFloat64("value"))
		},
	}
	cmd.Flags().String("shape", "4,4", "Comma separated extents (rank 2)")
	cmd.Flags().String("at", "0,1", "Row-major index to write")
	cmd.Flags().Float64("value", 42, "Value to write")
	_ = cfg.BindPFlag("alias-shape", cmd.Flags().Lookup("shape"))
	_ = cfg.BindPFlag("at", cmd.Flags().Lookup("at"))
	_ = cfg.BindPFlag("value", cmd.Flags().Lookup("value"))
	return cmd
}

func runAlias(cmd *cobra.Command, shape tensor.Shape, at []int, value float64) error {
	if len(shape) != 2 || len(at) != 2 {
		return fmt.Errorf("alias needs a rank 2 shape and index, got %v and %v", shape, at)
	}

	owner, err := tensor.New[float64](shape)
	if err != nil {
		return err
	}
	defer owner.Release()

	flat, err := tensor.FromStorage(owner.Storage(), tensor.Shape{shape.NumElements()})
	if err != nil {
		return err
	}
	defer flat.Release()
	slog.Debug("aliased storage", "shape", shape, "shared", owner.IsShared(), "refs", owner.Storage().RefCount())

	row, err := owner.View(2, tensor.WithAccessor(tensor.Checked))
	if err != nil {
		return err
	}
	// A column-major view over the transposed shape addresses the same
	// element at the transposed index.
	trans, err := tensor.FromStorage(owner.Storage(), tensor.Shape{shape[1], shape[0]})
	if err != nil {
		return err
	}
	defer trans.Release()
	col, err := trans.View(2, tensor.WithLayout(tensor.ColMajor()), tensor.WithAccessor(tensor.Checked))
	if err != nil {
		return err
	}
	lin, err := flat.View(1)
	if err != nil {
		return err
	}

	rowOff, err := row.Offset(at...)
	if err != nil {
		return err
	}
	row.Set(value, at...)

	transposed := []int{at[1], at[0]}
	colVal, err := col.Get(transposed...)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"VIEW", "INDEX", "VALUE"})
	table.SetBorder(false)
	table.Append([]string{"row-major", formatIndex(at), formatValue(value)})
	table.Append([]string{"col-major", formatIndex(transposed), formatValue(colVal)})
	table.Append([]string{"flat", formatIndex([]int{rowOff}), formatValue(lin.At(rowOff))})
	table.Render()
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
