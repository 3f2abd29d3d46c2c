package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphengine/tensorcore/tensor"
)

func newOffsetsCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offsets",
		Short: "Print the flat offset of every multi-index under a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := parseInts(cfg.GetString("shape"))
			if err != nil {
				return err
			}
			layout, err := parseLayout(cfg.GetString("layout"), cfg.GetString("strides"))
			if err != nil {
				return err
			}
			return runOffsets(cmd, tensor.Shape(shape), layout, cfg.GetInt("limit"))
		},
	}
	cmd.Flags().String("shape", "2,3", "Comma separated extents")
	cmd.Flags().String("layout", "row", "Layout: row, col or strided")
	cmd.Flags().String("strides", "", "Element strides for the strided layout")
	cmd.Flags().Int("limit", 64, "Maximum rows to print (0 for all)")
	for _, name := range []string{"shape", "layout", "strides", "limit"} {
		_ = cfg.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func runOffsets(cmd *cobra.Command, shape tensor.Shape, layout tensor.Layout, limit int) error {
	t, err := tensor.New[int64](shape)
	if err != nil {
		return err
	}
	defer t.Release()

	v, err := t.View(t.Rank(), tensor.WithLayout(layout), tensor.WithAccessor(tensor.Checked))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"INDEX", "OFFSET"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	if v.Len() > 0 {
		idx := make([]int, v.Rank())
		for rows := 0; limit <= 0 || rows < limit; rows++ {
			off, err := v.Offset(idx...)
			if err != nil {
				return err
			}
			table.Append([]string{formatIndex(idx), strconv.Itoa(off)})
			if !nextIndex(idx, shape) {
				break
			}
		}
	}
	table.Render()
	return nil
}
