package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/columnsort/dims"
)

func newTableCmd() *cobra.Command {
	var (
		out     string
		entries int
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Generate the binary size → (rows, cols, overflow) lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := dims.Generate(entries)
			if err != nil {
				return err
			}
			if err := dims.WriteFile(out, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s entries (%s) to %s\n",
				humanize.Comma(int64(len(t))), humanize.Bytes(uint64(12*len(t))), out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lookupTable.bin", "output path")
	cmd.Flags().IntVar(&entries, "entries", dims.MaxEntries, "number of table entries")

	return cmd
}
