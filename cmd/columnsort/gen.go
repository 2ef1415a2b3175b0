package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/columnsort/input"
)

func newGenCmd() *cobra.Command {
	var (
		out    string
		n      int
		lo, hi int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write random sample data, one integer per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals, err := input.Generate(rand.New(rand.NewSource(seed)), n, lo, hi)
			if err != nil {
				return err
			}
			if out == "" {
				return input.Write(cmd.OutOrStdout(), vals)
			}

			return input.WriteFile(out, vals)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (stdout when empty)")
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of values")
	cmd.Flags().IntVar(&lo, "min", -5000, "smallest value")
	cmd.Flags().IntVar(&hi, "max", 5000, "largest value")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}
