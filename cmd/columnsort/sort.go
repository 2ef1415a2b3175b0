package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/columnsort/columnsort"
	"github.com/katalvlaran/columnsort/dims"
	"github.com/katalvlaran/columnsort/input"
)

type sortFlags struct {
	table  string
	verify bool
	trace  bool
	quiet  bool
}

func newSortCmd() *cobra.Command {
	var f sortFlags
	cmd := &cobra.Command{
		Use:   "sort DATAFILE",
		Short: "Sort a file with one integer per line and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.table, "table", "", "binary lookup table (generated in memory when empty)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "validate every lookup table entry before sorting")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print the matrix after every pipeline stage")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print the sorted values")

	return cmd
}

// runSort loads the data and the table concurrently, sorts, and reports
// n, r, s, the elapsed time and the sorted values.
func runSort(out io.Writer, dataPath string, f sortFlags) error {
	var (
		data  []int
		table dims.Table
		g     errgroup.Group
	)
	g.Go(func() (err error) {
		data, err = input.ReadFile(dataPath)
		return err
	})
	g.Go(func() (err error) {
		table, err = loadTable(f.table)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if f.verify {
		if err := table.Validate(); err != nil {
			return errors.Wrap(err, "lookup table")
		}
	}

	var (
		trace    columnsort.StageHook
		fellBack bool
	)
	if f.trace {
		trace = traceHook(out)
	}
	hook := func(s columnsort.Stage, m *columnsort.Matrix) {
		if s == columnsort.StageFallback {
			fellBack = true
		}
		if trace != nil {
			trace(s, m)
		}
	}

	start := time.Now()
	if err := columnsort.Sort(data, table, columnsort.WithStageHook(hook)); err != nil {
		return err
	}
	elapsed := time.Since(start)

	// no matrix is built on the fallback path
	var d dims.Dimensions
	if !fellBack {
		d, _ = table.Select(len(data))
	}

	fmt.Fprintf(out, "n = %s\nr = %d\ns = %d\n", humanize.Comma(int64(len(data))), d.Rows, d.Cols)
	fmt.Fprintf(out, "Elapsed time = %.3f seconds.\n", elapsed.Seconds())
	if f.quiet {
		return nil
	}

	return input.Write(out, data)
}

// loadTable reads path, or generates the canonical table when path is empty.
func loadTable(path string) (dims.Table, error) {
	if path == "" {
		return dims.Generate(dims.MaxEntries)
	}

	return dims.ReadFile(path)
}

// traceHook prints a colored stage header followed by the matrix.
func traceHook(out io.Writer) columnsort.StageHook {
	header := color.New(color.FgCyan, color.Bold)

	return func(s columnsort.Stage, m *columnsort.Matrix) {
		header.Fprintf(out, "After %s\n", s)
		if m != nil {
			fmt.Fprintln(out, m)
		}
	}
}
