package main

import "github.com/spf13/cobra"

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "columnsort",
		Short:         "Sort integer files with Leighton's columnsort",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSortCmd(), newTableCmd(), newGenCmd())

	return root
}
