// Command columnsort sorts a file of integers with columnsort and manages
// the lookup tables and sample data it uses.
//
// Usage:
//
//	columnsort sort data.txt                    # generated table, print n/r/s, time, values
//	columnsort sort --table lookup.bin --trace data.txt
//	columnsort table --out lookup.bin --entries 65536
//	columnsort gen --out data.txt -n 60000 --min -5000 --max 5000 --seed 7
//
// Inputs longer than the table's entry count keep the last entry's shape and
// insertion-sort everything past it as overflow; pass a larger --entries to
// "table" before sorting such inputs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
