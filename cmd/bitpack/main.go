// Command bitpack encodes and decodes JSON arrays of numbers.
//
// Usage:
//
//	echo '[1, 2, 34, 567, 8999]' | bitpack encode --format hex
//	echo '[1.25, -3.5]' | bitpack encode --fraction-digits 2 > values.bin
//	bitpack decode < values.bin
//	bitpack compare --random 1000 --fraction-digits 2
//
// encode reads a JSON array from stdin and writes the packed buffer (or its
// text form) to stdout. decode reverses it. compare reports how the packed
// sizes measure up against plain and gzipped JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bitpack",
		Short:        "Pack arrays of numbers into compact binary buffers",
		SilenceUsage: true,
	}

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCompareCmd(),
	)

	return root
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
