package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/bitpack"
	"github.com/calebcase/bitpack/transcode"
)

func newEncodeCmd() *cobra.Command {
	var (
		opts   bitpack.Options
		format = newFormatFlag(formatBinary, formatBinary, formatHex, formatUTF16)
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON array of numbers read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), values, opts, format.String())
		},
	}

	cmd.Flags().IntVarP(&opts.FractionDigits, "fraction-digits", "d", 0, "digits kept after the decimal point")
	cmd.Flags().VarP(format, "format", "f", format.usage("output"))

	return cmd
}

func encode(w io.Writer, values []float64, opts bitpack.Options, format string) (err error) {
	if format == formatBinary {
		buf, err := bitpack.Encode(values, opts)
		if err != nil {
			return err
		}

		_, err = w.Write(buf)

		return err
	}

	f, err := transcode.ParseFormat(format)
	if err != nil {
		return err
	}

	text, err := bitpack.EncodeText(values, opts, f)
	if err != nil {
		return err
	}

	// 16-bit text may end in a newline character of its own, so only hex
	// gets a trailing newline.
	if f == transcode.Hex {
		text += "\n"
	}

	_, err = io.WriteString(w, text)

	return err
}

func readValues(r io.Reader) (values []float64, err error) {
	err = json.NewDecoder(r).Decode(&values)
	if err != nil {
		return nil, fmt.Errorf("reading JSON array: %w", err)
	}

	return values, nil
}
