package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/bitpack"
	"github.com/calebcase/bitpack/transcode"
)

func newDecodeCmd() *cobra.Command {
	format := newFormatFlag(formatBinary, formatBinary, formatText)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a packed buffer read from stdin into a JSON array",
		Long: "Decode a packed buffer read from stdin into a JSON array.\n\n" +
			"With --format text the input may be hex or 16-bit text; the form is detected.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			values, err := decode(data, format.String())
			if err != nil {
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(values)
		},
	}

	cmd.Flags().VarP(format, "format", "f", format.usage("input"))

	return cmd
}

func decode(data []byte, format string) ([]float64, error) {
	if format == formatText {
		// Whitespace is a valid 16-bit text character, so only hex is
		// trimmed.
		text := string(data)
		if trimmed := strings.TrimSpace(text); transcode.Detect(trimmed) == transcode.Hex {
			text = trimmed
		}

		return bitpack.DecodeText(text)
	}

	return bitpack.Decode(data)
}
