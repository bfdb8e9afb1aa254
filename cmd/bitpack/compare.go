package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/calebcase/bitpack"
	"github.com/calebcase/bitpack/transcode"
)

func newCompareCmd() *cobra.Command {
	var (
		opts   bitpack.Options
		random int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare packed sizes against JSON",
		Long: "Compare packed sizes against JSON.\n\n" +
			"Values are read from stdin as a JSON array unless --random is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var values []float64

			if random > 0 {
				rng := rand.New(rand.NewSource(seed))

				values = make([]float64, random)
				for i := range values {
					values[i] = rng.Float64()
				}
			} else {
				values, err = readValues(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			sizes, err := measure(values, opts)
			if err != nil {
				return err
			}

			return sizes.report(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.FractionDigits, "fraction-digits", "d", 2, "digits kept after the decimal point")
	cmd.Flags().IntVar(&random, "random", 0, "compare this many random values in [0, 1) instead of reading stdin")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

type sizes struct {
	JSONChars   int
	JSONBytes   int
	GzipBytes   int
	HexChars    int
	UTF16Chars  int
	BufferBytes int
}

func measure(values []float64, opts bitpack.Options) (s sizes, err error) {
	// Values are written as fixed precision strings so both sides carry the
	// same digits.
	fixed := make([]string, len(values))
	for i, v := range values {
		fixed[i] = strconv.FormatFloat(v, 'f', opts.FractionDigits, 64)
	}

	js, err := json.Marshal(fixed)
	if err != nil {
		return s, err
	}

	gz := &bytes.Buffer{}
	zw := gzip.NewWriter(gz)

	_, err = zw.Write(js)
	if err != nil {
		return s, err
	}

	err = zw.Close()
	if err != nil {
		return s, err
	}

	buf, err := bitpack.Encode(values, opts)
	if err != nil {
		return s, err
	}

	utf16, err := transcode.EncodeUTF16(buf)
	if err != nil {
		return s, err
	}

	return sizes{
		JSONChars:   utf8.RuneCount(js),
		JSONBytes:   len(js),
		GzipBytes:   gz.Len(),
		HexChars:    len(transcode.EncodeHex(buf)),
		UTF16Chars:  utf8.RuneCountInString(utf16),
		BufferBytes: len(buf),
	}, nil
}

func (s sizes) report(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w,
		"String Output:\n"+
			"[JSON]: %d characters\n"+
			"[bitpack]: %d hex characters (%s) or %d UTF-16 characters (%s)\n"+
			"\n"+
			"Buffer Output:\n"+
			"[JSON]: %d bytes gzipped (%d bytes uncompressed)\n"+
			"[bitpack]: %d bytes (%s)\n",
		s.JSONChars,
		s.HexChars, percentChange(s.JSONChars, s.HexChars),
		s.UTF16Chars, percentChange(s.JSONChars, s.UTF16Chars),
		s.GzipBytes, s.JSONBytes,
		s.BufferBytes, percentChange(s.GzipBytes, s.BufferBytes),
	)

	return err
}

func percentChange(from, to int) string {
	if from == 0 {
		return "n/a"
	}

	return fmt.Sprintf("%+.0f%%", (float64(to)/float64(from)-1)*100)
}
