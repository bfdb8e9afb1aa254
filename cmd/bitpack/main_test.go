package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitpack"
)

func run(t *testing.T, stdin []byte, args ...string) (stdout []byte, err error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.Bytes(), err
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		input  string
		encode []string
		decode []string
		output string
	}

	tcs := []TC{
		{
			name:   "binary",
			input:  "[1, 2, 34, 567, 8999]",
			encode: []string{"encode"},
			decode: []string{"decode"},
			output: "[1,2,34,567,8999]\n",
		},
		{
			name:   "hex",
			input:  "[0, 1, 10, 100, 101, 110, 111]",
			encode: []string{"encode", "--format", "hex"},
			decode: []string{"decode", "--format", "text"},
			output: "[0,1,10,100,101,110,111]\n",
		},
		{
			name:   "utf16",
			input:  "[-10, -20, -30]",
			encode: []string{"encode", "-f", "UTF16"},
			decode: []string{"decode", "-f", "text"},
			output: "[-10,-20,-30]\n",
		},
		{
			name:   "fraction digits",
			input:  "[-10.123456789, -20.123456789, -30.56789]",
			encode: []string{"encode", "--fraction-digits", "2"},
			decode: []string{"decode"},
			output: "[-10.12,-20.12,-30.57]\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := run(t, []byte(tc.input), tc.encode...)
			require.NoError(t, err)
			require.NotEmpty(t, encoded)

			decoded, err := run(t, encoded, tc.decode...)
			require.NoError(t, err)
			require.Equal(t, tc.output, string(decoded))
		})
	}
}

func TestEncodeHexOutput(t *testing.T) {
	out, err := run(t, []byte("[1, 2, 34, 567, 8999]"), "encode", "--format", "hex")
	require.NoError(t, err)
	require.Equal(t, "01040000803f00000000a28e4438ad8d03000e27000000000000\n", string(out))
}

func TestErrors(t *testing.T) {
	_, err := run(t, []byte("[1.5]"), "encode")
	require.Error(t, err)

	_, err = run(t, []byte("not json"), "encode")
	require.Error(t, err)

	_, err = run(t, []byte("[1]"), "encode", "--format", "base64")
	require.Error(t, err)

	_, err = run(t, []byte{0x01}, "decode")
	require.Error(t, err)

	_, err = run(t, []byte("[1]"), "decode", "--format", "hex")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, nil, "compare", "--random", "1000")
	require.NoError(t, err)

	report := string(out)
	require.True(t, strings.HasPrefix(report, "String Output:\n"), report)
	require.Contains(t, report, "[JSON]: ")
	require.Contains(t, report, "hex characters")
	require.Contains(t, report, "UTF-16 characters")
	require.Contains(t, report, "bytes gzipped")

	out, err = run(t, []byte("[0.5, 0.25]"), "compare")
	require.NoError(t, err)
	require.Contains(t, string(out), "[JSON]: 15 characters")
}

func TestMeasure(t *testing.T) {
	s, err := measure([]float64{1, 2, 34, 567, 8999}, bitpack.Options{})
	require.NoError(t, err)
	require.Equal(t, 26, s.BufferBytes)
	require.Equal(t, 52, s.HexChars)
	require.Equal(t, 13, s.UTF16Chars)
	require.Equal(t, len(`["1","2","34","567","8999"]`), s.JSONChars)
}

func TestPercentChange(t *testing.T) {
	require.Equal(t, "n/a", percentChange(0, 10))
	require.Equal(t, "-50%", percentChange(100, 50))
	require.Equal(t, "+100%", percentChange(10, 20))
	require.Equal(t, "+0%", percentChange(10, 10))
}
