package transcode

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	buf := []byte{0x01, 0x02, 0xab, 0xff, 0x00}

	text := EncodeHex(buf)
	require.Equal(t, "0102abff00", text)
	require.Equal(t, Hex, Detect(text))

	got, err := DecodeHex(text)
	require.NoError(t, err)
	require.Equal(t, buf, got)

	got, err = Decode("0102ABFF00")
	require.NoError(t, err)
	require.Equal(t, buf, got)

	_, err = DecodeHex("0g")
	require.True(t, Error.Has(err))
}

func TestUTF16(t *testing.T) {
	type TC struct {
		name string
		buf  []byte
		text string
	}

	tcs := []TC{
		{name: "empty", buf: []byte{}, text: ""},
		{name: "ascii", buf: []byte{'h', 0, 'i', 0}, text: "hi"},
		{name: "header", buf: []byte{0x01, 0x04}, text: "\u0401"},
		{name: "below surrogates", buf: []byte{0xff, 0xd7}, text: "\ud7ff"},
		{name: "low surrogate start", buf: []byte{0x00, 0xd8}, text: "\ue000"},
		{name: "high surrogate end", buf: []byte{0xff, 0xdf}, text: "\ue7ff"},
		{name: "private use", buf: []byte{0x00, 0xe0}, text: "\ue800"},
		{name: "replacement character", buf: []byte{0xfd, 0xf7}, text: "\ufffd"},
		{name: "max", buf: []byte{0xff, 0xff}, text: "\U000107ff"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			text, err := EncodeUTF16(tc.buf)
			require.NoError(t, err)
			require.Equal(t, tc.text, text)
			require.True(t, utf8.ValidString(text))
			require.Equal(t, len(tc.buf)/2, utf8.RuneCountInString(text))

			buf, err := DecodeUTF16(text)
			require.NoError(t, err)
			require.Equal(t, tc.buf, buf)
		})
	}
}

func TestUTF16Errors(t *testing.T) {
	_, err := EncodeUTF16([]byte{1, 2, 3})
	require.True(t, Error.Has(err))

	_, err = DecodeUTF16("\xff")
	require.True(t, Error.Has(err))

	_, err = DecodeUTF16("\U00010800")
	require.True(t, Error.Has(err))
}

func TestRoundtripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 100; n++ {
		buf := make([]byte, 2*rng.Intn(64))
		rng.Read(buf)

		for _, f := range []Format{Hex, UTF16} {
			text, err := Encode(f, buf)
			require.NoError(t, err)

			got, err := Decode(text)
			require.NoError(t, err)
			require.Equal(t, buf, got, "format=%s", f)
		}
	}
}

func TestDetect(t *testing.T) {
	require.Equal(t, UTF16, Detect(""))
	require.Equal(t, UTF16, Detect("abc"))
	require.Equal(t, UTF16, Detect("zz"))
	require.Equal(t, UTF16, Detect("\u0401"))
	require.Equal(t, Hex, Detect("00"))
	require.Equal(t, Hex, Detect("DEADbeef"))
}

func TestFormat(t *testing.T) {
	for _, f := range []Format{Hex, UTF16} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	_, err := ParseFormat("base64")
	require.True(t, Error.Has(err))

	require.Equal(t, "unknown", Unknown.String())

	_, err = Encode(Unknown, []byte{0, 0})
	require.True(t, Error.Has(err))
}
