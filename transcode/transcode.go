// Package transcode converts encoded buffers to and from text.
//
// Two text forms are supported:
//
//  | Format | Characters      | Alphabet                            |
//  |--------|-----------------|-------------------------------------|
//  | Hex    | 2 per byte      | 0-9 a-f                             |
//  | UTF16  | 1 per 2 bytes   | U+0000-U+D7FF and U+E000-U+107FF    |
//  |--------|-----------------|-------------------------------------|
//
// UTF16 reads the buffer as little-endian 16-bit code units and emits one
// character per unit. Go strings are UTF-8 and can not carry lone surrogates,
// so units from 0xD800 up are shifted by 0x800 past the surrogate block.
package transcode

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/errs"
)

// Error is the class of transcode errors.
var Error = errs.Class("transcode")

// Format is a text form of a buffer.
type Format int

// Formats
const (
	Unknown Format = iota
	Hex
	UTF16
)

var formatNames = map[Format]string{
	Hex:   "hex",
	UTF16: "utf16",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return "unknown"
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}

	return Unknown, Error.New("unknown format: %q", name)
}

// Encode converts buf to text in the given format.
func Encode(f Format, buf []byte) (string, error) {
	switch f {
	case Hex:
		return EncodeHex(buf), nil
	case UTF16:
		return EncodeUTF16(buf)
	}

	return "", Error.New("unknown format: %d", f)
}

// Decode detects the format of text and converts it back to a buffer.
func Decode(text string) ([]byte, error) {
	switch Detect(text) {
	case Hex:
		return DecodeHex(text)
	default:
		return DecodeUTF16(text)
	}
}

// Detect returns Hex if text is a non-empty, even length run of hex digits
// and UTF16 otherwise.
func Detect(text string) Format {
	if len(text) == 0 || len(text)%2 != 0 {
		return UTF16
	}

	for i := 0; i < len(text); i++ {
		if !isHex(text[i]) {
			return UTF16
		}
	}

	return Hex
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

// EncodeHex returns the lowercase hex form of buf.
func EncodeHex(buf []byte) string {
	return hex.EncodeToString(buf)
}

// DecodeHex returns the bytes of hex text.
func DecodeHex(text string) ([]byte, error) {
	buf, err := hex.DecodeString(text)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return buf, nil
}

const (
	surrogateMin   = 0xD800
	surrogateShift = 0x800
	shiftedMin     = surrogateMin + surrogateShift
	shiftedMax     = 0xFFFF + surrogateShift
)

// EncodeUTF16 returns the 16-bit text form of buf. The buffer must have an
// even length.
func EncodeUTF16(buf []byte) (string, error) {
	if len(buf)%2 != 0 {
		return "", Error.New("odd length: %d", len(buf))
	}

	sb := &strings.Builder{}
	sb.Grow(len(buf) / 2 * 3)

	for i := 0; i < len(buf); i += 2 {
		r := rune(binary.LittleEndian.Uint16(buf[i:]))
		if r >= surrogateMin {
			r += surrogateShift
		}

		sb.WriteRune(r)
	}

	return sb.String(), nil
}

// DecodeUTF16 returns the bytes of 16-bit text.
func DecodeUTF16(text string) ([]byte, error) {
	buf := make([]byte, 0, 2*utf8.RuneCountInString(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, Error.New("invalid utf-8 at offset %d", i)
		}

		switch {
		case r < surrogateMin:
		case shiftedMin <= r && r <= shiftedMax:
			r -= surrogateShift
		default:
			return nil, Error.New("character out of range at offset %d: %U", i, r)
		}

		buf = binary.LittleEndian.AppendUint16(buf, uint16(r))
		i += size
	}

	return buf, nil
}
