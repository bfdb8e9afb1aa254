package bitpack

import (
	"encoding/binary"

	"github.com/samber/lo"

	"github.com/calebcase/bitpack/chunk"
	"github.com/calebcase/bitpack/digits"
	"github.com/calebcase/bitpack/pack"
	"github.com/calebcase/bitpack/transcode"
	"github.com/calebcase/bitpack/transform"
)

// Options configure an encoding.
type Options struct {
	// FractionDigits is the number of digits kept after the decimal point,
	// between 0 and transform.MaxFractionDigits. Values are rounded half away
	// from zero to this precision. When it is zero every value must already
	// be an integer.
	FractionDigits int
}

// Encode packs values into a buffer.
func Encode(values []float64, opts Options) (buf []byte, err error) {
	defer Error.WrapP(&err)

	if len(values) == 0 {
		return nil, EmptyInput.New("no values")
	}

	params, transformed, err := transform.Forward(values, opts.FractionDigits)
	if err != nil {
		return nil, err
	}

	// Digit width grows with the value, so the largest value is the widest.
	width := digits.Width(lo.Max(transformed))
	if width > pack.MaxDigits {
		return nil, UnencodableWidth.New("width=%d max=%d", width, pack.MaxDigits)
	}

	groups, err := chunk.Split(transformed, pack.Capacity(width))
	if err != nil {
		return nil, err
	}

	hdr := Header{
		Version: FormatVersion,
		Width:   uint8(width),
		Params:  params,
	}

	buf, err = hdr.AppendBinary(make([]byte, 0, HeaderSize+wordSize*len(groups)))
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		word, err := pack.Pack(group, width)
		if err != nil {
			return nil, err
		}

		buf = binary.LittleEndian.AppendUint64(buf, word)
	}

	return buf, nil
}

// EncodeText packs values into a buffer and returns it as text in the given
// format.
func EncodeText(values []float64, opts Options, format transcode.Format) (text string, err error) {
	defer Error.WrapP(&err)

	buf, err := Encode(values, opts)
	if err != nil {
		return "", err
	}

	text, err = transcode.Encode(format, buf)
	if err != nil {
		return "", err
	}

	return text, nil
}

// Decode unpacks the values in buf.
func Decode(buf []byte) (values []float64, err error) {
	defer Error.WrapP(&err)

	var hdr Header

	err = hdr.UnmarshalBinary(buf)
	if err != nil {
		return nil, err
	}

	payload := buf[HeaderSize:]
	if len(payload)%wordSize != 0 {
		return nil, MalformedBuffer.New(
			"payload not a multiple of %d bytes: len=%d",
			wordSize,
			len(payload),
		)
	}

	width := int(hdr.Width)
	words := len(payload) / wordSize
	transformed := make([]uint64, 0, words*pack.Capacity(width))

	for i := 0; i < words; i++ {
		word := binary.LittleEndian.Uint64(payload[i*wordSize:])

		transformed, err = pack.AppendUnpack(transformed, word, width)
		if err != nil {
			return nil, MalformedBuffer.Wrap(err)
		}
	}

	return hdr.Backward(make([]float64, 0, len(transformed)), transformed), nil
}

// DecodeText unpacks the values in text produced by EncodeText. The text
// format is detected automatically.
func DecodeText(text string) (values []float64, err error) {
	defer Error.WrapP(&err)

	buf, err := transcode.Decode(text)
	if err != nil {
		return nil, MalformedBuffer.Wrap(err)
	}

	return Decode(buf)
}
