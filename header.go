package bitpack

import (
	"encoding/binary"
	"math"

	"github.com/calebcase/bitpack/pack"
	"github.com/calebcase/bitpack/transform"
)

const (
	// FormatVersion identifies the encoding rules of a buffer.
	FormatVersion = 1

	// HeaderSize is the encoded size of a Header.
	HeaderSize = 1 + 1 + 4 + 4

	wordSize = 8
)

// Header is the fixed size prefix of an encoded buffer.
type Header struct {
	Version uint8
	Width   uint8

	transform.Params
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() (data []byte, err error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// AppendBinary appends the encoded header to data.
func (h Header) AppendBinary(data []byte) (_ []byte, err error) {
	data = append(data, h.Version, h.Width)
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(h.Scale))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(h.Translate))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only the first
// HeaderSize bytes of data are read.
func (h *Header) UnmarshalBinary(data []byte) (err error) {
	if len(data) < HeaderSize {
		return MalformedBuffer.New("short header: len=%d", len(data))
	}

	*h = Header{
		Version: data[0],
		Width:   data[1],
		Params: transform.Params{
			Scale:     math.Float32frombits(binary.LittleEndian.Uint32(data[2:])),
			Translate: math.Float32frombits(binary.LittleEndian.Uint32(data[6:])),
		},
	}

	return h.Validate()
}

// Validate reports whether a buffer with this header can be decoded.
func (h Header) Validate() (err error) {
	if h.Version != FormatVersion {
		return MalformedBuffer.New("unsupported version: %d", h.Version)
	}

	if h.Width < 1 || h.Width > pack.MaxDigits {
		return MalformedBuffer.New("invalid width: %d", h.Width)
	}

	err = h.Params.Validate()
	if err != nil {
		return MalformedBuffer.Wrap(err)
	}

	return nil
}
