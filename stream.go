package bitpack

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Encoder writes a stream of encoded arrays. Each array is framed by its
// uvarint encoded size in bytes followed by the buffer from Encode.
type Encoder struct {
	w    io.Writer
	opts Options
	buf  []byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{
		w:    w,
		opts: opts,
	}
}

// Encode writes one frame holding values.
func (e *Encoder) Encode(values []float64) (err error) {
	data, err := Encode(values, e.opts)
	if err != nil {
		return err
	}

	e.buf = binary.AppendUvarint(e.buf[:0], uint64(len(data)))
	e.buf = append(e.buf, data...)

	_, err = e.w.Write(e.buf)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Decoder reads a stream written by Encoder.
type Decoder struct {
	r   byteReader
	buf bytes.Buffer
}

// NewDecoder returns a decoder reading from r. If r does not implement
// io.ByteReader it is buffered and the decoder may read past the last frame.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Decoder{
		r: br,
	}
}

// Decode reads the next frame. It returns io.EOF when the stream ends
// cleanly between frames.
func (d *Decoder) Decode() (values []float64, err error) {
	size, err := binary.ReadUvarint(d.r)
	if err != nil {
		switch {
		case err == io.EOF:
			return nil, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, MalformedBuffer.New("truncated frame size")
		}

		return nil, oops.Trace(err)
	}

	if size > math.MaxInt64 {
		return nil, MalformedBuffer.New("frame too large: size=%d", size)
	}

	// The size is untrusted, so the buffer grows as bytes arrive.
	d.buf.Reset()

	n, err := io.CopyN(&d.buf, d.r, int64(size))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, MalformedBuffer.New("truncated frame: size=%d read=%d", size, n)
		}

		return nil, oops.Trace(err)
	}

	return Decode(d.buf.Bytes())
}
