package bitpack

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/bitpack/chunk"
	"github.com/calebcase/bitpack/transform"
)

// Error is the class of bitpack errors.
var Error = errs.Class("bitpack")

// Error classes returned by Encode and Decode. Test for them with Has:
//
//  if bitpack.MalformedBuffer.Has(err) {
//  	...
//  }
var (
	EmptyInput       = errs.Class("empty input")
	UnencodableWidth = errs.Class("unencodable width")
	MalformedBuffer  = errs.Class("malformed buffer")

	InvalidNumericInput = &transform.InvalidNumericInput
	InvalidChunkLength  = &chunk.InvalidLength
)
