package pack

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/bitpack/digits"
)

// Error is the class of pack errors.
var Error = errs.Class("pack")

// MaxDigits is the number of decimal digits available in a packed word. Every
// 19 digit numeral fits in a uint64 (2^64-1 has 20 digits).
const MaxDigits = 19

// Capacity returns the number of elements of the given width that fit in one
// word.
func Capacity(width int) int {
	if width < 1 || width > MaxDigits {
		return 0
	}

	return MaxDigits / width
}

// Pack packs the group into a word with each element occupying width digits.
func Pack(group []uint64, width int) (word uint64, err error) {
	err = validWidth(width)
	if err != nil {
		return 0, err
	}

	switch {
	case len(group) == 0:
		return 0, Error.New("empty group")
	case len(group) > Capacity(width):
		return 0, Error.New(
			"group too large: len=%d width=%d capacity=%d",
			len(group),
			width,
			Capacity(width),
		)
	case len(group) > 1 && group[0] == 0:
		return 0, Error.New("zero first element in group of %d", len(group))
	}

	unit := digits.Pow10(width)

	for i, e := range group {
		if w := digits.Width(e); w > width {
			return 0, Error.New("element %d too wide: value=%d digits=%d width=%d", i, e, w, width)
		}

		word = word*unit + reverse(e, width)
	}

	return word, nil
}

// Unpack returns the elements packed into word.
func Unpack(word uint64, width int) (group []uint64, err error) {
	return AppendUnpack(nil, word, width)
}

// AppendUnpack appends the elements packed into word to dst and returns the
// extended slice.
func AppendUnpack(dst []uint64, word uint64, width int) (_ []uint64, err error) {
	err = validWidth(width)
	if err != nil {
		return dst, err
	}

	// Left padding the numeral to the next multiple of width is the same as
	// rounding its digit count up.
	n := digits.Width(word)
	count := (n + width - 1) / width

	if count > Capacity(width) {
		return dst, Error.New(
			"word too large: digits=%d width=%d capacity=%d",
			n,
			width,
			Capacity(width),
		)
	}

	start := len(dst)
	for i := 0; i < count; i++ {
		dst = append(dst, 0)
	}

	unit := digits.Pow10(width)

	for i := start + count - 1; i >= start; i-- {
		dst[i] = reverse(word%unit, width)
		word /= unit
	}

	return dst, nil
}

func validWidth(width int) error {
	if width < 1 || width > MaxDigits {
		return Error.New("invalid width: %d", width)
	}

	return nil
}

// reverse reverses the digits of n written with exactly width digits
// (including any leading zeros).
func reverse(n uint64, width int) (r uint64) {
	for i := 0; i < width; i++ {
		r = r*10 + n%10
		n /= 10
	}

	return r
}
