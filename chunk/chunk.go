// Package chunk partitions sequences into fixed length groups.
package chunk

import (
	"github.com/samber/lo"
	"github.com/zeebo/errs"
)

// InvalidLength is the class of errors returned for a group length that is
// not a positive integer.
var InvalidLength = errs.Class("invalid chunk length")

// Split returns consecutive groups of length elements taken from seq in
// order. The final group holds the remainder and may be shorter. An empty seq
// produces an empty (non-nil) slice of groups.
func Split[T any](seq []T, length int) (groups [][]T, err error) {
	if length < 1 {
		return nil, InvalidLength.New("length=%d", length)
	}

	if len(seq) == 0 {
		return [][]T{}, nil
	}

	return lo.Chunk(seq, length), nil
}

// Count returns the number of groups Split produces for n elements.
func Count(n, length int) int {
	if length < 1 || n <= 0 {
		return 0
	}

	return (n + length - 1) / length
}
