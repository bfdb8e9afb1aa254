// Package transform maps arbitrary finite numbers onto the positive integers
// suitable for digit packing, and back.
//
// The forward mapping is:
//
//  transformed = round(number * scale) + translate
//
// Where scale is 10^fractionDigits and translate is the smallest offset that
// lifts every scaled value to at least 1. For example, with two fraction
// digits:
//
//  [-10.123, 0.5, 3] * 100 = [-1012, 50, 300]
//  translate = 1012 + 1 = 1013
//  transformed = [1, 1063, 1313]
//
// The inverse is (transformed - translate) / scale and is exact up to the
// declared fraction digits.
package transform

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitpack/digits"
)

// Error is the class of transform errors.
var Error = errs.Class("transform")

// InvalidNumericInput is the class of errors returned for input values that
// can not be transformed into safe integers.
var InvalidNumericInput = errs.Class("invalid numeric input")

const (
	// MaxSafeInteger is the largest integer n such that n and n+1 are both
	// exactly representable as a float64.
	MaxSafeInteger = 1<<53 - 1

	// MaxFractionDigits is the largest supported precision. 10^10 is the
	// largest power of ten a float32 scale represents exactly.
	MaxFractionDigits = 10
)

// Params are the scale and translate of a transform. They are stored as
// float32 in the encoded header, so both are kept at that precision here.
type Params struct {
	Scale     float32
	Translate float32
}

// Forward transforms values into positive safe integers.
//
// With zero fractionDigits every value must already be an integer. Otherwise
// values are scaled by 10^fractionDigits and rounded half away from zero.
func Forward(values []float64, fractionDigits int) (p Params, transformed []uint64, err error) {
	if fractionDigits < 0 || fractionDigits > MaxFractionDigits {
		return p, nil, InvalidNumericInput.New(
			"fraction digits out of range: %d (max %d)",
			fractionDigits,
			MaxFractionDigits,
		)
	}

	scale := float64(digits.Pow10(fractionDigits))

	var (
		scaled  = make([]float64, len(values))
		minimum = math.Inf(1)
		zero    bool
	)

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return p, nil, InvalidNumericInput.New("index %d: non-finite value %v", i, v)
		}

		s := v * scale
		if fractionDigits > 0 {
			s = math.Round(s)
		}

		if s != math.Trunc(s) {
			return p, nil, InvalidNumericInput.New(
				"index %d: non-integer value %v (fraction digits=%d)",
				i,
				v,
				fractionDigits,
			)
		}

		if math.Abs(s) > MaxSafeInteger {
			return p, nil, InvalidNumericInput.New("index %d: value %v exceeds safe integer range", i, v)
		}

		if s == 0 {
			zero = true
		}

		minimum = math.Min(minimum, s)
		scaled[i] = s
	}

	var translate float64

	switch {
	case minimum < 0:
		translate = -minimum + 1
	case zero:
		translate = 1
	}

	p = Params{
		Scale:     float32(scale),
		Translate: ceil32(translate),
	}

	transformed = make([]uint64, len(values))

	for i, s := range scaled {
		t := s + float64(p.Translate)
		if t > MaxSafeInteger {
			return Params{}, nil, InvalidNumericInput.New(
				"index %d: value %v exceeds safe integer range after translate %v",
				i,
				values[i],
				p.Translate,
			)
		}

		transformed[i] = uint64(t)
	}

	return p, transformed, nil
}

// Inverse maps a transformed value back to the number it came from.
func (p Params) Inverse(v uint64) float64 {
	return (float64(v) - float64(p.Translate)) / float64(p.Scale)
}

// Backward appends the inverse of every transformed value to dst.
func (p Params) Backward(dst []float64, transformed []uint64) []float64 {
	for _, v := range transformed {
		dst = append(dst, p.Inverse(v))
	}

	return dst
}

// Validate reports whether the params can be inverted.
func (p Params) Validate() error {
	scale := float64(p.Scale)
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return Error.New("invalid scale: %v", p.Scale)
	}

	translate := float64(p.Translate)
	if math.IsNaN(translate) || math.IsInf(translate, 0) ||
		translate < 0 || translate != math.Trunc(translate) {

		return Error.New("invalid translate: %v", p.Translate)
	}

	return nil
}

// ceil32 returns the smallest float32 that is not less than f.
func ceil32(f float64) float32 {
	f32 := float32(f)
	if float64(f32) < f {
		f32 = math.Nextafter32(f32, float32(math.Inf(1)))
	}

	return f32
}
