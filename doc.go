// Package bitpack packs arrays of numbers into a compact binary buffer by
// storing several decimal numbers in each 64-bit word.
//
// Encoding runs in four steps:
//
//  1. Transform every number into a positive integer (see package transform).
//  2. Find the widest integer in decimal digits. Every integer is given that
//     many digits.
//  3. Split the integers into groups of floor(19 / width).
//  4. Pack each group into one uint64 (see package pack).
//
// Decoding reverses each step. The result is exact up to the requested
// number of fraction digits.
//
// Layout
//
// All multi-byte fields are little-endian.
//
//  | Offset | Size | Field     | Type    |                                       |
//  |--------|------|-----------|---------|---------------------------------------|
//  | 0      | 1    | Version   | uint8   | FormatVersion                         |
//  | 1      | 1    | Width     | uint8   | Decimal digits per element (1-19)     |
//  | 2      | 4    | Scale     | float32 | 10^fractionDigits                     |
//  | 6      | 4    | Translate | float32 | Offset added after scaling            |
//  | 10     | 8*n  | Words     | uint64  | One packed word per group, in order   |
//  |--------|------|-----------|---------|---------------------------------------|
//
// Example
//
// Encoding [1, 2, 34, 567, 8999] gives a width of 4 and groups of 4
// elements, so the buffer is the header plus two words:
//
//  | Group           | Segments                | Word             |
//  |-----------------|-------------------------|------------------|
//  | [1, 2, 34, 567] | 1000 2000 4300 7650     | 1000200043007650 |
//  | [8999]          | 9998                    | 9998             |
//  |-----------------|-------------------------|------------------|
//
// Text
//
// EncodeText and DecodeText carry the same buffer as hex or 16-bit text (see
// package transcode). DecodeText detects which form it was given.
package bitpack
