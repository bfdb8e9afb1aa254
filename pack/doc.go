// Package pack packs groups of small non-negative integers into a single
// 64-bit word by interleaving their decimal digits.
//
// Every element of a group is given the same number of decimal digits (the
// width). The packed word is the base 10 numeral made by concatenating, in
// order, each element's digits reversed and right padded with zeros to the
// width:
//
//  word = seg(e[0]) seg(e[1]) ... seg(e[k-1])
//  seg(e) = reverse(digits(e)) + "0" * (width - len(digits(e)))
//
// A uint64 holds every 19 digit numeral, so a group may hold at most
// floor(19 / width) elements.
//
// Why Reverse
//
// Left padding each element and concatenating looks simpler, but the numeral
// loses its leading zeros as soon as it becomes an integer, and with them the
// leading zeros of the first element. Reversing moves an element's padding to
// its low end. Only the numeral's high end can lose zeros, and unpacking
// restores them by left padding the whole numeral to a multiple of the width
// before splitting it. The number of elements is recovered the same way, so a
// short final group needs no placeholder digits.
//
// The one value this can not recover is a zero first element in a group of
// more than one, since its whole segment disappears. Pack rejects that case.
//
// Example
//
// The group [10, 5, 340] packed with a width of 3:
//
//  | Element | Digits | Reversed | Segment |
//  |---------|--------|----------|---------|
//  | 10      | 10     | 01       | 010     |
//  | 5       | 5      | 5        | 500     |
//  | 340     | 340    | 043      | 043     |
//  |---------|--------|----------|---------|
//
//  numeral = 010500043
//  word    = 10500043 (8 digits)
//
// Unpacking pads 10500043 back to 9 digits (the next multiple of 3), splits
// it into 010, 500 and 043, and reverses each to get 10, 5 and 340.
package pack
