// Package field assembles and disassembles the sign, exponent and mantissa
// fields of a layout.
//
// Fields
//
// This diagram shows a half precision (1/5/10) encoding of 13.375. The
// scaled binary 1101011 (scale 3) has 7 digits, so the exponent field is
// (7-1) + 15 - 3 = 18 and the mantissa is every digit after the leading one.
//
//  | s | exponent          | mantissa                                      |
//  |---|-------------------|-----------------------------------------------|
//  | 0 | 1 . 0 . 0 . 1 . 0 | 1 . 0 . 1 . 0 . 1 . 1 . 0 . 0 . 0 . 0         |
//  |---|-------------------|-----------------------------------------------|
//  | 4             | A             | B             | 0                     |
//
// Mantissas that don't fit are truncated to one bit short of the field and
// the last bit is forced to 1. Loss is signaled by that bit; there is no
// round to nearest.
//
// Special Patterns
//
//  | Class         | s | exponent | mantissa |
//  |---------------|---|----------|----------|
//  | +0            | 0 | 00..00   | 00..00   |
//  | -0            | 1 | 00..00   | 00..00   |
//  | +Infinity     | 0 | 11..11   | 00..00   |
//  | -Infinity     | 1 | 11..11   | 00..00   |
//  | Signaling NaN | 0 | 11..11   | 00..01   |
//  | Quiet NaN     | 0 | 11..11   | 10..00   |
//  | NaN           | 0 | 11..11   | 11..11   |
//  |---------------|---|----------|----------|
//
// Hexadecimal
//
// The concatenated bits are zero padded on the left to a multiple of four
// and each nibble becomes one upper case hex digit.
//
// Decoding
//
// A normal pattern decodes to:
//
//  (-1)^s * (1 + mantissa * 2^-m) * 2^(exponent - bias)
//
// computed exactly and then rounded to the working precision.
package field
