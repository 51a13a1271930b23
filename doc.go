// Package ieee754 converts exact decimal numbers into IEEE-754 binary
// floating point bit patterns and back.
//
// The input is always text so no digits are lost to a machine float before
// the conversion starts:
//
//	r, err := ieee754.Half("13.375")
//	r.String() // 0 10010 1010110000
//	r.Hex()    // 4AB0
//
// # Layouts
//
// The standard presets are half (1/5/10), single (1/8/23), double (1/11/52),
// quadruple (1/15/112) and octuple (1/19/236). Any other width can be given
// with a [layout.Schema]:
//
//	r, err := ieee754.Encode("13.375", layout.Schema{ExponentBits: 6, MantissaBits: 12})
//
// The bias is always 2^(exponent bits - 1) - 1.
//
// # Pipeline
//
// Encoding runs as a sequence of stages, each producing a new immutable
// value:
//
//  1. parse and classify ([exact])
//  2. range check against the layout ([exact.Value.Validate])
//  3. double until integral ([scale])
//  4. assemble sign, exponent and mantissa ([field])
//  5. decode the fields again to report the error of the encoding
//
// Special values (±0, ±Infinity, sNaN, qNaN, NaN) skip stages 2 to 4 and use
// fixed patterns.
//
// # Rounding
//
// Mantissas that don't fit are truncated and the last kept bit is set to 1.
// This is not round to nearest even; results match the bit patterns of
// hardware floats only for values that fit exactly.
//
// # Errors
//
// Every failure aborts the call. Error kinds are [errs] classes and can be
// tested with Has:
//
//	if ieee754.ErrMagnitudeTooSmall.Has(err) { ... }
package ieee754
