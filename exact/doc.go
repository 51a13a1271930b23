// Package exact holds the decimal input of a conversion.
//
// A number is parsed from text into an arbitrary precision decimal and
// classified once:
//
//  | Class         | Input                          | Encoded as                    |
//  |---------------|--------------------------------|-------------------------------|
//  | Infinity      | inf, infinity (signed)         | s 11..11 00..00               |
//  | SignalingNaN  | snan                           | 0 11..11 00..01               |
//  | QuietNaN      | qnan                           | 0 11..11 10..00               |
//  | NaN           | nan                            | 0 11..11 11..11               |
//  | Zero          | 0, -0, 0.000                   | s 00..00 00..00               |
//  | Normal        | any other decimal              | scaled, see package scale     |
//  |---------------|--------------------------------|-------------------------------|
//
// Special tokens are case insensitive. Empty text is read as 0.0.
//
// Range
//
// Normal values are checked against the layout before they are scaled:
//
//  |x| <  2^-(bias-1) * 2^-mantissa               ErrMagnitudeTooSmall
//  |x| <  2^-(bias-1) - 2^-(bias+mantissa-1)      ErrExponentLost
//  |x| >= 2^(bias+1)                              ErrMagnitudeTooLarge
//
// All thresholds are exact; no binary floats are involved.
package exact
