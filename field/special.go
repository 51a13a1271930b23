package field

import (
	"strings"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/layout"
)

func repeat(c string, n int) string {
	return strings.Repeat(c, n)
}

func sign(negative bool) string {
	if negative {
		return "1"
	}

	return "0"
}

// Special returns the fixed pattern for a special class. It returns false
// for normal values, which must be assembled.
func Special(l layout.Layout, c exact.Class, negative bool) (f Fields, ok bool) {
	e, m := l.ExponentBits, l.MantissaBits

	switch c {
	case exact.Zero:
		return Fields{sign(negative), repeat("0", e), repeat("0", m)}, true
	case exact.Infinity:
		return Fields{sign(negative), repeat("1", e), repeat("0", m)}, true
	case exact.SignalingNaN:
		return Fields{"0", repeat("1", e), repeat("0", m-1) + "1"}, true
	case exact.QuietNaN:
		return Fields{"0", repeat("1", e), "1" + repeat("0", m-1)}, true
	case exact.NaN:
		return Fields{"0", repeat("1", e), repeat("1", m)}, true
	}

	return f, false
}

func all(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}

	return true
}

// Classify returns the class of the fields and whether the sign bit is set.
// An all ones mantissa is read as the generic NaN first; with a one bit
// mantissa every NaN pattern is the same.
func Classify(f Fields) (c exact.Class, negative bool) {
	negative = f.Sign == "1"

	switch {
	case all(f.Exponent, '1') && all(f.Mantissa, '0'):
		return exact.Infinity, negative
	case all(f.Exponent, '1') && all(f.Mantissa, '1'):
		return exact.NaN, false
	case all(f.Exponent, '1') && f.Mantissa[0] == '1':
		return exact.QuietNaN, false
	case all(f.Exponent, '1'):
		return exact.SignalingNaN, false
	case all(f.Exponent, '0') && all(f.Mantissa, '0'):
		return exact.Zero, negative
	}

	return exact.Normal, negative
}
