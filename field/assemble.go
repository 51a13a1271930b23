package field

import (
	"fmt"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/layout"
	"github.com/calebcase/ieee754/scale"
)

// Assemble derives the fields of a scaled normal value.
func Assemble(l layout.Layout, negative bool, s *scale.Scaled) (f Fields, err error) {
	if s == nil || len(s.Binary) == 0 || s.Binary[0] != '1' {
		return f, Error.New("assemble: scaled binary must start with 1")
	}

	f.Sign = sign(negative)

	f.Exponent, err = Exponent(l, len(s.Binary), s.Scale)
	if err != nil {
		return f, err
	}

	f.Mantissa = Mantissa(l, s.Binary)

	return f, nil
}

// Exponent returns the biased exponent field for a binary integer of the
// given length that was scaled up by scale doublings.
func Exponent(l layout.Layout, length, scale int) (string, error) {
	exponent := (length - 1) + l.Bias - scale

	if exponent < 0 {
		return "", exact.ErrExponentLost.New(
			"exponent %d below 0 for layout %s",
			exponent,
			l,
		)
	}

	if exponent > l.MaxExponent() {
		return "", exact.ErrMagnitudeTooLarge.New(
			"exponent %d above %d for layout %s",
			exponent,
			l.MaxExponent(),
			l,
		)
	}

	return fmt.Sprintf("%0*b", l.ExponentBits, exponent), nil
}

// Mantissa returns the mantissa field: the digits after the leading one,
// padded with trailing zeros. Digits that don't fit are dropped and the last
// kept bit is forced to 1.
func Mantissa(l layout.Layout, binary string) string {
	m := l.MantissaBits
	tail := binary[1:]

	if len(tail) > m {
		return tail[:m-1] + "1"
	}

	return tail + repeat("0", m-len(tail))
}
