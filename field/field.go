package field

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754/layout"
)

var (
	// Error is the class for field errors.
	Error = errs.Class("field")

	// ErrMalformedBits is returned when a bit string doesn't match the
	// widths of the layout.
	ErrMalformedBits = errs.Class("malformed bits")
)

// Fields are the three bit groups of an encoding.
type Fields struct {
	Sign     string
	Exponent string
	Mantissa string
}

// String returns the groups separated by spaces.
func (f Fields) String() string {
	return f.Sign + " " + f.Exponent + " " + f.Mantissa
}

// Bits returns the groups concatenated.
func (f Fields) Bits() string {
	return f.Sign + f.Exponent + f.Mantissa
}

// Hex returns the upper case hexadecimal form of the bits along with the
// nibble that produced each digit.
func (f Fields) Hex() (hex string, parts []string) {
	return Hex(f.Bits())
}

const digits = "0123456789ABCDEF"

// Hex converts a string of 0s and 1s to upper case hexadecimal. The bits are
// zero padded on the left to a multiple of 4.
func Hex(bits string) (hex string, parts []string) {
	if pad := len(bits) % 4; pad != 0 {
		bits = strings.Repeat("0", 4-pad) + bits
	}

	sb := &strings.Builder{}
	parts = make([]string, 0, len(bits)/4)

	for i := 0; i < len(bits); i += 4 {
		nibble := bits[i : i+4]

		var v byte
		for j := 0; j < 4; j++ {
			v = v<<1 | (nibble[j] - '0')
		}

		sb.WriteByte(digits[v])
		parts = append(parts, nibble)
	}

	return sb.String(), parts
}

// Split reads fields from a bit string. Spaces are ignored so both the
// grouped and the concatenated forms are accepted.
func Split(l layout.Layout, bits string) (f Fields, err error) {
	bits = strings.ReplaceAll(bits, " ", "")

	if len(bits) != l.Width() {
		return f, ErrMalformedBits.New(
			"%d bits for layout %s, want %d",
			len(bits),
			l,
			l.Width(),
		)
	}

	for i, c := range bits {
		if c != '0' && c != '1' {
			return f, ErrMalformedBits.New("unexpected %q at %d", c, i)
		}
	}

	e := layout.SignBits + l.ExponentBits

	return Fields{
		Sign:     bits[:layout.SignBits],
		Exponent: bits[layout.SignBits:e],
		Mantissa: bits[e:],
	}, nil
}
