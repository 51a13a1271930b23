// Package scale turns a positive decimal into a binary integer by repeated
// doubling.
//
// The equation for a scaled number is:
//
//  integer = magnitude * 2 ^ scale
//
// For example:
//
//  13.375 * 2^3 = 107 = 0b1101011
//
// Doubling is done on the exact coefficient of the decimal so no digits are
// ever rounded away. Numbers whose binary expansion doesn't terminate (0.1)
// are stopped at a limit; the integer is then the floor of the scaled
// magnitude and the result is marked Unable.
package scale

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/layout"
)

var (
	// Error is the class for scaling errors.
	Error = errs.Class("scale")

	// ErrScaleOverflow is returned when doubling stopped before the
	// integer carried enough bits to fill the mantissa.
	ErrScaleOverflow = errs.Class("scale overflow")
)

// DefaultLimit is the number of doublings allowed past those needed to
// bring the smallest denormalized value of a layout to a full mantissa.
const DefaultLimit = 100

// Schema configures the doubling loop.
type Schema struct {
	// Limit is the maximum number of doublings.
	Limit int

	// Precision is the maximum number of decimal digits in the integer
	// part. Once exceeded, further doublings can't change the leading
	// bits and the loop stops.
	Precision int

	// MinBits is the number of bits an integer must exceed when the loop
	// stops early.
	MinBits int

	// Strict makes every early stop an error.
	Strict bool
}

// For returns the schema used for values of the layout.
func For(l layout.Layout) Schema {
	return Schema{
		Limit:     DefaultLimit + (l.Bias - 1) + 2*l.MantissaBits,
		Precision: exact.DefaultPrecision,
		MinBits:   l.MantissaBits + 1,
	}
}

// Scaled is a magnitude scaled up to an integer.
type Scaled struct {
	Scale   int
	Integer *big.Int
	Binary  string

	// Unable is true if the loop stopped before the magnitude became an
	// integer. Integer is then truncated.
	Unable bool
}

var ten = big.NewInt(10)

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Up doubles the magnitude of d until it is an integer.
func Up(d *apd.Decimal, schema Schema) (s *Scaled, err error) {
	if d.Form != apd.Finite || d.Coeff.Sign() == 0 {
		return nil, Error.New("can't scale %s", d)
	}

	num := new(big.Int).Abs(&d.Coeff)
	den := big.NewInt(1)

	switch {
	case d.Exponent > 0:
		num.Mul(num, pow10(d.Exponent))
	case d.Exponent < 0:
		den = pow10(-d.Exponent)
	}

	var ceiling *big.Int
	if schema.Precision > 0 {
		ceiling = pow10(int32(schema.Precision))
	}

	s = &Scaled{
		Integer: new(big.Int),
	}

	r := new(big.Int)
	s.Integer.QuoRem(num, den, r)

	// Below one, the doublings that can't reach an integer bit are taken
	// in a single shift.
	if s.Integer.Sign() == 0 {
		skip := den.BitLen() - r.BitLen() - 1
		if skip > schema.Limit {
			skip = schema.Limit
		}

		if skip > 0 {
			r.Lsh(r, uint(skip))
			s.Scale = skip
		}
	}

	// Invariant: magnitude * 2^scale = integer + r/den, r < den.
	for r.Sign() != 0 {
		if s.Scale >= schema.Limit ||
			(ceiling != nil && s.Integer.Cmp(ceiling) >= 0) {

			s.Unable = true

			break
		}

		r.Lsh(r, 1)
		s.Integer.Lsh(s.Integer, 1)
		s.Scale++

		if r.Cmp(den) >= 0 {
			r.Sub(r, den)
			s.Integer.SetBit(s.Integer, 0, 1)
		}
	}

	s.Binary = s.Integer.Text(2)

	if s.Unable {
		bits := s.Integer.BitLen()

		if schema.Strict {
			return nil, ErrScaleOverflow.New(
				"%s: no exact integer after %d doublings",
				d,
				s.Scale,
			)
		}

		if bits <= schema.MinBits {
			return nil, ErrScaleOverflow.New(
				"%s: %d bits after %d doublings, need more than %d",
				d,
				bits,
				s.Scale,
				schema.MinBits,
			)
		}
	}

	return s, nil
}

// Point returns the binary digits with the binary point restored (e.g.
// 1101.011).
func (s *Scaled) Point() string {
	if s.Scale == 0 {
		return s.Binary
	}

	digits := s.Binary
	if len(digits) <= s.Scale {
		digits = strings.Repeat("0", s.Scale-len(digits)+1) + digits
	}

	i := len(digits) - s.Scale

	return digits[:i] + "." + digits[i:]
}
