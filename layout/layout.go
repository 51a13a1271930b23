package layout

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"
)

var (
	// Error is the class for layout errors.
	Error = errs.Class("layout")

	// ErrPresetOutOfRange is returned when a precision preset is needed
	// but the index is not one of the known presets.
	ErrPresetOutOfRange = errs.Class("preset out of range")

	// ErrInvalidLayout is returned when explicit field widths can't form a
	// layout.
	ErrInvalidLayout = errs.Class("invalid layout")
)

// Width limits. The exponent limit keeps the bias in range of the decimal
// engine (2^-(bias+mantissa) must stay above 10^-100000).
const (
	SignBits        = 1
	MaxExponentBits = 19
	MaxMantissaBits = 1 << 16
)

// Layout describes one binary interchange format.
//
//  | sign | exponent ... | mantissa ...... |
//  |  1   | ExponentBits | MantissaBits    |
//
// Bias is always derived from ExponentBits.
type Layout struct {
	ExponentBits int
	MantissaBits int
	Bias         int
}

// New returns the layout with the given field widths.
func New(exponentBits, mantissaBits int) (l Layout, err error) {
	if exponentBits < 1 || exponentBits > MaxExponentBits {
		return l, ErrInvalidLayout.New(
			"exponent bits must be in [1, %d]: %d",
			MaxExponentBits,
			exponentBits,
		)
	}

	if mantissaBits < 1 || mantissaBits > MaxMantissaBits {
		return l, ErrInvalidLayout.New(
			"mantissa bits must be in [1, %d]: %d",
			MaxMantissaBits,
			mantissaBits,
		)
	}

	return Layout{
		ExponentBits: exponentBits,
		MantissaBits: mantissaBits,
		Bias:         1<<(exponentBits-1) - 1,
	}, nil
}

// Width is the total number of encoded bits.
func (l Layout) Width() int {
	return SignBits + l.ExponentBits + l.MantissaBits
}

// MaxExponent is the largest exponent field of a finite value. The all ones
// field is reserved for infinities and NaNs.
func (l Layout) MaxExponent() int {
	return 1<<l.ExponentBits - 2
}

// SmallestNormalized returns 2^-(bias-1).
func (l Layout) SmallestNormalized() *apd.Decimal {
	return Pow2(-(l.Bias - 1))
}

// SmallestDenormalized returns 2^-(bias-1) * 2^-mantissa.
func (l Layout) SmallestDenormalized() *apd.Decimal {
	return Pow2(-(l.Bias - 1 + l.MantissaBits))
}

// LargestDenormalized returns 2^-(bias-1) - 2^-(bias+mantissa-1).
func (l Layout) LargestDenormalized() *apd.Decimal {
	c := new(big.Int).Lsh(big.NewInt(1), uint(l.MantissaBits))
	c.Sub(c, big.NewInt(1))

	return MulPow2(c, -(l.Bias - 1 + l.MantissaBits))
}

// Overflow returns 2^(bias+1), the smallest magnitude whose exponent field
// no longer fits below the reserved all ones pattern.
func (l Layout) Overflow() *apd.Decimal {
	return Pow2(l.Bias + 1)
}

func (l Layout) String() string {
	return fmt.Sprintf("%d/%d/%d", SignBits, l.ExponentBits, l.MantissaBits)
}

// Pow2 returns 2^n as an exact decimal.
func Pow2(n int) *apd.Decimal {
	return MulPow2(big.NewInt(1), n)
}

// MulPow2 returns c * 2^n as an exact decimal. Negative powers use
// 2^-n = 5^n * 10^-n so no digits are lost.
func MulPow2(c *big.Int, n int) *apd.Decimal {
	coeff := new(big.Int).Set(c)

	if n >= 0 {
		coeff.Lsh(coeff, uint(n))

		return apd.NewWithBigInt(coeff, 0)
	}

	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-n)), nil)
	coeff.Mul(coeff, five)

	return apd.NewWithBigInt(coeff, int32(n))
}
