package exact

import (
	"math"
	"math/big"
	"strings"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd"
	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754/layout"
)

var (
	// Error is the class for exact decimal errors.
	Error = errs.Class("exact")

	// ErrInvalidNumber is returned when the text isn't a decimal number or
	// a known special token.
	ErrInvalidNumber = errs.Class("invalid number")

	// ErrMagnitudeTooSmall is returned when both exponent and mantissa
	// would be lost.
	ErrMagnitudeTooSmall = errs.Class("magnitude too small")

	// ErrExponentLost is returned when the value is denormal
	// representable but the exponent would be lost.
	ErrExponentLost = errs.Class("exponent lost")

	// ErrMagnitudeTooLarge is returned when the exponent doesn't fit the
	// layout.
	ErrMagnitudeTooLarge = errs.Class("magnitude too large")
)

// DefaultPrecision is the number of significant decimal digits carried by
// rounded operations.
const DefaultPrecision = 256

// Class is the kind of value held.
type Class int

// Classes in the order they are tested.
const (
	Normal Class = iota
	Infinity
	SignalingNaN
	QuietNaN
	NaN
	Zero
)

var classNames = map[Class]string{
	Normal:       "normal",
	Infinity:     "infinity",
	SignalingNaN: "snan",
	QuietNaN:     "qnan",
	NaN:          "nan",
	Zero:         "zero",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}

	return "unknown"
}

// Special is true for every class that is encoded by a fixed pattern.
func (c Class) Special() bool {
	return c != Normal
}

// IsNaN is true for any of the NaN classes.
func (c Class) IsNaN() bool {
	return c == SignalingNaN || c == QuietNaN || c == NaN
}

// Value is an exact decimal number and its class.
type Value struct {
	text  string
	d     apd.Decimal
	class Class
}

// Parse reads a number from text.
func Parse(text string) (v *Value, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "0.0"
	}

	v = &Value{
		text: text,
	}

	body := strings.ToLower(text)
	negative := false

	switch body[0] {
	case '-':
		negative = true
		body = body[1:]
	case '+':
		body = body[1:]
	}

	if body == "" || body[0] == '-' || body[0] == '+' {
		return nil, ErrInvalidNumber.New("%q", text)
	}

	switch body {
	case "inf", "infinity":
		v.d.Form = apd.Infinite
		v.d.Negative = negative
		v.class = Infinity

		return v, nil
	case "snan":
		v.d.Form = apd.NaNSignaling
		v.class = SignalingNaN

		return v, nil
	case "qnan":
		v.d.Form = apd.NaN
		v.class = QuietNaN

		return v, nil
	case "nan":
		v.d.Form = apd.NaN
		v.class = NaN

		return v, nil
	}

	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, ErrInvalidNumber.Wrap(oops.Trace(err))
	}

	v.d.Set(d)

	switch {
	case d.Form == apd.Infinite:
		v.class = Infinity
	case d.Form == apd.NaNSignaling:
		v.class = SignalingNaN
	case d.Form == apd.NaN:
		v.class = QuietNaN
	case d.IsZero():
		v.class = Zero
	default:
		v.class = Normal
	}

	return v, nil
}

// MustParse is like [Parse] but panics if the text can't be parsed.
func MustParse(text string) *Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return v
}

// Class returns the class of the value.
func (v *Value) Class() Class {
	return v.class
}

// Negative is true when the sign bit is set. NaNs are never negative.
func (v *Value) Negative() bool {
	if v.class.IsNaN() {
		return false
	}

	return v.d.Negative
}

// Decimal returns a copy of the value.
func (v *Value) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(&v.d)
}

// Abs returns a copy of the magnitude.
func (v *Value) Abs() *apd.Decimal {
	return new(apd.Decimal).Abs(&v.d)
}

// Text returns the trimmed input text.
func (v *Value) Text() string {
	return v.text
}

func (v *Value) String() string {
	switch v.class {
	case QuietNaN:
		return "qNaN"
	case NaN:
		return "NaN"
	}

	return v.d.String()
}

// Validate checks that a normal value fits the layout.
func (v *Value) Validate(l layout.Layout) (err error) {
	if v.class != Normal {
		return nil
	}

	abs := v.Abs()
	n := l.Bias - 1 + l.MantissaBits

	if CmpAbs(abs, l.SmallestDenormalized()) < 0 {
		return ErrMagnitudeTooSmall.New(
			"%s: must be at least 2^-%d, both exponent and mantissa are lost, increase precision",
			v.text,
			n,
		)
	}

	if CmpAbs(abs, l.LargestDenormalized()) < 0 {
		return ErrExponentLost.New(
			"%s: must be at least 2^-%d - 2^-%d, exponent is lost, increase precision",
			v.text,
			l.Bias-1,
			n,
		)
	}

	if CmpAbs(abs, l.Overflow()) >= 0 {
		return ErrMagnitudeTooLarge.New(
			"%s: must be less than 2^%d, increase exponent bits",
			v.text,
			l.Bias+1,
		)
	}

	return nil
}

// magnitude returns bounds on the digit position of a finite non-zero
// decimal: 10^(lo-1) <= |d| < 10^hi.
func magnitude(d *apd.Decimal) (lo, hi int64) {
	bits := float64(d.Coeff.BitLen())

	lo = int64(math.Floor((bits-1)*math.Log10(2))) + 1
	hi = int64(math.Floor(bits*math.Log10(2))) + 1

	return lo + int64(d.Exponent), hi + int64(d.Exponent)
}

// CmpAbs compares |a| and |b|, two finite decimals. Operands that are far
// apart are ordered by their digit counts alone so that exponents like
// 1e999999999 are never expanded.
func CmpAbs(a, b *apd.Decimal) int {
	switch {
	case a.Coeff.Sign() == 0 && b.Coeff.Sign() == 0:
		return 0
	case a.Coeff.Sign() == 0:
		return -1
	case b.Coeff.Sign() == 0:
		return 1
	}

	aLo, aHi := magnitude(a)
	bLo, bHi := magnitude(b)

	switch {
	case aLo > bHi+1:
		return 1
	case bLo > aHi+1:
		return -1
	}

	x := apd.NewWithBigInt(new(big.Int).Abs(&a.Coeff), a.Exponent)
	y := apd.NewWithBigInt(new(big.Int).Abs(&b.Coeff), b.Exponent)

	return x.Cmp(y)
}
