package field

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/cockroachdb/apd"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/layout"
)

// Disassemble reconstructs the decimal value of the fields. Special patterns
// decode to their canonical meaning. Normal values are rounded to precision
// significant digits.
func Disassemble(l layout.Layout, f Fields, precision int) (d *apd.Decimal, c exact.Class, err error) {
	c, negative := Classify(f)

	d = &apd.Decimal{}

	switch c {
	case exact.Zero:
		d.Negative = negative

		return d, c, nil
	case exact.Infinity:
		d.Form = apd.Infinite
		d.Negative = negative

		return d, c, nil
	case exact.SignalingNaN:
		d.Form = apd.NaNSignaling

		return d, c, nil
	case exact.QuietNaN, exact.NaN:
		d.Form = apd.NaN

		return d, c, nil
	}

	exponent, ok := new(big.Int).SetString(f.Exponent, 2)
	if !ok {
		return nil, c, ErrMalformedBits.New("exponent %q", f.Exponent)
	}

	mantissa, ok := new(big.Int).SetString(f.Mantissa, 2)
	if !ok {
		return nil, c, ErrMalformedBits.New("mantissa %q", f.Mantissa)
	}

	// (1 + M 2^-m) 2^(E-bias) = (2^m + M) 2^(E-bias-m)
	n := new(big.Int).Lsh(big.NewInt(1), uint(l.MantissaBits))
	n.Add(n, mantissa)

	k := int(exponent.Int64()) - l.Bias - l.MantissaBits

	d = layout.MulPow2(n, k)
	d.Negative = negative

	if precision > 0 {
		ctx := apd.BaseContext.WithPrecision(uint32(precision))

		_, err = ctx.Round(d, d)
		if err != nil {
			return nil, c, Error.Wrap(oops.Trace(err))
		}
	}

	return trim(d), c, nil
}

// AbsError returns |a - b| at the given precision.
func AbsError(a, b *apd.Decimal, precision int) (d *apd.Decimal, err error) {
	ctx := apd.BaseContext.WithPrecision(uint32(precision))

	d = &apd.Decimal{}

	_, err = ctx.Sub(d, a, b)
	if err != nil {
		return nil, Error.Wrap(oops.Trace(err))
	}

	_, err = ctx.Abs(d, d)
	if err != nil {
		return nil, Error.Wrap(oops.Trace(err))
	}

	return trim(d), nil
}

var ten = big.NewInt(10)

// trim drops trailing fractional zeros from a finite decimal so 13.3750000
// prints as 13.375 and 0.000 as 0.
func trim(d *apd.Decimal) *apd.Decimal {
	if d.Form != apd.Finite {
		return d
	}

	if d.Coeff.Sign() == 0 {
		d.Exponent = 0

		return d
	}

	q, r := new(big.Int), new(big.Int)

	for d.Exponent < 0 {
		q.QuoRem(&d.Coeff, ten, r)
		if r.Sign() != 0 {
			return d
		}

		d.Coeff.Set(q)
		d.Exponent++
	}

	return d
}
