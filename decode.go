package ieee754

import (
	"github.com/cockroachdb/apd"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/field"
	"github.com/calebcase/ieee754/layout"
)

// Decode reconstructs the value of bits, given either grouped ("0 10010
// 1010110000") or concatenated. The error of the result is nil.
func Decode(bits string, l layout.Layout, opts ...Option) (d *Decoded, err error) {
	o := newOptions(opts)

	defer func() {
		if err != nil {
			o.metrics.failed(err)

			return
		}

		o.metrics.decoded(d)
	}()

	f, err := field.Split(l, bits)
	if err != nil {
		return nil, err
	}

	v, c, err := field.Disassemble(l, f, o.precision)
	if err != nil {
		return nil, err
	}

	o.log.Debug().
		Str("bits", f.String()).
		Stringer("layout", l).
		Stringer("class", c).
		Stringer("value", v).
		Msg("decoded")

	return &Decoded{
		Value: v,
		Class: c,
	}, nil
}

// DecodeAgainst is like Decode and also reports the absolute error against
// the original number. Special values have no numeric error. A finite
// decoding of an infinite or NaN original reports that original as the
// error.
func DecodeAgainst(bits string, l layout.Layout, original string, opts ...Option) (d *Decoded, err error) {
	v, err := exact.Parse(original)
	if err != nil {
		newOptions(opts).metrics.failed(err)

		return nil, err
	}

	d, err = Decode(bits, l, opts...)
	if err != nil {
		return nil, err
	}

	switch {
	case d.Class != exact.Normal && d.Class != exact.Zero:
		d.Error = apd.New(0, 0)
	case v.Class() == exact.Normal || v.Class() == exact.Zero:
		d.Error, err = field.AbsError(v.Decimal(), d.Value, newOptions(opts).precision)
		if err != nil {
			return nil, err
		}
	default:
		d.Error = v.Abs()
	}

	return d, nil
}
