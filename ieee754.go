package ieee754

import (
	"github.com/cockroachdb/apd"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/field"
	"github.com/calebcase/ieee754/layout"
	"github.com/calebcase/ieee754/scale"
)

// Encode converts number to the layout selected by schema.
func Encode(number string, schema layout.Schema, opts ...Option) (r *Result, err error) {
	l, err := schema.Resolve()
	if err != nil {
		newOptions(opts).metrics.failed(err)

		return nil, err
	}

	return EncodeLayout(number, l, opts...)
}

// EncodeLayout converts number to the layout l.
func EncodeLayout(number string, l layout.Layout, opts ...Option) (r *Result, err error) {
	o := newOptions(opts)

	defer func() {
		if err != nil {
			o.log.Debug().Err(err).Str("number", number).Msg("encode failed")
			o.metrics.failed(err)

			return
		}

		o.metrics.encoded(r)
	}()

	v, err := exact.Parse(number)
	if err != nil {
		return nil, err
	}

	log := o.log.With().
		Str("number", v.String()).
		Stringer("layout", l).
		Logger()

	log.Debug().Stringer("class", v.Class()).Msg("classified")

	r = &Result{
		number: v,
		layout: l,
	}

	if f, ok := field.Special(l, v.Class(), v.Negative()); ok {
		d, c, err := field.Disassemble(l, f, o.precision)
		if err != nil {
			return nil, err
		}

		r.fields = f
		r.decoded = Decoded{
			Value: d,
			Error: apd.New(0, 0),
			Class: c,
		}

		return r, nil
	}

	err = v.Validate(l)
	if err != nil {
		return nil, err
	}

	s, err := scale.Up(v.Abs(), o.scaleSchema(l))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("scale", s.Scale).
		Int("digits", len(s.Binary)).
		Bool("unable", s.Unable).
		Msg("scaled")

	if s.Unable {
		log.Warn().
			Int("scale", s.Scale).
			Msg("no exact integer, mantissa truncated")
	}

	f, err := field.Assemble(l, v.Negative(), s)
	if err != nil {
		return nil, err
	}

	d, c, err := field.Disassemble(l, f, o.precision)
	if err != nil {
		return nil, err
	}

	e, err := field.AbsError(v.Decimal(), d, o.precision)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("result", f.String()).
		Stringer("error", e).
		Msg("assembled")

	r.scaled = s
	r.fields = f
	r.decoded = Decoded{
		Value: d,
		Error: e,
		Class: c,
	}

	return r, nil
}

// Half converts x to half precision (1/5/10).
func Half(x string, opts ...Option) (*Result, error) {
	return EncodeLayout(x, layout.Half.Layout(), opts...)
}

// Single converts x to single precision (1/8/23).
func Single(x string, opts ...Option) (*Result, error) {
	return EncodeLayout(x, layout.Single.Layout(), opts...)
}

// Double converts x to double precision (1/11/52).
func Double(x string, opts ...Option) (*Result, error) {
	return EncodeLayout(x, layout.Double.Layout(), opts...)
}

// Quadruple converts x to quadruple precision (1/15/112).
func Quadruple(x string, opts ...Option) (*Result, error) {
	return EncodeLayout(x, layout.Quadruple.Layout(), opts...)
}

// Octuple converts x to octuple precision (1/19/236).
func Octuple(x string, opts ...Option) (*Result, error) {
	return EncodeLayout(x, layout.Octuple.Layout(), opts...)
}
