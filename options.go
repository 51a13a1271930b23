package ieee754

import (
	"github.com/rs/zerolog"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/layout"
	"github.com/calebcase/ieee754/scale"
)

type options struct {
	precision int
	limit     int
	strict    bool
	log       zerolog.Logger
	metrics   *Metrics
}

// Option configures a conversion.
type Option func(*options)

// WithPrecision sets the number of significant decimal digits carried by
// decoded values and errors (default 256).
func WithPrecision(digits int) Option {
	return func(o *options) {
		o.precision = digits
	}
}

// WithScaleLimit caps the number of doublings. By default the cap depends on
// the layout and is large enough for every value in range.
func WithScaleLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithStrictScaling fails with ErrScaleOverflow whenever a value doesn't
// become an exact integer within the limits, instead of truncating it.
func WithStrictScaling() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger for stage events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics records conversions.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		precision: exact.DefaultPrecision,
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *options) scaleSchema(l layout.Layout) scale.Schema {
	s := scale.For(l)
	s.Precision = o.precision
	s.Strict = o.strict

	if o.limit > 0 {
		s.Limit = o.limit
	}

	return s
}
