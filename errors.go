package ieee754

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/field"
	"github.com/calebcase/ieee754/layout"
	"github.com/calebcase/ieee754/scale"
)

// Error is the class for errors of the pipeline itself.
var Error = errs.Class("ieee754")

// Error kinds returned by Encode and Decode.
var (
	ErrInvalidNumber     = &exact.ErrInvalidNumber
	ErrMagnitudeTooSmall = &exact.ErrMagnitudeTooSmall
	ErrExponentLost      = &exact.ErrExponentLost
	ErrMagnitudeTooLarge = &exact.ErrMagnitudeTooLarge
	ErrPresetOutOfRange  = &layout.ErrPresetOutOfRange
	ErrInvalidLayout     = &layout.ErrInvalidLayout
	ErrScaleOverflow     = &scale.ErrScaleOverflow
	ErrMalformedBits     = &field.ErrMalformedBits
)

var kinds = []struct {
	class *errs.Class
	name  string
}{
	{ErrInvalidNumber, "invalid_number"},
	{ErrMagnitudeTooSmall, "magnitude_too_small"},
	{ErrExponentLost, "exponent_lost"},
	{ErrMagnitudeTooLarge, "magnitude_too_large"},
	{ErrPresetOutOfRange, "preset_out_of_range"},
	{ErrInvalidLayout, "invalid_layout"},
	{ErrScaleOverflow, "scale_overflow"},
	{ErrMalformedBits, "malformed_bits"},
}

// Kind returns a short name for the kind of err, "other" if it isn't one of
// the known kinds.
func Kind(err error) string {
	for _, k := range kinds {
		if k.class.Has(err) {
			return k.name
		}
	}

	return "other"
}
