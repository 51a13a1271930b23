package layout

// Schema selects a layout. Precision is a preset index; ExponentBits and
// MantissaBits override the preset independently when non-zero.
type Schema struct {
	Precision int

	ExponentBits int
	MantissaBits int
}

// Resolve returns the layout selected by the schema. The preset is only
// consulted for the widths that aren't overridden.
func (s Schema) Resolve() (l Layout, err error) {
	e, m := s.ExponentBits, s.MantissaBits

	if e == 0 || m == 0 {
		p, err := Presets.Index(s.Precision)
		if err != nil {
			return l, err
		}

		if e == 0 {
			e = p.ExponentBits
		}

		if m == 0 {
			m = p.MantissaBits
		}
	}

	return New(e, m)
}
