package layout

import "strings"

// Preset is one of the standard IEEE-754 binary interchange formats.
type Preset struct {
	Index        int
	Name         string
	Abbr         string
	ExponentBits int
	MantissaBits int
}

// Layout returns the layout of the preset.
func (p Preset) Layout() Layout {
	return Layout{
		ExponentBits: p.ExponentBits,
		MantissaBits: p.MantissaBits,
		Bias:         1<<(p.ExponentBits-1) - 1,
	}
}

// Match returns true if this preset is known by the given name or
// abbreviation.
func (p Preset) Match(name string) bool {
	name = strings.ToLower(name)

	return name == p.Name || name == p.Abbr
}

type presets []Preset

func (ps presets) Match(name string) (p Preset, ok bool) {
	for _, p := range ps {
		if p.Match(name) {
			return p, true
		}
	}

	return p, false
}

// Index returns the preset at index i.
func (ps presets) Index(i int) (p Preset, err error) {
	if i < 0 || i >= len(ps) {
		return p, ErrPresetOutOfRange.New("%d not in [0, %d]", i, len(ps)-1)
	}

	return ps[i], nil
}

var (
	Half      = Preset{0, "half", "h", 5, 10}
	Single    = Preset{1, "single", "s", 8, 23}
	Double    = Preset{2, "double", "d", 11, 52}
	Quadruple = Preset{3, "quadruple", "q", 15, 112}
	Octuple   = Preset{4, "octuple", "o", 19, 236}

	Presets = presets{
		Half,
		Single,
		Double,
		Quadruple,
		Octuple,
	}
)
