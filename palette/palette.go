package palette

import "github.com/samber/lo"

// Palette is a base color together with every color derived from it.
type Palette struct {
	Base          Color   `json:"base"`
	Complementary Color   `json:"complementary"`
	Analogous     []Color `json:"analogous"`
	Shades        []Color `json:"shades"`
	Tints         []Color `json:"tints"`
}

// Options sets how many colors each derivation produces. Zero values fall
// back to the assembled palette defaults.
type Options struct {
	AnalogousCount int `json:"analogousCount"`
	ShadeCount     int `json:"shadeCount"`
	TintCount      int `json:"tintCount"`
}

// DefaultOptions are the counts a palette is assembled with when nothing
// else is asked for.
func DefaultOptions() Options {
	return Options{
		AnalogousCount: 2,
		ShadeCount:     3,
		TintCount:      3,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.AnalogousCount <= 0 {
		o.AnalogousCount = def.AnalogousCount
	}
	if o.ShadeCount <= 0 {
		o.ShadeCount = def.ShadeCount
	}
	if o.TintCount <= 0 {
		o.TintCount = def.TintCount
	}
	return o
}

// Build derives a full palette from base.
func Build(base Color, opts Options) Palette {
	opts = opts.withDefaults()
	return Palette{
		Base:          base,
		Complementary: Complementary(base),
		Analogous:     Analogous(base, opts.AnalogousCount),
		Shades:        Shades(base, opts.ShadeCount),
		Tints:         Tints(base, opts.TintCount),
	}
}

// BuildDefault derives a palette with DefaultOptions.
func BuildDefault(base Color) Palette {
	return Build(base, DefaultOptions())
}

// BuildHex parses s and derives its palette.
func BuildHex(s string, opts Options) (Palette, error) {
	base, err := ParseHex(s)
	if err != nil {
		return Palette{}, err
	}
	return Build(base, opts), nil
}

// BuildAll derives one palette per base color, in order.
func BuildAll(bases []Color, opts Options) []Palette {
	return lo.Map(bases, func(c Color, _ int) Palette {
		return Build(c, opts)
	})
}

// Colors flattens p: base, complementary, analogous, shades, then tints.
func (p Palette) Colors() []Color {
	out := make([]Color, 0, 2+len(p.Analogous)+len(p.Shades)+len(p.Tints))
	out = append(out, p.Base, p.Complementary)
	out = append(out, p.Analogous...)
	out = append(out, p.Shades...)
	out = append(out, p.Tints...)
	return out
}

// Hexes flattens p the same way Colors does, formatted as hex.
func (p Palette) Hexes() []string {
	return Hexes(p.Colors())
}
