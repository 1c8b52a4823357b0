package palette

import "math"

// HSL holds hue as a fraction of a full turn in [0,1), saturation and
// lightness in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSL converts c to hue, saturation and lightness.
func RGBToHSL(c Color) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	if h < 0 {
		h++
	}

	return HSL{H: h, S: s, L: l}
}

// HSLToColor converts hsl back to RGB, rounding each channel to the
// nearest integer.
func HSLToColor(hsl HSL) Color {
	if hsl.S == 0 {
		v := toChannel(hsl.L)
		return Color{R: v, G: v, B: v}
	}

	l, s := hsl.L, hsl.S
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: toChannel(hueToChannel(p, q, hsl.H+1.0/3.0)),
		G: toChannel(hueToChannel(p, q, hsl.H)),
		B: toChannel(hueToChannel(p, q, hsl.H-1.0/3.0)),
	}
}

// RotateHue returns hsl with its hue shifted by turn, wrapped into [0,1).
func (hsl HSL) RotateHue(turn float64) HSL {
	hsl.H = wrapUnit(hsl.H + turn)
	return hsl
}

// Degrees returns the hue in degrees.
func (hsl HSL) Degrees() float64 {
	return hsl.H * 360
}

func hueToChannel(p, q, t float64) float64 {
	t = wrapUnit(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func wrapUnit(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	if t >= 1 {
		t = 0
	}
	return t
}

func toChannel(v float64) uint8 {
	return clampChannel(math.Round(v * 255))
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
