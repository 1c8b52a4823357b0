package palette

import "math"

const (
	DefaultAnalogousCount = 2
	DefaultShadeCount     = 4
	DefaultTintCount      = 4
)

// Complementary inverts every channel.
func Complementary(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Analogous returns count colors whose hues are spaced evenly between the
// base hue and one full turn away, excluding both ends. Saturation and
// lightness are kept.
func Analogous(c Color, count int) []Color {
	if count <= 0 {
		return []Color{}
	}

	base := RGBToHSL(c)
	step := 1 / float64(count+1)

	out := make([]Color, count)
	for i := 1; i <= count; i++ {
		out[i-1] = HSLToColor(base.RotateHue(step * float64(i)))
	}
	return out
}

// Shades returns count colors scaled toward black, darkest last.
func Shades(c Color, count int) []Color {
	if count <= 0 {
		return []Color{}
	}

	out := make([]Color, count)
	for i := 1; i <= count; i++ {
		factor := 1 - float64(i)/float64(count+1)
		out[i-1] = Color{
			R: clampChannel(math.Round(float64(c.R) * factor)),
			G: clampChannel(math.Round(float64(c.G) * factor)),
			B: clampChannel(math.Round(float64(c.B) * factor)),
		}
	}
	return out
}

// Tints returns count colors mixed toward white, lightest last.
func Tints(c Color, count int) []Color {
	if count <= 0 {
		return []Color{}
	}

	out := make([]Color, count)
	for i := 1; i <= count; i++ {
		factor := float64(i) / float64(count+1)
		out[i-1] = Color{
			R: tintChannel(c.R, factor),
			G: tintChannel(c.G, factor),
			B: tintChannel(c.B, factor),
		}
	}
	return out
}

func tintChannel(ch uint8, factor float64) uint8 {
	v := float64(ch)
	return clampChannel(math.Round(v + (255-v)*factor))
}

// ComplementaryHex parses s and returns its complementary color as hex.
func ComplementaryHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return ToHex(Complementary(c)), nil
}

// AnalogousHex parses s and returns count analogous colors as hex.
func AnalogousHex(s string, count int) ([]string, error) {
	return deriveHex(s, count, Analogous)
}

// ShadesHex parses s and returns count shades as hex.
func ShadesHex(s string, count int) ([]string, error) {
	return deriveHex(s, count, Shades)
}

// TintsHex parses s and returns count tints as hex.
func TintsHex(s string, count int) ([]string, error) {
	return deriveHex(s, count, Tints)
}

func deriveHex(s string, count int, derive func(Color, int) []Color) ([]string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Hexes(derive(c, count)), nil
}
