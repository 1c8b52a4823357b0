package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  HSL
	}{
		{name: "red", color: Color{R: 255}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "green", color: Color{G: 255}, want: HSL{H: 1.0 / 3.0, S: 1, L: 0.5}},
		{name: "blue", color: Color{B: 255}, want: HSL{H: 2.0 / 3.0, S: 1, L: 0.5}},
		{name: "magenta wraps negative hue", color: Color{R: 255, B: 255}, want: HSL{H: 5.0 / 6.0, S: 1, L: 0.5}},
		{name: "gray has no hue", color: Color{R: 128, G: 128, B: 128}, want: HSL{H: 0, S: 0, L: 128.0 / 255.0}},
		{name: "white", color: Color{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 1}},
		{name: "black", color: Color{}, want: HSL{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.color)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestRGBToHSL_HueInUnitRange(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				hsl := RGBToHSL(Color{R: uint8(r), G: uint8(g), B: uint8(b)})
				assert.GreaterOrEqual(t, hsl.H, 0.0)
				assert.Less(t, hsl.H, 1.0)
				assert.GreaterOrEqual(t, hsl.S, 0.0)
				assert.LessOrEqual(t, hsl.S, 1.0+1e-12)
			}
		}
	}
}

func TestHSLToColor(t *testing.T) {
	assert.Equal(t, Color{R: 255}, HSLToColor(HSL{H: 0, S: 1, L: 0.5}))
	assert.Equal(t, Color{G: 255}, HSLToColor(HSL{H: 1.0 / 3.0, S: 1, L: 0.5}))
	assert.Equal(t, Color{B: 255}, HSLToColor(HSL{H: 2.0 / 3.0, S: 1, L: 0.5}))
	assert.Equal(t, Color{R: 128, G: 128, B: 128}, HSLToColor(HSL{S: 0, L: 128.0 / 255.0}))
	assert.Equal(t, Color{R: 255}, HSLToColor(HSL{H: 1, S: 1, L: 0.5}), "a full turn is the same hue")
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				c := Color{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := HSLToColor(RGBToHSL(c))
				if !withinOne(c, got) {
					t.Fatalf("round trip of %s gave %s", c, got)
				}
			}
		}
	}
}

func TestRotateHue(t *testing.T) {
	hsl := HSL{H: 0.9, S: 0.5, L: 0.5}
	assert.InDelta(t, 0.1, hsl.RotateHue(0.2).H, 1e-9)
	assert.InDelta(t, 0.7, hsl.RotateHue(-0.2).H, 1e-9)
	assert.InDelta(t, 0.9, hsl.RotateHue(1).H, 1e-9)
	assert.InDelta(t, 324, hsl.Degrees(), 1e-9)
}

func withinOne(a, b Color) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			return -d
		}
		return d
	}
	return diff(a.R, b.R) <= 1 && diff(a.G, b.G) <= 1 && diff(a.B, b.B) <= 1
}
