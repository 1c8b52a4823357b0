package palette

// BrightnessThreshold splits light swatches from dark ones.
const BrightnessThreshold = 128

var (
	DarkText  = Color{R: 0x1f, G: 0x29, B: 0x37}
	LightText = white
)

// Brightness is the weighted channel sum (299r + 587g + 114b) / 1000,
// in [0,255].
func Brightness(c Color) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

func IsLight(c Color) bool {
	return Brightness(c) > BrightnessThreshold
}

// TextColor picks a readable label color for a swatch filled with c.
func TextColor(c Color) Color {
	if IsLight(c) {
		return DarkText
	}
	return LightText
}
