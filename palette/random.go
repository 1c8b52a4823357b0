package palette

import "math/rand"

// Random picks a uniformly distributed color. A nil rng uses the global
// source.
func Random(rng *rand.Rand) Color {
	var v int
	if rng == nil {
		v = rand.Intn(1 << 24)
	} else {
		v = rng.Intn(1 << 24)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}
