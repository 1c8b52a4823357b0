package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

const (
	DefaultSteps = 5
	MinSteps     = 3
	MaxSteps     = 10
)

// ScaleType selects which interpolated sequence Scale produces.
type ScaleType string

const (
	ScaleFull   ScaleType = "full"
	ScaleTints  ScaleType = "tints"
	ScaleShades ScaleType = "shades"
)

var (
	white = Color{R: 255, G: 255, B: 255}
	black = Color{}
)

// ParseScaleType accepts "full", "tints" or "shades" in any case. An empty
// string selects ScaleFull.
func ParseScaleType(s string) (ScaleType, error) {
	switch t := ScaleType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return ScaleFull, nil
	case ScaleFull, ScaleTints, ScaleShades:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScaleType, s)
	}
}

// Scale interpolates in CIE L*a*b* from base toward white and toward black,
// steps colors each with both ends included. ScaleFull returns the white
// sequence followed by the black one minus its leading base entry.
func Scale(base Color, typ ScaleType, steps int) ([]Color, error) {
	if steps < MinSteps || steps > MaxSteps {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSteps, steps)
	}

	switch typ {
	case ScaleTints:
		return blendLab(base, white, steps), nil
	case ScaleShades:
		return blendLab(base, black, steps), nil
	case ScaleFull, "":
		tints := blendLab(base, white, steps)
		shades := blendLab(base, black, steps)
		return append(tints, shades[1:]...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidScaleType, typ)
	}
}

// ScaleHex parses s and returns its scale as hex strings.
func ScaleHex(s string, typ ScaleType, steps int) ([]string, error) {
	base, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	colors, err := Scale(base, typ, steps)
	if err != nil {
		return nil, err
	}
	return Hexes(colors), nil
}

// ScaleAll concatenates the scales of every base color, in order.
func ScaleAll(bases []Color, typ ScaleType, steps int) ([]Color, error) {
	var out []Color
	for _, base := range bases {
		colors, err := Scale(base, typ, steps)
		if err != nil {
			return nil, err
		}
		out = append(out, colors...)
	}
	return out, nil
}

func blendLab(from, to Color, steps int) []Color {
	start := toColorful(from)
	end := toColorful(to)

	out := lo.Times(steps, func(i int) Color {
		t := float64(i) / float64(steps-1)
		return fromColorful(start.BlendLab(end, t))
	})

	// Lab round trips can drift by one at the ends.
	out[0] = from
	out[steps-1] = to
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
