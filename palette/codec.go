// Package palette derives related colors from a base color: complementary,
// analogous, shades, tints and Lab-interpolated scales.
package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is a 24-bit RGB value.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses "#abc", "abc", "#aabbcc" or "aabbcc" in any case.
func ParseHex(s string) (Color, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &FormatError{Input: s}
	}

	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &FormatError{Input: s}
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats c as lowercase "#rrggbb".
func ToHex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) Hex() string {
	return ToHex(c)
}

func (c Color) String() string {
	return ToHex(c)
}

// RGBString formats c as "rgb(r,g,b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(ToHex(c)), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Hexes formats every color with ToHex.
func Hexes(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = ToHex(c)
	}
	return out
}
