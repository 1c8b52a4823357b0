package models

import (
	"github.com/color-palette/api/palette"
)

// MaxDerivedCount caps analogous, shade and tint counts on API requests.
const MaxDerivedCount = 12

// PaletteRequest asks for one palette per base color.
type PaletteRequest struct {
	Colors         []string `json:"colors" validate:"required,min=1,max=5"`
	ActiveIndex    int      `json:"activeIndex" validate:"min=0"`
	AnalogousCount int      `json:"analogousCount" validate:"omitempty,min=1,max=12"`
	ShadeCount     int      `json:"shadeCount" validate:"omitempty,min=1,max=12"`
	TintCount      int      `json:"tintCount" validate:"omitempty,min=1,max=12"`
	SkipInvalid    bool     `json:"skipInvalid"`
}

func (pr PaletteRequest) Options() palette.Options {
	return palette.Options{
		AnalogousCount: pr.AnalogousCount,
		ShadeCount:     pr.ShadeCount,
		TintCount:      pr.TintCount,
	}
}

// RejectedColor is a malformed entry dropped from a request with skipInvalid.
type RejectedColor struct {
	Index  int    `json:"index"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type PaletteResponse struct {
	ActiveIndex int               `json:"activeIndex"`
	Palettes    []palette.Palette `json:"palettes"`
	Rejected    []RejectedColor   `json:"rejected,omitempty"`
}

// ScaleRequest asks for a Lab-interpolated scale per base color, flattened.
type ScaleRequest struct {
	Colors      []string `json:"colors" validate:"required,min=1,max=5"`
	PaletteType string   `json:"paletteType" validate:"omitempty,oneof=full tints shades"`
	ColorSteps  int      `json:"colorSteps" validate:"omitempty,min=3,max=10"`
}

type ScaleResponse struct {
	PaletteType string   `json:"paletteType"`
	ColorSteps  int      `json:"colorSteps"`
	Colors      []string `json:"colors"`
}

// SwatchResponse describes a single color the way a swatch displays it.
type SwatchResponse struct {
	Hex        string      `json:"hex"`
	RGB        string      `json:"rgb"`
	HSL        palette.HSL `json:"hsl"`
	HueDegrees float64     `json:"hueDegrees"`
	Brightness float64     `json:"brightness"`
	Light      bool        `json:"light"`
	TextColor  string      `json:"textColor"`
}

func NewSwatch(c palette.Color) SwatchResponse {
	hsl := palette.RGBToHSL(c)
	return SwatchResponse{
		Hex:        c.Hex(),
		RGB:        c.RGBString(),
		HSL:        hsl,
		HueDegrees: hsl.Degrees(),
		Brightness: palette.Brightness(c),
		Light:      palette.IsLight(c),
		TextColor:  palette.TextColor(c).Hex(),
	}
}

type RandomColorResponse struct {
	Color   SwatchResponse  `json:"color"`
	Palette palette.Palette `json:"palette"`
}
