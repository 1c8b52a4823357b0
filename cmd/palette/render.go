package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/color-palette/api/palette"
	"github.com/samber/lo"
)

const labelWidth = 14

// renderer draws swatches for the color profile of its output.
type renderer struct {
	lg    *lipgloss.Renderer
	label lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	lg := lipgloss.NewRenderer(w)
	return &renderer{
		lg:    lg,
		label: lg.NewStyle().Bold(true).Width(labelWidth),
	}
}

// swatch paints the hex code on its own color, with the readable text color.
func (r *renderer) swatch(c palette.Color) string {
	return r.lg.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(palette.TextColor(c).Hex())).
		Padding(0, 1).
		Render(c.Hex())
}

func (r *renderer) row(colors []palette.Color) string {
	return strings.Join(lo.Map(colors, func(c palette.Color, _ int) string {
		return r.swatch(c)
	}), " ")
}

func (r *renderer) field(name, value string) string {
	return r.label.Render(name) + value
}

func (r *renderer) palette(p palette.Palette) string {
	var b strings.Builder
	b.WriteString(r.field("base", r.swatch(p.Base)) + "\n")
	b.WriteString(r.field("complementary", r.swatch(p.Complementary)) + "\n")
	b.WriteString(r.field("analogous", r.row(p.Analogous)) + "\n")
	b.WriteString(r.field("shades", r.row(p.Shades)) + "\n")
	b.WriteString(r.field("tints", r.row(p.Tints)) + "\n")
	return b.String()
}
