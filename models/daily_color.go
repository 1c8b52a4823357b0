package models

import (
	"time"

	"github.com/color-palette/api/palette"
)

// DailyColor is the base color of the day
type DailyColor struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	R         int       `json:"r"`
	G         int       `json:"g"`
	B         int       `json:"b"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDailyColor(date time.Time, c palette.Color) DailyColor {
	return DailyColor{
		Date:      date,
		R:         int(c.R),
		G:         int(c.G),
		B:         int(c.B),
		CreatedAt: time.Now(),
	}
}

func (dc DailyColor) Color() palette.Color {
	return palette.Color{R: uint8(dc.R), G: uint8(dc.G), B: uint8(dc.B)}
}

// DailyColorResponse is the simplified response for API endpoints
type DailyColorResponse struct {
	Date    string          `json:"date"`
	RGB     string          `json:"rgb"`
	Hex     string          `json:"hex"`
	Palette palette.Palette `json:"palette"`
}

func NewDailyColorResponse(dc DailyColor, opts palette.Options) DailyColorResponse {
	c := dc.Color()
	return DailyColorResponse{
		Date:    dc.Date.Format("2006-01-02"),
		RGB:     c.RGBString(),
		Hex:     c.Hex(),
		Palette: palette.Build(c, opts),
	}
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
