package palette

import (
	"fmt"
	"slices"
)

// MaxBaseColors is how many base colors a selection can hold.
const MaxBaseColors = 5

// Selection is an ordered set of base colors with one of them active.
// Every operation returns a new Selection and leaves the receiver untouched.
type Selection struct {
	colors []Color
	active int
}

// NewSelection requires between 1 and MaxBaseColors colors. The active
// index is clamped into range.
func NewSelection(colors []Color, active int) (Selection, error) {
	if len(colors) == 0 {
		return Selection{}, fmt.Errorf("%w: a selection needs at least one base color", ErrIndexOutOfRange)
	}
	if len(colors) > MaxBaseColors {
		return Selection{}, ErrSelectionFull
	}
	return Selection{colors: slices.Clone(colors), active: clampIndex(active, len(colors))}, nil
}

func (s Selection) Colors() []Color {
	return slices.Clone(s.colors)
}

func (s Selection) Len() int {
	return len(s.colors)
}

func (s Selection) ActiveIndex() int {
	return s.active
}

// ActiveColor returns the base color currently selected.
func (s Selection) ActiveColor() Color {
	if len(s.colors) == 0 {
		return Color{}
	}
	return s.colors[s.active]
}

// Add appends c and makes it active.
func (s Selection) Add(c Color) (Selection, error) {
	if len(s.colors) >= MaxBaseColors {
		return s, ErrSelectionFull
	}
	colors := append(slices.Clone(s.colors), c)
	return Selection{colors: colors, active: len(colors) - 1}, nil
}

// Remove drops the color at i. An active index past the end moves to the
// last color; removing the active color resets the selection to the first.
func (s Selection) Remove(i int) (Selection, error) {
	if err := s.checkIndex(i); err != nil {
		return s, err
	}
	if len(s.colors) <= 1 {
		return s, ErrLastColor
	}

	colors := slices.Delete(slices.Clone(s.colors), i, i+1)
	active := s.active
	switch {
	case active >= len(colors):
		active = len(colors) - 1
	case active == i:
		active = 0
	}
	return Selection{colors: colors, active: active}, nil
}

// Replace swaps the color at i for c.
func (s Selection) Replace(i int, c Color) (Selection, error) {
	if err := s.checkIndex(i); err != nil {
		return s, err
	}
	colors := slices.Clone(s.colors)
	colors[i] = c
	return Selection{colors: colors, active: s.active}, nil
}

// Select makes the color at i active.
func (s Selection) Select(i int) (Selection, error) {
	if err := s.checkIndex(i); err != nil {
		return s, err
	}
	return Selection{colors: s.colors, active: i}, nil
}

// Palettes derives one palette per base color.
func (s Selection) Palettes(opts Options) []Palette {
	return BuildAll(s.colors, opts)
}

// Active derives the palette of the active color.
func (s Selection) Active(opts Options) Palette {
	return Build(s.ActiveColor(), opts)
}

func (s Selection) checkIndex(i int) error {
	if i < 0 || i >= len(s.colors) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(s.colors))
	}
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
