package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colors(hexes ...string) []Color {
	out := make([]Color, len(hexes))
	for i, h := range hexes {
		out[i] = MustParseHex(h)
	}
	return out
}

func TestNewSelection(t *testing.T) {
	s, err := NewSelection(colors("#111111", "#222222"), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ActiveIndex(), "active index is clamped")
	assert.Equal(t, MustParseHex("#222222"), s.ActiveColor())

	_, err = NewSelection(nil, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewSelection(colors("#111", "#222", "#333", "#444", "#555", "#666"), 0)
	assert.ErrorIs(t, err, ErrSelectionFull)
}

func TestSelection_Add(t *testing.T) {
	s, err := NewSelection(colors("#111111"), 0)
	require.NoError(t, err)

	for i := 1; i < MaxBaseColors; i++ {
		s, err = s.Add(MustParseHex("#abcdef"))
		require.NoError(t, err)
		assert.Equal(t, i, s.ActiveIndex(), "new color becomes active")
	}

	full, err := s.Add(MustParseHex("#000000"))
	assert.ErrorIs(t, err, ErrSelectionFull)
	assert.Equal(t, MaxBaseColors, full.Len())
}

func TestSelection_Remove(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive int
		wantColors []Color
	}{
		{
			name:       "removing last while it is active moves to new last",
			active:     2,
			remove:     2,
			wantActive: 1,
			wantColors: colors("#111111", "#222222"),
		},
		{
			name:       "removing active color resets to first",
			active:     1,
			remove:     1,
			wantActive: 0,
			wantColors: colors("#111111", "#333333"),
		},
		{
			name:       "removing another color keeps the active index",
			active:     0,
			remove:     2,
			wantActive: 0,
			wantColors: colors("#111111", "#222222"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSelection(colors("#111111", "#222222", "#333333"), tt.active)
			require.NoError(t, err)

			got, err := s.Remove(tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.wantActive, got.ActiveIndex())
			assert.Equal(t, tt.wantColors, got.Colors())
			assert.Equal(t, 3, s.Len(), "receiver is unchanged")
		})
	}
}

func TestSelection_RemoveLast(t *testing.T) {
	s, err := NewSelection(colors("#111111"), 0)
	require.NoError(t, err)

	_, err = s.Remove(0)
	assert.ErrorIs(t, err, ErrLastColor)

	_, err = s.Remove(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSelection_ReplaceAndSelect(t *testing.T) {
	s, err := NewSelection(colors("#111111", "#222222"), 0)
	require.NoError(t, err)

	replaced, err := s.Replace(1, MustParseHex("#3498db"))
	require.NoError(t, err)
	assert.Equal(t, colors("#111111", "#3498db"), replaced.Colors())
	assert.Equal(t, colors("#111111", "#222222"), s.Colors())

	selected, err := replaced.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "#3498db", selected.ActiveColor().Hex())

	_, err = s.Select(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Replace(2, Color{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSelection_Palettes(t *testing.T) {
	s, err := NewSelection(colors("#3498db", "#e74c3c"), 1)
	require.NoError(t, err)

	palettes := s.Palettes(DefaultOptions())
	require.Len(t, palettes, 2)
	assert.Equal(t, palettes[1], s.Active(DefaultOptions()))
}
