package palette

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat    = errors.New("invalid color format")
	ErrInvalidSteps     = fmt.Errorf("color steps must be between %d and %d", MinSteps, MaxSteps)
	ErrInvalidScaleType = errors.New("unknown palette type")
	ErrSelectionFull    = fmt.Errorf("a selection holds at most %d base colors", MaxBaseColors)
	ErrLastColor        = errors.New("cannot remove the last base color")
	ErrIndexOutOfRange  = errors.New("color index out of range")
)

// FormatError reports a color string that is not 3 or 6 hex digits.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q is not a 3 or 6 digit hex color", ErrInvalidFormat, e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
