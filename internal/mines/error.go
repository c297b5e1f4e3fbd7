package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("coordinates out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyList       = errors.New("food list is empty")
)

type RangeError struct {
	X, Y, Size int
}

// [RangeError] implements [error]
func (e *RangeError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside of %dx%d board", e.X, e.Y, e.Size, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
