package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrMalformedBoard = errors.New("malformed board")
	ErrBoardNotFound  = errors.New("board not found")

	// Move errors
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidLetter    = errors.New("invalid letter")
	ErrEmptyMove        = errors.New("move has no tiles")
)

// BoundsError reports a checked board read that fell outside the grid
type BoundsError struct {
	Axis  string // "x" or "y"
	Value int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("overran board boundaries: %s = %d", e.Axis, e.Value)
}

// Is lets errors.Is(err, ErrOutOfBounds) match any BoundsError
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
