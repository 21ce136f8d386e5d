package components

import "errors"

var (
	ErrOutOfBounds            = errors.New("coordinates out of bounds")
	ErrIllegalMove            = errors.New("illegal move")
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")
	ErrOccupied               = errors.New("square occupied")
)
