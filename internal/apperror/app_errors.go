package apperror

import "errors"

var (
	ErrOutOfBounds        = errors.New("coordinate is out of bounds")
	ErrGameFinished       = errors.New("game is already won")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrIllegalMove        = errors.New("no adjacent pawn or move is blocked by a fence")
	ErrFenceSlotOccupied  = errors.New("fence slot is already occupied")
	ErrNoFencesLeft       = errors.New("no fences left in reserve")
	ErrUnknownOrientation = errors.New("unknown fence orientation")
)
