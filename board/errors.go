package board

import "errors"

var (
	// ErrInvalidDimensions indicates width or height below one.
	ErrInvalidDimensions = errors.New("board: width and height must be at least 1")
	// ErrMalformedGivens indicates the givens string does not decode to
	// exactly (width+1)*(height+1) vertex clues.
	ErrMalformedGivens = errors.New("board: givens do not decode to the expected vertex count")
	// ErrLoopFormed indicates a placement whose diagonal would close a
	// cycle among already-placed diagonals.
	ErrLoopFormed = errors.New("board: placement would form a loop")
)
