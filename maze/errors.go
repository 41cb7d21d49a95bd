package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("maze: width and height must be positive")

	// ErrAlreadyCarved is returned when carving is attempted on a grid
	// that already holds visited cells from a previous carve.
	ErrAlreadyCarved = errors.New("maze: grid already carved")

	// ErrInvalidState is returned when an operation is invoked out of
	// lifecycle order, e.g. opening boundaries before carving.
	ErrInvalidState = errors.New("maze: operation not allowed in current state")

	// ErrUnsupportedAlgorithm is returned for an unknown carving
	// algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("maze: unsupported carving algorithm")
)
