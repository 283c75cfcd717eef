package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a requested width or height below 1.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrShapeMismatch indicates an obstacle matrix whose shape disagrees
	// with the declared width×height.
	ErrShapeMismatch = errors.New("grid: matrix shape does not match grid dimensions")
	// ErrEmptyGrid indicates input cells have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrOutOfBounds indicates coordinates outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)
