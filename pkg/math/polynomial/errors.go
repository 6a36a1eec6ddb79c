package polynomial

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNoPoints is returned when interpolating an empty set of points.
	ErrNoPoints = errors.New("polynomial: no points to interpolate")
	// ErrDuplicateX is returned when two points share an x-coordinate.
	ErrDuplicateX = errors.New("polynomial: duplicate x-coordinate")
	// ErrNonIntegerResult is returned when the interpolated value at 0 is not an integer.
	// This means the points do not lie on an integer polynomial of degree < k,
	// for instance because k is wrong or a share is corrupted.
	ErrNonIntegerResult = errors.New("polynomial: interpolation result is not an integer")
)

// DuplicateXError identifies the two points sharing X.
type DuplicateXError struct {
	X    *big.Int
	I, J int
}

func (e *DuplicateXError) Error() string {
	return fmt.Sprintf("polynomial: points %d and %d share x-coordinate %s", e.I, e.J, e.X)
}

func (e *DuplicateXError) Unwrap() error { return ErrDuplicateX }

// NonIntegerError carries the fraction f(0) = Num/Den that failed to reduce to an integer.
type NonIntegerError struct {
	Num, Den *big.Int
}

func (e *NonIntegerError) Error() string {
	return fmt.Sprintf("polynomial: interpolation result %s/%s is not an integer", e.Num, e.Den)
}

func (e *NonIntegerError) Unwrap() error { return ErrNonIntegerResult }
