package model

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch is returned when cell data does not fill a whole
	// number of rows, or when a width or height of zero is requested
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidProbability is returned when a seeding probability is outside [0, 1]
	ErrInvalidProbability = errors.New("invalid probability")
)
