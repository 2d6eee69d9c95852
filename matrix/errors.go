// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation tag)
// and tests match them via errors.Is. Numeric degeneracies (zero variance,
// zero-norm vectors) are NOT errors; they are handled by documented policy.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions: a negative row/column count, or a buffer whose
	// length is not rows*cols.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange is returned by At, Set, Row and Col for a bad index.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: covariance-shaped input expected.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix: a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag; errors.Is still matches the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
