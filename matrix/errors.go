// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation
// tag via fmt.Errorf("op: %w", ...)); callers match with errors.Is.
// No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that row data is ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 and rows uniform")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. At/Set return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Det and Inverse are defined for square matrices only.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when elimination finds no usable
	// pivot: the matrix has no real inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
