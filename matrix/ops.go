// Package matrix: elimination kernels (Det, Inverse, MatVec).
// All kernels validate fail-fast, leave their operands untouched, and wrap
// sentinel errors with a stable operation tag.

package matrix

import (
	"fmt"
	"math"
)

// pivotEps is the magnitude below which a pivot is treated as zero.
// Cipher keys are small integer matrices, so any genuine pivot is far above
// this threshold; the epsilon only absorbs float roundoff from elimination.
const pivotEps = 1e-9

// Operation name constants for unified error wrapping.
const (
	opDet     = "Det"
	opInverse = "Inverse"
	opMatVec  = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSquare rejects nil and non-square operands with plain sentinels;
// the caller wraps with its operation tag.
func validateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.IsSquare() {
		return ErrNonSquare
	}

	return nil
}

// Det computes the determinant of a square matrix by Gaussian elimination
// with partial pivoting on a working copy.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Eliminate): for each column pick the largest-magnitude pivot at
// or below the diagonal (lowest row index wins ties), swap it up (flipping
// the sign), and clear the column below.
// Stage 3 (Accumulate): the determinant is the signed product of pivots;
// a pivot below pivotEps short-circuits to exactly 0.
//
// Determinism: fixed column order and deterministic pivot choice.
// Complexity: O(n^3) time, O(n^2) space for the working copy.
func Det(m *Dense) (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := m.r
	a := m.Clone()
	det := 1.0

	var i, j, k, pivotRow int
	var pivot, factor float64
	for k = 0; k < n; k++ {
		// Select the largest-magnitude pivot in column k, rows k..n-1.
		pivotRow = k
		pivot = math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > pivot {
				pivot, pivotRow = v, i
			}
		}
		if pivot <= pivotEps {
			return 0, nil // singular: determinant is exactly zero
		}
		if pivotRow != k {
			swapRows(a, k, pivotRow)
			det = -det
		}

		det *= a.data[k*n+k]

		// Clear column k below the diagonal.
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / a.data[k*n+k]
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return det, nil
}

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial pivoting
// on an augmented [A | I] system.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Forward): per column, pick the deterministic pivot, swap it into
// place in both halves, normalize the pivot row, clear the column in every
// other row.
// Stage 3 (Finalize): the right half is A^{-1}.
//
// Returns ErrSingular when no usable pivot exists: the matrix has no real
// inverse. The input is never mutated.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m *Dense) (*Dense, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	a := m.Clone()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1.0
	}

	var i, j, k, pivotRow int
	var pivot, factor float64
	for k = 0; k < n; k++ {
		// Deterministic pivot choice: largest magnitude, lowest index.
		pivotRow = k
		pivot = math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > pivot {
				pivot, pivotRow = v, i
			}
		}
		if pivot <= pivotEps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if pivotRow != k {
			swapRows(a, k, pivotRow)
			swapRows(inv, k, pivotRow)
		}

		// Normalize the pivot row in both halves.
		factor = a.data[k*n+k]
		for j = 0; j < n; j++ {
			a.data[k*n+j] /= factor
			inv.data[k*n+j] /= factor
		}

		// Clear column k in every other row.
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			factor = a.data[i*n+k]
			if factor == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
				inv.data[i*n+j] -= factor * inv.data[k*n+j]
			}
		}
	}

	return inv, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, one pass per row with flat indexing.
// Complexity: O(r*c) time, O(r) space for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// swapRows exchanges rows p and q of a in place.
func swapRows(a *Dense, p, q int) {
	basep, baseq := p*a.c, q*a.c
	for j := 0; j < a.c; j++ {
		a.data[basep+j], a.data[baseq+j] = a.data[baseq+j], a.data[basep+j]
	}
}
