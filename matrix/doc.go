// Package matrix provides the small dense linear-algebra kernels the Hill
// cipher engine is built on: a row-major float64 matrix with exactly the
// operations the engine needs — determinant, inverse, matrix-vector product
// and elementwise mapping.
//
// Design:
//
//   - Dense stores elements in a flat slice (row-major) for cache
//     friendliness; indices are bounds-checked and return errors, never
//     panic.
//   - Det and Inverse use Gaussian elimination with partial pivoting.
//     Pivot selection is deterministic (largest magnitude, lowest row index
//     on ties), so identical inputs always produce identical results.
//   - All functions are pure: operands are never mutated, results are
//     freshly allocated.
//
// The package deliberately carries no third-party linear-algebra dependency;
// the engine's matrices are tiny (n is the cipher chunk size, typically 2–4)
// and the kernel set is fixed.
package matrix
