// Package hill: sentinel error set. Callers match with errors.Is; call
// sites add context via fmt.Errorf("op: %w", ...).

package hill

import "errors"

var (
	// ErrInvalidKey is returned at construction for a key that cannot
	// drive the cipher: non-square, without a real inverse, or with a
	// determinant not invertible mod 26. No cipher value is created.
	ErrInvalidKey = errors.New("hill: invalid key matrix")

	// ErrInvalidInput is returned when a message or ciphertext contains
	// characters outside the alphabet, or when NewFromPhrase is given a
	// chunk size and phrase whose lengths cannot form a square matrix.
	ErrInvalidInput = errors.New("hill: invalid input")

	// ErrDimensionMismatch signals a chunk whose length differs from the
	// key dimension. Chunking makes this unreachable; the guard exists so
	// an internal slicing bug surfaces as an error, not silent corruption.
	ErrDimensionMismatch = errors.New("hill: chunk length does not match key dimension")
)
