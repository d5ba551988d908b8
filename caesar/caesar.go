// Package caesar implements the Caesar cipher, the classic shift
// substitution named after Julius Caesar, who (allegedly) used a shift of
// three for messages of military significance.
//
// As with all single-alphabet substitution ciphers it is easily broken and
// offers no real security; it lives here as a teaching tool.
package caesar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidShift is returned by New for shifts outside [1, 26].
var ErrInvalidShift = errors.New("caesar: shift must be in the range 1-26")

// Caesar is a Caesar cipher instance, immutable after construction.
type Caesar struct {
	shift int
}

// New initialises a Caesar cipher with a shift in [1, 26].
func New(shift int) (*Caesar, error) {
	if shift < 1 || shift > alphabet.Size {
		return nil, fmt.Errorf("New(%d): %w", shift, ErrInvalidShift)
	}

	return &Caesar{shift: shift}, nil
}

// Encrypt shifts every letter forward: E(x) = (x + n) mod 26. Case is
// preserved and non-alphabetic characters pass through untouched.
func (c *Caesar) Encrypt(message string) (string, error) {
	return alphabet.SubstituteShift(message, func(pos int) int {
		return alphabet.Modulo(pos + c.shift)
	})
}

// Decrypt shifts every letter back: D(x) = (x - n) mod 26.
func (c *Caesar) Decrypt(ciphertext string) (string, error) {
	return alphabet.SubstituteShift(ciphertext, func(pos int) int {
		return alphabet.Modulo(pos - c.shift)
	})
}
