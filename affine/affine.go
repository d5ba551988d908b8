// Package affine implements the Affine cipher, the general monoalphabetic
// substitution E(x) = (a*x + b) mod 26. Decryption requires the
// multiplicative inverse of a, so a must be coprime with 26; that check is
// done once at construction.
//
// If a cryptanalyst recovers the plaintext of just two ciphertext letters,
// the key falls out of a pair of simultaneous equations — another teaching
// tool, not a protection.
package affine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New when a or b is outside [1, 26], or when
// a shares a factor with 26 and has no multiplicative inverse.
var ErrInvalidKey = errors.New("affine: invalid key")

// Affine is an Affine cipher instance, immutable after construction.
type Affine struct {
	a, b int
	aInv int // cached multiplicative inverse of a mod 26
}

// New initialises an Affine cipher with keys a and b, both in [1, 26];
// a must additionally be coprime with 26.
func New(a, b int) (*Affine, error) {
	if a < 1 || b < 1 || a > alphabet.Size || b > alphabet.Size {
		return nil, fmt.Errorf("New(%d,%d): keys must be in 1-26: %w", a, b, ErrInvalidKey)
	}
	aInv, ok := alphabet.MultiplicativeInverse(a)
	if !ok {
		return nil, fmt.Errorf("New(%d,%d): 'a' shares a factor with 26: %w", a, b, ErrInvalidKey)
	}

	return &Affine{a: a, b: b, aInv: aInv}, nil
}

// Encrypt substitutes every letter with E(x) = (a*x + b) mod 26. Case is
// preserved and non-alphabetic characters pass through untouched.
func (a *Affine) Encrypt(message string) (string, error) {
	return alphabet.SubstituteShift(message, func(pos int) int {
		return alphabet.Modulo(a.a*pos + a.b)
	})
}

// Decrypt substitutes every letter with D(x) = a^-1 * (x - b) mod 26.
func (a *Affine) Decrypt(ciphertext string) (string, error) {
	return alphabet.SubstituteShift(ciphertext, func(pos int) int {
		return alphabet.Modulo(a.aInv * (pos - a.b))
	})
}
