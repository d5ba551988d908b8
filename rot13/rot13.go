// Package rot13 implements ROT13 ("rotate by 13 places"), the keyless
// special case of the Caesar cipher. ROT13 is its own inverse:
// Apply(Apply(m)) == m. Because there is no key, the package exposes a
// single function instead of the New/Encrypt/Decrypt contract.
package rot13

import "github.com/katalvlaran/lvlcrypt/alphabet"

// Apply encrypts or decrypts a message by rotating every letter 13 places.
// Case is preserved and non-alphabetic characters pass through untouched.
func Apply(message string) string {
	out, _ := alphabet.SubstituteShift(message, func(pos int) int {
		return alphabet.Modulo(pos + alphabet.Size/2)
	}) // Modulo keeps the index in range, so no error can surface

	return out
}
