package alphabet

import (
	"errors"
	"unicode"
)

// Size is the number of letters in the alphabet.
const Size = 26

// ErrNonAlphabetic indicates a character outside the 26-letter alphabet
// where only alphabetic input is accepted (keys, keyed-alphabet seeds).
var ErrNonAlphabetic = errors.New("alphabet: non-alphabetic symbol")

// ErrKeystreamExhausted indicates a keystream shorter than the number of
// alphabetic characters it must substitute.
var ErrKeystreamExhausted = errors.New("alphabet: keystream exhausted")

// ErrIndexOutOfRange indicates a substitution calc function produced an
// index outside [0, Size). Cipher formulas reduce with Modulo, so hitting
// this means the calc itself is broken.
var ErrIndexOutOfRange = errors.New("alphabet: substitution index out of range")

const (
	lower = "abcdefghijklmnopqrstuvwxyz"
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Position returns the alphabet index of c in [0, Size), matching either
// case. The second return value reports whether c is in the alphabet.
// Complexity: O(1).
func Position(c rune) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// Letter returns the letter at index in the requested case.
// The second return value is false when index is outside [0, Size).
// Complexity: O(1).
func Letter(index int, uppercase bool) (rune, bool) {
	if index < 0 || index >= Size {
		return 0, false
	}
	if uppercase {
		return rune(upper[index]), true
	}

	return rune(lower[index]), true
}

// Modulo reduces x into the canonical representative of x mod Size, always
// in [0, Size) regardless of sign. Substitution indices and Hill determinant
// arithmetic both rely on the non-negative form.
// Complexity: O(1).
func Modulo(x int) int {
	return ((x % Size) + Size) % Size
}

// MultiplicativeInverse finds the unique y in [1, Size) with
// (a*y) mod Size == 1. The second return value is false when a shares a
// factor with Size and no inverse exists.
// Complexity: O(Size).
func MultiplicativeInverse(a int) (int, bool) {
	a = Modulo(a)
	for y := 1; y < Size; y++ {
		if (a*y)%Size == 1 {
			return y, true
		}
	}

	return 0, false
}

// IsAlphabetic reports whether every character of s is in the alphabet.
// The empty string is alphabetic. Complexity: O(len(s)).
func IsAlphabetic(s string) bool {
	for _, c := range s {
		if _, ok := Position(c); !ok {
			return false
		}
	}

	return true
}

// Scrub returns s with every non-alphabetic character removed, preserving
// the order and case of the remaining letters. Polyalphabetic ciphers size
// their keystreams against the scrubbed message. Complexity: O(len(s)).
func Scrub(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if _, ok := Position(c); ok {
			out = append(out, c)
		}
	}

	return string(out)
}

// IsUpper reports whether c is an uppercase letter. Thin wrapper kept so
// cipher packages do not each import unicode for one call.
func IsUpper(c rune) bool {
	return unicode.IsUpper(c)
}
