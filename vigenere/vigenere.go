// Package vigenere implements the Vigenère cipher, a polyalphabetic
// substitution considered 'le chiffre indéchiffrable' for three centuries
// until Friedrich Kasiski broke it in 1863.
//
// The key is repeated over the alphabetic characters of the message to form
// a keystream: for message "ATTACK AT DAWN" and key "CRYPT" the keystream is
// "CRYPTC RY PTCR". Each letter is then shifted by its keystream letter.
package vigenere

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for an empty key or a key containing
// non-alphabetic symbols.
var ErrInvalidKey = errors.New("vigenere: key must be non-empty and alphabetic")

// Vigenere is a Vigenère cipher instance, immutable after construction.
type Vigenere struct {
	key []rune
}

// New initialises a Vigenère cipher with a non-empty alphabetic key.
func New(key string) (*Vigenere, error) {
	if len(key) == 0 || !alphabet.IsAlphabetic(key) {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	return &Vigenere{key: []rune(key)}, nil
}

// Encrypt shifts each letter by its keystream letter:
// Ci = (Mi + Ki) mod 26. Case is preserved and non-alphabetic characters
// pass through without consuming keystream.
func (v *Vigenere) Encrypt(message string) (string, error) {
	return alphabet.SubstituteKeyed(message, v.keystream(message), func(mi, ki int) int {
		return alphabet.Modulo(mi + ki)
	})
}

// Decrypt reverses the shift: Mi = (Ci - Ki) mod 26.
func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	return alphabet.SubstituteKeyed(ciphertext, v.keystream(ciphertext), func(ci, ki int) int {
		return alphabet.Modulo(ci - ki)
	})
}

// keystream repeats the base key until it covers every alphabetic character
// of the message (symbols do not consume keystream, so the stream is sized
// against the scrubbed message).
func (v *Vigenere) keystream(message string) []rune {
	needed := len(alphabet.Scrub(message))
	stream := make([]rune, needed)
	for i := 0; i < needed; i++ {
		stream[i] = v.key[i%len(v.key)]
	}

	return stream
}
