// Package autokey implements the Autokey (autoclave) cipher, a Vigenère
// variant that incorporates the plaintext itself into the keystream: for
// message "ATTACK AT DAWN" and key "CRYPT" the keystream is
// "CRYPTA TT ACKA". Invented by Blaise de Vigenère in 1586, it avoids the
// periodic key repetition that makes the plain Vigenère breakable by
// Kasiski examination.
package autokey

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for an empty key or a key containing
// non-alphabetic symbols.
var ErrInvalidKey = errors.New("autokey: key must be non-empty and alphabetic")

// Autokey is an Autokey cipher instance, immutable after construction.
type Autokey struct {
	key []rune
}

// New initialises an Autokey cipher with a non-empty alphabetic key.
func New(key string) (*Autokey, error) {
	if len(key) == 0 || !alphabet.IsAlphabetic(key) {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	return &Autokey{key: []rune(key)}, nil
}

// Encrypt shifts each letter by its keystream letter, where the keystream
// is the base key followed by the message's own letters:
// Ci = (Mi + Ki) mod 26.
func (a *Autokey) Encrypt(message string) (string, error) {
	stream := append(append([]rune{}, a.key...), []rune(alphabet.Scrub(message))...)

	return alphabet.SubstituteKeyed(message, stream, func(mi, ki int) int {
		return alphabet.Modulo(mi + ki)
	})
}

// Decrypt regenerates the keystream on the fly: each decrypted letter is
// appended to the stream so it can decrypt the latter part of the
// ciphertext. Non-alphabetic characters pass through without consuming
// keystream.
func (a *Autokey) Decrypt(ciphertext string) (string, error) {
	stream := append([]rune{}, a.key...)
	out := make([]rune, 0, len(ciphertext))
	next := 0 // index of the next unconsumed keystream character

	for _, c := range ciphertext {
		ci, ok := alphabet.Position(c)
		if !ok {
			out = append(out, c)

			continue
		}

		if next >= len(stream) {
			// Unreachable for well-formed input: every decrypted letter
			// extends the stream by one.
			return "", fmt.Errorf("Decrypt: keystream exhausted: %w", alphabet.ErrKeystreamExhausted)
		}
		ki, _ := alphabet.Position(stream[next]) // stream holds letters only
		next++

		letter, _ := alphabet.Letter(alphabet.Modulo(ci-ki), alphabet.IsUpper(c))
		out = append(out, letter)
		stream = append(stream, letter) // feed the plaintext back into the key
	}

	return string(out), nil
}
