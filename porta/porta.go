// Package porta implements the Porta cipher, a reciprocal polyalphabetic
// substitution invented by Giovanni Battista della Porta in 1563.
//
// The key is repeated over the alphabetic characters of the message, and
// each (key, message) letter pair selects a cell of a fixed 13-row
// substitution table — rows are indexed by key position / 2, columns by the
// message letter. The table is an involution, so decryption is the same
// operation as encryption.
package porta

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for an empty key or a key containing
// non-alphabetic symbols.
var ErrInvalidKey = errors.New("porta: key must be non-empty and alphabetic")

// substitutionTable holds the classical Porta tableau: row r serves key
// letters 2r and 2r+1, entry [r][c] is the substituted position of message
// position c. Every row is self-inverse.
var substitutionTable = [13][26]int{
	{13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	{14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 13, 12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	{15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 13, 14, 11, 12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	{16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 13, 14, 15, 10, 11, 12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{17, 18, 19, 20, 21, 22, 23, 24, 25, 13, 14, 15, 16, 9, 10, 11, 12, 0, 1, 2, 3, 4, 5, 6, 7, 8},
	{18, 19, 20, 21, 22, 23, 24, 25, 13, 14, 15, 16, 17, 8, 9, 10, 11, 12, 0, 1, 2, 3, 4, 5, 6, 7},
	{19, 20, 21, 22, 23, 24, 25, 13, 14, 15, 16, 17, 18, 7, 8, 9, 10, 11, 12, 0, 1, 2, 3, 4, 5, 6},
	{20, 21, 22, 23, 24, 25, 13, 14, 15, 16, 17, 18, 19, 6, 7, 8, 9, 10, 11, 12, 0, 1, 2, 3, 4, 5},
	{21, 22, 23, 24, 25, 13, 14, 15, 16, 17, 18, 19, 20, 5, 6, 7, 8, 9, 10, 11, 12, 0, 1, 2, 3, 4},
	{22, 23, 24, 25, 13, 14, 15, 16, 17, 18, 19, 20, 21, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 1, 2, 3},
	{23, 24, 25, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 1, 2},
	{24, 25, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 1},
	{25, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 0},
}

// Porta is a Porta cipher instance, immutable after construction.
type Porta struct {
	key []rune
}

// New initialises a Porta cipher with a non-empty alphabetic key.
func New(key string) (*Porta, error) {
	if len(key) == 0 || !alphabet.IsAlphabetic(key) {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	return &Porta{key: []rune(key)}, nil
}

// Encrypt substitutes each letter through the tableau row selected by its
// keystream letter. Case is preserved and non-alphabetic characters pass
// through without consuming keystream.
func (p *Porta) Encrypt(message string) (string, error) {
	return alphabet.SubstituteKeyed(message, p.keystream(message), func(mi, ki int) int {
		return substitutionTable[ki/2][mi]
	})
}

// Decrypt is identical to Encrypt: Porta is a reciprocal cipher.
func (p *Porta) Decrypt(ciphertext string) (string, error) {
	return p.Encrypt(ciphertext)
}

// keystream repeats the base key over the alphabetic characters of the
// message.
func (p *Porta) keystream(message string) []rune {
	needed := len(alphabet.Scrub(message))
	stream := make([]rune, needed)
	for i := 0; i < needed; i++ {
		stream[i] = p.key[i%len(p.key)]
	}

	return stream
}
