// Package baconian implements the classical 26-letter Baconian cipher.
// Each letter encodes to a five-character group of 'A' and 'B' spelling
// the letter's alphabet index in binary (A=0, B=1), so 'a' becomes
// "AAAAA" and 'z' becomes "BBAAB". Letter case is not preserved and
// non-alphabetic characters have no group, so Encrypt rejects them.
package baconian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidInput is returned by Encrypt for non-alphabetic input.
var ErrInvalidInput = errors.New("baconian: message must be alphabetic")

// ErrInvalidGroup is returned by Decrypt when the ciphertext length is not
// a multiple of five, a group contains a character other than A or B, or a
// group spells an index past 'z'.
var ErrInvalidGroup = errors.New("baconian: malformed cipher group")

// groupLen is the number of A/B characters per encoded letter.
const groupLen = 5

// Encrypt encodes every letter of message as its five-character A/B group.
// Input case is ignored; the output is uppercase groups with nothing in
// between.
func Encrypt(message string) (string, error) {
	out := make([]rune, 0, groupLen*len(message))
	for _, c := range message {
		idx, ok := alphabet.Position(c)
		if !ok {
			return "", fmt.Errorf("Encrypt: character %q: %w", c, ErrInvalidInput)
		}
		for bit := groupLen - 1; bit >= 0; bit-- {
			if idx&(1<<bit) != 0 {
				out = append(out, 'B')
			} else {
				out = append(out, 'A')
			}
		}
	}

	return string(out), nil
}

// Decrypt splits ciphertext into five-character A/B groups (either case)
// and decodes each back to a lowercase letter.
func Decrypt(ciphertext string) (string, error) {
	groups := []rune(ciphertext)
	if len(groups)%groupLen != 0 {
		return "", fmt.Errorf("Decrypt: length %d: %w", len(groups), ErrInvalidGroup)
	}

	out := make([]rune, 0, len(groups)/groupLen)
	for i := 0; i < len(groups); i += groupLen {
		idx := 0
		for _, c := range groups[i : i+groupLen] {
			idx <<= 1
			switch c {
			case 'B', 'b':
				idx |= 1
			case 'A', 'a':
			default:
				return "", fmt.Errorf("Decrypt: character %q: %w", c, ErrInvalidGroup)
			}
		}
		letter, ok := alphabet.Letter(idx, false)
		if !ok {
			return "", fmt.Errorf("Decrypt: group %q: %w", string(groups[i:i+groupLen]), ErrInvalidGroup)
		}
		out = append(out, letter)
	}

	return string(out), nil
}
