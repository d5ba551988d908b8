// Package polybius implements a keyed Polybius square over the 36-character
// alphanumeric alphabet (a-z, 0-9) arranged 6×6. Each alphanumeric
// character encrypts to a two-letter coordinate pair read from
// caller-supplied row and column labels; everything else passes through
// untouched.
//
// The square is scrambled with a keyword (keyed-alphabet style: the
// keyword's unique characters first, then the unused alphanumerics in
// order). Lowercase input produces lowercase coordinate pairs, uppercase
// letters and digits produce uppercase pairs, and decryption restores the
// case accordingly.
package polybius

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for a keyword with characters outside
// a-z/0-9, or for row/column labels that are not six distinct letters.
var ErrInvalidKey = errors.New("polybius: invalid key")

// ErrUnknownSequence is returned by Decrypt when a coordinate pair does not
// exist in the square, or when the ciphertext ends mid-pair.
var ErrUnknownSequence = errors.New("polybius: unknown sequence in ciphertext")

// side is the dimension of the square; side*side covers a-z plus 0-9.
const side = 6

// alphanumerics is the unkeyed square content in natural order.
const alphanumerics = "abcdefghijklmnopqrstuvwxyz0123456789"

// Polybius is a Polybius square cipher instance, immutable after
// construction.
type Polybius struct {
	coords map[rune][2]int  // character → (row, col), lowercase keys
	rows   [side]rune       // row labels, stored uppercase
	cols   [side]rune       // column labels, stored uppercase
	decode map[[2]rune]rune // uppercase label pair → square character
}

// New initialises a Polybius cipher from a keyword and six row and six
// column labels. The keyword may use a-z and 0-9 (repeats are dropped);
// labels must be distinct alphabetic characters within their own set.
func New(keyword string, rowLabels, colLabels [side]rune) (*Polybius, error) {
	keyed, err := keyedAlphanumeric(keyword)
	if err != nil {
		return nil, err
	}

	p := &Polybius{
		coords: make(map[rune][2]int, len(alphanumerics)),
		decode: make(map[[2]rune]rune, len(alphanumerics)),
	}
	if err = p.setLabels(rowLabels, colLabels); err != nil {
		return nil, err
	}

	for i, c := range keyed {
		row, col := i/side, i%side
		p.coords[c] = [2]int{row, col}
		p.decode[[2]rune{p.rows[row], p.cols[col]}] = c
	}

	return p, nil
}

// Encrypt replaces every alphanumeric character with its coordinate pair;
// other characters pass through as-is.
func (p *Polybius) Encrypt(message string) (string, error) {
	out := make([]rune, 0, 2*len(message))
	for _, c := range message {
		pos, ok := p.coords[lowerAlnum(c)]
		if !ok {
			out = append(out, c) // pass through symbols and whitespace

			continue
		}

		row, col := p.rows[pos[0]], p.cols[pos[1]]
		if isLower(c) {
			row, col = toLower(row), toLower(col)
		}
		out = append(out, row, col)
	}

	return string(out), nil
}

// Decrypt reads coordinate pairs back through the square. Alphanumeric
// characters are buffered two at a time; a pair not present in the square,
// or a dangling single character at the end, is ErrUnknownSequence.
func (p *Polybius) Decrypt(ciphertext string) (string, error) {
	out := make([]rune, 0, len(ciphertext))
	var buffer []rune

	for _, c := range ciphertext {
		if !isAlnum(c) {
			out = append(out, c)

			continue
		}
		buffer = append(buffer, c)
		if len(buffer) < 2 {
			continue
		}

		pair := [2]rune{toUpper(buffer[0]), toUpper(buffer[1])}
		val, ok := p.decode[pair]
		if !ok {
			return "", fmt.Errorf("Decrypt: pair %q%q: %w", buffer[0], buffer[1], ErrUnknownSequence)
		}
		if isUpperLetter(buffer[0]) {
			val = toUpper(val)
		}
		out = append(out, val)
		buffer = buffer[:0]
	}

	if len(buffer) != 0 {
		return "", fmt.Errorf("Decrypt: dangling %q: %w", buffer[0], ErrUnknownSequence)
	}

	return string(out), nil
}

// setLabels validates and stores the row/column label sets in uppercase.
func (p *Polybius) setLabels(rowLabels, colLabels [side]rune) error {
	for _, labels := range [][side]rune{rowLabels, colLabels} {
		seen := map[rune]bool{}
		for _, l := range labels {
			if _, ok := alphabet.Position(l); !ok {
				return fmt.Errorf("setLabels: label %q is not alphabetic: %w", l, ErrInvalidKey)
			}
			u := toUpper(l)
			if seen[u] {
				return fmt.Errorf("setLabels: duplicate label %q: %w", l, ErrInvalidKey)
			}
			seen[u] = true
		}
	}
	for i := 0; i < side; i++ {
		p.rows[i] = toUpper(rowLabels[i])
		p.cols[i] = toUpper(colLabels[i])
	}

	return nil
}

// keyedAlphanumeric scrambles the 36-character alphabet with a keyword:
// the keyword's unique characters first, then the rest in natural order.
func keyedAlphanumeric(keyword string) (string, error) {
	seen := map[rune]bool{}
	out := make([]rune, 0, len(alphanumerics))
	for _, c := range keyword {
		lc := lowerAlnum(c)
		if !isAlnum(lc) {
			return "", fmt.Errorf("keyedAlphanumeric: keyword contains %q: %w", c, ErrInvalidKey)
		}
		if seen[lc] {
			continue
		}
		seen[lc] = true
		out = append(out, lc)
	}
	for _, c := range alphanumerics {
		if !seen[c] {
			out = append(out, c)
		}
	}

	return string(out), nil
}

func isLower(c rune) bool       { return c >= 'a' && c <= 'z' }
func isUpperLetter(c rune) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c rune) bool       { return c >= '0' && c <= '9' }
func isAlnum(c rune) bool       { return isLower(c) || isUpperLetter(c) || isDigit(c) }

// lowerAlnum lowercases letters and leaves digits (and anything else)
// untouched.
func lowerAlnum(c rune) rune {
	if isUpperLetter(c) {
		return c + ('a' - 'A')
	}

	return c
}

func toLower(c rune) rune { return lowerAlnum(c) }

func toUpper(c rune) rune {
	if isLower(c) {
		return c - ('a' - 'A')
	}

	return c
}
