// Package playfair implements the Playfair cipher, the first bigram
// substitution cipher. Invented in 1854 by Charles Wheatstone, its name
// honors "Lord" Lyon Playfair for promoting its use.
//
// The cipher operates on a 5×5 key table: the key, repeats dropped, fills
// the table left to right, followed by the rest of the alphabet. A 25-cell
// table cannot hold 26 letters, so 'J' shares a cell with 'I'; both the key
// and every message have their J characters replaced with I.
//
// Messages are split into letter pairs before substitution, inserting an
// 'X' between doubled letters and after a trailing odd letter. Whitespace
// is stripped and the output is fully uppercase, so a round trip returns
// the uppercased, unspaced message with any inserted X characters still in
// place.
package playfair

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for a key containing characters other
// than letters and whitespace.
var ErrInvalidKey = errors.New("playfair: key must consist of letters and whitespace")

// ErrInvalidInput is returned by Encrypt and Decrypt for a message
// containing characters other than letters and whitespace.
var ErrInvalidInput = errors.New("playfair: message must consist of letters and whitespace")

// tableAlphabet is the 25-letter table content in natural order, J merged
// into I.
const tableAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// fixLetter is inserted between doubled letters and after a trailing odd
// letter when pairing the message.
const fixLetter = 'X'

const tableSide = 5

// bigram is one letter pair of the prepared message.
type bigram [2]rune

// cell addresses one table position.
type cell struct{ row, col int }

// Playfair is a Playfair cipher instance, immutable after construction.
type Playfair struct {
	grid  [tableSide][tableSide]rune
	cells map[rune]cell
}

// New initialises a Playfair cipher. The key may contain letters and
// whitespace (whitespace is dropped); 'J' is treated as 'I'. An empty key
// yields the unscrambled table.
func New(key string) (*Playfair, error) {
	letters, err := prepare(key)
	if err != nil {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	// Key letters first, repeats dropped, then the rest of the alphabet.
	seen := map[rune]bool{}
	ordered := make([]rune, 0, len(tableAlphabet))
	for _, c := range append(letters, []rune(tableAlphabet)...) {
		if seen[c] {
			continue
		}
		seen[c] = true
		ordered = append(ordered, c)
	}

	p := &Playfair{cells: make(map[rune]cell, len(ordered))}
	for i, c := range ordered {
		pos := cell{row: i / tableSide, col: i % tableSide}
		p.grid[pos.row][pos.col] = c
		p.cells[c] = pos
	}

	return p, nil
}

// Encrypt substitutes each letter pair of the message through the key
// table. The message may contain letters and whitespace; the ciphertext is
// uppercase with no whitespace and its length is even (pairing may insert
// fix letters, see the package documentation).
func (p *Playfair) Encrypt(message string) (string, error) {
	return p.apply(message, 1)
}

// Decrypt reverses the pair substitution. The plaintext is uppercase with
// no whitespace and still contains any fix letters Encrypt's pairing
// inserted.
func (p *Playfair) Decrypt(ciphertext string) (string, error) {
	return p.apply(ciphertext, tableSide-1)
}

// apply runs the shared pipeline. The two transforms differ only in the
// direction letters move along a shared row or column: one step forward to
// encrypt, one step back (as +4 mod 5) to decrypt.
func (p *Playfair) apply(message string, shift int) (string, error) {
	letters, err := prepare(message)
	if err != nil {
		return "", fmt.Errorf("apply: %w", err)
	}

	out := make([]rune, 0, len(letters)+1)
	for _, b := range pairs(letters) {
		first, second := p.cells[b[0]], p.cells[b[1]]

		var sub bigram
		switch {
		case first.row == second.row:
			sub[0] = p.grid[first.row][(first.col+shift)%tableSide]
			sub[1] = p.grid[second.row][(second.col+shift)%tableSide]
		case first.col == second.col:
			sub[0] = p.grid[(first.row+shift)%tableSide][first.col]
			sub[1] = p.grid[(second.row+shift)%tableSide][second.col]
		default:
			// Rectangle rule: same rows, columns exchanged.
			sub[0] = p.grid[first.row][second.col]
			sub[1] = p.grid[second.row][first.col]
		}
		out = append(out, sub[0], sub[1])
	}

	return string(out), nil
}

// pairs splits the prepared letters into bigrams: a doubled letter gets a
// fix letter as its partner (the second copy starts the next pair), and a
// trailing odd letter is completed with the fix letter.
func pairs(letters []rune) []bigram {
	out := make([]bigram, 0, len(letters)/2+1)
	for i := 0; i < len(letters); {
		first := letters[i]
		i++

		if i < len(letters) && letters[i] != first {
			out = append(out, bigram{first, letters[i]})
			i++

			continue
		}
		out = append(out, bigram{first, fixLetter})
	}

	return out
}

// prepare strips whitespace, rejects anything that is not a letter,
// uppercases and merges J into I.
func prepare(text string) ([]rune, error) {
	out := make([]rune, 0, len(text))
	for _, c := range strings.Join(strings.Fields(text), "") {
		pos, ok := alphabet.Position(c)
		if !ok {
			return nil, fmt.Errorf("character %q: %w", c, ErrInvalidInput)
		}
		letter, _ := alphabet.Letter(pos, true) // pos came from Position
		if letter == 'J' {
			letter = 'I'
		}
		out = append(out, letter)
	}

	return out, nil
}
