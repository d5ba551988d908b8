// Package scytale implements the Scytale cipher, one of the oldest
// transposition tools: the ancient Greeks wound a parchment ribbon around a
// cylinder and wrote lengthwise, so the unwound ribbon could only be read
// on a cylinder of the same circumference. The key is the number of letters
// per turn — the cylinder height.
//
// Note on whitespace: the grid is padded with spaces, and decryption trims
// trailing spaces, so whitespace at the very end of a message does not
// survive a round trip.
package scytale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned by New when the cylinder height is zero.
var ErrInvalidKey = errors.New("scytale: height cannot be zero")

// Scytale is a Scytale cipher instance, immutable after construction.
type Scytale struct {
	height int
}

// New initialises a Scytale cipher with a cylinder height of at least one.
func New(height int) (*Scytale, error) {
	if height < 1 {
		return nil, fmt.Errorf("New(%d): %w", height, ErrInvalidKey)
	}

	return &Scytale{height: height}, nil
}

// Encrypt writes the message down the cylinder (row-wise into a grid of
// `height` columns) and reads it along the ribbon (column-wise). A height
// of one, or a height at least the message length, leaves the message
// unchanged.
func (s *Scytale) Encrypt(message string) (string, error) {
	chars := []rune(message)
	if s.height == 1 || s.height >= len(chars) {
		return message, nil
	}

	width := (len(chars) + s.height - 1) / s.height
	grid := blankGrid(s.height, width)
	for pos, c := range chars {
		grid[pos%s.height][pos/s.height] = c
	}

	out := make([]rune, 0, s.height*width)
	for col := 0; col < s.height; col++ {
		out = append(out, grid[col]...)
	}

	return string(out), nil
}

// Decrypt reverses the winding: the ciphertext fills the grid column-wise
// and the plaintext reads back row-wise. Trailing pad spaces are trimmed.
func (s *Scytale) Decrypt(ciphertext string) (string, error) {
	chars := []rune(ciphertext)
	if s.height == 1 || s.height >= len(chars) {
		return ciphertext, nil
	}

	width := (len(chars) + s.height - 1) / s.height
	grid := blankGrid(s.height, width)
	for pos, c := range chars {
		grid[pos/width][pos%width] = c
	}

	out := make([]rune, 0, s.height*width)
	for row := 0; row < width; row++ {
		for col := 0; col < s.height; col++ {
			out = append(out, grid[col][row])
		}
	}

	return strings.TrimRight(string(out), " "), nil
}

// blankGrid allocates a rows×cols rune grid pre-filled with the space pad.
func blankGrid(rows, cols int) [][]rune {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	return grid
}
