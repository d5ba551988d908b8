// Package railfence implements the Railfence cipher, a transposition that
// writes the message in a zig-zag across a number of rails and reads the
// rails off line by line. Its keyspace is the rail count, so it is
// trivially brute-forced.
//
// All characters are transposed, whitespace and punctuation included —
// transposition never substitutes, it only reorders.
package railfence

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned by New when the rail count is zero.
var ErrInvalidKey = errors.New("railfence: rail count cannot be zero")

// Railfence is a Railfence cipher instance, immutable after construction.
type Railfence struct {
	rails int
}

// New initialises a Railfence cipher with at least one rail.
func New(rails int) (*Railfence, error) {
	if rails < 1 {
		return nil, fmt.Errorf("New(%d): %w", rails, ErrInvalidKey)
	}

	return &Railfence{rails: rails}, nil
}

// Encrypt writes the message in a zig-zag over the rails and reads the
// rails top to bottom:
//
//	H...o...o...!
//	.e.l.,.W.r.d.
//	..l... ...l..   →  "Hoo!el,Wrdl l"
//
// A single rail leaves the message unchanged.
func (r *Railfence) Encrypt(message string) (string, error) {
	if r.rails == 1 {
		return message, nil
	}

	chars := []rune(message)
	rows := make([][]rune, r.rails)
	for col, c := range chars {
		row := rowFor(col, r.rails)
		rows[row] = append(rows[row], c)
	}

	out := make([]rune, 0, len(chars))
	for _, row := range rows {
		out = append(out, row...)
	}

	return string(out), nil
}

// Decrypt rebuilds the zig-zag: it marks which (rail, column) cells the
// zig-zag visits, fills the marked cells with the ciphertext rail by rail,
// then reads the columns back in zig-zag order.
func (r *Railfence) Decrypt(ciphertext string) (string, error) {
	if r.rails == 1 {
		return ciphertext, nil
	}

	chars := []rune(ciphertext)
	n := len(chars)

	// Count how many cells each rail owns.
	counts := make([]int, r.rails)
	for col := 0; col < n; col++ {
		counts[rowFor(col, r.rails)]++
	}

	// Slice the ciphertext into rails.
	rails := make([][]rune, r.rails)
	offset := 0
	for row, count := range counts {
		rails[row] = chars[offset : offset+count]
		offset += count
	}

	// Walk the zig-zag again, consuming each rail in order.
	next := make([]int, r.rails)
	out := make([]rune, 0, n)
	for col := 0; col < n; col++ {
		row := rowFor(col, r.rails)
		out = append(out, rails[row][next[row]])
		next[row]++
	}

	return string(out), nil
}

// rowFor returns the rail the zig-zag occupies at the given column. The
// pattern repeats with period 2*rails - 2 (down the rails, then back up):
// for 4 rails the rows go 0,1,2,3,2,1, 0,1,2,3,2,1, ...
func rowFor(col, rails int) int {
	cycle := 2*rails - 2
	pos := col % cycle
	if pos <= cycle/2 {
		return pos
	}

	return cycle - pos
}
