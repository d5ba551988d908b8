package alphabet

import "fmt"

// SubstituteShift performs a monoalphabetic substitution over text: every
// alphabetic character's position is fed through calc and replaced with the
// letter at the resulting index, keeping the original character's case.
// Non-alphabetic characters pass through untouched.
//
// calc must return an index in [0, Size); an out-of-range result is
// ErrIndexOutOfRange, never a silently unsubstituted character.
// Complexity: O(len(text)).
func SubstituteShift(text string, calc func(position int) int) (string, error) {
	out := make([]rune, 0, len(text))
	for _, c := range text {
		pos, ok := Position(c)
		if !ok {
			out = append(out, c) // pass through symbols and whitespace

			continue
		}
		idx := calc(pos)
		letter, ok := Letter(idx, IsUpper(c))
		if !ok {
			return "", fmt.Errorf("SubstituteShift: calc(%d) = %d: %w", pos, idx, ErrIndexOutOfRange)
		}
		out = append(out, letter)
	}

	return string(out), nil
}

// SubstituteKeyed performs a polyalphabetic substitution over text: each
// alphabetic character consumes the next keystream character, and calc maps
// the (message position, key position) pair to the substituted index.
// Non-alphabetic characters pass through without consuming keystream.
//
// Returns ErrKeystreamExhausted if the keystream runs out before the last
// alphabetic character, ErrNonAlphabetic if the keystream itself holds a
// character without an alphabet position, and ErrIndexOutOfRange if calc
// produces an index outside [0, Size).
// Complexity: O(len(text)).
func SubstituteKeyed(text string, keystream []rune, calc func(textPos, keyPos int) int) (string, error) {
	out := make([]rune, 0, len(text))
	next := 0 // index of the next unconsumed keystream character

	for _, c := range text {
		pos, ok := Position(c)
		if !ok {
			out = append(out, c) // pass through symbols and whitespace

			continue
		}

		if next >= len(keystream) {
			return "", fmt.Errorf("SubstituteKeyed: %w", ErrKeystreamExhausted)
		}
		keyPos, ok := Position(keystream[next])
		if !ok {
			return "", fmt.Errorf("SubstituteKeyed: keystream[%d]: %w", next, ErrNonAlphabetic)
		}
		next++

		idx := calc(pos, keyPos)
		letter, ok := Letter(idx, IsUpper(c))
		if !ok {
			return "", fmt.Errorf("SubstituteKeyed: calc(%d, %d) = %d: %w", pos, keyPos, idx, ErrIndexOutOfRange)
		}
		out = append(out, letter)
	}

	return string(out), nil
}
