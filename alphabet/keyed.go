package alphabet

import "fmt"

// KeyedAlphabet builds a scrambled 26-letter alphabet from a keyword:
// the key's letters first (repeats dropped, case-insensitively), then the
// unused letters in natural order. A key of "alphabet" therefore yields
// "alphbetcdfgijkmnoqrsuvwxyz".
//
// Stage 1 (Validate): every key character must be alphabetic.
// Stage 2 (Seed): append each unseen key letter in the requested case.
// Stage 3 (Fill): append the remaining letters of the alphabet in order.
//
// Returns ErrNonAlphabetic (wrapped) if the key contains any other symbol.
// Complexity: O(len(key) + Size).
func KeyedAlphabet(key string, uppercase bool) (string, error) {
	var seen [Size]bool
	out := make([]rune, 0, Size)

	// Seed with the key's unique letters.
	for _, c := range key {
		pos, ok := Position(c)
		if !ok {
			return "", fmt.Errorf("KeyedAlphabet: key %q: %w", key, ErrNonAlphabetic)
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		letter, _ := Letter(pos, uppercase) // pos came from Position, always valid
		out = append(out, letter)
	}

	// Fill with the rest of the alphabet.
	for pos := 0; pos < Size; pos++ {
		if seen[pos] {
			continue
		}
		letter, _ := Letter(pos, uppercase)
		out = append(out, letter)
	}

	return string(out), nil
}
