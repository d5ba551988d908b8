package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/lvlcrypt/alphabet"
	"github.com/stretchr/testify/assert"
)

// TestPosition_BothCases verifies lookups match either case and share the
// same index space.
func TestPosition_BothCases(t *testing.T) {
	pos, ok := alphabet.Position('a')
	assert.True(t, ok)
	assert.Equal(t, 0, pos, "'a' is position 0")

	pos, ok = alphabet.Position('A')
	assert.True(t, ok)
	assert.Equal(t, 0, pos, "'A' shares position 0")

	pos, ok = alphabet.Position('z')
	assert.True(t, ok)
	assert.Equal(t, 25, pos, "'z' is position 25")
}

// TestPosition_RejectsNonAlphabetic verifies digits, symbols and whitespace
// have no alphabet position.
func TestPosition_RejectsNonAlphabetic(t *testing.T) {
	for _, c := range []rune{'0', '9', ' ', '!', '-', 'é', '🗡'} {
		_, ok := alphabet.Position(c)
		assert.False(t, ok, "%q must have no position", c)
	}
}

// TestLetter_CaseSelection verifies index-to-letter mapping in both cases
// and the out-of-range guard.
func TestLetter_CaseSelection(t *testing.T) {
	letter, ok := alphabet.Letter(0, false)
	assert.True(t, ok)
	assert.Equal(t, 'a', letter)

	letter, ok = alphabet.Letter(25, true)
	assert.True(t, ok)
	assert.Equal(t, 'Z', letter)

	_, ok = alphabet.Letter(26, false)
	assert.False(t, ok, "index 26 is out of bounds")

	_, ok = alphabet.Letter(-1, true)
	assert.False(t, ok, "negative index is out of bounds")
}

// TestModulo_Canonical verifies the reduction is non-negative for negative
// operands, the property the Hill determinant math depends on.
func TestModulo_Canonical(t *testing.T) {
	assert.Equal(t, 0, alphabet.Modulo(0))
	assert.Equal(t, 25, alphabet.Modulo(51))
	assert.Equal(t, 25, alphabet.Modulo(-1))
	assert.Equal(t, 0, alphabet.Modulo(-26))
	assert.Equal(t, 3, alphabet.Modulo(-49))
}

// TestMultiplicativeInverse covers both invertible and non-invertible
// residues mod 26.
func TestMultiplicativeInverse(t *testing.T) {
	inv, ok := alphabet.MultiplicativeInverse(3)
	assert.True(t, ok)
	assert.Equal(t, 9, inv, "3*9 == 27 == 1 mod 26")

	inv, ok = alphabet.MultiplicativeInverse(25)
	assert.True(t, ok)
	assert.Equal(t, 25, inv, "25 is its own inverse mod 26")

	_, ok = alphabet.MultiplicativeInverse(2)
	assert.False(t, ok, "2 shares a factor with 26")

	_, ok = alphabet.MultiplicativeInverse(13)
	assert.False(t, ok, "13 shares a factor with 26")
}

// TestScrubAndIsAlphabetic verifies filtering keeps order and case.
func TestScrubAndIsAlphabetic(t *testing.T) {
	assert.Equal(t, "AttackatDawn", alphabet.Scrub("Attack at Dawn!"))
	assert.Equal(t, "", alphabet.Scrub("123 !?"))

	assert.True(t, alphabet.IsAlphabetic("AttackAtDawn"))
	assert.False(t, alphabet.IsAlphabetic("attack at dawn"))
	assert.True(t, alphabet.IsAlphabetic(""), "empty input is vacuously alphabetic")
}

// TestKeyedAlphabet mirrors the reference vectors for scrambled alphabets.
func TestKeyedAlphabet(t *testing.T) {
	got, err := alphabet.KeyedAlphabet("test", false)
	assert.NoError(t, err)
	assert.Equal(t, "tesabcdfghijklmnopqruvwxyz", got)

	got, err = alphabet.KeyedAlphabet("ALphaBEt", false)
	assert.NoError(t, err)
	assert.Equal(t, "alphbetcdfgijkmnoqrsuvwxyz", got)

	got, err = alphabet.KeyedAlphabet("OranGE", true)
	assert.NoError(t, err)
	assert.Equal(t, "ORANGEBCDFHIJKLMPQSTUVWXYZ", got)

	got, err = alphabet.KeyedAlphabet("", false)
	assert.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", got, "empty key yields the plain alphabet")

	got, err = alphabet.KeyedAlphabet("nnhhyqzabguuxwdrvvctspefmjoklii", true)
	assert.NoError(t, err)
	assert.Equal(t, "NHYQZABGUXWDRVCTSPEFMJOKLI", got)
}

// TestKeyedAlphabet_BadKey verifies non-alphabetic keys are rejected with
// the package sentinel.
func TestKeyedAlphabet_BadKey(t *testing.T) {
	_, err := alphabet.KeyedAlphabet("bad key", false)
	assert.ErrorIs(t, err, alphabet.ErrNonAlphabetic)
}

// TestSubstituteShift verifies case preservation and symbol pass-through.
func TestSubstituteShift(t *testing.T) {
	// Caesar-style shift by 2.
	got, err := alphabet.SubstituteShift("Attack at dawn!", func(pos int) int {
		return alphabet.Modulo(pos + 2)
	})
	assert.NoError(t, err)
	assert.Equal(t, "Cvvcem cv fcyp!", got)

	// Identity mapping leaves everything alone.
	got, err = alphabet.SubstituteShift("Hello, World!", func(pos int) int { return pos })
	assert.NoError(t, err)
	assert.Equal(t, "Hello, World!", got)
}

// TestSubstituteShift_RangeGuard verifies a calc producing an index outside
// the alphabet surfaces as an error instead of leaving the character
// unsubstituted.
func TestSubstituteShift_RangeGuard(t *testing.T) {
	_, err := alphabet.SubstituteShift("abc", func(pos int) int { return pos + alphabet.Size })
	assert.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)

	_, err = alphabet.SubstituteShift("abc", func(int) int { return -1 })
	assert.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)

	// Symbols never reach calc, so a symbol-only text cannot trip the guard.
	got, err := alphabet.SubstituteShift("?!", func(int) int { return 99 })
	assert.NoError(t, err)
	assert.Equal(t, "?!", got)
}

// TestSubstituteKeyed verifies keystream consumption skips symbols and the
// exhaustion sentinel fires.
func TestSubstituteKeyed(t *testing.T) {
	add := func(textPos, keyPos int) int { return alphabet.Modulo(textPos + keyPos) }

	got, err := alphabet.SubstituteKeyed("ab cd", []rune("bbbb"), add)
	assert.NoError(t, err)
	assert.Equal(t, "bc de", got, "space must not consume keystream")

	_, err = alphabet.SubstituteKeyed("abcd", []rune("bb"), add)
	assert.ErrorIs(t, err, alphabet.ErrKeystreamExhausted)

	_, err = alphabet.SubstituteKeyed("ab", []rune("b!"), add)
	assert.ErrorIs(t, err, alphabet.ErrNonAlphabetic)

	_, err = alphabet.SubstituteKeyed("ab", []rune("bb"), func(textPos, keyPos int) int {
		return textPos + keyPos + alphabet.Size
	})
	assert.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)
}
