package hill_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlcrypt/hill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// admissibleKey is the reference 3×3 key: det = 489 ≡ 21 (mod 26),
// coprime with 26.
func admissibleKey() [][]int {
	return [][]int{
		{2, 4, 5},
		{9, 2, 1},
		{3, 17, 7},
	}
}

// TestNew_ValidKey verifies the reference key is accepted.
func TestNew_ValidKey(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)
	assert.Equal(t, 3, h.Dimension())
}

// TestNew_NonSquare verifies every non-square shape is rejected at
// construction.
func TestNew_NonSquare(t *testing.T) {
	_, err := hill.New([][]int{
		{2, 4},
		{9, 2},
		{3, 17},
	})
	assert.ErrorIs(t, err, hill.ErrInvalidKey)
}

// TestNew_TooSmall verifies 1×1 and empty keys are rejected.
func TestNew_TooSmall(t *testing.T) {
	_, err := hill.New([][]int{{5}})
	assert.ErrorIs(t, err, hill.ErrInvalidKey)

	_, err = hill.New(nil)
	assert.ErrorIs(t, err, hill.ErrInvalidKey)
}

// TestNew_SingularMatrix verifies a matrix without a real inverse is
// rejected (rows 1 and 2 are linearly dependent).
func TestNew_SingularMatrix(t *testing.T) {
	_, err := hill.New([][]int{
		{2, 2, 3},
		{6, 6, 9},
		{1, 4, 8},
	})
	assert.ErrorIs(t, err, hill.ErrInvalidKey)
}

// TestNew_DeterminantNotCoprime verifies a matrix whose determinant shares
// a factor with 26 is rejected even though it has a real inverse.
// det([[1,2],[3,4]]) = -2, and gcd(-2 mod 26, 26) = 2.
func TestNew_DeterminantNotCoprime(t *testing.T) {
	_, err := hill.New([][]int{
		{1, 2},
		{3, 4},
	})
	assert.ErrorIs(t, err, hill.ErrInvalidKey)
}

// TestNew_NegativeDeterminant verifies keys with a negative determinant
// are handled by canonical reduction. det([[0,1],[1,0]]) = -1 ≡ 25 (mod 26),
// which is invertible.
func TestNew_NegativeDeterminant(t *testing.T) {
	h, err := hill.New([][]int{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	// The key is a swap of adjacent letters; round-trip must hold.
	ct, err := h.Encrypt("Lost")
	require.NoError(t, err)
	assert.Equal(t, "Olts", ct, "permutation key swaps adjacent letters, case follows position")

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "Lost", pt)
}

// TestEncrypt_RoundTripNoPadding covers the aligned-message scenario:
// 12 letters against a 3×3 key round-trip exactly.
func TestEncrypt_RoundTripNoPadding(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	message := "ATTACKATDAWN"
	ct, err := h.Encrypt(message)
	require.NoError(t, err)
	assert.Len(t, ct, len(message), "aligned message must not grow")
	assert.NotEqual(t, message, ct)

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, message, pt)
}

// TestEncrypt_PaddingRetained covers the unaligned-message scenario:
// a 13-letter message is padded to 15 and decryption keeps the filler.
func TestEncrypt_PaddingRetained(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	message := "ATTACKATDAWNz"
	ct, err := h.Encrypt(message)
	require.NoError(t, err)
	assert.Len(t, ct, 15, "13 letters pad up to the next multiple of 3")

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWNzaa", pt, "filler letters are the caller's to trim")

	// The documented recovery recipe.
	pad := len(ct) - len(message)
	assert.Equal(t, message, pt[:len(pt)-pad])
}

// TestEncrypt_CasePreservation verifies the case of every output position
// matches the input, through both transforms.
func TestEncrypt_CasePreservation(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	message := "AtTaCkAtDaWn"
	ct, err := h.Encrypt(message)
	require.NoError(t, err)

	for i, c := range ct {
		wantUpper := message[i] >= 'A' && message[i] <= 'Z'
		gotUpper := c >= 'A' && c <= 'Z'
		assert.Equal(t, wantUpper, gotUpper, "case at position %d", i)
	}

	pt, err := h.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, message, pt)
}

// TestEncrypt_Deterministic verifies same key + message always yields the
// same ciphertext.
func TestEncrypt_Deterministic(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	first, err := h.Encrypt("DEFENDTHEEAST")
	require.NoError(t, err)
	second, err := h.Encrypt("DEFENDTHEEAST")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTransform_RejectsNonAlphabetic verifies whitespace, digits and
// symbols fail both transforms with ErrInvalidInput and no output.
func TestTransform_RejectsNonAlphabetic(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	for _, bad := range []string{"attack at dawn", "attack1", "attack!", "atta\tck"} {
		ct, encErr := h.Encrypt(bad)
		assert.ErrorIs(t, encErr, hill.ErrInvalidInput, "encrypt %q", bad)
		assert.Empty(t, ct)

		pt, decErr := h.Decrypt(bad)
		assert.ErrorIs(t, decErr, hill.ErrInvalidInput, "decrypt %q", bad)
		assert.Empty(t, pt)
	}
}

// TestNewFromPhrase_Scenario covers the phrase-key scenarios: "CEFJCBDRH"
// encodes the reference key; "killer" cannot fill a 2×2 matrix.
func TestNewFromPhrase_Scenario(t *testing.T) {
	h, err := hill.NewFromPhrase("CEFJCBDRH", 3)
	require.NoError(t, err)

	// The phrase spells out the reference key, so ciphertexts agree.
	direct, err := hill.New(admissibleKey())
	require.NoError(t, err)

	want, err := direct.Encrypt("ATTACKATDAWN")
	require.NoError(t, err)
	got, err := h.Encrypt("ATTACKATDAWN")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = hill.NewFromPhrase("killer", 2)
	assert.ErrorIs(t, err, hill.ErrInvalidInput, "2*2 != 6")
}

// TestNewFromPhrase_Validation covers chunk size, symbol and bad-key
// rejections.
func TestNewFromPhrase_Validation(t *testing.T) {
	_, err := hill.NewFromPhrase("abcd", 1)
	assert.ErrorIs(t, err, hill.ErrInvalidInput, "chunk size below 2")

	_, err = hill.NewFromPhrase("ab c", 2)
	assert.ErrorIs(t, err, hill.ErrInvalidInput, "phrase with whitespace")

	// "aaaa" builds the all-zero 2×2 matrix: a structurally fine phrase
	// that still fails key validation.
	_, err = hill.NewFromPhrase("aaaa", 2)
	assert.ErrorIs(t, err, hill.ErrInvalidKey)
}

// TestRoundTrip_ManyShapes sweeps aligned and unaligned lengths and both
// cases to exercise the chunk pipeline.
func TestRoundTrip_ManyShapes(t *testing.T) {
	h, err := hill.New(admissibleKey())
	require.NoError(t, err)

	for _, message := range []string{
		"ab",
		"abc",
		"abcd",
		"AttackAtDawn",
		"defendTHEeastWALLofTHEcastle",
		strings.Repeat("xyz", 40),
	} {
		ct, encErr := h.Encrypt(message)
		require.NoError(t, encErr, "encrypt %q", message)

		pad := (3 - len(message)%3) % 3
		assert.Len(t, ct, len(message)+pad, "ciphertext of %q", message)

		pt, decErr := h.Decrypt(ct)
		require.NoError(t, decErr, "decrypt of %q", message)
		assert.Equal(t, message, pt[:len(message)], "round-trip of %q", message)
	}
}
