package polybius_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcrypt/polybius"
)

var (
	labels = [6]rune{'A', 'B', 'C', 'D', 'E', 'F'}
	square = "or0ange1bcdf2hijk3lmp4qs5tu6vw7x8y9z"
)

func TestNew_ValidKey(t *testing.T) {
	_, err := polybius.New("orange", labels, labels)
	assert.NoError(t, err)
}

func TestNew_InvalidKeyword(t *testing.T) {
	_, err := polybius.New("p@nic", labels, labels)
	assert.ErrorIs(t, err, polybius.ErrInvalidKey)
}

func TestNew_DuplicateLabel(t *testing.T) {
	_, err := polybius.New("orange", [6]rune{'A', 'B', 'C', 'D', 'E', 'A'}, labels)
	assert.ErrorIs(t, err, polybius.ErrInvalidKey)
}

func TestNew_NonAlphabeticLabel(t *testing.T) {
	_, err := polybius.New("orange", [6]rune{'A', 'B', 'C', 'D', 'E', '1'}, labels)
	assert.ErrorIs(t, err, polybius.ErrInvalidKey)
}

func TestEncrypt_MixedContent(t *testing.T) {
	p, err := polybius.New(square, labels, labels)
	require.NoError(t, err)

	ct, err := p.Encrypt("10 Oranges and 2 Apples!")
	require.NoError(t, err)
	assert.Equal(t, "BBAC AAabadaeafbadf adaebe CA ADdcdcdabadf!", ct)
}

func TestDecrypt_MixedContent(t *testing.T) {
	p, err := polybius.New(square, labels, labels)
	require.NoError(t, err)

	pt, err := p.Decrypt("BBAC AAabadaeafbadf adaebe CA ADdcdcdabadf!")
	require.NoError(t, err)
	assert.Equal(t, "10 Oranges and 2 Apples!", pt)
}

func TestDecrypt_UnknownPair(t *testing.T) {
	p, err := polybius.New("orange", labels, labels)
	require.NoError(t, err)

	// 'Z' is not a row label, so the pair cannot resolve.
	_, err = p.Decrypt("ZA")
	assert.ErrorIs(t, err, polybius.ErrUnknownSequence)
}

func TestDecrypt_DanglingCharacter(t *testing.T) {
	p, err := polybius.New("orange", labels, labels)
	require.NoError(t, err)

	_, err = p.Decrypt("AB A")
	assert.ErrorIs(t, err, polybius.ErrUnknownSequence)
}

func TestRoundTrip_KeywordSquare(t *testing.T) {
	p, err := polybius.New("cipher", [6]rune{'Q', 'W', 'E', 'R', 'T', 'Y'}, [6]rune{'U', 'I', 'O', 'P', 'G', 'H'})
	require.NoError(t, err)

	message := "Meet me at 9 o'clock, Gate 42!"
	ct, err := p.Encrypt(message)
	require.NoError(t, err)

	pt, err := p.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, message, pt)
}

func TestEncrypt_DigitsUseUppercasePairs(t *testing.T) {
	p, err := polybius.New(square, labels, labels)
	require.NoError(t, err)

	ct, err := p.Encrypt("0")
	require.NoError(t, err)
	assert.Equal(t, "AC", ct)
}
