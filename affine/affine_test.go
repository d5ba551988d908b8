package affine_test

import (
	"testing"

	"github.com/katalvlaran/lvlcrypt/affine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncryptDecrypt_Reference checks the (3,7) vector.
func TestEncryptDecrypt_Reference(t *testing.T) {
	a, err := affine.New(3, 7)
	require.NoError(t, err)

	ct, err := a.Encrypt("Attack at dawn!")
	require.NoError(t, err)
	assert.Equal(t, "Hmmhnl hm qhvu!", ct)

	pt, err := a.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn!", pt)
}

// TestRoundTrip_AllValidKeys exhausts every admissible (a, b) pair.
func TestRoundTrip_AllValidKeys(t *testing.T) {
	message := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for a := 1; a <= 26; a++ {
		if gcd(a, 26) != 1 {
			continue
		}
		for b := 1; b <= 26; b++ {
			c, err := affine.New(a, b)
			require.NoError(t, err, "key (%d,%d)", a, b)

			ct, err := c.Encrypt(message)
			require.NoError(t, err)
			pt, err := c.Decrypt(ct)
			require.NoError(t, err)
			assert.Equal(t, message, pt, "key (%d,%d)", a, b)
		}
	}
}

// TestNew_Validation covers range and coprimality rejections.
func TestNew_Validation(t *testing.T) {
	_, err := affine.New(0, 10)
	assert.ErrorIs(t, err, affine.ErrInvalidKey, "a below range")

	_, err = affine.New(30, 51)
	assert.ErrorIs(t, err, affine.ErrInvalidKey, "keys above range")

	_, err = affine.New(2, 15)
	assert.ErrorIs(t, err, affine.ErrInvalidKey, "a shares a factor with 26")

	_, err = affine.New(15, 2)
	assert.NoError(t, err, "only a must be coprime, b may share factors")
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
