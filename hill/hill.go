package hill

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlcrypt/alphabet"
	"github.com/katalvlaran/lvlcrypt/matrix"
)

// filler is the letter appended to align a message to the chunk size.
// Decrypt has no way to tell it from genuine trailing letters, so it stays
// in the decrypted output (see the package documentation).
const filler = 'a'

// minDimension is the smallest meaningful key size; a 1×1 "matrix" would
// degenerate the cipher into a multiplicative shift.
const minDimension = 2

// Hill is a Hill cipher instance. It is immutable after construction: the
// validated key and its cached modular inverse are owned exclusively by the
// instance, so a single value may be shared across goroutines.
//
// Construct with New or NewFromPhrase.
type Hill struct {
	key     *matrix.Dense // validated n×n key, integer-valued entries
	inverse *matrix.Dense // modular inverse key, entries in [0, 26)
	n       int           // chunk size == key dimension
}

// New initialises a Hill cipher from an n×n integer key matrix.
//
// Stage 1 (Validate): the key must be square with n ≥ 2, must have a real
// inverse, and its determinant reduced mod 26 must be coprime with 26 —
// otherwise no modular inverse of the determinant exists and the matrix
// cannot be inverted for decryption. Each failure returns ErrInvalidKey.
// Stage 2 (Derive): the modular inverse key is computed once (see
// inverseKey) and cached, making Decrypt as cheap as Encrypt.
//
// Complexity: O(n^3) for the determinant and inverse; n is tiny in practice.
func New(key [][]int) (*Hill, error) {
	n := len(key)
	if n < minDimension {
		return nil, fmt.Errorf("New: key must be at least %d×%d: %w", minDimension, minDimension, ErrInvalidKey)
	}
	rows := make([][]float64, n)
	for i, row := range key {
		if len(row) != n {
			return nil, fmt.Errorf("New: key must be a square matrix: %w", ErrInvalidKey)
		}
		rows[i] = make([]float64, n)
		for j, v := range row {
			rows[i][j] = float64(v)
		}
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("New: %w", ErrInvalidKey)
	}

	det, err := matrix.Det(m)
	if err != nil || det == 0 {
		return nil, fmt.Errorf("New: key has no real inverse: %w", ErrInvalidKey)
	}

	detMod := alphabet.Modulo(int(math.Round(det)))
	if gcd(detMod, alphabet.Size) != 1 {
		return nil, fmt.Errorf("New: determinant %d is not invertible mod %d: %w",
			detMod, alphabet.Size, ErrInvalidKey)
	}

	inverse, err := inverseKey(m, det)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Hill{key: m, inverse: inverse, n: n}, nil
}

// NewFromPhrase builds the key matrix from the alphabet positions of an
// alphabetic phrase, row-major, as a convenience over supplying raw
// integers: NewFromPhrase("CEFJCBDRH", 3) is New([][]int{{2,4,5},{9,2,1},{3,17,7}}).
//
// The chunk size must be at least 2 and the phrase must contain exactly
// size*size alphabetic characters; violations return ErrInvalidInput. The
// resulting matrix still passes through full key validation, so an unlucky
// phrase can be rejected with ErrInvalidKey.
func NewFromPhrase(phrase string, size int) (*Hill, error) {
	if size < minDimension {
		return nil, fmt.Errorf("NewFromPhrase: chunk size %d is below %d: %w", size, minDimension, ErrInvalidInput)
	}
	chars := []rune(phrase)
	if size*size != len(chars) {
		return nil, fmt.Errorf("NewFromPhrase: phrase length %d does not fill a %d×%d matrix: %w",
			len(chars), size, size, ErrInvalidInput)
	}

	key := make([][]int, size)
	for i := 0; i < size; i++ {
		key[i] = make([]int, size)
		for j := 0; j < size; j++ {
			pos, ok := alphabet.Position(chars[i*size+j])
			if !ok {
				return nil, fmt.Errorf("NewFromPhrase: phrase contains %q: %w", chars[i*size+j], ErrInvalidInput)
			}
			key[i][j] = pos
		}
	}

	return New(key)
}

// Encrypt transforms a message with the key matrix.
//
// The message may contain alphabetic characters only; anything else returns
// ErrInvalidInput before any output is produced. The ciphertext length is
// len(message) rounded up to the next multiple of the key dimension (the
// difference is the filler pad count), and the case of each output letter
// matches the case of the input letter at the same position.
func (h *Hill) Encrypt(message string) (string, error) {
	return h.transform(h.key, message)
}

// Decrypt reverses Encrypt using the cached modular inverse key.
//
// Ciphertexts produced by Encrypt are always aligned to the key dimension;
// if padding was introduced at encryption time the filler letters come back
// as part of the plaintext — trimming them is the caller's concern, because
// the engine cannot distinguish filler from genuine trailing letters.
func (h *Hill) Decrypt(ciphertext string) (string, error) {
	return h.transform(h.inverse, ciphertext)
}

// Dimension returns the key dimension n, which is also the chunk size and
// the alignment of every ciphertext length.
func (h *Hill) Dimension() int { return h.n }

// transform runs the shared chunk pipeline with the given matrix: validate
// the text, pad to a chunk multiple, transform chunk by chunk, reassemble.
func (h *Hill) transform(key *matrix.Dense, text string) (string, error) {
	// Only allow characters with an alphabet position — whitespace and
	// symbols cannot survive the matrix transform.
	for _, c := range text {
		if _, ok := alphabet.Position(c); !ok {
			return "", fmt.Errorf("transform: message contains %q: %w", c, ErrInvalidInput)
		}
	}

	buffer := []rune(text)
	if rem := len(buffer) % h.n; rem != 0 {
		for i := rem; i < h.n; i++ {
			buffer = append(buffer, filler)
		}
	}

	out := make([]rune, 0, len(buffer))
	for i := 0; i < len(buffer); i += h.n {
		chunk, err := h.transformChunk(key, buffer[i:i+h.n])
		if err != nil {
			return "", err
		}
		out = append(out, chunk...)
	}

	return string(out), nil
}

// transformChunk maps one chunk of n letters to its transformed n letters:
// alphabet positions → key * vector → mod-26 reduction (rounding first,
// since the arithmetic runs in floats) → letters, copying the case of the
// source character at each index.
func (h *Hill) transformChunk(key *matrix.Dense, chunk []rune) ([]rune, error) {
	if key.Rows() != len(chunk) {
		return nil, fmt.Errorf("transformChunk: %d letters against a %d×%d key: %w",
			len(chunk), key.Rows(), key.Cols(), ErrDimensionMismatch)
	}

	vec := make([]float64, len(chunk))
	for i, c := range chunk {
		pos, ok := alphabet.Position(c)
		if !ok {
			// transform already vetted the text; a miss here is a bug.
			return nil, fmt.Errorf("transformChunk: %q: %w", c, ErrInvalidInput)
		}
		vec[i] = float64(pos)
	}

	product, err := matrix.MatVec(key, vec)
	if err != nil {
		return nil, fmt.Errorf("transformChunk: %w", err)
	}

	out := make([]rune, len(chunk))
	for i, x := range product {
		idx := alphabet.Modulo(int(math.Round(x)))
		letter, _ := alphabet.Letter(idx, alphabet.IsUpper(chunk[i])) // Modulo keeps idx in range
		out[i] = letter
	}

	return out, nil
}

// inverseKey derives the modular inverse of a validated key matrix:
//
//	1. det is the key's real determinant (non-zero by validation).
//	2. detInv is the unique integer in [1, 26) with
//	   (det mod 26) * detInv ≡ 1 (mod 26); it exists because validation
//	   checked gcd(det mod 26, 26) == 1. Found by linear search.
//	3. Each entry x of the real inverse is rescaled by det (undoing the
//	   1/det factor of the adjugate-based inverse), rounded, reduced into
//	   [0, 26), multiplied by detInv and reduced again.
//
// By the construction-time preconditions no failure is expected here; an
// error from the real inversion indicates validation and inversion disagree
// and is surfaced as ErrInvalidKey rather than hidden.
func inverseKey(key *matrix.Dense, det float64) (*matrix.Dense, error) {
	detMod := alphabet.Modulo(int(math.Round(det)))
	detInv, ok := alphabet.MultiplicativeInverse(detMod)
	if !ok {
		return nil, fmt.Errorf("inverseKey: determinant %d not invertible: %w", detMod, ErrInvalidKey)
	}

	realInv, err := matrix.Inverse(key)
	if err != nil {
		return nil, fmt.Errorf("inverseKey: %w", ErrInvalidKey)
	}

	return realInv.Map(func(x float64) float64 {
		adj := alphabet.Modulo(int(math.Round(x * det))) // adjugate entry in [0, 26)

		return float64((adj * detInv) % alphabet.Size)
	}), nil
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
