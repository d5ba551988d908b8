package cipher

// Cipher is the behavior every lvlcrypt transform provides once constructed.
//
// Implementations are immutable after construction and deterministic: the
// same instance and input always produce the same output. Errors are the
// package-level sentinels of the implementing package (match via errors.Is);
// on error no partial output is returned.
type Cipher interface {
	// Encrypt transforms a plaintext message into ciphertext.
	Encrypt(message string) (string, error)

	// Decrypt reverses Encrypt for ciphertext produced with the same key.
	Decrypt(ciphertext string) (string, error)
}
