// Package cipher declares the uniform contract shared by every transform in
// lvlcrypt.
//
// Each cipher package exposes a constructor (New, plus convenience variants
// such as hill.NewFromPhrase) that validates the key once and returns a
// concrete, immutable cipher value. The value then satisfies Cipher: Encrypt
// and Decrypt are pure functions of the instance's key and their input, so a
// single instance may be shared freely across goroutines.
//
// Constructors return concrete types; this interface exists so callers that
// treat ciphers interchangeably (catalogues, CLIs, test harnesses) can accept
// any of them.
package cipher
