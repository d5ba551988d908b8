// Package hill implements the Hill cipher, a polygraphic substitution
// cipher built on modular linear algebra: plaintext is processed in chunks
// of n letters, each chunk is multiplied by an n×n key matrix and reduced
// mod 26, and decryption applies the key's modular inverse matrix.
//
// 🚀 What makes a valid key?
//
//	An n×n integer matrix (n ≥ 2) that
//	  • has a real inverse (non-zero determinant), and
//	  • has a determinant coprime with 26, so the determinant — and hence
//	    the matrix — is invertible mod 26.
//	New validates all three conditions and derives the modular inverse key
//	up front; NewFromPhrase builds the matrix from an alphabetic phrase.
//
// ⚙️ Usage:
//
//	h, err := hill.New([][]int{
//		{2, 4, 5},
//		{9, 2, 1},
//		{3, 17, 7},
//	})
//	// ...
//	ct, _ := h.Encrypt("ATTACKATDAWN")
//	pt, _ := h.Decrypt(ct) // "ATTACKATDAWN"
//
// Padding: when the message length is not a multiple of n, Encrypt extends
// it with the filler letter 'a' before transforming, so the ciphertext
// length is the message length rounded up to the next multiple of n.
// Decrypt cannot tell filler from genuine trailing letters and therefore
// returns it; callers that need the exact original must trim
// len(ciphertext) - len(original) characters themselves.
//
// Input: both Encrypt and Decrypt accept alphabetic characters only —
// whitespace and symbols have no alphabet position and cannot survive the
// matrix transform. Case is preserved position by position.
//
// Like every cipher in lvlcrypt, Hill is a teaching tool: it is linear and
// trivially broken with known plaintext. Do not protect real data with it.
package hill
