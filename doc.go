// Package lvlcrypt is an in-memory museum of classical ciphers — shift,
// substitution, transposition, polyalphabetic and polygraphic transforms,
// each implemented as a small, self-contained encode/decode package.
//
// 🚀 What is lvlcrypt?
//
//	A modern, dependency-light library that brings together:
//		• Shift ciphers: Caesar, ROT13, Affine
//		• Polyalphabetic streams: Vigenère, Autokey, Porta
//		• Transpositions: Railfence, Scytale
//		• Table ciphers: Polybius square, Baconian
//		• Bigram & fractionating: Playfair, Fractionated Morse
//		• Polygraphic: the Hill cipher (modular linear algebra over chunks)
//
// ✨ Why choose lvlcrypt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions of (key, message), no global state
//   - Pure Go – no cgo, no hidden deps
//   - Consistent – every cipher follows the same New/Encrypt/Decrypt contract
//
// Under the hood, everything is organized as independent subpackages:
//
//	alphabet/  — 26-letter alphabet service: positions, letters, mod-26 math
//	cipher/    — the shared Cipher contract every transform implements
//	matrix/    — small dense matrix kernels (Det, Inverse, MatVec) for Hill
//	hill/      — the Hill cipher engine, the one genuinely algorithmic core
//	caesar/ rot13/ affine/ vigenere/ autokey/ porta/ playfair/
//	fractionatedmorse/ railfence/ scytale/ polybius/ baconian/
//
// ⚠️ Disclaimer:
//
//	There is a reason these archaic methods are no longer used — they are
//	extremely easy to crack! Intended for learning purposes only, these
//	ciphers should not be used to protect data of any real value.
//
//	go get github.com/katalvlaran/lvlcrypt
package lvlcrypt
