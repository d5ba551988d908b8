// Package alphabet is the shared letter service used by every cipher in
// lvlcrypt: it maps single characters to and from positions in the fixed
// 26-letter Latin alphabet, preserving case, and provides the modular
// arithmetic that substitution ciphers are built from.
//
// The alphabet never changes at runtime, so the service is a set of pure,
// stateless functions over package-level constant tables — no configuration,
// no globals to mutate, safe from any goroutine.
//
// Provided operations:
//
//   - Position / Letter — character ↔ index lookups in [0, 26)
//   - Modulo            — canonical non-negative reduction mod 26
//   - MultiplicativeInverse — x such that (a*x) mod 26 == 1, when it exists
//   - IsAlphabetic / Scrub  — input validation and filtering helpers
//   - KeyedAlphabet     — scrambled alphabet generation from a keyword
//   - SubstituteShift / SubstituteKeyed — the substitution loops shared by
//     the shift and polyalphabetic cipher packages
package alphabet
