// Package fractionatedmorse implements the Fractionated Morse cipher,
// which builds on Morse code, a well-known method for encoding text that
// can be sent across simple visual or audio channels.
//
// Encryption first transcribes the message into Morse with '|' as the
// character separator and a closing "||", pads the sequence with dots to a
// multiple of three, then reads it back three symbols at a time: each
// trigraph over {'.', '-', '|'} is a ternary number in [0, 26) selecting a
// letter of the keyed alphabet. Because letter boundaries and trigraph
// boundaries do not line up, one plaintext letter smears across several
// ciphertext letters, making the cipher slightly stronger than a plain
// substitution. Morse has no case, so decryption returns uppercase.
package fractionatedmorse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcrypt/alphabet"
)

// ErrInvalidKey is returned by New for an empty key or a key containing
// non-alphabetic symbols.
var ErrInvalidKey = errors.New("fractionatedmorse: key must be non-empty and alphabetic")

// ErrUnsupportedCharacter is returned by Encrypt for a character with no
// Morse sequence. Notably whitespace has none.
var ErrUnsupportedCharacter = errors.New("fractionatedmorse: character has no morse sequence")

// ErrInvalidCiphertext is returned by Decrypt for non-alphabetic ciphertext
// or ciphertext whose trigraphs do not decode to Morse characters.
var ErrInvalidCiphertext = errors.New("fractionatedmorse: ciphertext does not decode to morse")

// separator ends each Morse character; the message ends with two.
const separator = '|'

// morseAlphabet maps every encodable character to its Morse sequence:
// letters (by their uppercase form), digits and a small set of symbols.
var morseAlphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",
	'.': ".-.-.-", ',': "--..--", ':': "---...", '\'': ".----.",
	'"': ".-..-.", '!': "-.-.--", '?': "..--..", '@': ".--.-.",
	'-': "-....-", ';': "-.-.-.", '(': "-.--.", ')': "-.--.-", '=': "-...-",
}

// morseCharacters is the reverse lookup, built once at package load.
var morseCharacters = func() map[string]rune {
	out := make(map[string]rune, len(morseAlphabet))
	for c, seq := range morseAlphabet {
		out[seq] = c
	}

	return out
}()

// trigraphs lists the 26 three-symbol sequences in ternary order
// ('.' = 0, '-' = 1, '|' = 2), so trigraphs[i] pairs with letter i of the
// keyed alphabet. Index 25 is "||-"; the sequences "|||" and "||." encode
// no letter.
var trigraphs = func() [alphabet.Size]string {
	const symbols = ".-|"
	var out [alphabet.Size]string
	for i := range out {
		out[i] = string([]byte{symbols[i/9], symbols[i/3%3], symbols[i%3]})
	}

	return out
}()

// trigraphIndex is the reverse lookup from trigraph to alphabet index.
var trigraphIndex = func() map[string]int {
	out := make(map[string]int, len(trigraphs))
	for i, t := range trigraphs {
		out[t] = i
	}

	return out
}()

// FractionatedMorse is a Fractionated Morse cipher instance, immutable
// after construction.
type FractionatedMorse struct {
	keyedAlphabet []rune
}

// New initialises a Fractionated Morse cipher with a non-empty alphabetic
// key; the key seeds the uppercase keyed alphabet the trigraphs select
// letters from.
func New(key string) (*FractionatedMorse, error) {
	if len(key) == 0 || !alphabet.IsAlphabetic(key) {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	keyed, err := alphabet.KeyedAlphabet(key, true)
	if err != nil {
		return nil, fmt.Errorf("New(%q): %w", key, ErrInvalidKey)
	}

	return &FractionatedMorse{keyedAlphabet: []rune(keyed)}, nil
}

// Encrypt transcribes the message into Morse and maps each padded trigraph
// to a keyed-alphabet letter. Supported characters are letters (case is
// discarded), digits and the symbols in the Morse alphabet; anything else,
// including whitespace, is ErrUnsupportedCharacter.
func (f *FractionatedMorse) Encrypt(message string) (string, error) {
	morse, err := toMorse(message)
	if err != nil {
		return "", fmt.Errorf("Encrypt: %w", err)
	}

	// Pad with dots so the sequence splits into whole trigraphs.
	for len(morse)%3 != 0 {
		morse = append(morse, '.')
	}

	out := make([]rune, 0, len(morse)/3)
	for i := 0; i < len(morse); i += 3 {
		idx, ok := trigraphIndex[string(morse[i:i+3])]
		if !ok {
			// Unreachable: every character emits symbols before its
			// separator, so "||" never extends to a third '|'.
			return "", fmt.Errorf("Encrypt: trigraph %q: %w", string(morse[i:i+3]), ErrInvalidCiphertext)
		}
		out = append(out, f.keyedAlphabet[idx])
	}

	return string(out), nil
}

// Decrypt maps each ciphertext letter back to its trigraph, reassembles
// the Morse sequence and decodes it. The plaintext is uppercase. Alphabetic
// ciphertext can still fail to spell valid Morse; that and any
// non-alphabetic character is ErrInvalidCiphertext.
func (f *FractionatedMorse) Decrypt(ciphertext string) (string, error) {
	var morse strings.Builder
	for _, c := range ciphertext {
		idx, err := f.alphabetIndex(c)
		if err != nil {
			return "", fmt.Errorf("Decrypt: %w", err)
		}
		morse.WriteString(trigraphs[idx])
	}

	return fromMorse(morse.String())
}

// alphabetIndex locates c (either case) in the keyed alphabet.
func (f *FractionatedMorse) alphabetIndex(c rune) (int, error) {
	pos, ok := alphabet.Position(c)
	if !ok {
		return 0, fmt.Errorf("character %q: %w", c, ErrInvalidCiphertext)
	}
	letter, _ := alphabet.Letter(pos, true)
	for i, k := range f.keyedAlphabet {
		if k == letter {
			return i, nil
		}
	}

	// Unreachable: the keyed alphabet holds all 26 letters.
	return 0, fmt.Errorf("character %q: %w", c, ErrInvalidCiphertext)
}

// toMorse transcribes every character of the message, terminating each
// Morse sequence with a separator and the whole message with a second one.
func toMorse(message string) ([]rune, error) {
	out := make([]rune, 0, 4*len(message))
	for _, c := range message {
		seq, ok := morseAlphabet[upper(c)]
		if !ok {
			return nil, fmt.Errorf("character %q: %w", c, ErrUnsupportedCharacter)
		}
		out = append(out, []rune(seq)...)
		out = append(out, separator)
	}

	return append(out, separator), nil
}

// fromMorse decodes a separator-delimited Morse sequence, stopping at the
// double separator that ends the message (it shows up as an empty split).
func fromMorse(morse string) (string, error) {
	var out strings.Builder
	for _, seq := range strings.Split(strings.TrimLeft(morse, string(separator)), string(separator)) {
		if seq == "" {
			break
		}
		c, ok := morseCharacters[seq]
		if !ok {
			return "", fmt.Errorf("Decrypt: sequence %q: %w", seq, ErrInvalidCiphertext)
		}
		out.WriteRune(c)
	}

	return out.String(), nil
}

// upper maps ASCII lowercase to uppercase and leaves everything else
// alone; digits and symbols are their own Morse keys.
func upper(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
