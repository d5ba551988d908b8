package vigenere_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcrypt/vigenere"
)

// Encrypt a message with a short key and get it back. Non-alphabetic
// characters survive unchanged and do not consume the keystream.
func ExampleVigenere() {
	v, err := vigenere.New("lemon")
	if err != nil {
		fmt.Println("unexpected error:", err)

		return
	}

	ct, _ := v.Encrypt("attackatdawn")
	fmt.Println(ct)

	pt, _ := v.Decrypt(ct)
	fmt.Println(pt)

	// Output:
	// lxfopvefrnhr
	// attackatdawn
}
