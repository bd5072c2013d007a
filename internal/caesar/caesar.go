// Package caesar implements a Caesar substitution cipher over the 26-letter ASCII alphabet.
package caesar

import (
	"strings"
)

// Encrypt shifts every ASCII letter in message by key positions within its
// case's alphabet, wrapping around at the boundary. All other runes pass
// through unchanged. Any integer key is valid: the effective shift is the
// key normalized into [0, 26), so negative keys wrap backwards and
// Encrypt(m, k) == Encrypt(m, k+26).
func Encrypt(message string, key int) string {
	n := rune(((key % 26) + 26) % 26)

	enc := &strings.Builder{}
	enc.Grow(len(message))

	for _, r := range message {
		if 'a' <= r && r <= 'z' {
			r = 'a' + (r-'a'+n)%26
		} else if 'A' <= r && r <= 'Z' {
			r = 'A' + (r-'A'+n)%26
		}

		enc.WriteRune(r)
	}
	return enc.String()
}
