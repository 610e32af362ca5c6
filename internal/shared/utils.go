// Package shared provides small utility functions with no domain knowledge.
package shared

import "crypto/rand"

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MakeRandBase36String generates a random string of length size drawn from
// the uppercase base-36 alphabet (0-9, A-Z). It is used for human-shareable
// code fragments, so readability matters more than entropy density.
//
// It returns an error if the random number generator fails.
func MakeRandBase36String(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = base36Alphabet[int(b[i])%len(base36Alphabet)]
	}
	return string(b), nil
}
