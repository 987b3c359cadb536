package utils

import "math/rand"

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderCode returns a random 6-char order code. Collisions across
// sessions are an accepted risk; the code only has to be readable on a
// board of a few dozen open orders.
func NewOrderCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
