package utils

import (
	"crypto/rand"
	"math/big"
)

const alphanumBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Lengths for the two kinds of secrets sent out by email.
const (
	VerificationCodeLength = 10
	ResetTokenLength       = 20
)

// RandomString returns an unguessable alphanumeric string of length n.
func RandomString(n int) string {
	max := big.NewInt(int64(len(alphanumBytes)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure means the process cannot mint secrets
		}
		b[i] = alphanumBytes[idx.Int64()]
	}
	return string(b)
}
