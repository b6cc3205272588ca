package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomStringLengthAndCharset(t *testing.T) {
	for _, n := range []int{0, 1, VerificationCodeLength, ResetTokenLength, 64} {
		s := RandomString(n)
		assert.Len(t, s, n)
		for _, r := range s {
			assert.Contains(t, alphanumBytes, string(r))
		}
	}
}

func TestRandomStringUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := RandomString(ResetTokenLength)
		assert.False(t, seen[s], "duplicate random string")
		seen[s] = true
	}
}
