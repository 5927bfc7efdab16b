package scram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNonceGenerator(t *testing.T) {
	nonce := defaultNonceGenerator()
	assert.Len(t, nonce, nonceLength)

	for _, c := range []byte(nonce) {
		assert.GreaterOrEqual(t, c, byte(nonceLow))
		assert.LessOrEqual(t, c, byte(nonceHigh))
		assert.NotEqual(t, byte(nonceComma), c)
	}
}

func TestDefaultNonceGeneratorUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		nonce := defaultNonceGenerator()
		assert.False(t, seen[nonce], "nonce repeated: %q", nonce)
		seen[nonce] = true
	}
}
