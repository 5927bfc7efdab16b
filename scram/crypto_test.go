package scram

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	assert.Equal(t,
		"a9993e364706816aba3e25717850c26c9cd0d89d",
		hex.EncodeToString(computeHash(sha1.New, []byte("abc"))))

	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(computeHash(sha256.New, []byte("abc"))))
}

func TestComputeHMAC(t *testing.T) {
	// RFC 2202 test case 2
	assert.Equal(t,
		"effcdf6ae5eb2fa2d27416d5f184df9c259a7c79",
		hex.EncodeToString(computeHMAC(sha1.New, []byte("Jefe"), []byte("what do ya want for nothing?"))))

	// RFC 4231 test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		hex.EncodeToString(computeHMAC(sha256.New, []byte("Jefe"), []byte("what do ya want for nothing?"))))
}

func TestHiBaseCase(t *testing.T) {
	// a single iteration is one HMAC over salt || INT(1), no folding
	secret := []byte("pencil")
	salt := []byte("salt bytes")

	want := computeHMAC(sha256.New, secret, append(append([]byte{}, salt...), 0, 0, 0, 1))
	assert.Equal(t, want, hi(sha256.New, secret, salt, 1))
}

func TestHiSaltedPassword(t *testing.T) {
	// SaltedPassword from the RFC 5802 example exchange
	salt, err := base64.StdEncoding.DecodeString("QSXCR+Q6sek8bf92")
	require.NoError(t, err)

	got := hi(sha1.New, []byte("pencil"), salt, 4096)
	assert.Equal(t, "1d96ee3a529b5a5f9e47c01f229a2cb8a6e15f7d", hex.EncodeToString(got))
}

func TestHiDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	a := hi(sha256.New, []byte("secret"), salt, 4096)
	b := hi(sha256.New, []byte("secret"), salt, 4096)
	c := hi(sha256.New, []byte("secret"), salt, 8192)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestXorBytes(t *testing.T) {
	var tests = []struct {
		a, b, want []byte
	}{
		{[]byte{0x00}, []byte{0x00}, []byte{0x00}},
		{[]byte{0xff}, []byte{0x0f}, []byte{0xf0}},
		{[]byte{0x12, 0x34}, []byte{0x12, 0x34}, []byte{0x00, 0x00}},
		{[]byte{0xaa, 0x55}, []byte{0xff, 0xff}, []byte{0x55, 0xaa}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, xorBytes(tt.a, tt.b))
		assert.Equal(t, tt.want, xorBytes(tt.b, tt.a))
	}
}
