package scram

import (
	"testing"

	"github.com/golang-auth/go-sasl-scram/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	attrs, err := parseMessage("r=abc,s=c2FsdA==,i=4096")
	require.NoError(t, err)
	assert.Equal(t, attributes{"r": "abc", "s": "c2FsdA==", "i": "4096"}, attrs)

	// values may contain '='; only the first one splits the pair
	attrs, err = parseMessage("v=bXlzaWc=")
	require.NoError(t, err)
	assert.Equal(t, "bXlzaWc=", attrs["v"])

	// last duplicate wins
	attrs, err = parseMessage("r=first,r=second")
	require.NoError(t, err)
	assert.Equal(t, "second", attrs["r"])

	// unrecognized keys are carried, callers decide whether to look
	attrs, err = parseMessage("r=abc,x=vendor-extension")
	require.NoError(t, err)
	assert.Equal(t, "vendor-extension", attrs["x"])
}

func TestParseMessageMalformed(t *testing.T) {
	for _, msg := range []string{"", "r", "r=abc,junk", "nopairs"} {
		_, err := parseMessage(msg)
		assert.ErrorIs(t, err, common.ErrProtocolViolation, "message %q", msg)
	}
}

func TestAttributesGet(t *testing.T) {
	attrs, err := parseMessage("r=abc")
	require.NoError(t, err)

	v, err := attrs.get("r")
	assert.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = attrs.get("s")
	assert.ErrorIs(t, err, common.ErrProtocolViolation)
}

func TestEscapeUsername(t *testing.T) {
	var tests = []struct {
		in, want string
	}{
		{"user", "user"},
		{"u=se,r", "u=3Dse=2Cr"},
		{"a,b", "a=2Cb"},
		{"=,", "=3D=2C"},
		{"=2C", "=3D2C"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeUsername(tt.in))
	}
}
