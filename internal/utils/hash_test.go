package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignHex_Deterministic(t *testing.T) {
	body := []byte(`{"projectSlug":"fedora-docs"}`)

	first := SignHex(body, "secret")
	second := SignHex(body, "secret")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}

func TestSignHex_KeySensitive(t *testing.T) {
	body := []byte("payload")

	assert.NotEqual(t, SignHex(body, "secret-a"), SignHex(body, "secret-b"))
}

func TestVerifyHex(t *testing.T) {
	body := []byte("payload")
	sig := SignHex(body, "secret")

	assert.True(t, VerifyHex(body, "secret", sig))
	assert.False(t, VerifyHex(body, "other", sig))
	assert.False(t, VerifyHex([]byte("tampered"), "secret", sig))
	assert.False(t, VerifyHex(body, "secret", "not-hex!"))
}
