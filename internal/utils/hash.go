package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignHex computes an HMAC-SHA256 signature over data using the given
// secret and returns it hex-encoded. It is used to sign outbound webhook
// bodies; subscribers verify the signature with their shared secret.
//
// A new HMAC instance is created on each call: subscriber secrets differ
// per delivery, so pooling keyed hashers buys nothing here.
func SignHex(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHex reports whether signature is a valid hex-encoded HMAC-SHA256
// of data under secret. Comparison is constant-time.
func VerifyHex(data []byte, secret, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hmac.Equal(h.Sum(nil), want)
}
