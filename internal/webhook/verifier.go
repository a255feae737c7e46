package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const signaturePrefix = "sha256="

var (
	ErrMissingSignature = errors.New("webhook: missing signature header")
	ErrInvalidSignature = errors.New("webhook: invalid signature")
)

// Verifier authenticates inbound webhook traffic: the HMAC signature the
// provider puts on every POST, and the verify-token handshake it runs once
// when the webhook URL is registered.
type Verifier struct {
	appSecret   string
	verifyToken string
}

func NewVerifier(appSecret, verifyToken string) *Verifier {
	return &Verifier{
		appSecret:   appSecret,
		verifyToken: verifyToken,
	}
}

// VerifySignature checks the X-Hub-Signature-256 header against the raw
// request body. The comparison is constant-time; any mismatch is a hard
// rejection.
func (v *Verifier) VerifySignature(signature string, body []byte) error {
	if signature == "" {
		return ErrMissingSignature
	}
	signature = strings.TrimPrefix(signature, signaturePrefix)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(v.appSecret))
	mac.Write(body)

	if !hmac.Equal(provided, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyToken handles the GET handshake. The challenge is echoed back only
// when the mode is "subscribe" and the token matches the configured one.
func (v *Verifier) VerifyToken(mode, token, challenge string) (string, bool) {
	if mode != "subscribe" {
		return "", false
	}
	if !hmac.Equal([]byte(token), []byte(v.verifyToken)) {
		return "", false
	}
	return challenge, true
}
