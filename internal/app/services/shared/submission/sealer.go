package submission

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/box"
)

const publicKeySize = 32

// Sealer encrypts payloads to the log endpoint's public key with an anonymous
// nacl box. Without a key payloads pass through as plain JSON.
type Sealer struct {
	recipient *[publicKeySize]byte
}

// NewSealer parses a base64 encoded curve25519 public key. An empty key
// disables sealing.
func NewSealer(publicKeyBase64 string) (*Sealer, error) {
	if publicKeyBase64 == "" {
		return &Sealer{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("decode submission public key: %w", err)
	}
	if len(raw) != publicKeySize {
		return nil, fmt.Errorf("submission public key must be %d bytes, got %d", publicKeySize, len(raw))
	}

	var key [publicKeySize]byte
	copy(key[:], raw)
	return &Sealer{recipient: &key}, nil
}

func (s *Sealer) Enabled() bool {
	return s.recipient != nil
}

// Seal returns the envelope body and whether it is encrypted. Sealed bodies
// are base64 encoded.
func (s *Sealer) Seal(plaintext []byte) (string, bool, error) {
	if !s.Enabled() {
		return string(plaintext), false, nil
	}

	sealed, err := box.SealAnonymous(nil, plaintext, s.recipient, rand.Reader)
	if err != nil {
		return "", false, err
	}
	return base64.StdEncoding.EncodeToString(sealed), true, nil
}

// Fingerprint is the blake2b-256 digest of a plaintext payload, carried in
// the envelope so receivers can check what they opened.
func Fingerprint(plaintext []byte) string {
	sum := blake2b.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}
