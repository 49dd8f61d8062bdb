package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// GenerateKeyString produces a canonical Doka key string: KeyStringLength
// random alphanumeric characters, hashed with SHA-256 and base64url-no-pad
// encoded down to KeyStringEncodedLength characters. The result is suitable
// to use directly as a CommonEdibleKey or CustomerKey value.
func GenerateKeyString() (string, error) {
	raw := make([]byte, KeyStringLength)
	alphabetLen := byte(len(keyStringAlphabet))
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate key source bytes: %w", err)
	}
	for i, b := range raw {
		raw[i] = keyStringAlphabet[b%alphabetLen]
	}

	digest := sha256.Sum256(raw)
	return base64.RawURLEncoding.EncodeToString(digest[:]), nil
}

// GenerateNonce returns a fresh random 24-byte XChaCha20-Poly1305 nonce.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}
