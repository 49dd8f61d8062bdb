package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// ErrCiphertextTooShort is returned by Open/OpenString when the input is
// shorter than the mandatory nonce+tag overhead.
var ErrCiphertextTooShort = errors.New("crypto: ciphertext shorter than nonce+tag overhead")

// ErrTampered is returned when the AEAD authentication check fails: the
// ciphertext was corrupted, truncated, or sealed with a different key.
var ErrTampered = errors.New("crypto: ciphertext was tampered with or uses the wrong key")

// deriveKey strengthens keyString (a CEK or CustomerKey, represented as its
// canonical base64url string) into AEAD key material, using the packet's own
// nonce as the Argon2id salt. Deriving fresh on every call means the
// cryptographic strength of a single sealed record never depends solely on
// the strength of the 43-character key string alone.
func deriveKey(keyString string, nonce []byte) []byte {
	return argon2.IDKey([]byte(keyString), nonce, argon2Time, argon2MemoryKiB, argon2Threads, KeySize)
}

// Seal encrypts plaintext with keyString and returns nonce || ciphertext ||
// tag. A new random nonce is generated on every call.
func Seal(plaintext []byte, keyString string) ([]byte, error) {
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}

	key := deriveKey(keyString, nonce)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}

	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, plaintext, nil)
	return out, nil
}

// Open decrypts a nonce||ciphertext||tag packet with keyString.
func Open(packet []byte, keyString string) ([]byte, error) {
	if len(packet) < NonceSize+TagSize {
		return nil, ErrCiphertextTooShort
	}

	nonce := packet[:NonceSize]
	key := deriveKey(keyString, nonce)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, packet[NonceSize:], nil)
	if err != nil {
		return nil, ErrTampered
	}
	return plaintext, nil
}

// SealToString encrypts plaintext and base64url-no-pad encodes the packet —
// the wire/storage form used for SecurityToken, SessionIdentifier, and every
// encrypted column value.
func SealToString(plaintext []byte, keyString string) (string, error) {
	packet, err := Seal(plaintext, keyString)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packet), nil
}

// OpenFromString decodes a base64url-no-pad packet and decrypts it.
func OpenFromString(encoded string, keyString string) ([]byte, error) {
	packet, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("crypto: decode packet: %w", err)
	}
	return Open(packet, keyString)
}
