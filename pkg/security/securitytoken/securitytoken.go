// Package securitytoken mints and validates the CEK-encrypted administrative
// tokens used by tenant create/delete and Key Manager operations:
// encrypt_CEK(JSON{expiry_date}).
package securitytoken

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/doka-one/doka/pkg/security/crypto"
)

// ErrExpired is returned when the token decrypts fine but its expiry has
// already passed.
var ErrExpired = errors.New("securitytoken: expired")

type payload struct {
	ExpiryDate time.Time `json:"expiry_date"`
}

// Mint builds a token valid for ttl, encrypted with cekKeyString.
func Mint(cekKeyString string, ttl time.Duration) (string, error) {
	body, err := json.Marshal(payload{ExpiryDate: time.Now().Add(ttl)})
	if err != nil {
		return "", err
	}
	return crypto.SealToString(body, cekKeyString)
}

// Validate decrypts token with cekKeyString and checks its expiry. Returns
// crypto.ErrTampered-wrapped errors unchanged on decryption failure so
// callers cannot distinguish "wrong key" from "tampered ciphertext", and
// ErrExpired when the token decrypts but is past its expiry date.
func Validate(cekKeyString string, token string) error {
	plaintext, err := crypto.OpenFromString(token, cekKeyString)
	if err != nil {
		return err
	}

	var p payload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return crypto.ErrTampered
	}

	if time.Now().After(p.ExpiryDate) {
		return ErrExpired
	}
	return nil
}
