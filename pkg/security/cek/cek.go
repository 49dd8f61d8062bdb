// Package cek loads the process-wide Common Edible Key from its key file and
// keeps it in guarded memory, the way pkg/security/securestring already
// guards other process-wide secrets. Every service except Session Manager
// loads the CEK once at startup; its value is identical across every service of one deployment.
package cek

import (
	"fmt"
	"os"
	"strings"

	sstring "github.com/doka-one/doka/pkg/security/securestring"
)

// CEK holds the unwrapped Common Edible Key string in locked memory.
type CEK struct {
	secure *sstring.SecureString
}

// Load reads the CEK key string from path (one line, a 43-character
// base64url-no-pad string produced the same way GenerateKeyString produces
// Customer Keys).
func Load(path string) (*CEK, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cek: read key file: %w", err)
	}

	keyString := strings.TrimSpace(string(data))
	if keyString == "" {
		return nil, fmt.Errorf("cek: key file %s is empty", path)
	}

	secure, err := sstring.NewSecureString(keyString)
	if err != nil {
		return nil, fmt.Errorf("cek: guard key material: %w", err)
	}

	return &CEK{secure: secure}, nil
}

// KeyString returns the CEK value for use with crypto.Seal/Open. Callers
// must not retain the returned string beyond the encrypt/decrypt call.
func (c *CEK) KeyString() string {
	return c.secure.String()
}

// Wipe destroys the guarded key material. Call once at process shutdown.
func (c *CEK) Wipe() error {
	return c.secure.Wipe()
}
