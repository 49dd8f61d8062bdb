package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes an appuser password at the given cost. Callers
// should pass config.Security.BCryptCost; a cost <= 0 falls back to
// DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash produced
// by HashPassword. A non-nil error (including a mismatch) means the
// password must be rejected.
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
