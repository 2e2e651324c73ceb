package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// IsHashed reports whether stored looks like a bcrypt hash.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(h), nil
}

// CheckPassword compares plain with stored. Legacy accounts keep plain-text
// passwords; a match on one of those sets migrate so the caller can rehash.
func CheckPassword(stored, plain string) (ok bool, migrate bool, err error) {
	if IsHashed(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
		switch {
		case err == nil:
			return true, false, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, false, nil
		default:
			return false, false, fmt.Errorf("auth: compare password: %w", err)
		}
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1 {
		return true, true, nil
	}
	return false, false, nil
}
