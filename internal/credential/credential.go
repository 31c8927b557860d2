// Package credential abstracts how passwords are stored and compared.
//
// The deployed system stores passwords as received, without hashing. That
// behavior is kept as the default so existing records keep working, but it
// lives behind the Hasher interface so a deployment can switch to bcrypt
// without touching the user service.
package credential

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher converts a plaintext password into its stored form and compares
// a stored form against a login attempt.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(stored, plaintext string) (bool, error)
}

// Plaintext stores passwords verbatim. This matches the legacy records in
// the database and is insecure.
type Plaintext struct{}

// Hash returns the password unchanged.
func (Plaintext) Hash(plaintext string) (string, error) {
	return plaintext, nil
}

// Compare checks the stored password against the attempt in constant time.
func (Plaintext) Compare(stored, plaintext string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plaintext)) == 1, nil
}

// Bcrypt stores passwords as bcrypt hashes. New deployments should use this;
// switching an existing deployment requires rehashing on next login since
// legacy records are plaintext.
type Bcrypt struct {
	Cost int
}

// Hash calculates the bcrypt hash of a plaintext password.
func (b Bcrypt) Hash(plaintext string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = 12
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks whether plaintext matches the stored bcrypt hash.
func (b Bcrypt) Compare(stored, plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}
	return true, nil
}
