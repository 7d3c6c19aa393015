// Package hash wraps bcrypt for credential storage.
package hash

import "golang.org/x/crypto/bcrypt"

// Cost is deliberately slow; hashing runs per request goroutine and must not
// be called while holding shared locks.
const Cost = 10

// Password returns a salted bcrypt digest of plain. The same input produces
// a different digest on every call.
func Password(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest was produced from plain.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
