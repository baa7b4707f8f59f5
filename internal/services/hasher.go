package services

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing. bcrypt embeds the cost
// and a per-call random salt in its output, so stored hashes stay verifiable
// if the cost ever changes.
const bcryptCost = bcrypt.DefaultCost

// BcryptHasher hashes and verifies passwords with bcrypt.
//
// bcrypt rejects inputs longer than 72 bytes, so the password is first
// reduced to a SHA-256 digest. Every accepted password length hashes, and
// characters beyond the 72nd still affect the result.
type BcryptHasher struct{}

// NewBcryptHasher creates a new BcryptHasher instance.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash produces a salted bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(digest(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the hash. The comparison of
// the derived key is constant-time.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(password)) == nil
}

// digest reduces a password to a fixed 43-byte bcrypt input. The sum is
// base64-encoded because bcrypt treats a NUL byte as end of input.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.RawStdEncoding.EncodeToString(sum[:]))
}
