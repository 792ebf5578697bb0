package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// PasswordHasher turns a plaintext password into a storable digest and
// checks a plaintext against a stored digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// NewPasswordHasher selects the hashing scheme by name: "bcrypt" (default
// deployment choice) or "sha256" (legacy compatibility).
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case "bcrypt":
		return BcryptHasher{cost: bcryptCost}, nil
	case "sha256":
		return SHA256Hasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported password hash scheme %q", scheme)
	}
}

// SHA256Hasher reproduces the legacy scheme: a single unsalted SHA-256 pass
// over the UTF-8 password bytes, base64 encoded. Kept only so existing
// stored digests keep verifying.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password, digest string) bool {
	computed, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// BcryptHasher is the upgraded scheme. Verify transparently accepts legacy
// SHA-256 digests so accounts created before the switch still log in; the
// auth service rehashes those on successful login.
type BcryptHasher struct {
	cost int
}

func (b BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	return string(hashed), err
}

func (b BcryptHasher) Verify(password, digest string) bool {
	if IsLegacyDigest(digest) {
		return SHA256Hasher{}.Verify(password, digest)
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// IsLegacyDigest reports whether a stored digest came from the legacy
// SHA-256 scheme rather than bcrypt.
func IsLegacyDigest(digest string) bool {
	return !strings.HasPrefix(digest, "$2")
}
