package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen = 32
	keyLen  = 32

	// DefaultIterations is the PBKDF2 work factor used for both passwords
	// and PINs.
	DefaultIterations = 10000
)

// Hasher derives and verifies salted PBKDF2-HMAC-SHA256 credentials.
// Salt and derived key are handled as base64 text, which is how they are
// stored.
type Hasher struct {
	iterations int
}

// NewHasher creates a Hasher with the given PBKDF2 iteration count.
// Counts below DefaultIterations are rejected.
func NewHasher(iterations int) (*Hasher, error) {
	if iterations < DefaultIterations {
		return nil, errors.New("iteration count too low")
	}
	return &Hasher{iterations: iterations}, nil
}

// Hash derives a key from the secret under a fresh random 32-byte salt.
// Returns base64-encoded hash and salt.
func (h *Hasher) Hash(secret string) (hash, salt string, err error) {
	rawSalt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, rawSalt); err != nil {
		return "", "", err
	}
	key := pbkdf2.Key([]byte(secret), rawSalt, h.iterations, keyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(rawSalt), nil
}

// Verify re-derives the key for secret under the stored salt and compares it
// against the stored hash in constant time.
func (h *Hasher) Verify(secret, hash, salt string) bool {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(secret), rawSalt, h.iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
