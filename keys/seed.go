package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/hkdf"
)

// SeedKeySize is the size in bytes of material derived with FromSeed.
const SeedKeySize = 32

// FromSeed derives SeedKeySize bytes of shared-secret material from a seed
// string using HKDF over SHA-256. The same seed always yields the same
// material, so peers can derive a common key from a distributed seed.
func FromSeed(seed string) ([]byte, error) {
	if seed == "" {
		return nil, errors.New("empty seed")
	}

	r := hkdf.New(sha256.New, []byte(seed), nil, nil)

	key := make([]byte, SeedKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.WithStack(err)
	}
	return key, nil
}

// Random returns n cryptographically secure random bytes.
func Random(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// RandomString returns a URL-safe string carrying n bytes of entropy.
func RandomString(n int) string {
	return base64.RawURLEncoding.EncodeToString(Random(n))
}
