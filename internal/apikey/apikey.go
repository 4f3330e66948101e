// Package apikey generates and verifies the opaque API keys used to
// authenticate requests. A raw key is 16 cryptographically random bytes
// encoded as unpadded lower-case base32 behind the literal "gm_" prefix.
// Only the SHA3-256 hash of the full raw string is ever stored; the first
// 8 characters are kept as a displayable prefix.
package apikey

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	// Prefix starts every raw key.
	Prefix = "gm_"

	// DisplayPrefixLen is how many leading characters of the raw key are
	// stored for identification in listings.
	DisplayPrefixLen = 8

	// HashSize is the stored hash length in bytes.
	HashSize = 32

	randomBytes = 16
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Material is a freshly generated key. Raw is returned to the caller
// exactly once; Prefix and Hash are what gets persisted.
type Material struct {
	Raw    string
	Prefix string
	Hash   []byte
}

// New draws fresh key material from the cryptographic random source.
func New() (Material, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return Material{}, fmt.Errorf("reading random key material: %w", err)
	}
	raw := Prefix + strings.ToLower(encoding.EncodeToString(buf))
	return Material{
		Raw:    raw,
		Prefix: raw[:DisplayPrefixLen],
		Hash:   HashRaw(raw),
	}, nil
}

// ValidFormat reports whether raw looks like a key this server issued.
func ValidFormat(raw string) bool {
	return len(raw) > len(Prefix) && strings.HasPrefix(raw, Prefix)
}

// HashRaw computes the 32-byte storage hash of a raw key string.
func HashRaw(raw string) []byte {
	sum := sha3.Sum256([]byte(raw))
	return sum[:]
}

// Verify validates the key format and returns the storage hash used for
// lookup. Malformed keys are rejected without hashing.
func Verify(raw string) ([]byte, error) {
	if !ValidFormat(raw) {
		return nil, fmt.Errorf("malformed API key")
	}
	return HashRaw(raw), nil
}
