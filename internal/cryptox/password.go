// Package cryptox hashes and verifies user passwords with argon2id.
//
// Encoded hashes look like "argon2id$<salt hex>$<key hex>". The argon2
// parameters are fixed in this package; changing them invalidates every
// stored hash.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophproducts/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	hashScheme = "argon2id"

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltLen = 16
)

// MaxPasswordLen bounds the input fed to argon2id, in bytes.
const MaxPasswordLen = 128

var (
	// ErrMalformedHash is returned when a stored hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	ErrPasswordTooLong = errors.New("password too long")
)

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword returns an encoded argon2id hash of password using a fresh
// random salt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", common.ErrorMissingField
	}
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey([]byte(password), salt)
	return hashScheme + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// The key comparison is constant time. Passwords longer than
// MaxPasswordLen never match and are not hashed.
func VerifyPassword(password, encoded string) (bool, error) {
	if len(password) > MaxPasswordLen {
		return false, nil
	}
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashScheme {
		return false, ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) != argonKeyLen {
		return false, ErrMalformedHash
	}

	got := DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
