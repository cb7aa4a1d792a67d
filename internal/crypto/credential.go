// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters of the stored PIN credential. Changing any of them
// invalidates every stored hash.
const (
	Iterations = 100_000
	KeyLength  = 32 // 256 bits
	SaltLength = 16
)

// Credential is a derived PIN credential.
type Credential struct {
	Salt []byte
	Hash []byte
}

// SaltB64 returns the salt in standard base64.
func (c Credential) SaltB64() string {
	return base64.StdEncoding.EncodeToString(c.Salt)
}

// HashB64 returns the hash in standard base64.
func (c Credential) HashB64() string {
	return base64.StdEncoding.EncodeToString(c.Hash)
}

// pbkdf2Hasher is the private implementation of [CredentialHasher].
type pbkdf2Hasher struct {
	iterations int
	keyLen     int
	saltLen    int
	random     io.Reader
}

// NewCredentialHasher constructs a [CredentialHasher] using PBKDF2 with
// HMAC-SHA256, 100 000 iterations and a 256-bit output.
func NewCredentialHasher() CredentialHasher {
	return &pbkdf2Hasher{
		iterations: Iterations,
		keyLen:     KeyLength,
		saltLen:    SaltLength,
		random:     rand.Reader,
	}
}

// DeriveCredential implements [CredentialHasher].
func (h *pbkdf2Hasher) DeriveCredential(pin string, salt []byte) (Credential, error) {
	if salt == nil {
		salt = make([]byte, h.saltLen)
		if _, err := io.ReadFull(h.random, salt); err != nil {
			return Credential{}, fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
		}
	}

	hash := pbkdf2.Key([]byte(pin), salt, h.iterations, h.keyLen, sha256.New)
	return Credential{Salt: salt, Hash: hash}, nil
}

// VerifyCredential implements [CredentialHasher].
func (h *pbkdf2Hasher) VerifyCredential(pin, saltB64, hashB64 string) (bool, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false, fmt.Errorf("%w: salt: %w", ErrMalformedEncoding, err)
	}
	expected, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false, fmt.Errorf("%w: hash: %w", ErrMalformedEncoding, err)
	}

	derived, err := h.DeriveCredential(pin, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(derived.Hash, expected) == 1, nil
}

// Seeder adapts h to a callback deriving the base64 salt and hash of a PIN
// under a fresh salt, the form the store keeps.
func Seeder(h CredentialHasher) func(pin string) (salt, hash string, err error) {
	return func(pin string) (string, string, error) {
		c, err := h.DeriveCredential(pin, nil)
		if err != nil {
			return "", "", err
		}
		return c.SaltB64(), c.HashB64(), nil
	}
}
