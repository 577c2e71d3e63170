package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPassword returns "saltHex:hashHex" where saltHex encodes 16 random
// bytes and hashHex = SHA-256(saltHex + password).
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	sum := sha256.Sum256([]byte(saltHex + password))
	return saltHex + ":" + hex.EncodeToString(sum[:]), nil
}

// VerifyPassword recomputes the hash from the salt part of stored and compares.
// A malformed stored value (no colon) verifies as false.
func VerifyPassword(password string, stored string) bool {
	i := strings.Index(stored, ":")
	if i == -1 {
		return false
	}
	saltHex := stored[:i]
	hashHex := stored[i+1:]
	sum := sha256.Sum256([]byte(saltHex + password))
	return hex.EncodeToString(sum[:]) == hashHex
}
