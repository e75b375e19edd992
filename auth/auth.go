// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"fmt"
)

// roomIDLen gives ~119 bits of entropy over the base62 alphabet, enough
// that room ids are unguessable while staying short in shared URLs.
const roomIDLen = 20

const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewRoomID creates a random URL-friendly room identifier.
func NewRoomID() (string, error) {
	b := make([]byte, roomIDLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate room id: %w", err)
	}
	for i := range b {
		b[i] = base62Chars[int(b[i])%len(base62Chars)]
	}
	return string(b), nil
}
