package usecase

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// opaqueTokenBytes is the entropy of verification/reset tokens.
const opaqueTokenBytes = 20

// newOpaqueToken generates a random single-use token. The plain form leaves
// the server only via mail; only the SHA-256 digest is ever persisted.
func newOpaqueToken() (plain, hash string, err error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)
	return plain, hashToken(plain), nil
}

// hashToken derives the stored form of a plain token.
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
