package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	apperrors "github.com/allisson/authgate/internal/errors"
)

// tokenBytes is the amount of entropy in a generated token.
const tokenBytes = 32

// tokenService hashes tokens with SHA-256 so only digests reach the database.
type tokenService struct{}

// GenerateToken reads tokenBytes from crypto/rand and encodes them base64url.
func (t *tokenService) GenerateToken() (string, string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken := base64.URLEncoding.EncodeToString(raw)
	return plainToken, t.HashToken(plainToken), nil
}

// HashToken returns the hex-encoded SHA-256 digest of plainToken.
func (t *tokenService) HashToken(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

// NewTokenService creates a SHA-256 backed TokenService.
func NewTokenService() TokenService {
	return &tokenService{}
}
