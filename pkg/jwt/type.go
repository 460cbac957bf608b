package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLen is the minimum length for the HS256 secret key.
const MinSecretKeyLen = 32

// ErrSecretKeyTooShort is returned when the configured secret is too weak.
var ErrSecretKeyTooShort = errors.New("jwt: secret key must be at least 32 characters")

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
}

// Claims represents the verified JWT claims.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
