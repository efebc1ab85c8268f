package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for locally issued tokens.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates tokens for the local identity provider.
type TokenService interface {
	// GenerateTokens creates an ID token and a refresh token for the subject.
	GenerateTokens(subject, email, name string, admin bool) (idToken, refreshToken string, expiresAt time.Time, err error)

	// ValidateToken parses and verifies an ID token.
	ValidateToken(tokenString string) (*Claims, error)
}
