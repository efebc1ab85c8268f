package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	tokenTypeID      = "id"
	tokenTypeRefresh = "refresh"
	tokenIssuer      = "storefront"
)

// jwtService issues HS256 tokens for the local identity provider.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := time.Hour, 30*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			accessTTL = cfg.Auth.TokenTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates an ID token carrying the profile claims and a refresh token.
func (s *jwtService) GenerateTokens(subject, email, name string, admin bool) (idToken, refreshToken string, expiresAt time.Time, err error) {
	now := s.now()
	expiresAt = now.Add(s.accessTTL)

	idToken, err = s.sign(&service.Claims{
		Email: email,
		Name:  name,
		Admin: admin,
		Type:  tokenTypeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}, s.accessSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err = s.sign(&service.Claims{
		Type: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}, s.refreshSecret)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return idToken, refreshToken, expiresAt, nil
}

// ValidateToken verifies an ID token. Refresh tokens are rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("jwt validation failed")
	}
	if claims.Type != tokenTypeID {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("not an id token")
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims, secret string) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
