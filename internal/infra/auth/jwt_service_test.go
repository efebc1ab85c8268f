package auth

import (
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	tokens, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	idToken, refreshToken, expiresAt, err := tokens.GenerateTokens("uid-1", "ada@example.com", "Ada", true)
	require.NoError(t, err)
	assert.NotEmpty(t, idToken)
	assert.NotEmpty(t, refreshToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.ValidateToken(idToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.True(t, claims.Admin)
	assert.Equal(t, tokenTypeID, claims.Type)

	_, err = tokens.ValidateToken(refreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsExpiredAndTampered(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	jwtSvc := svc.(*jwtService)

	issued := time.Now().Add(-2 * time.Hour)
	jwtSvc.now = func() time.Time { return issued }
	idToken, _, _, err := jwtSvc.GenerateTokens("uid-1", "ada@example.com", "Ada", false)
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateToken(idToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = jwtSvc.ValidateToken(idToken + "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
