package auth

import (
	"context"
	"net/url"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestLocalProvider(t *testing.T) (*localProvider, *jwtService) {
	t.Helper()

	cfg := newTestJWTConfig()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.QRCode = &config.QRCodeConfig{BaseURL: "https://shop.example.com/"}

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	provider := NewLocalProvider(cfg, state.NewMemoryStore(), NewBcryptHasher(cfg), tokens).(*localProvider)

	return provider, tokens.(*jwtService)
}

func TestLocalProvider_SignUpSignInVerify(t *testing.T) {
	ctx := context.Background()
	provider, _ := createTestLocalProvider(t)

	session, err := provider.SignUp(ctx, "Ada@Example.com", "secret123", "Ada")
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, "ada@example.com", session.User.Email)
	assert.False(t, session.User.Admin)

	_, err = provider.SignUp(ctx, "ada@example.com", "other-pass", "Ada 2")
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)

	_, err = provider.SignIn(ctx, "ada@example.com", "wrong-pass")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = provider.SignIn(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	signedIn, err := provider.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)

	principal, err := provider.VerifyIDToken(ctx, signedIn.IDToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.UID, principal.UID)
	assert.Equal(t, "Ada", principal.DisplayName)
}

func TestLocalProvider_RevokeSessionsInvalidatesOlderTokens(t *testing.T) {
	ctx := context.Background()
	provider, tokens := createTestLocalProvider(t)

	past := time.Now().Add(-time.Minute)
	tokens.now = func() time.Time { return past }
	session, err := provider.SignUp(ctx, "ada@example.com", "secret123", "Ada")
	require.NoError(t, err)
	tokens.now = time.Now

	require.NoError(t, provider.RevokeSessions(ctx, session.User.UID))

	_, err = provider.VerifyIDToken(ctx, session.IDToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	fresh, err := provider.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	_, err = provider.VerifyIDToken(ctx, fresh.IDToken)
	assert.NoError(t, err)
}

func TestLocalProvider_SetAdminIsVisibleOnRefresh(t *testing.T) {
	ctx := context.Background()
	provider, _ := createTestLocalProvider(t)

	session, err := provider.SignUp(ctx, "ada@example.com", "secret123", "Ada")
	require.NoError(t, err)

	principal, err := provider.SetAdmin(ctx, "ada@example.com", true)
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin())

	refreshed, err := provider.RefreshPrincipal(ctx, session.User.UID)
	require.NoError(t, err)
	assert.True(t, refreshed.IsAdmin())

	_, err = provider.SetAdmin(ctx, "ghost@example.com", true)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLocalProvider_ActionLinks(t *testing.T) {
	ctx := context.Background()
	provider, _ := createTestLocalProvider(t)

	_, err := provider.SignUp(ctx, "ada@example.com", "secret123", "Ada")
	require.NoError(t, err)

	link, err := provider.PasswordResetLink(ctx, "ada@example.com")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", parsed.Host)
	assert.Equal(t, "/auth/action", parsed.Path)
	assert.Equal(t, "resetPassword", parsed.Query().Get("mode"))
	assert.NotEmpty(t, parsed.Query().Get("oobCode"))

	_, err = provider.EmailVerificationLink(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

var _ service.IdentityProvider = (*localProvider)(nil)
