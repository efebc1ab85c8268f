package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
)

// firebaseProvider implements IdentityProvider on Firebase Authentication.
// Password sign-in goes through the Identity Toolkit REST API with the web API
// key; everything else uses the Admin SDK.
type firebaseProvider struct {
	client  *auth.Client
	toolkit *identitytoolkit.Service
	logger  *slog.Logger
}

// NewFirebaseProvider creates the Firebase-backed IdentityProvider.
func NewFirebaseProvider(client *auth.Client, toolkit *identitytoolkit.Service, logger *slog.Logger) service.IdentityProvider {
	return &firebaseProvider{
		client:  client,
		toolkit: toolkit,
		logger:  logger,
	}
}

func (p *firebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	if _, err := p.client.CreateUser(ctx, params); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create firebase user")
	}

	return p.SignIn(ctx, email, password)
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := p.toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateSignInError(err)
	}

	principal, err := p.RefreshPrincipal(ctx, resp.LocalId)
	if err != nil {
		return nil, err
	}

	expiresIn := int(resp.ExpiresIn)
	if expiresIn <= 0 {
		expiresIn = int(time.Hour / time.Second)
	}

	return &entity.Session{
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(expiresIn) * time.Second).UTC(),
		User:         principal,
	}, nil
}

// VerifyIDToken also checks revocation, so logout and admin changes take effect
// on the next request.
func (p *firebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		p.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("firebase token verification failed")
	}

	principal := &entity.Principal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		principal.DisplayName = name
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}
	if admin, ok := token.Claims[constants.AdminClaim].(bool); ok {
		principal.Admin = admin
	}

	return principal, nil
}

// RefreshPrincipal reads the account record, so custom claims reflect the
// latest SetCustomUserClaims call rather than a cached token.
func (p *firebaseProvider) RefreshPrincipal(ctx context.Context, uid string) (*entity.Principal, error) {
	user, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get firebase user")
	}

	return toPrincipal(user), nil
}

func (p *firebaseProvider) RevokeSessions(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func (p *firebaseProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.PasswordResetLink(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) || auth.IsEmailNotFound(err) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to generate password reset link")
	}

	return link, nil
}

func (p *firebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) || auth.IsEmailNotFound(err) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to generate email verification link")
	}

	return link, nil
}

// SetAdmin merges the admin claim into the existing custom claims and revokes
// refresh tokens so clients must pick up the new claim.
func (p *firebaseProvider) SetAdmin(ctx context.Context, email string, admin bool) (*entity.Principal, error) {
	user, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to get firebase user by email")
	}

	claims := make(map[string]any, len(user.CustomClaims)+1)
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	if admin {
		claims[constants.AdminClaim] = true
	} else {
		delete(claims, constants.AdminClaim)
	}

	if err := p.client.SetCustomUserClaims(ctx, user.UID, claims); err != nil {
		return nil, errors.Wrap(err, "failed to set custom claims")
	}
	if err := p.client.RevokeRefreshTokens(ctx, user.UID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh tokens")
	}

	principal := toPrincipal(user)
	principal.Admin = admin

	return principal, nil
}

func toPrincipal(user *auth.UserRecord) *entity.Principal {
	principal := &entity.Principal{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
	}
	if admin, ok := user.CustomClaims[constants.AdminClaim].(bool); ok {
		principal.Admin = admin
	}

	return principal
}

// translateSignInError maps Identity Toolkit failures. Every credential
// problem becomes the same error so callers cannot probe for accounts.
func translateSignInError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, "firebase sign-in failed")
	}

	message := strings.ToUpper(apiErr.Message)
	switch {
	case strings.Contains(message, "TOO_MANY_ATTEMPTS"):
		return domainerrors.ErrTooManyRequests
	case apiErr.Code == 400:
		return domainerrors.ErrInvalidCredentials
	default:
		return errors.Wrap(err, "firebase sign-in failed")
	}
}
