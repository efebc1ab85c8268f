package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// IdentityProvider wraps the authentication backend.
type IdentityProvider interface {
	// SignUp creates an email/password account and signs it in.
	SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error)

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// VerifyIDToken validates a session token and returns its principal.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error)

	// RefreshPrincipal reloads the principal's claims from the provider,
	// ignoring whatever a previously issued token carried.
	RefreshPrincipal(ctx context.Context, uid string) (*entity.Principal, error)

	// RevokeSessions invalidates every refresh token of uid.
	RevokeSessions(ctx context.Context, uid string) error

	// PasswordResetLink returns a link that lets the user choose a new password.
	PasswordResetLink(ctx context.Context, email string) (string, error)

	// EmailVerificationLink returns a link that confirms the address.
	EmailVerificationLink(ctx context.Context, email string) (string, error)

	// SetAdmin grants or clears the admin claim for the account with email.
	SetAdmin(ctx context.Context, email string, admin bool) (*entity.Principal, error)
}
