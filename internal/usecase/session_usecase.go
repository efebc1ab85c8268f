package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SignUpInput is the body of POST /auth/signup.
type SignUpInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"displayName" validate:"max=120"`
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionUsecase defines authentication and session operations.
type SessionUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Session, error)
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)
	// Logout revokes every refresh token of the principal.
	Logout(ctx context.Context, principal *entity.Principal) error
	// SendPasswordReset mails a reset link. Unknown emails succeed silently.
	SendPasswordReset(ctx context.Context, email string) error
	SendEmailVerification(ctx context.Context, principal *entity.Principal) error
	// CurrentUser reloads the principal's claims from the identity provider.
	CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.Principal, error)
	// Authenticate verifies a bearer token.
	Authenticate(ctx context.Context, idToken string) (*entity.Principal, error)
}
