package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type sessionService struct {
	identity  service.IdentityProvider
	customers repository.CustomerRepository
	mailer    service.Mailer
	policy    *config.PasswordStrengthConfig
	now       func() time.Time
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity  service.IdentityProvider
	Customers repository.CustomerRepository
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionService creates the authentication usecase.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:  params.Identity,
		customers: params.Customers,
		mailer:    params.Mailer,
		policy:    params.Config.PasswordStrength,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (s *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *sessionService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Session, error) {
	if err := validatePassword(s.policy, input.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	displayName := strings.TrimSpace(input.DisplayName)

	session, err := s.identity.SignUp(ctx, email, input.Password, displayName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	customer := &entity.Customer{
		UID:         session.User.UID,
		Email:       session.User.Email,
		DisplayName: session.User.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.customers.Upsert(ctx, customer); err != nil {
		// The account exists; the profile is recreated by the first order.
		s.log(ctx).Error("Failed to create customer profile", slog.String("uid", customer.UID), slog.Any("error", err))
	}

	if err := s.sendVerification(ctx, session.User); err != nil {
		s.log(ctx).Warn("Failed to send verification email", slog.String("uid", customer.UID), slog.Any("error", err))
	}

	s.log(ctx).Info("User signed up", slog.String("uid", session.User.UID))

	return session, nil
}

func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	session, err := s.identity.SignIn(ctx, normalizeEmail(input.Email), input.Password)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Debug("User logged in", slog.String("uid", session.User.UID))

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context, principal *entity.Principal) error {
	if !principal.IsAuthenticated() {
		return domainerrors.ErrAuthenticationRequired
	}

	if err := s.identity.RevokeSessions(ctx, principal.UID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	return nil
}

func (s *sessionService) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	link, err := s.identity.PasswordResetLink(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		s.log(ctx).Debug("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to generate password reset link")
	}

	if err := s.mailer.Send(ctx, passwordResetEmail(email, link)); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	return nil
}

func (s *sessionService) SendEmailVerification(ctx context.Context, principal *entity.Principal) error {
	if !principal.IsAuthenticated() {
		return domainerrors.ErrAuthenticationRequired
	}

	return s.sendVerification(ctx, principal)
}

func (s *sessionService) sendVerification(ctx context.Context, principal *entity.Principal) error {
	link, err := s.identity.EmailVerificationLink(ctx, principal.Email)
	if err != nil {
		return errors.Wrap(err, "failed to generate verification link")
	}

	return errors.Wrap(s.mailer.Send(ctx, verificationEmail(principal, link)), "failed to send verification email")
}

func (s *sessionService) CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.Principal, error) {
	if !principal.IsAuthenticated() {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	refreshed, err := s.identity.RefreshPrincipal(ctx, principal.UID)
	if err != nil {
		return nil, err
	}

	return refreshed, nil
}

func (s *sessionService) Authenticate(ctx context.Context, idToken string) (*entity.Principal, error) {
	if idToken == "" {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	return s.identity.VerifyIDToken(ctx, idToken)
}
