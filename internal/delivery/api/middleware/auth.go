package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token into a principal.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// AuthMiddlewareParams holds the dependencies of AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrAuthenticationRequired
		}

		principal, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}
		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if principal, err := m.sessions.Authenticate(c.Request().Context(), token); err == nil {
				deliverycontext.SetPrincipal(c, principal)
			}
		}

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if !principal.IsAuthenticated() {
			return domainerrors.ErrAuthenticationRequired
		}
		if !principal.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
