package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// AuthHandler serves sign-up, sign-in and session management.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{sessionUC: params.SessionUC}
}

// PasswordResetRequest is the body of POST /auth/password-reset
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, session)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// SendPasswordReset handles POST /auth/password-reset. The answer does not
// reveal whether the address is registered.
func (h *AuthHandler) SendPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message": "If the address is registered, a reset link is on its way",
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context(), deliverycontext.GetPrincipal(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// SendEmailVerification handles POST /auth/verify-email
func (h *AuthHandler) SendEmailVerification(c echo.Context) error {
	if err := h.sessionUC.SendEmailVerification(c.Request().Context(), deliverycontext.GetPrincipal(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "Verification email sent"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := h.sessionUC.CurrentUser(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, principal)
}
