package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC})

	e := newTestEcho()
	g := e.Group("/auth")
	g.POST("/signup", h.SignUp)
	g.POST("/login", h.Login)
	g.POST("/password-reset", h.SendPasswordReset)
	signedIn := g.Group("", withPrincipal(testPrincipal()))
	signedIn.POST("/logout", h.Logout)
	signedIn.POST("/verify-email", h.SendEmailVerification)
	signedIn.GET("/me", h.Me)

	return e, sessionUC
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		e, sessionUC := createTestAuthHandler(t)

		sessionUC.EXPECT().
			SignUp(mock.Anything, &usecase.SignUpInput{Email: "ada@example.com", Password: "secret1", DisplayName: "Ada"}).
			Return(&entity.Session{IDToken: "token", ExpiresAt: time.Now().Add(time.Hour), User: testPrincipal()}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/signup", `{"email":"ada@example.com","password":"secret1","displayName":"Ada"}`))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		session := decodeData[entity.Session](t, rec)
		assert.Equal(t, "token", session.IDToken)
		assert.Equal(t, "user-1", session.User.UID)
	})

	t.Run("invalid email", func(t *testing.T) {
		e, _ := createTestAuthHandler(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"secret1"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "email")
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, sessionUC := createTestAuthHandler(t)

		sessionUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailAlreadyExists).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/signup", `{"email":"ada@example.com","password":"secret1"}`))

		assert.Equal(t, domainerrors.ErrEmailAlreadyExists.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrEmailAlreadyExists.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	e, sessionUC := createTestAuthHandler(t)

	sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_SendPasswordReset(t *testing.T) {
	e, sessionUC := createTestAuthHandler(t)

	sessionUC.EXPECT().SendPasswordReset(mock.Anything, "ghost@example.com").Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/auth/password-reset", `{"email":"ghost@example.com"}`))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAuthHandler_Session(t *testing.T) {
	e, sessionUC := createTestAuthHandler(t)

	admin := &entity.Principal{UID: "user-1", Email: "ada@example.com", Admin: true}
	sessionUC.EXPECT().CurrentUser(mock.Anything, testPrincipal()).Return(admin, nil).Once()
	sessionUC.EXPECT().Logout(mock.Anything, testPrincipal()).Return(nil).Once()
	sessionUC.EXPECT().SendEmailVerification(mock.Anything, testPrincipal()).Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.Principal](t, rec).Admin)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/verify-email", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
