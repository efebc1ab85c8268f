package auth

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestTranslateSignInError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "bad password",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "INVALID_PASSWORD"},
			want: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "EMAIL_NOT_FOUND"},
			want: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "throttled",
			err:  &googleapi.Error{Code: http.StatusBadRequest, Message: "TOO_MANY_ATTEMPTS_TRY_LATER"},
			want: domainerrors.ErrTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateSignInError(tt.err), tt.want)
		})
	}

	other := translateSignInError(errors.New("dial tcp: i/o timeout"))
	assert.NotErrorIs(t, other, domainerrors.ErrInvalidCredentials)
}
