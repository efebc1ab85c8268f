package impl

import (
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	strict := &config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        16,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}

	tests := []struct {
		name     string
		policy   *config.PasswordStrengthConfig
		password string
		wantErr  bool
	}{
		{name: "no policy", policy: nil, password: "a"},
		{name: "default minimum met", policy: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 128}, password: "abcdef"},
		{name: "default minimum missed", policy: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 128}, password: "abcde", wantErr: true},
		{name: "multibyte counts runes", policy: &config.PasswordStrengthConfig{MinLength: 6}, password: "ññññññ"},
		{name: "strict ok", policy: strict, password: "Str0ng!pw"},
		{name: "strict missing special", policy: strict, password: "Str0ngpw", wantErr: true},
		{name: "strict missing upper", policy: strict, password: "str0ng!pw", wantErr: true},
		{name: "strict too long", policy: strict, password: "Str0ng!pwStr0ng!pw", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.policy, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		})
	}
}
