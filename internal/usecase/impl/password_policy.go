package impl

import (
	"strings"
	"unicode"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
)

// validatePassword enforces the configured password strength rules.
func validatePassword(policy *config.PasswordStrengthConfig, password string) error {
	if policy == nil {
		return nil
	}

	length := len([]rune(password))
	var problems []string
	if policy.MinLength > 0 && length < policy.MinLength {
		problems = append(problems, "too short")
	}
	if policy.MaxLength > 0 && length > policy.MaxLength {
		problems = append(problems, "too long")
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if policy.RequireUppercase && !upper {
		problems = append(problems, "needs an uppercase letter")
	}
	if policy.RequireLowercase && !lower {
		problems = append(problems, "needs a lowercase letter")
	}
	if policy.RequireNumbers && !digit {
		problems = append(problems, "needs a number")
	}
	if policy.RequireSpecial && !special {
		problems = append(problems, "needs a special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(problems, ", "))
	}

	return nil
}
