package entity

import "time"

// Principal is the authenticated caller.
type Principal struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	EmailVerified bool   `json:"emailVerified"`
	Admin         bool   `json:"isAdmin"`
}

// IsAdmin is the single authorization predicate for admin capabilities.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.UID != "" && p.Admin
}

// IsAuthenticated reports whether p represents a signed-in user.
func (p *Principal) IsAuthenticated() bool {
	return p != nil && p.UID != ""
}

// CanAccessOrder reports whether p may read the order.
func (p *Principal) CanAccessOrder(order *Order) bool {
	return p.IsAdmin() || (p.IsAuthenticated() && order.BelongsTo(p.UID))
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	IDToken      string     `json:"idToken"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	User         *Principal `json:"user"`
}
