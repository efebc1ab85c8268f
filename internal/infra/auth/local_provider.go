package auth

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// localAccount is the stored form of a local account.
type localAccount struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	PasswordHash  string    `json:"passwordHash"`
	EmailVerified bool      `json:"emailVerified"`
	Admin         bool      `json:"admin"`
	RevokedBefore time.Time `json:"revokedBefore,omitzero"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *localAccount) principal() *entity.Principal {
	return &entity.Principal{
		UID:           a.UID,
		Email:         a.Email,
		DisplayName:   a.DisplayName,
		EmailVerified: a.EmailVerified,
		Admin:         a.Admin,
	}
}

// localProvider keeps accounts in the state store and issues its own JWTs.
// It is meant for development and tests where Firebase is not available.
type localProvider struct {
	store    repository.StateStore
	hasher   service.PasswordHasher
	tokens   service.TokenService
	linkBase string
	now      func() time.Time
}

// NewLocalProvider creates the development IdentityProvider.
func NewLocalProvider(cfg *config.Config, store repository.StateStore, hasher service.PasswordHasher, tokens service.TokenService) service.IdentityProvider {
	linkBase := "http://localhost:3000"
	if cfg.QRCode != nil && cfg.QRCode.BaseURL != "" {
		linkBase = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &localProvider{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		linkBase: linkBase,
		now:      time.Now,
	}
}

func emailKey(email string) string {
	return constants.StateKeyLocalUser + "email:" + strings.ToLower(strings.TrimSpace(email))
}

func uidKey(uid string) string {
	return constants.StateKeyLocalUser + "uid:" + uid
}

func (p *localProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &localAccount{
		UID:          uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    p.now().UTC(),
	}

	payload, err := json.Marshal(account)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	created, err := p.store.SetNX(ctx, emailKey(email), payload, 0)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, domainerrors.ErrEmailAlreadyExists
	}
	if err := p.store.Set(ctx, uidKey(account.UID), []byte(account.Email), 0); err != nil {
		return nil, err
	}

	return p.session(account)
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	account, err := p.loadByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !p.hasher.Check(password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return p.session(account)
}

// VerifyIDToken rejects tokens issued before the account's last revocation.
func (p *localProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Principal, error) {
	claims, err := p.tokens.ValidateToken(idToken)
	if err != nil {
		return nil, err
	}

	account, err := p.loadByUID(ctx, claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Before(account.RevokedBefore.Truncate(time.Second)) {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token revoked")
	}

	return &entity.Principal{
		UID:           claims.Subject,
		Email:         claims.Email,
		DisplayName:   claims.Name,
		EmailVerified: account.EmailVerified,
		Admin:         claims.Admin,
	}, nil
}

func (p *localProvider) RefreshPrincipal(ctx context.Context, uid string) (*entity.Principal, error) {
	account, err := p.loadByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return account.principal(), nil
}

func (p *localProvider) RevokeSessions(ctx context.Context, uid string) error {
	account, err := p.loadByUID(ctx, uid)
	if err != nil {
		return err
	}
	account.RevokedBefore = p.now().UTC()

	return p.save(ctx, account)
}

func (p *localProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return p.actionLink(ctx, email, "resetPassword")
}

func (p *localProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	return p.actionLink(ctx, email, "verifyEmail")
}

func (p *localProvider) SetAdmin(ctx context.Context, email string, admin bool) (*entity.Principal, error) {
	account, err := p.loadByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	account.Admin = admin
	// Outstanding tokens carry the old claim; force a new sign-in.
	account.RevokedBefore = p.now().UTC()
	if err := p.save(ctx, account); err != nil {
		return nil, err
	}

	return account.principal(), nil
}

func (p *localProvider) actionLink(ctx context.Context, email, mode string) (string, error) {
	if _, err := p.loadByEmail(ctx, email); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("mode", mode)
	query.Set("oobCode", uuid.NewString())
	query.Set("email", email)

	return p.linkBase + "/auth/action?" + query.Encode(), nil
}

func (p *localProvider) session(account *localAccount) (*entity.Session, error) {
	idToken, refreshToken, expiresAt, err := p.tokens.GenerateTokens(account.UID, account.Email, account.DisplayName, account.Admin)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		IDToken:      idToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         account.principal(),
	}, nil
}

func (p *localProvider) loadByEmail(ctx context.Context, email string) (*localAccount, error) {
	raw, err := p.store.Get(ctx, emailKey(email))
	if errors.Is(err, repository.ErrStateNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var account localAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, errors.Wrap(err, "failed to decode local account")
	}

	return &account, nil
}

func (p *localProvider) loadByUID(ctx context.Context, uid string) (*localAccount, error) {
	email, err := p.store.Get(ctx, uidKey(uid))
	if errors.Is(err, repository.ErrStateNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return p.loadByEmail(ctx, string(email))
}

func (p *localProvider) save(ctx context.Context, account *localAccount) error {
	payload, err := json.Marshal(account)
	if err != nil {
		return errors.WithStack(err)
	}

	return p.store.Set(ctx, emailKey(account.Email), payload, 0)
}
