package auth

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	firebaseinfra "storefront/internal/infra/firebase"

	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// ProviderParams defines dependencies for selecting the IdentityProvider
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Store  repository.StateStore
	Hasher service.PasswordHasher
}

// NewIdentityProvider selects the identity provider from auth.provider. The
// Firebase app is only initialized when it is selected.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderLocal:
		tokens, err := NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Warn("Using local identity provider; not for production use")

		return NewLocalProvider(params.Config, params.Store, params.Hasher, tokens), nil

	case constants.AuthProviderFirebase, "":
		app, err := firebaseinfra.NewApp(params.Config, params.Logger)
		if err != nil {
			return nil, err
		}

		ctx := context.Background()
		client, err := firebaseinfra.NewAuthClient(ctx, app)
		if err != nil {
			return nil, err
		}

		toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(params.Config.Firebase.WebAPIKey))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create identity toolkit client")
		}

		return NewFirebaseProvider(client, toolkit, params.Logger), nil

	default:
		return nil, errors.Newf("unknown auth provider: %s", params.Config.Auth.Provider)
	}
}
