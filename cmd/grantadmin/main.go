// Command grantadmin sets or clears the admin claim of an account.
//
//	grantadmin -email ada@example.com
//	grantadmin -email ada@example.com -revoke
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/secret"
	"storefront/internal/infra/state"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	email := flag.String("email", "", "Email address of the account")
	revoke := flag.Bool("revoke", false, "Clear the admin claim instead of setting it")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	principal, err := run(*email, *revoke)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grantadmin: %+v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s) admin=%t\n", principal.Email, principal.UID, principal.Admin)
}

func run(email string, revoke bool) (*entity.Principal, error) {
	var adminUC usecase.AdminUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			state.NewStateStore,
			auth.NewBcryptHasher,
			auth.NewIdentityProvider,
			impl.NewAdminService,
		),
		fx.Decorate(secret.Decorate),
		pubsub.Module,
		fx.Populate(&adminUC),
	)
	if err := app.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to build application")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to start application")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	if revoke {
		return adminUC.RevokeAdmin(ctx, email)
	}

	return adminUC.GrantAdmin(ctx, email)
}
