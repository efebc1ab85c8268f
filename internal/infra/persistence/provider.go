// Package persistence selects the storage driver behind the repository interfaces.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/firestore"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies for building repositories
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories served by the selected driver.
type Repositories struct {
	fx.Out

	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
	TxManager repository.TransactionManager
}

// New builds the repositories for persistence.driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Persistence.Driver {
	case constants.PersistenceDriverFirestore, "":
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Orders:    firestore.NewOrderRepository(client),
			Customers: firestore.NewCustomerRepository(client),
			Products:  firestore.NewProductRepository(client),
			TxManager: firestore.NewTransactionManager(client),
		}, nil

	case constants.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Orders:    postgres.NewOrderRepository(db),
			Customers: postgres.NewCustomerRepository(db),
			Products:  postgres.NewProductRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Newf("unknown persistence driver: %s", params.Config.Persistence.Driver)
	}
}
