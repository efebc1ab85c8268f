package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/document"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/mail"
	"storefront/internal/infra/media"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/secret"
	"storefront/internal/infra/state"
	"storefront/internal/store"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		// Resolve sm:// references before anything reads the config
		fx.Decorate(secret.Decorate),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
			state.NewStateStore,
			state.NewSettingsRepository,
			store.ProvideRegistry,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewIdentityProvider,
			catalog.NewHTTPClient,
			mail.NewMailer,
			media.NewImageStore,
			qrcode.NewFromConfig,
			newInvoiceRenderer,
		),
	)
}

// newInvoiceRenderer heads invoices with the mail sender name, falling back to the service name
func newInvoiceRenderer(cfg *config.Config) service.InvoiceRenderer {
	storeName := cfg.Env.ServiceName
	if cfg.SendGrid != nil && strings.TrimSpace(cfg.SendGrid.FromName) != "" {
		storeName = cfg.SendGrid.FromName
	}

	return document.NewInvoiceRenderer(storeName)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSettingsService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewSessionService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewAdminService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewCheckoutHandler,
			handler.NewAuthHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
			handler.NewAdminProductHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
