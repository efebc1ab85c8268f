package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/state"
	"storefront/internal/store"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 6,
			MaxLength: 128,
		},
		Checkout: &config.CheckoutConfig{
			ShippingFlatFee:           9.99,
			TaxRate:                   0.10,
			EstimatedDeliveryDays:     5,
			SubmitLockTTL:             15 * time.Second,
			ConfirmationRedirectDelay: 3 * time.Second,
		},
		Notifications: &config.NotificationsConfig{AdminTopic: "admin-orders"},
	}
}

func newTestRegistry(st *state.MemoryStore) *store.Registry {
	return store.NewRegistry(st, &config.StateConfig{
		CartTTL:      time.Hour,
		WishlistTTL:  time.Hour,
		IdleEviction: time.Minute,
	}, newDiscardLogger())
}

var testNow = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func testProduct(id string, price float64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Title:     "Product " + id,
		Price:     price,
		Thumbnail: "https://cdn.example.com/" + id + ".jpg",
		Category:  "home",
		Source:    entity.ProductSourceCatalog,
	}
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{UID: "user-1", Email: "ada@example.com", DisplayName: "Ada"}
}

func testAddress() *entity.ShippingAddress {
	return &entity.ShippingAddress{
		FullName:   "Ada Lovelace",
		Line1:      "12 St James's Square",
		City:       "London",
		PostalCode: "SW1Y 4JH",
		Country:    "GB",
	}
}
