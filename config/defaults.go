package config

import (
	"time"

	"storefront/internal/domain/constants"
)

// applyDefaults fills sections that are missing from config.yaml so that a
// minimal file still produces a runnable development setup.
func applyDefaults(cfg *Config) {
	if cfg.Env.Env == "" {
		cfg.Env.Env = constants.EnvDevelop
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "storefront"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = constants.PersistenceDriverFirestore
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = constants.AuthProviderFirebase
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
	if cfg.Auth.RefreshTTL == 0 {
		cfg.Auth.RefreshTTL = 30 * 24 * time.Hour
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.PasswordStrength.MinLength == 0 {
		cfg.PasswordStrength.MinLength = 6
	}
	if cfg.PasswordStrength.MaxLength == 0 {
		cfg.PasswordStrength.MaxLength = 128
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
	}

	if cfg.State == nil {
		cfg.State = &StateConfig{}
	}
	if cfg.State.Provider == "" {
		cfg.State.Provider = constants.StateProviderMemory
	}
	if cfg.State.CartTTL == 0 {
		cfg.State.CartTTL = 30 * 24 * time.Hour
	}
	if cfg.State.WishlistTTL == 0 {
		cfg.State.WishlistTTL = 90 * 24 * time.Hour
	}
	if cfg.State.IdleEviction == 0 {
		cfg.State.IdleEviction = 10 * time.Minute
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://dummyjson.com"
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 10 * time.Second
	}
	if cfg.Catalog.DefaultLimit == 0 {
		cfg.Catalog.DefaultLimit = 30
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{ShippingFlatFee: 9.99, TaxRate: 0.10}
	}
	if cfg.Checkout.EstimatedDeliveryDays == 0 {
		cfg.Checkout.EstimatedDeliveryDays = 5
	}
	if cfg.Checkout.SubmitLockTTL == 0 {
		cfg.Checkout.SubmitLockTTL = 15 * time.Second
	}
	if cfg.Checkout.ConfirmationRedirectDelay == 0 {
		cfg.Checkout.ConfirmationRedirectDelay = 3 * time.Second
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.SendGrid == nil {
		cfg.SendGrid = &SendGridConfig{}
	}
	if cfg.Notifications == nil {
		cfg.Notifications = &NotificationsConfig{}
	}
	if cfg.Notifications.AdminTopic == "" {
		cfg.Notifications.AdminTopic = "admin-orders"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.BucketURL == "" {
		cfg.Media.BucketURL = "mem://"
	}
	if cfg.Media.MaxUploadSize == 0 {
		cfg.Media.MaxUploadSize = 5 << 20
	}
	if cfg.Media.ThumbnailWidth == 0 {
		cfg.Media.ThumbnailWidth = 300
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{RequestsPerSecond: 1, Burst: 5}
	}
}
