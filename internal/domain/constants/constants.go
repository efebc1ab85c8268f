// Package constants defines configuration values recognised across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers.
const (
	PersistenceDriverFirestore = "firestore"
	PersistenceDriverPostgres  = "postgres"
)

// Identity providers.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Client state providers.
const (
	StateProviderRedis  = "redis"
	StateProviderMemory = "memory"
)

// HTTP headers owned by the storefront API.
const (
	HeaderClientID       = "X-Client-Id"
	HeaderIdempotencyKey = "Idempotency-Key"
)

// Firestore collections and state store key prefixes.
const (
	CollectionOrders   = "orders"
	CollectionUsers    = "users"
	CollectionProducts = "products"

	StateKeyPrefix              = "storefront:"
	StateKeyCart                = StateKeyPrefix + "cart:"
	StateKeyWishlist            = StateKeyPrefix + "wishlist:"
	StateKeyCheckoutLock        = StateKeyPrefix + "checkout_lock:"
	StateKeyLocalUser           = StateKeyPrefix + "users:"
	StateKeyCatalogBaseURL      = StateKeyPrefix + "settings:catalog_base_url"
	StateKeyCatalogDefaultLimit = StateKeyPrefix + "settings:catalog_default_limit"
)

// AdminClaim is the custom claim that marks an administrator.
const AdminClaim = "admin"
