package entity

// CatalogSettings are the admin overrides for the catalog endpoint.
// Empty fields fall back to configuration.
type CatalogSettings struct {
	BaseURL      string `json:"baseUrl,omitempty"`
	DefaultLimit int    `json:"defaultLimit,omitempty"`
}
