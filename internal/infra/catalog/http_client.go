// Package catalog reads products from a dummyjson-compatible HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const maxResponseBytes = 4 << 20

// ClientParams defines dependencies for the catalog client
type ClientParams struct {
	fx.In

	Config   *config.Config
	Settings repository.SettingsRepository
	Logger   *slog.Logger
}

type httpClient struct {
	baseURL      string
	defaultLimit int
	settings     repository.SettingsRepository
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewHTTPClient creates a CatalogClient. Base URL and default limit can be
// overridden at runtime through the settings repository.
func NewHTTPClient(params ClientParams) service.CatalogClient {
	timeout := params.Config.Catalog.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &httpClient{
		baseURL:      strings.TrimRight(params.Config.Catalog.BaseURL, "/"),
		defaultLimit: params.Config.Catalog.DefaultLimit,
		settings:     params.Settings,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       params.Logger,
	}
}

type productList struct {
	Products []productPayload `json:"products"`
}

// productPayload accepts numeric and string ids.
type productPayload struct {
	ID                 json.Number `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Category           string      `json:"category"`
	Brand              string      `json:"brand"`
	Price              float64     `json:"price"`
	DiscountPercentage float64     `json:"discountPercentage"`
	Rating             float64     `json:"rating"`
	Stock              int         `json:"stock"`
	Thumbnail          string      `json:"thumbnail"`
	Images             []string    `json:"images"`
}

func (p *productPayload) UnmarshalJSON(data []byte) error {
	type alias productPayload
	var raw struct {
		alias
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = productPayload(raw.alias)
	p.ID = json.Number(strings.Trim(string(raw.ID), `"`))

	return nil
}

func (p *productPayload) toEntity() *entity.Product {
	return &entity.Product{
		ID:                 p.ID.String(),
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
		Source:             entity.ProductSourceCatalog,
	}
}

// ListProducts uses /products/search when a search term is given and
// /products/category/{category} when a category is given.
func (c *httpClient) ListProducts(ctx context.Context, query service.CatalogQuery) ([]*entity.Product, error) {
	baseURL, defaultLimit := c.endpoint(ctx)

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	path := "/products"
	params := url.Values{}
	switch {
	case query.Search != "":
		path = "/products/search"
		params.Set("q", query.Search)
	case query.Category != "":
		path = "/products/category/" + url.PathEscape(query.Category)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	target := baseURL + path
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var list productList
	if err := c.getJSON(ctx, target, &list); err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(list.Products))
	for i := range list.Products {
		product := list.Products[i].toEntity()
		// The search route ignores category, so filter here.
		if query.Search != "" && !product.Matches(query.Category, "") {
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

func (c *httpClient) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	baseURL, _ := c.endpoint(ctx)

	var payload productPayload
	if err := c.getJSON(ctx, baseURL+"/products/"+url.PathEscape(id), &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *httpClient) endpoint(ctx context.Context) (baseURL string, defaultLimit int) {
	baseURL, defaultLimit = c.baseURL, c.defaultLimit
	if c.settings == nil {
		return baseURL, defaultLimit
	}

	overrides, err := c.settings.GetCatalogSettings(ctx)
	if err != nil {
		c.logger.Warn("Failed to read catalog settings, using configured endpoint", slog.Any("error", err))

		return baseURL, defaultLimit
	}
	if overrides.BaseURL != "" {
		baseURL = strings.TrimRight(overrides.BaseURL, "/")
	}
	if overrides.DefaultLimit > 0 {
		defaultLimit = overrides.DefaultLimit
	}

	return baseURL, defaultLimit
}

func (c *httpClient) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "catalog request %s", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return repository.ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Newf("catalog returned status %d for %s", resp.StatusCode, target)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return errors.Wrap(err, "decode catalog response")
	}

	return nil
}
