package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsBody = `{"products":[
  {"id":1,"title":"Essence Mascara","category":"beauty","price":9.99,"discountPercentage":7.17,"stock":5,"thumbnail":"https://img/1.png"},
  {"id":"sku-2","title":"Red Lipstick","category":"beauty","price":12.99,"stock":0,"images":["https://img/2.png"]}
],"total":2,"skip":0,"limit":2}`

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL string, settings repository.SettingsRepository) service.CatalogClient {
	t.Helper()

	cfg := &config.Config{Catalog: &config.CatalogConfig{
		BaseURL:      baseURL,
		Timeout:      time.Second,
		DefaultLimit: 30,
	}}

	return NewHTTPClient(ClientParams{Config: cfg, Settings: settings, Logger: newDiscardLogger()})
}

func TestHTTPClient_ListProducts(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, productsBody)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	products, err := client.ListProducts(context.Background(), service.CatalogQuery{})
	require.NoError(t, err)

	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "limit=30", gotQuery)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "sku-2", products[1].ID)
	assert.Equal(t, entity.ProductSourceCatalog, products[0].Source)
	assert.Equal(t, "https://img/2.png", products[1].ImageURL())
}

func TestHTTPClient_ListProducts_Routes(t *testing.T) {
	tests := []struct {
		name      string
		query     service.CatalogQuery
		wantPath  string
		wantQuery string
	}{
		{
			name:      "category route",
			query:     service.CatalogQuery{Category: "beauty", Limit: 5},
			wantPath:  "/products/category/beauty",
			wantQuery: "limit=5",
		},
		{
			name:      "search route",
			query:     service.CatalogQuery{Search: "mascara"},
			wantPath:  "/products/search",
			wantQuery: "limit=30&q=mascara",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				_, _ = io.WriteString(w, `{"products":[]}`)
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, nil).ListProducts(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestHTTPClient_SearchFiltersCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"products":[
			{"id":1,"title":"Lip Gloss","category":"beauty","price":5},
			{"id":2,"title":"Lip Balm Holder","category":"home","price":3}
		]}`)
	}))
	defer server.Close()

	products, err := newTestClient(t, server.URL, nil).ListProducts(context.Background(), service.CatalogQuery{
		Search:   "lip",
		Category: "beauty",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
}

func TestHTTPClient_GetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/7" {
			http.NotFound(w, r)

			return
		}
		_, _ = io.WriteString(w, `{"id":7,"title":"Perfume","price":49.5,"discountPercentage":10}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	product, err := client.GetProduct(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", product.ID)
	assert.InDelta(t, 49.5, product.Price, 1e-9)

	_, err = client.GetProduct(context.Background(), "8")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestHTTPClient_ServerErrorAndTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, nil).ListProducts(context.Background(), service.CatalogQuery{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrProductNotFound)

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		_, _ = io.WriteString(w, `{"products":[]}`)
	}))
	defer slow.Close()

	_, err = newTestClient(t, slow.URL, nil).ListProducts(context.Background(), service.CatalogQuery{})
	assert.Error(t, err)
}

func TestHTTPClient_SettingsOverride(t *testing.T) {
	var hits int
	override := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "limit=3", r.URL.RawQuery)
		_, _ = io.WriteString(w, `{"products":[]}`)
	}))
	defer override.Close()

	store := state.NewMemoryStore()
	settings := state.NewSettingsRepository(store)
	require.NoError(t, settings.SaveCatalogSettings(context.Background(), &entity.CatalogSettings{
		BaseURL:      override.URL + "/",
		DefaultLimit: 3,
	}))

	client := newTestClient(t, "http://127.0.0.1:1", settings)

	_, err := client.ListProducts(context.Background(), service.CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}
