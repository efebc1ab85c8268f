package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(ProductHandlerParams{CatalogUC: catalogUC})

	e := newTestEcho()
	e.GET("/products", h.ListProducts)
	e.GET("/products/:id", h.GetProduct)

	t.Run("list forwards the query", func(t *testing.T) {
		catalogUC.EXPECT().
			ListProducts(mock.Anything, service.CatalogQuery{Limit: 12, Category: "home", Search: "lamp"}).
			Return([]*entity.Product{{ID: "1", Title: "Lamp"}}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?limit=12&category=home&q=lamp", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]entity.Product](t, rec), 1)
	})

	t.Run("unknown product", func(t *testing.T) {
		catalogUC.EXPECT().GetProduct(mock.Anything, "404").Return(nil, domainerrors.ErrProductNotFound).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/404", nil))

		assert.Equal(t, domainerrors.ErrProductNotFound.HTTPCode(), rec.Code)
		assert.NotEmpty(t, decodeEnvelope(t, rec).Meta.RequestID)
	})
}

func TestWishlistHandler(t *testing.T) {
	wishlistUC := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: wishlistUC})

	e := newTestEcho()
	g := e.Group("/wishlist", withClientID)
	g.GET("", h.GetWishlist)
	g.DELETE("", h.ClearWishlist)
	g.POST("/items", h.AddItem)
	g.DELETE("/items/:productId", h.RemoveItem)

	saved := &entity.Wishlist{ClientID: testClientID, Entries: []entity.WishlistEntry{{ProductID: "p1"}}}
	wishlistUC.EXPECT().AddToWishlist(mock.Anything, testClientID, "p1").Return(saved, nil).Once()
	wishlistUC.EXPECT().RemoveFromWishlist(mock.Anything, testClientID, "p1").Return(&entity.Wishlist{ClientID: testClientID}, nil).Once()
	wishlistUC.EXPECT().GetWishlist(mock.Anything, testClientID).Return(&entity.Wishlist{ClientID: testClientID}, nil).Once()
	wishlistUC.EXPECT().ClearWishlist(mock.Anything, testClientID).Return(&entity.Wishlist{ClientID: testClientID}, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/wishlist/items", `{"productId":"p1"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[entity.Wishlist](t, rec).Entries, 1)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/wishlist/items/p1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[entity.Wishlist](t, rec).Entries)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wishlist", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/wishlist", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/wishlist/items", `{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsHandler(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{SettingsUC: settingsUC})

	e := newTestEcho()
	e.GET("/settings/catalog", h.GetCatalogSettings)
	e.PUT("/settings/catalog", h.UpdateCatalogSettings)
	e.DELETE("/settings/catalog", h.ResetCatalogSettings)

	override := &entity.CatalogSettings{BaseURL: "https://catalog.example.com", DefaultLimit: 30}
	settingsUC.EXPECT().UpdateCatalogSettings(mock.Anything, override).Return(override, nil).Once()
	settingsUC.EXPECT().GetCatalogSettings(mock.Anything).Return(override, nil).Once()
	settingsUC.EXPECT().ResetCatalogSettings(mock.Anything).Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/settings/catalog", `{"baseUrl":"https://catalog.example.com","defaultLimit":30}`))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(http.MethodPut, "/settings/catalog", `{"baseUrl":"not a url"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, decodeData[entity.CatalogSettings](t, rec).DefaultLimit)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/settings/catalog", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
