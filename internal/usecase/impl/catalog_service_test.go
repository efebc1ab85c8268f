package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	client   *mockSvc.MockCatalogClient
	products *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	client := mockSvc.NewMockCatalogClient(t)
	products := mockRepo.NewMockProductRepository(t)

	return catalogServiceFixtures{
		service:  NewCatalogService(client, products, newDiscardLogger()),
		client:   client,
		products: products,
	}
}

func storeProduct(id, title, category string) *entity.Product {
	return &entity.Product{ID: id, Title: title, Category: category, Price: 10, Source: entity.ProductSourceStore}
}

func TestCatalogService_ListProducts_MergesStoreProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	query := service.CatalogQuery{Category: "home", Limit: 10}

	fx.client.EXPECT().ListProducts(mock.Anything, query).Return([]*entity.Product{testProduct("1", 5)}, nil)
	fx.products.EXPECT().
		List(mock.Anything, &repository.ProductFilter{Category: "home", Limit: storeProductScan}).
		Return([]*entity.Product{
			storeProduct("s-1", "Lamp", "home"),
			storeProduct("s-2", "Shoe", "fashion"),
		}, nil)

	products, err := fx.service.ListProducts(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "s-1", products[1].ID)
}

func TestCatalogService_ListProducts_DegradesWhenCatalogFails(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.client.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	fx.products.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("store down"))

	products, err := fx.service.ListProducts(t.Context(), service.CatalogQuery{})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("catalog hit", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.client.EXPECT().GetProduct(mock.Anything, "1").Return(testProduct("1", 5), nil)

		product, err := fx.service.GetProduct(t.Context(), "1")
		require.NoError(t, err)
		assert.Equal(t, "1", product.ID)
	})

	t.Run("falls back to store products", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.client.EXPECT().GetProduct(mock.Anything, "s-1").Return(nil, repository.ErrProductNotFound)
		fx.products.EXPECT().FindByID(mock.Anything, "s-1").Return(storeProduct("s-1", "Lamp", "home"), nil)

		product, err := fx.service.GetProduct(t.Context(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, entity.ProductSourceStore, product.Source)
	})

	t.Run("not found anywhere", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.client.EXPECT().GetProduct(mock.Anything, "x").Return(nil, repository.ErrProductNotFound)
		fx.products.EXPECT().FindByID(mock.Anything, "x").Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(t.Context(), "x")
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("catalog outage", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.client.EXPECT().GetProduct(mock.Anything, "x").Return(nil, errors.New("connection refused"))
		fx.products.EXPECT().FindByID(mock.Anything, "x").Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(t.Context(), "x")
		assert.True(t, errors.Is(err, domainerrors.ErrCatalogUnavailable))
	})
}

func TestSettingsService_UpdateCatalogSettings(t *testing.T) {
	settings := mockRepo.NewMockSettingsRepository(t)
	srv := NewSettingsService(settings, newDiscardLogger())

	_, err := srv.UpdateCatalogSettings(t.Context(), &entity.CatalogSettings{DefaultLimit: -1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	updated := &entity.CatalogSettings{BaseURL: "https://catalog.example.com", DefaultLimit: 30}
	settings.EXPECT().SaveCatalogSettings(mock.Anything, updated).Return(nil)
	settings.EXPECT().GetCatalogSettings(mock.Anything).Return(updated, nil)

	got, err := srv.UpdateCatalogSettings(t.Context(), updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
