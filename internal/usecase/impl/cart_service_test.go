package impl

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/state"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	catalog *mockUsecase.MockCatalogUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	srv := NewCartService(CartServiceParams{
		Registry: newTestRegistry(state.NewMemoryStore()),
		Catalog:  catalog,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})
	srv.(*cartService).now = func() time.Time { return testNow }

	return cartServiceFixtures{service: srv, catalog: catalog}
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-20").Return(testProduct("p-20", 20), nil)

	view, err := fx.service.AddItem(ctx, testClientID, &usecase.AddCartItemInput{ProductID: "p-20", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	item := view.Cart.Items[0]
	assert.Equal(t, "Product p-20", item.Title)
	assert.Equal(t, "https://cdn.example.com/p-20.jpg", item.ImageURL)
	assert.Equal(t, testNow, item.AddedAt)
	assert.Equal(t, 2, view.ItemCount)
	assert.InDelta(t, 40.0, view.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 4.0, view.Totals.Tax, 1e-9)
	assert.InDelta(t, 53.99, view.Totals.Total, 1e-9)
}

func TestCartService_AddItem_VariantsStayDistinct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "shirt").Return(testProduct("shirt", 15), nil)

	for _, variant := range []entity.Variant{{Size: "M"}, {Size: "L"}, {Size: "M"}} {
		_, err := fx.service.AddItem(ctx, testClientID, &usecase.AddCartItemInput{ProductID: "shirt", Quantity: 1, Variant: variant})
		require.NoError(t, err)
	}

	view, err := fx.service.GetCart(ctx, testClientID)
	require.NoError(t, err)
	require.Len(t, view.Cart.Items, 2)
	assert.Equal(t, 2, view.Cart.Items[0].Quantity)
	assert.Equal(t, 1, view.Cart.Items[1].Quantity)
}

func TestCartService_AddItem_Validation(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(t.Context(), testClientID, &usecase.AddCartItemInput{ProductID: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	fx.catalog.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.AddItem(t.Context(), testClientID, &usecase.AddCartItemInput{ProductID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := t.Context()
	key := entity.NewLineKey("p-5", entity.Variant{})

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-5").Return(testProduct("p-5", 5), nil)
	_, err := fx.service.AddItem(ctx, testClientID, &usecase.AddCartItemInput{ProductID: "p-5"})
	require.NoError(t, err)

	view, err := fx.service.UpdateQuantity(ctx, testClientID, key, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.ItemCount)

	view, err = fx.service.UpdateQuantity(ctx, testClientID, key, 0)
	require.NoError(t, err, "quantities below one remove the line")
	assert.True(t, view.Cart.IsEmpty())

	_, err = fx.service.UpdateQuantity(ctx, testClientID, key, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLineNotFound))
}

func TestCartService_ClearCart_Idempotent(t *testing.T) {
	fx := createTestCartService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-5").Return(testProduct("p-5", 5), nil)
	_, err := fx.service.AddItem(ctx, testClientID, &usecase.AddCartItemInput{ProductID: "p-5"})
	require.NoError(t, err)

	for range 2 {
		view, err := fx.service.ClearCart(ctx, testClientID)
		require.NoError(t, err)
		assert.True(t, view.Cart.IsEmpty())
		assert.Zero(t, view.Totals.Total)
	}
}

func TestCartService_WatchCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := t.Context()

	views, cancel := fx.service.WatchCart(testClientID)

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-5").Return(testProduct("p-5", 5), nil)
	_, err := fx.service.AddItem(ctx, testClientID, &usecase.AddCartItemInput{ProductID: "p-5", Quantity: 3})
	require.NoError(t, err)

	select {
	case view := <-views:
		assert.Equal(t, 3, view.ItemCount)
		assert.InDelta(t, 15.0, view.Totals.Subtotal, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("no cart update delivered")
	}

	cancel()
	select {
	case _, open := <-views:
		assert.False(t, open, "views close after cancel")
	case <-time.After(time.Second):
		t.Fatal("views not closed after cancel")
	}
}
