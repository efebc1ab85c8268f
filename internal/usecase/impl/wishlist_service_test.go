package impl

import (
	"sync"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/state"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service usecase.WishlistUsecase
	catalog *mockUsecase.MockCatalogUsecase
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	catalog := mockUsecase.NewMockCatalogUsecase(t)

	return wishlistServiceFixtures{
		service: NewWishlistService(newTestRegistry(state.NewMemoryStore()), catalog, newDiscardLogger()),
		catalog: catalog,
	}
}

func TestWishlistService_AddIsIdempotent(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct("p-1", 12), nil).Once()

	first, err := fx.service.AddToWishlist(ctx, testClientID, "p-1")
	require.NoError(t, err)
	second, err := fx.service.AddToWishlist(ctx, testClientID, "p-1")
	require.NoError(t, err)

	assert.Len(t, first.Entries, 1)
	assert.Len(t, second.Entries, 1)
	assert.Equal(t, "home", second.Entries[0].Category)
}

func TestWishlistService_ConcurrentAddsKeepOneEntry(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct("p-1", 12), nil).Maybe()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.AddToWishlist(ctx, testClientID, "p-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	wishlist, err := fx.service.GetWishlist(ctx, testClientID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Entries, 1)
}

func TestWishlistService_AddThenRemoveRestoresState(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct("p-1", 12), nil)
	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-2").Return(testProduct("p-2", 7), nil)

	before, err := fx.service.AddToWishlist(ctx, testClientID, "p-1")
	require.NoError(t, err)

	_, err = fx.service.AddToWishlist(ctx, testClientID, "p-2")
	require.NoError(t, err)
	after, err := fx.service.RemoveFromWishlist(ctx, testClientID, "p-2")
	require.NoError(t, err)

	assert.Equal(t, before.Entries, after.Entries)
}

func TestWishlistService_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	fx.catalog.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.AddToWishlist(t.Context(), testClientID, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))

	wishlist, err := fx.service.GetWishlist(t.Context(), testClientID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Entries)
}

func TestWishlistService_Clear(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := t.Context()

	fx.catalog.EXPECT().GetProduct(mock.Anything, "p-1").Return(testProduct("p-1", 12), nil)
	_, err := fx.service.AddToWishlist(ctx, testClientID, "p-1")
	require.NoError(t, err)

	wishlist, err := fx.service.ClearWishlist(ctx, testClientID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Entries)
}
