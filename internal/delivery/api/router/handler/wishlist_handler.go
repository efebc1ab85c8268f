package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
}

// WishlistHandler serves the wishlist of the calling client.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{wishlistUC: params.WishlistUC}
}

// AddToWishlistRequest is the body of POST /wishlist/items
type AddToWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context(), deliverycontext.GetClientID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}

// AddItem handles POST /wishlist/items
func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req AddToWishlistRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	wishlist, err := h.wishlistUC.AddToWishlist(c.Request().Context(), deliverycontext.GetClientID(c), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}

// RemoveItem handles DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	wishlist, err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), deliverycontext.GetClientID(c), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	wishlist, err := h.wishlistUC.ClearWishlist(c.Request().Context(), deliverycontext.GetClientID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wishlist)
}
