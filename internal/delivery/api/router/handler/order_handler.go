package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the signed-in customer's orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), deliverycontext.GetPrincipal(c), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Invoice handles GET /orders/:id/invoice.pdf
func (h *OrderHandler) Invoice(c echo.Context) error {
	orderID := c.Param("id")
	pdf, err := h.orderUC.OrderInvoice(c.Request().Context(), deliverycontext.GetPrincipal(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition("invoice-"+orderID+".pdf"))

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// QRCode handles GET /orders/:id/qr.png
func (h *OrderHandler) QRCode(c echo.Context) error {
	png, err := h.orderUC.OrderQRCode(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
