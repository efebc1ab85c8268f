package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the admin dashboard, orders and customers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// GrantAdminRequest is the body of POST /admin/admins
type GrantAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// DashboardStats handles GET /admin/stats?from=&to=
func (h *AdminHandler) DashboardStats(c echo.Context) error {
	period, err := dateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.adminUC.DashboardStats(c.Request().Context(), period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListOrders handles GET /admin/orders?status=&from=&to=&limit=&offset=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	period, err := dateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), &repository.OrderFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Range:  period,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req usecase.UpdateOrderStatusInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListCustomers handles GET /admin/customers
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customers, err := h.adminUC.ListCustomers(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

// GetCustomer handles GET /admin/customers/:uid
func (h *AdminHandler) GetCustomer(c echo.Context) error {
	detail, err := h.adminUC.GetCustomer(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// RebuildCustomerAggregate handles POST /admin/customers/:uid/rebuild-aggregate
func (h *AdminHandler) RebuildCustomerAggregate(c echo.Context) error {
	aggregate, err := h.adminUC.RebuildCustomerAggregate(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, aggregate)
}

// GrantAdmin handles POST /admin/admins
func (h *AdminHandler) GrantAdmin(c echo.Context) error {
	var req GrantAdminRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	principal, err := h.adminUC.GrantAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, principal)
}

// RevokeAdmin handles DELETE /admin/admins/:email
func (h *AdminHandler) RevokeAdmin(c echo.Context) error {
	principal, err := h.adminUC.RevokeAdmin(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, principal)
}
