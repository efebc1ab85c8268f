package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying a product image.
const imageFormField = "image"

// AdminProductHandlerParams holds dependencies for AdminProductHandler, injected by Fx.
type AdminProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// AdminProductHandler manages store products.
type AdminProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewAdminProductHandler is the constructor for AdminProductHandler
func NewAdminProductHandler(params AdminProductHandlerParams) *AdminProductHandler {
	return &AdminProductHandler{productUC: params.ProductUC}
}

// ListProducts handles GET /admin/products?category=&q=&limit=&offset=
func (h *AdminProductHandler) ListProducts(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), &repository.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /admin/products/:id
func (h *AdminProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct handles POST /admin/products
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage handles POST /admin/products/:id/image as multipart form data
func (h *AdminProductHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImage.WithDetails("missing multipart field "+imageFormField))
	}

	file, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImage.WithDetails(err.Error()))
	}
	defer file.Close()

	product, err := h.productUC.UploadImage(c.Request().Context(), c.Param("id"), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
