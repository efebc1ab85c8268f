package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler edits the catalog endpoint overrides.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// CatalogSettingsRequest is the body of PUT /admin/settings/catalog
type CatalogSettingsRequest struct {
	BaseURL      string `json:"baseUrl" validate:"omitempty,url"`
	DefaultLimit int    `json:"defaultLimit" validate:"gte=0,lte=100"`
}

// GetCatalogSettings handles GET /admin/settings/catalog
func (h *SettingsHandler) GetCatalogSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetCatalogSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateCatalogSettings handles PUT /admin/settings/catalog
func (h *SettingsHandler) UpdateCatalogSettings(c echo.Context) error {
	var req CatalogSettingsRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.UpdateCatalogSettings(c.Request().Context(), &entity.CatalogSettings{
		BaseURL:      req.BaseURL,
		DefaultLimit: req.DefaultLimit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// ResetCatalogSettings handles DELETE /admin/settings/catalog
func (h *SettingsHandler) ResetCatalogSettings(c echo.Context) error {
	if err := h.settingsUC.ResetCatalogSettings(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
