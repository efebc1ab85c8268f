package handler

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey deduplicates order submissions.
const HeaderIdempotencyKey = "Idempotency-Key"

// maxIdempotencyKeyLength counts characters, not bytes.
const maxIdempotencyKeyLength = 128

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler serves the checkout page and order submission.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: params.CheckoutUC}
}

// SubmitOrderResponse adds the confirmation delay to the submission result.
type SubmitOrderResponse struct {
	*usecase.SubmitOrderResult
	RedirectAfterMs int64 `json:"redirectAfterMs"`
}

// Quote handles GET /checkout
func (h *CheckoutHandler) Quote(c echo.Context) error {
	quote, err := h.checkoutUC.Quote(c.Request().Context(), deliverycontext.GetClientID(c), deliverycontext.GetPrincipal(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// SubmitOrder handles POST /checkout/orders. Anonymous callers and empty carts
// get an error carrying the redirect target.
func (h *CheckoutHandler) SubmitOrder(c echo.Context) error {
	var req usecase.SubmitOrderInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	if utf8.RuneCountInString(key) > maxIdempotencyKeyLength {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(
			HeaderIdempotencyKey+" must be at most "+strconv.Itoa(maxIdempotencyKeyLength)+" characters"))
	}
	req.ClientID = deliverycontext.GetClientID(c)
	req.Principal = deliverycontext.GetPrincipal(c)
	req.IdempotencyKey = key

	result, err := h.checkoutUC.SubmitOrder(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, SubmitOrderResponse{
		SubmitOrderResult: result,
		RedirectAfterMs:   result.RedirectAfter.Milliseconds(),
	})
}
