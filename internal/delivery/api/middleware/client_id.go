package middleware

import (
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// clientIDQueryParam lets websocket clients, which cannot set headers, name their state.
const clientIDQueryParam = "clientId"

const maxClientIDLength = 64

// ClientID resolves the owner of the cart and wishlist. A missing or
// oversized id is replaced by a fresh one, which the response echoes so the
// browser can keep it.
func ClientID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := c.Request().Header.Get(deliverycontext.HeaderXClientID)
		if clientID == "" {
			clientID = c.QueryParam(clientIDQueryParam)
		}
		if clientID == "" || len(clientID) > maxClientIDLength {
			clientID = uuid.NewString()
		}

		deliverycontext.SetClientID(c, clientID)
		c.Response().Header().Set(deliverycontext.HeaderXClientID, clientID)

		return next(c)
	}
}
