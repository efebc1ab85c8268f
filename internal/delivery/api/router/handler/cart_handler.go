package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Config *config.Config
	Logger *slog.Logger
}

// CartHandler serves the cart of the calling client.
type CartHandler struct {
	cartUC   usecase.CartUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	origins := params.Config.HTTP.AllowedOrigins

	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				return len(origins) == 0 || origin == "" || slices.Contains(origins, origin)
			},
		},
	}
}

// UpdateQuantityRequest is the body of PATCH /cart/items/:productId
type UpdateQuantityRequest struct {
	Quantity int            `json:"quantity" validate:"gte=0,lte=99"`
	Variant  entity.Variant `json:"variant"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), deliverycontext.GetClientID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddCartItemInput
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), deliverycontext.GetClientID(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateQuantity handles PATCH /cart/items/:productId. A quantity below one removes the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	key := entity.NewLineKey(c.Param("productId"), req.Variant)
	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), deliverycontext.GetClientID(c), key, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem handles DELETE /cart/items/:productId?size=&color=
func (h *CartHandler) RemoveItem(c echo.Context) error {
	key := entity.NewLineKey(c.Param("productId"), variantFromQuery(c))
	view, err := h.cartUC.RemoveItem(c.Request().Context(), deliverycontext.GetClientID(c), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.ClearCart(c.Request().Context(), deliverycontext.GetClientID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Stream handles GET /cart/stream. It upgrades to a websocket, sends the
// current cart and then every cart change made by the same client in other tabs.
func (h *CartHandler) Stream(c echo.Context) error {
	clientID := deliverycontext.GetClientID(c)
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("client_id", clientID))

	initial, err := h.cartUC.GetCart(ctx, clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Warn("Cart stream upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	updates, cancel := h.cartUC.WatchCart(clientID)
	defer cancel()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	if err := writeJSON(conn, initial); err != nil {
		return nil
	}

	for {
		select {
		case view, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(streamWriteWait))

				return nil
			}
			if err := writeJSON(conn, view); err != nil {
				logger.Debug("Cart stream write failed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return nil
			}
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// readUntilClosed drains client frames so pongs and close frames are processed.
func readUntilClosed(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, view *usecase.CartView) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))

	return conn.WriteJSON(view)
}

func variantFromQuery(c echo.Context) entity.Variant {
	return entity.Variant{Size: c.QueryParam("size"), Color: c.QueryParam("color")}
}
