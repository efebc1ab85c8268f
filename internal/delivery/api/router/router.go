// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	WishlistHandler     *handler.WishlistHandler
	CheckoutHandler     *handler.CheckoutHandler
	AuthHandler         *handler.AuthHandler
	OrderHandler        *handler.OrderHandler
	AdminHandler        *handler.AdminHandler
	AdminProductHandler *handler.AdminProductHandler
	SettingsHandler     *handler.SettingsHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler      *handler.ProductHandler
	cartHandler         *handler.CartHandler
	wishlistHandler     *handler.WishlistHandler
	checkoutHandler     *handler.CheckoutHandler
	authHandler         *handler.AuthHandler
	orderHandler        *handler.OrderHandler
	adminHandler        *handler.AdminHandler
	adminProductHandler *handler.AdminProductHandler
	settingsHandler     *handler.SettingsHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:      params.ProductHandler,
		cartHandler:         params.CartHandler,
		wishlistHandler:     params.WishlistHandler,
		checkoutHandler:     params.CheckoutHandler,
		authHandler:         params.AuthHandler,
		orderHandler:        params.OrderHandler,
		adminHandler:        params.AdminHandler,
		adminProductHandler: params.AdminProductHandler,
		settingsHandler:     params.SettingsHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimiter:         params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}

	// Client state is keyed by X-Client-Id, not by the signed-in user
	cartGroup := apiV1.Group("/cart", middleware.ClientID)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.GET("/stream", r.cartHandler.Stream)
	}

	wishlistGroup := apiV1.Group("/wishlist", middleware.ClientID)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.DELETE("", r.wishlistHandler.ClearWishlist)
		wishlistGroup.POST("/items", r.wishlistHandler.AddItem)
		wishlistGroup.DELETE("/items/:productId", r.wishlistHandler.RemoveItem)
	}

	// The checkout usecase decides what an anonymous caller gets
	checkoutGroup := apiV1.Group("/checkout", middleware.ClientID, r.authMiddleware.OptionalAuth)
	{
		checkoutGroup.GET("", r.checkoutHandler.Quote)
		checkoutGroup.POST("/orders", r.checkoutHandler.SubmitOrder)
	}

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.POST("/password-reset", r.authHandler.SendPasswordReset, r.rateLimiter.Limit)

		sessionGroup := authGroup.Group("", r.authMiddleware.Authenticate)
		sessionGroup.POST("/logout", r.authHandler.Logout)
		sessionGroup.POST("/verify-email", r.authHandler.SendEmailVerification)
		sessionGroup.GET("/me", r.authHandler.Me)
	}

	ordersGroup := apiV1.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/invoice.pdf", r.orderHandler.Invoice)
		ordersGroup.GET("/:id/qr.png", r.orderHandler.QRCode)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check the admin claim
	{
		adminGroup.GET("/stats", r.adminHandler.DashboardStats)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/customers", r.adminHandler.ListCustomers)
		adminGroup.GET("/customers/:uid", r.adminHandler.GetCustomer)
		adminGroup.POST("/customers/:uid/rebuild-aggregate", r.adminHandler.RebuildCustomerAggregate)
		adminGroup.POST("/admins", r.adminHandler.GrantAdmin)
		adminGroup.DELETE("/admins/:email", r.adminHandler.RevokeAdmin)

		adminGroup.GET("/products", r.adminProductHandler.ListProducts)
		adminGroup.POST("/products", r.adminProductHandler.CreateProduct)
		adminGroup.GET("/products/:id", r.adminProductHandler.GetProduct)
		adminGroup.PUT("/products/:id", r.adminProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminProductHandler.DeleteProduct)
		adminGroup.POST("/products/:id/image", r.adminProductHandler.UploadImage)

		adminGroup.GET("/settings/catalog", r.settingsHandler.GetCatalogSettings)
		adminGroup.PUT("/settings/catalog", r.settingsHandler.UpdateCatalogSettings)
		adminGroup.DELETE("/settings/catalog", r.settingsHandler.ResetCatalogSettings)
	}
}
