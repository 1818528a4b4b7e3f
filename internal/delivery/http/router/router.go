// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	AddressHandler  *handler.AddressHandler
	OrderHandler    *handler.OrderHandler
	SessionHandler  *handler.SessionHandler
	CheckoutHandler *handler.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	addressHandler  *handler.AddressHandler
	orderHandler    *handler.OrderHandler
	sessionHandler  *handler.SessionHandler
	checkoutHandler *handler.CheckoutHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		addressHandler:  params.AddressHandler,
		orderHandler:    params.OrderHandler,
		sessionHandler:  params.SessionHandler,
		checkoutHandler: params.CheckoutHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	products := e.Group("/products")
	{
		// Static segments before :id.
		products.GET("/brands", r.catalogHandler.Brands)
		products.GET("/categories", r.catalogHandler.Categories)
		products.GET("", r.catalogHandler.ListProducts)
		products.GET("/:id", r.catalogHandler.GetProduct)
	}

	cart := e.Group("/cart")
	{
		cart.GET("", r.cartHandler.GetCart)
		cart.DELETE("", r.cartHandler.ClearCart)
		cart.POST("/items", r.cartHandler.AddItem)
		cart.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cart.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	wishlist := e.Group("/wishlist")
	{
		wishlist.GET("", r.wishlistHandler.GetWishlist)
		wishlist.POST("/toggle", r.wishlistHandler.Toggle)
		wishlist.GET("/:id", r.wishlistHandler.GetItem)
		wishlist.POST("/:id/move-to-cart", r.wishlistHandler.MoveToCart)
	}

	session := e.Group("/session")
	{
		session.PUT("", r.sessionHandler.Login)
		session.DELETE("", r.sessionHandler.Logout)
		session.GET("", r.sessionHandler.Current, r.authMiddleware.RequireSession)
	}

	// Everything below calls authenticated shop endpoints.
	addresses := e.Group("/addresses", r.authMiddleware.RequireSession)
	{
		addresses.GET("", r.addressHandler.ListAddresses)
		addresses.POST("", r.addressHandler.CreateAddress)
		addresses.PUT("/:id", r.addressHandler.UpdateAddress)
	}

	orders := e.Group("/orders", r.authMiddleware.RequireSession)
	{
		orders.GET("", r.orderHandler.ListOrders)
	}

	checkout := e.Group("/checkout", r.authMiddleware.RequireSession)
	{
		checkout.POST("", r.checkoutHandler.Begin)
		checkout.GET("", r.checkoutHandler.GetSession)
		checkout.DELETE("", r.checkoutHandler.Discard)
		checkout.PUT("/address", r.checkoutHandler.SelectAddress)
		checkout.POST("/address/confirm", r.checkoutHandler.ConfirmAddress)
		checkout.POST("/lines/:id/increment", r.checkoutHandler.IncrementLine)
		checkout.POST("/lines/:id/decrement", r.checkoutHandler.DecrementLine)
		checkout.DELETE("/lines/:id", r.checkoutHandler.RemoveLine)
		checkout.POST("/payment", r.checkoutHandler.AdvanceToPayment)
		checkout.POST("/orders", r.checkoutHandler.PlaceOrder)
		checkout.POST("/payment/intent", r.checkoutHandler.InitiatePayment)
		checkout.POST("/payment/callback", r.checkoutHandler.PaymentCallback)
	}
}
