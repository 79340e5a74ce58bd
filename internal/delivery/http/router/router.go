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

	CatalogHandler    *handler.CatalogHandler
	SessionHandler    *handler.SessionHandler
	OrderHandler      *handler.OrderHandler
	AddressHandler    *handler.AddressHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalog *handler.CatalogHandler
	session *handler.SessionHandler
	orders  *handler.OrderHandler
	address *handler.AddressHandler
	admin   *handler.AdminHandler
	guard   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalog: params.CatalogHandler,
		session: params.SessionHandler,
		orders:  params.OrderHandler,
		address: params.AddressHandler,
		admin:   params.AdminHandler,
		guard:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Catalog
	api.GET("/categories", r.catalog.ListCategories)
	api.GET("/products", r.catalog.ListProducts)
	api.GET("/products/:id", r.catalog.GetProduct)
	api.GET("/catalog/stats", r.catalog.CacheStats)

	// Session and account
	sessionGroup := api.Group("/session")
	{
		sessionGroup.GET("", r.session.Current)
		sessionGroup.DELETE("", r.session.Logout)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/register", r.session.Register)
		sessionGroup.POST("/password-reset", r.session.ForgotPassword)
		sessionGroup.POST("/password-reset/confirm", r.session.ResetPassword)
	}
	api.GET("/profile", r.session.Profile, r.guard.RequireLogin)
	api.PUT("/profile", r.session.UpdateProfile, r.guard.RequireLogin)

	// Checkout
	api.POST("/orders", r.orders.CreateOrder)
	api.POST("/orders/:id/payment-proof", r.orders.UploadPaymentProof)
	api.GET("/orders/:id/payment-qr", r.orders.PaymentQR)

	// Address book
	addressGroup := api.Group("/addresses")
	addressGroup.Use(r.guard.RequireLogin)
	{
		addressGroup.GET("", r.address.List)
		addressGroup.POST("", r.address.Create)
		addressGroup.PUT("/:id", r.address.Update)
		addressGroup.DELETE("/:id", r.address.Delete)
	}

	// Staff console, only for staff or superusers of the stored session
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.guard.RequireAdmin)
	{
		adminGroup.GET("/orders", r.admin.Orders)
		adminGroup.GET("/dashboard", r.admin.Dashboard)
		adminGroup.GET("/products", r.admin.Products)
		adminGroup.POST("/products", r.admin.CreateProduct)
		adminGroup.PUT("/products/:id", r.admin.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.admin.DeleteProduct)
		adminGroup.POST("/orders/:id/approve", r.admin.ApprovePayment)
		adminGroup.POST("/orders/:id/reject", r.admin.RejectPayment)
		adminGroup.GET("/orders/:id/tracking", r.admin.Tracking)
		adminGroup.POST("/shipments/:id/delhivery", r.admin.CreateShipment)
		adminGroup.POST("/payments/verify", r.admin.VerifyPayment)
		adminGroup.POST("/payments/refund", r.admin.CreateRefund)
	}
}
