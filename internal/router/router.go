// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/account"
	"github.com/maison-aurelle/aurelle-backend/internal/cart"
	"github.com/maison-aurelle/aurelle-backend/internal/catalog"
	"github.com/maison-aurelle/aurelle-backend/internal/config"
	"github.com/maison-aurelle/aurelle-backend/internal/handlers"
	"github.com/maison-aurelle/aurelle-backend/internal/middleware"
	"github.com/maison-aurelle/aurelle-backend/internal/order"
	"github.com/maison-aurelle/aurelle-backend/internal/storage"
)

func Initialize(store *storage.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := catalog.NewService(store)
	cartService := cart.NewService(store, catalogService)
	accountService := account.NewService(store, cfg.Admin)
	orderService := order.NewService(store, catalogService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accountService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService, cfg.Commerce.DefaultCurrency)
	adminHandler := handlers.NewAdminHandler(catalogService, orderService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(accountService), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(accountService), authHandler.Me)
		}

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/featured", catalogHandler.GetFeaturedProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
			categories.GET("/:slug", catalogHandler.GetCategory)
			categories.GET("/:slug/products", catalogHandler.GetCategoryProducts)
		}

		// Cart routes (the cart belongs to the device, not the session, so
		// no auth is required to use it)
		cartGroup := v1.Group("/cart")
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.DELETE("", cartHandler.Clear)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PUT("/items/:productId", cartHandler.SetQuantity)
			cartGroup.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.POST("/checkout", middleware.OptionalAuth(accountService), orderHandler.Checkout)
			orders.GET("", middleware.AuthRequired(accountService), orderHandler.ListOrders)
			orders.GET("/:id", middleware.AuthRequired(accountService), orderHandler.GetOrder)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(accountService), middleware.AdminRequired())
		{
			adminProducts := admin.Group("/products")
			{
				adminProducts.POST("", adminHandler.CreateProduct)
				adminProducts.PUT("/:id", adminHandler.UpdateProduct)
				adminProducts.DELETE("/:id", adminHandler.DeleteProduct)
			}

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", adminHandler.ListOrders)
				adminOrders.PUT("/:id/status", adminHandler.UpdateOrderStatus)
			}
		}
	}

	return r
}
