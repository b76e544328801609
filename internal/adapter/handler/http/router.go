package http

import (
	"github.com/blossomkart/blossomkart/internal/adapter/config"
	"github.com/blossomkart/blossomkart/internal/adapter/metrics"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	serverMetrics *metrics.ServerMetrics,
	logger *zap.Logger,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(serverMetrics.Middleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	authed := authCheck(tokenService, logger)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.RegisterUser)
			auth.POST("/login", userHandler.LoginUser)
			auth.GET("/profile", authed, userHandler.GetProfile)
			auth.PUT("/profile", authed, userHandler.UpdateProfile)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authed, productHandler.CreateProduct)
			products.PUT("/:id", authed, productHandler.UpdateProduct)
			products.DELETE("/:id", authed, productHandler.DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.Use(authed)
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.PUT("/:productId", cartHandler.UpdateCartItem)
			cart.DELETE("", cartHandler.ClearCart)
			cart.DELETE("/:productId", cartHandler.RemoveFromCart)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authed)
			orders.POST("/create", orderHandler.CreateOrder)
			orders.GET("/my-orders", orderHandler.ListMyOrders)
			orders.GET("/stats/overview", orderHandler.OrderStats)
			orders.GET("/delivery-times/available", orderHandler.AvailableDeliveryTimes)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
