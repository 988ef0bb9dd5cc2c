package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/server/http/handlers"
	"github.com/naijamart/storefront/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger, metrics *middleware.HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Collect())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	ledgerHandler := handlers.NewLedgerHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.GET("/metrics", gin.WrapH(metrics.Exporter()))

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", authHandler.Profile)
	userAuth.POST("/orders", orderHandler.Place)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:id", orderHandler.Get)
	userAuth.POST("/orders/:id/proof", orderHandler.SubmitProof)
	userAuth.GET("/balance", ledgerHandler.Summary)
	userAuth.GET("/balance/history", ledgerHandler.History)
	userAuth.GET("/notifications", notificationHandler.List)
	userAuth.GET("/notifications/unread", notificationHandler.UnreadCount)
	userAuth.POST("/notifications/:id/read", notificationHandler.Acknowledge)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.StaffOnly())
	admin.GET("/orders", adminHandler.Orders)
	admin.POST("/orders/:id/approve", adminHandler.Approve)
	admin.POST("/orders/:id/reject", adminHandler.Reject)
	admin.POST("/orders/:id/ship", adminHandler.Ship)
	admin.POST("/orders/:id/delay", adminHandler.Delay)
	admin.POST("/orders/:id/deliver", adminHandler.Deliver)
	admin.GET("/users", adminHandler.Users)
	admin.PUT("/users/:id/balance", adminHandler.ReconcileBalance)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	return engine
}
