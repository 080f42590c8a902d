package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/server/http/handlers"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CanteenFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	requireAdmin := middleware.AuthRequired(facade)

	engine.GET("/healthz", healthHandler.Check)

	admin := engine.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.GET("/stats", requireAdmin, statsHandler.Summary)
	admin.GET("/detailed-stats", requireAdmin, statsHandler.Detailed)

	menu := engine.Group("/menu")
	menu.GET("", menuHandler.List)
	menu.GET("/categories", menuHandler.Categories)
	menu.GET("/:id", menuHandler.Get)
	menu.PUT("/buy/:id", menuHandler.Buy)
	menu.POST("/add", requireAdmin, menuHandler.Add)
	menu.PUT("/update/:id", requireAdmin, menuHandler.Update)
	menu.DELETE("/delete/:id", requireAdmin, menuHandler.Delete)

	orders := engine.Group("/orders")
	orders.POST("/create", orderHandler.Create)
	orders.GET("/:token", orderHandler.Get)
	orders.GET("", requireAdmin, orderHandler.List)
	orders.PUT("/:token/status", requireAdmin, orderHandler.UpdateStatus)

	return engine
}
