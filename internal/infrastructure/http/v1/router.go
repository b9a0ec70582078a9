// Package v1 provides HTTP API version 1 of the dashboard.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recyclehub/internal/domain/reports"
	"recyclehub/internal/infrastructure/http/v1/handlers"
	"recyclehub/internal/infrastructure/http/v1/middleware"
	"recyclehub/internal/metadata"
	"recyclehub/internal/notify"
	"recyclehub/internal/store"
	"recyclehub/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store is the cache every handler reads and mutates
	Store *store.Store

	// Feed is the notification feed exposed at /notifications
	Feed *notify.Feed

	// Logger for request logging
	Logger *logger.Logger

	// Registry describes entity forms at /meta. Defaults to metadata.Default().
	Registry *metadata.Registry

	// Debug switches gin to debug mode
	Debug bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Store)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		registerResourceRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
		registerMetadataRoutes(v1, cfg)
	}

	return router
}

// NewHandler wraps the router with response compression.
func NewHandler(cfg RouterConfig) http.Handler {
	return gzhttp.GzipHandler(NewRouter(cfg))
}

// registerResourceRoutes registers the six entity endpoints.
func registerResourceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()
	s := cfg.Store

	RegisterResourceRoutes(rg.Group("/suppliers"), handlers.NewSupplierHandler(base, s))
	RegisterResourceRoutes(rg.Group("/clients"), handlers.NewClientHandler(base, s))
	RegisterResourceRoutes(rg.Group("/collection-points"), handlers.NewCollectionPointHandler(base, s))
	RegisterResourceRoutes(rg.Group("/product-types"), handlers.NewProductTypeHandler(base, s))

	collections := handlers.NewCollectionHandler(base, s)
	group := rg.Group("/collections")
	RegisterResourceRoutes(group, collections)
	group.PATCH("/:id/status", collections.UpdateStatus)
	group.GET("/by-date/:date", collections.ByDate)

	RegisterResourceRoutes(rg.Group("/sales"), handlers.NewSaleHandler(base, s))
}

// registerReportRoutes registers dashboard, calendar and notification endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()

	reportHandler := handlers.NewReportsHandler(base, reports.NewService(cfg.Store))
	rg.GET("/dashboard", reportHandler.Dashboard)
	rg.GET("/calendar", reportHandler.Calendar)

	if cfg.Feed != nil {
		notificationHandler := handlers.NewNotificationHandler(base, cfg.Feed)
		rg.GET("/notifications", notificationHandler.List)
	}
}

// registerMetadataRoutes registers the entity schema endpoints.
func registerMetadataRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	registry := cfg.Registry
	if registry == nil {
		registry = metadata.Default()
	}

	metaHandler := handlers.NewMetadataHandler(handlers.NewBaseHandler(), registry)
	meta := rg.Group("/meta")
	{
		meta.GET("", metaHandler.ListEntities)
		meta.GET("/:name", metaHandler.GetEntity)
	}
}
