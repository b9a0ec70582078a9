package v1

import (
	"github.com/gin-gonic/gin"
)

// ResourceRouteHandler defines the interface for entity handlers.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Refresh(c *gin.Context)
}

// RegisterResourceRoutes registers the standard routes of a cached entity.
//
// Usage:
//
//	handler := handlers.NewSupplierHandler(base, store)
//	RegisterResourceRoutes(api.Group("/suppliers"), handler)
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.POST("/refresh", handler.Refresh)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
