package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/metadata"
)

// MetadataHandler serves the form schemas of the dashboard entities.
type MetadataHandler struct {
	*BaseHandler
	registry *metadata.Registry
}

// NewMetadataHandler creates a new metadata handler.
func NewMetadataHandler(base *BaseHandler, registry *metadata.Registry) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		registry:    registry,
	}
}

// ListEntities returns every registered entity.
// GET /api/v1/meta
func (h *MetadataHandler) ListEntities(c *gin.Context) {
	h.OK(c, h.registry.List())
}

// GetEntity returns the definition of one entity.
// GET /api/v1/meta/:name
func (h *MetadataHandler) GetEntity(c *gin.Context) {
	name := c.Param("name")
	def, ok := h.registry.Get(name)
	if !ok {
		h.Error(c, apperror.NewHTTP(http.StatusNotFound, "unknown entity: "+name, nil))
		return
	}
	h.OK(c, def)
}
