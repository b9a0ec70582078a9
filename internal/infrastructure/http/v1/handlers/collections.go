package handlers

import (
	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/filter"
	"recyclehub/internal/infrastructure/http/v1/dto"
	"recyclehub/internal/store"
)

// CollectionHandler serves /collections.
type CollectionHandler struct {
	*ResourceHandler[collection.Collection, collection.Draft, collection.Patch, dto.CollectionForm, dto.CollectionPatchForm]
	store *store.Store
}

// NewCollectionHandler creates the collections handler.
func NewCollectionHandler(base *BaseHandler, s *store.Store) *CollectionHandler {
	return &CollectionHandler{
		ResourceHandler: NewResourceHandler(base, ResourceHandlerConfig[collection.Collection, collection.Draft, collection.Patch, dto.CollectionForm, dto.CollectionPatchForm]{
			Store:     s,
			Entity:    store.EntityCollections,
			ID:        func(v collection.Collection) string { return v.ID },
			List:      s.Collections,
			Add:       s.AddCollection,
			Update:    s.UpdateCollection,
			Delete:    s.DeleteCollection,
			MapCreate: dto.CollectionForm.ToDraft,
			MapUpdate: dto.CollectionPatchForm.ToPatch,
		}),
		store: s,
	}
}

// List handles GET /collections?search=&status=&filter=.
// status is "all" (or empty) or one of the collection statuses.
func (h *CollectionHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	status := collection.Status(c.DefaultQuery("status", filter.StatusAll))
	if status != filter.StatusAll && !status.IsValid() {
		h.Error(c, apperror.NewValidation("status must be one of: all agendado confirmado coletado").
			WithDetail("field", "status"))
		return
	}

	items := filter.Collections(h.store.Collections(), q.Search, status)
	items, err := filter.Apply(items, q.Filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Page(items, q))
}

// UpdateStatus handles PATCH /collections/:id/status.
func (h *CollectionHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.store.UpdateCollectionStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// ByDate handles GET /collections/by-date/:date - fetched live, never cached.
func (h *CollectionHandler) ByDate(c *gin.Context) {
	day, err := h.store.CollectionsByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, day)
}
