package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/filter"
	apidto "recyclehub/internal/infrastructure/api/dto"
	"recyclehub/internal/infrastructure/http/v1/dto"
	"recyclehub/internal/store"
)

// ResourceHandler provides generic HTTP handlers over one cached entity.
// CreateForm and UpdateForm are the request bodies, mapped onto the store's
// draft D and patch P.
type ResourceHandler[U, D, P, CreateForm, UpdateForm any] struct {
	*BaseHandler
	cfg ResourceHandlerConfig[U, D, P, CreateForm, UpdateForm]
}

// ResourceHandlerConfig configures the resource handler.
type ResourceHandlerConfig[U, D, P, CreateForm, UpdateForm any] struct {
	Store  *store.Store
	Entity store.Entity

	ID     func(U) string
	List   func() []U
	Search func(items []U, term string) []U

	Add    func(ctx context.Context, d D) (U, error)
	Update func(ctx context.Context, id string, p P) (U, error)
	Delete func(ctx context.Context, id string) error

	MapCreate func(CreateForm) (D, error)
	MapUpdate func(UpdateForm) (P, error)
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler[U, D, P, CreateForm, UpdateForm any](
	base *BaseHandler,
	cfg ResourceHandlerConfig[U, D, P, CreateForm, UpdateForm],
) *ResourceHandler[U, D, P, CreateForm, UpdateForm] {
	return &ResourceHandler[U, D, P, CreateForm, UpdateForm]{BaseHandler: base, cfg: cfg}
}

// List handles GET /{entity} - cached records with search, filter and pagination.
func (h *ResourceHandler[U, D, P, CF, UF]) List(c *gin.Context) {
	var q dto.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	items, err := h.narrow(h.cfg.List(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Page(items, q))
}

// narrow applies the free-text search, then the filter expression.
func (h *ResourceHandler[U, D, P, CF, UF]) narrow(items []U, q dto.ListQuery) ([]U, error) {
	if h.cfg.Search != nil {
		items = h.cfg.Search(items, q.Search)
	}
	return filter.Apply(items, q.Filter)
}

// Get handles GET /{entity}/:id - one cached record.
func (h *ResourceHandler[U, D, P, CF, UF]) Get(c *gin.Context) {
	n, err := apidto.ParseID("id", c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	id := apidto.FormatID(n)
	for _, item := range h.cfg.List() {
		if h.cfg.ID(item) == id {
			h.OK(c, item)
			return
		}
	}
	h.Error(c, apperror.NewHTTP(404, "", nil).
		WithDetail("entity", string(h.cfg.Entity)).
		WithDetail("id", id))
}

// Create handles POST /{entity}.
func (h *ResourceHandler[U, D, P, CF, UF]) Create(c *gin.Context) {
	var req CF
	if !h.BindJSON(c, &req) {
		return
	}
	d, err := h.cfg.MapCreate(req)
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.cfg.Add(c.Request.Context(), d)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PUT /{entity}/:id - partial update, absent fields untouched.
func (h *ResourceHandler[U, D, P, CF, UF]) Update(c *gin.Context) {
	var req UF
	if !h.BindJSON(c, &req) {
		return
	}
	p, err := h.cfg.MapUpdate(req)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.cfg.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /{entity}/:id.
func (h *ResourceHandler[U, D, P, CF, UF]) Delete(c *gin.Context) {
	if err := h.cfg.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Refresh handles POST /{entity}/refresh - reload from the backend.
// The response reflects the load this request ran or joined.
func (h *ResourceHandler[U, D, P, CF, UF]) Refresh(c *gin.Context) {
	if err := h.cfg.Store.Reload(c.Request.Context(), h.cfg.Entity); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, h.cfg.Store.Status()[h.cfg.Entity])
}

// same is the identity mapping for bodies that already are drafts or patches.
func same[T any](v T) (T, error) { return v, nil }
