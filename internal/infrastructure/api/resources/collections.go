package resources

import (
	"context"
	"net/url"
	"time"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/dto"
)

// SupplierCategoryLookup resolves the category of a supplier by id.
// Wire collections do not carry it, so it has to come from elsewhere.
type SupplierCategoryLookup interface {
	SupplierCategory(id string) (supplier.Category, bool)
}

// ResolveSupplierType fills c.SupplierType through lookup. Unknown suppliers
// leave it as supplier.CategoryUnknown.
func ResolveSupplierType(c collection.Collection, lookup SupplierCategoryLookup) collection.Collection {
	c.SupplierType = supplier.CategoryUnknown
	if lookup == nil {
		return c
	}
	if category, ok := lookup.SupplierCategory(c.SupplierID); ok {
		c.SupplierType = category
	}
	return c
}

// Collections is the collection adapter with its status and per-day endpoints.
type Collections struct {
	*Resource[dto.Collection, collection.Collection, collection.Draft, collection.Patch, dto.CreateCollectionRequest, dto.UpdateCollectionRequest]
}

// NewCollections creates the adapter for /collections.
func NewCollections(r api.Requester) *Collections {
	return &Collections{
		Resource: New(r, Config[dto.Collection, collection.Collection, collection.Draft, collection.Patch, dto.CreateCollectionRequest, dto.UpdateCollectionRequest]{
			Path:        "/collections",
			Entity:      "collection",
			FromWire:    dto.CollectionFromWire,
			ToWire:      dto.CollectionToWire,
			PatchToWire: dto.CollectionPatchToWire,
		}),
	}
}

// UpdateStatus transmits only the status through PATCH /collections/:id/status.
func (c *Collections) UpdateStatus(ctx context.Context, id string, status collection.Status) (collection.Collection, error) {
	path, err := c.itemPath(id)
	if err != nil {
		return collection.Collection{}, err
	}
	body, err := dto.CollectionStatusToWire(status)
	if err != nil {
		return collection.Collection{}, err
	}
	wire, err := api.PatchJSON[dto.Collection](ctx, c.api, path+"/status", body)
	if err != nil {
		return collection.Collection{}, err
	}
	return c.convert(wire)
}

// ListByDate fetches the collections of one day with the backend summary.
func (c *Collections) ListByDate(ctx context.Context, date string) (collection.Day, error) {
	if _, err := time.Parse(collection.DateLayout, date); err != nil {
		return collection.Day{}, apperror.NewValidation("date must be YYYY-MM-DD").
			WithDetail("field", "date").
			WithDetail("value", date)
	}
	wire, err := api.GetJSON[dto.CollectionsByDate](ctx, c.api, c.path+"/by-date/"+url.PathEscape(date))
	if err != nil {
		return collection.Day{}, err
	}
	day, err := dto.CollectionsByDateFromWire(wire)
	if err != nil {
		return collection.Day{}, decodeError(c.entity, err)
	}
	return day, nil
}
