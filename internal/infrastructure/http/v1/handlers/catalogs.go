package handlers

import (
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/filter"
	"recyclehub/internal/store"
)

// SupplierHandler serves /suppliers.
type SupplierHandler = ResourceHandler[supplier.Supplier, supplier.Draft, supplier.Patch, supplier.Draft, supplier.Patch]

// NewSupplierHandler creates the suppliers handler.
func NewSupplierHandler(base *BaseHandler, s *store.Store) *SupplierHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[supplier.Supplier, supplier.Draft, supplier.Patch, supplier.Draft, supplier.Patch]{
		Store:     s,
		Entity:    store.EntitySuppliers,
		ID:        func(v supplier.Supplier) string { return v.ID },
		List:      s.Suppliers,
		Search:    filter.Suppliers,
		Add:       s.AddSupplier,
		Update:    s.UpdateSupplier,
		Delete:    s.DeleteSupplier,
		MapCreate: same[supplier.Draft],
		MapUpdate: same[supplier.Patch],
	})
}

// ClientHandler serves /clients.
type ClientHandler = ResourceHandler[client.Client, client.Draft, client.Patch, client.Draft, client.Patch]

// NewClientHandler creates the clients handler.
func NewClientHandler(base *BaseHandler, s *store.Store) *ClientHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[client.Client, client.Draft, client.Patch, client.Draft, client.Patch]{
		Store:     s,
		Entity:    store.EntityClients,
		ID:        func(v client.Client) string { return v.ID },
		List:      s.Clients,
		Search:    filter.Clients,
		Add:       s.AddClient,
		Update:    s.UpdateClient,
		Delete:    s.DeleteClient,
		MapCreate: same[client.Draft],
		MapUpdate: same[client.Patch],
	})
}

// CollectionPointHandler serves /collection-points.
type CollectionPointHandler = ResourceHandler[collectionpoint.CollectionPoint, collectionpoint.Draft, collectionpoint.Patch, collectionpoint.Draft, collectionpoint.Patch]

// NewCollectionPointHandler creates the collection points handler.
func NewCollectionPointHandler(base *BaseHandler, s *store.Store) *CollectionPointHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[collectionpoint.CollectionPoint, collectionpoint.Draft, collectionpoint.Patch, collectionpoint.Draft, collectionpoint.Patch]{
		Store:     s,
		Entity:    store.EntityCollectionPoints,
		ID:        func(v collectionpoint.CollectionPoint) string { return v.ID },
		List:      s.CollectionPoints,
		Search:    filter.CollectionPoints,
		Add:       s.AddCollectionPoint,
		Update:    s.UpdateCollectionPoint,
		Delete:    s.DeleteCollectionPoint,
		MapCreate: same[collectionpoint.Draft],
		MapUpdate: same[collectionpoint.Patch],
	})
}

// ProductTypeHandler serves /product-types.
type ProductTypeHandler = ResourceHandler[producttype.ProductType, producttype.Draft, producttype.Patch, producttype.Draft, producttype.Patch]

// NewProductTypeHandler creates the product types handler.
func NewProductTypeHandler(base *BaseHandler, s *store.Store) *ProductTypeHandler {
	return NewResourceHandler(base, ResourceHandlerConfig[producttype.ProductType, producttype.Draft, producttype.Patch, producttype.Draft, producttype.Patch]{
		Store:     s,
		Entity:    store.EntityProductTypes,
		ID:        func(v producttype.ProductType) string { return v.ID },
		List:      s.ProductTypes,
		Search:    filter.ProductTypes,
		Add:       s.AddProductType,
		Update:    s.UpdateProductType,
		Delete:    s.DeleteProductType,
		MapCreate: same[producttype.Draft],
		MapUpdate: same[producttype.Patch],
	})
}
