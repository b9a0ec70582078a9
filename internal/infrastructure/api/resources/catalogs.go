package resources

import (
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/dto"
)

// Suppliers is the supplier adapter.
type Suppliers = Resource[dto.Supplier, supplier.Supplier, supplier.Draft, supplier.Patch, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]

// Clients is the client adapter.
type Clients = Resource[dto.Client, client.Client, client.Draft, client.Patch, dto.CreateClientRequest, dto.UpdateClientRequest]

// CollectionPoints is the collection point adapter.
type CollectionPoints = Resource[dto.CollectionPoint, collectionpoint.CollectionPoint, collectionpoint.Draft, collectionpoint.Patch, dto.CreateCollectionPointRequest, dto.UpdateCollectionPointRequest]

// ProductTypes is the product type adapter.
type ProductTypes = Resource[dto.ProductType, producttype.ProductType, producttype.Draft, producttype.Patch, dto.CreateProductTypeRequest, dto.UpdateProductTypeRequest]

// NewSuppliers creates the adapter for /suppliers.
func NewSuppliers(r api.Requester) *Suppliers {
	return New(r, Config[dto.Supplier, supplier.Supplier, supplier.Draft, supplier.Patch, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]{
		Path:        "/suppliers",
		Entity:      "supplier",
		FromWire:    dto.SupplierFromWire,
		ToWire:      dto.SupplierToWire,
		PatchToWire: dto.SupplierPatchToWire,
	})
}

// NewClients creates the adapter for /clients.
func NewClients(r api.Requester) *Clients {
	return New(r, Config[dto.Client, client.Client, client.Draft, client.Patch, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Path:        "/clients",
		Entity:      "client",
		FromWire:    dto.ClientFromWire,
		ToWire:      dto.ClientToWire,
		PatchToWire: dto.ClientPatchToWire,
	})
}

// NewCollectionPoints creates the adapter for /collection-points.
func NewCollectionPoints(r api.Requester) *CollectionPoints {
	return New(r, Config[dto.CollectionPoint, collectionpoint.CollectionPoint, collectionpoint.Draft, collectionpoint.Patch, dto.CreateCollectionPointRequest, dto.UpdateCollectionPointRequest]{
		Path:        "/collection-points",
		Entity:      "collection point",
		FromWire:    dto.CollectionPointFromWire,
		ToWire:      dto.CollectionPointToWire,
		PatchToWire: dto.CollectionPointPatchToWire,
	})
}

// NewProductTypes creates the adapter for /product-types.
func NewProductTypes(r api.Requester) *ProductTypes {
	return New(r, Config[dto.ProductType, producttype.ProductType, producttype.Draft, producttype.Patch, dto.CreateProductTypeRequest, dto.UpdateProductTypeRequest]{
		Path:        "/product-types",
		Entity:      "product type",
		FromWire:    dto.ProductTypeFromWire,
		ToWire:      dto.ProductTypeToWire,
		PatchToWire: dto.ProductTypePatchToWire,
	})
}
