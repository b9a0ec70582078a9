package metadata

import (
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

// Default returns a registry holding the six dashboard entities, keyed by
// their route names.
func Default() *Registry {
	reg := NewRegistry()

	register := func(draft any, name string, typ EntityType, label string) {
		def := Inspect(draft, name, typ)
		def.Label = label
		reg.Register(def)
	}

	// --- Catalogs ---
	register(supplier.Draft{}, "suppliers", TypeCatalog, "Fornecedores")
	register(client.Draft{}, "clients", TypeCatalog, "Clientes")
	register(collectionpoint.Draft{}, "collection-points", TypeCatalog, "Pontos de coleta")
	register(producttype.Draft{}, "product-types", TypeCatalog, "Tipos de produto")

	// --- Documents ---
	register(collection.Draft{}, "collections", TypeDocument, "Coletas")
	register(sale.Draft{}, "sales", TypeDocument, "Vendas")

	return reg
}
