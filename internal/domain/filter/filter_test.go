package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

func suppliers() []supplier.Supplier {
	return []supplier.Supplier{
		{ID: "1", Name: "Maria Silva", Document: "123.456.789-00", Email: "maria@coop.org", Type: supplier.CategoryCollector},
		{ID: "2", Name: "Reciclagem ABC", Document: "12.345.678/0001-90", Email: "contato@abc.com", Type: supplier.CategoryCompany},
	}
}

func collections() []collection.Collection {
	return []collection.Collection{
		{ID: "1", SupplierName: "Maria Silva", Location: "Rua A", Status: collection.StatusScheduled, Weight: types.MustAmount("150")},
		{ID: "2", SupplierName: "Reciclagem ABC", Location: "Galpão Norte", Status: collection.StatusCollected, Weight: types.MustAmount("80")},
		{ID: "3", SupplierName: "João", Location: "Rua B", Status: collection.StatusCollected, Weight: types.MustAmount("300")},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func supplierID(s supplier.Supplier) string       { return s.ID }
func collectionID(c collection.Collection) string { return c.ID }

func TestSuppliers_Search(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(Suppliers(suppliers(), "MARIA"), supplierID))
	assert.Equal(t, []string{"2"}, ids(Suppliers(suppliers(), "0001"), supplierID))
	assert.Equal(t, []string{"2"}, ids(Suppliers(suppliers(), "ABC.COM"), supplierID))
	assert.Len(t, Suppliers(suppliers(), ""), 2)
	assert.Empty(t, Suppliers(suppliers(), "nobody"))
}

func TestCollections_SearchAndStatus(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, ids(Collections(collections(), "rua", StatusAll), collectionID))
	assert.Equal(t, []string{"2", "3"}, ids(Collections(collections(), "", collection.StatusCollected), collectionID))
	assert.Equal(t, []string{"3"}, ids(Collections(collections(), "rua", collection.StatusCollected), collectionID))
	assert.Len(t, Collections(collections(), "", ""), 3)
}

func TestSales_Search(t *testing.T) {
	items := []sale.Sale{
		{ID: "1", ClientName: "Indústria X", ProductType: "PET"},
		{ID: "2", ClientName: "Fábrica Y", ProductType: "Papelão"},
	}
	got := Sales(items, "pet")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApply_Expression(t *testing.T) {
	got, err := Apply(collections(), `item.weight >= 100.0 && item.status == "coletado"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(got, collectionID))

	sups, err := Apply(suppliers(), `item.name.startsWith("Maria")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(sups, supplierID))

	got, err = Apply(collections(), "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCompile_Rejects(t *testing.T) {
	for _, src := range []string{`item.weight >`, `1 + 2`, `"text"`} {
		t.Run(src, func(t *testing.T) {
			_, err := Compile(src)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}
