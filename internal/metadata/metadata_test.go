package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/types"
)

func TestDefault_ListsAllEntities(t *testing.T) {
	list := Default().List()

	names := make([]string, 0, len(list))
	for _, def := range list {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{
		"clients", "collection-points", "collections", "product-types", "sales", "suppliers",
	}, names)
}

func TestInspect_Supplier(t *testing.T) {
	def, ok := Default().Get("suppliers")
	require.True(t, ok)
	assert.Equal(t, TypeCatalog, def.Type)
	assert.Equal(t, "Fornecedores", def.Label)

	name, ok := def.Field("name")
	require.True(t, ok)
	assert.True(t, name.Required)
	assert.Equal(t, TypeString, name.Type)

	email, _ := def.Field("email")
	assert.False(t, email.Required)
	assert.Equal(t, "email", email.Format)

	typ, _ := def.Field("type")
	assert.Equal(t, TypeEnum, typ.Type)
	assert.Equal(t, []string{"catador", "agenciador", "empresa"}, typ.Options)

	material, _ := def.Field("materialType")
	assert.Equal(t, "Material type", material.Label)
}

func TestInspect_Collection(t *testing.T) {
	def, ok := Default().Get("collections")
	require.True(t, ok)
	assert.Equal(t, TypeDocument, def.Type)

	supplierID, _ := def.Field("supplierId")
	assert.Equal(t, TypeReference, supplierID.Type)
	assert.Equal(t, "suppliers", supplierID.ReferenceType)
	assert.Equal(t, "Supplier", supplierID.Label)

	productID, _ := def.Field("productId")
	assert.Equal(t, "product-types", productID.ReferenceType)

	date, _ := def.Field("date")
	assert.Equal(t, TypeDate, date.Type)
	clock, _ := def.Field("time")
	assert.Equal(t, TypeTime, clock.Type)

	weight, _ := def.Field("weight")
	assert.Equal(t, TypeAmount, weight.Type)
	assert.Equal(t, 3, weight.Scale)
	value, _ := def.Field("value")
	assert.Equal(t, 2, value.Scale)

	status, _ := def.Field("status")
	assert.Equal(t, []string{"agendado", "confirmado", "coletado"}, status.Options)
}

func TestInspect_SkipsIgnoredAndUnexported(t *testing.T) {
	type draft struct {
		Name     string       `json:"name" validate:"required"`
		Internal string       `json:"-"`
		hidden   string       //nolint:unused
		Total    types.Amount `json:"total"`
		Count    int
	}

	def := Inspect(&draft{}, "", TypeCatalog)
	assert.Equal(t, "draft", def.Name)
	require.Len(t, def.Fields, 3)
	assert.Equal(t, "name", def.Fields[0].Name)
	assert.Equal(t, TypeAmount, def.Fields[1].Type)
	assert.Equal(t, "count", def.Fields[2].Name)
	assert.Equal(t, TypeInteger, def.Fields[2].Type)
}

func TestRegistry_GetMissing(t *testing.T) {
	_, ok := NewRegistry().Get("nope")
	assert.False(t, ok)
}
