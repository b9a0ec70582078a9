package resources

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/apitest"
	"recyclehub/internal/infrastructure/api/dto"
	"recyclehub/pkg/logger"
)

func setup(t *testing.T) (*apitest.Backend, *api.Client) {
	t.Helper()
	backend := apitest.New(t)
	return backend, api.NewClient(api.Config{BaseURL: backend.URL()}, logger.Nop())
}

func TestSuppliers_CRUD(t *testing.T) {
	backend, client := setup(t)
	suppliers := NewSuppliers(client)
	ctx := context.Background()

	created, err := suppliers.Create(ctx, supplier.Draft{
		Name: "Maria", Document: "123", Type: supplier.CategoryCollector, MaterialType: "PET",
	})
	require.NoError(t, err)
	assert.Equal(t, supplier.CategoryCollector, created.Type)

	wire, ok := backend.WireSupplier(1)
	require.True(t, ok)
	assert.Equal(t, dto.SupplierTypeCollector, wire.SupplierType)
	assert.Equal(t, "123", wire.TaxID)

	list, err := suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	got, err := suppliers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	phone := "11 4000-0000"
	updated, err := suppliers.Update(ctx, created.ID, supplier.Patch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, created.Name, updated.Name)

	req, ok := backend.LastRequest(http.MethodPut, "/suppliers/"+created.ID)
	require.True(t, ok)
	assert.JSONEq(t, `{"phone":"11 4000-0000"}`, req.Body)

	require.NoError(t, suppliers.Delete(ctx, created.ID))
	list, err = suppliers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResource_ValidationBeforeNetwork(t *testing.T) {
	backend, client := setup(t)
	ctx := context.Background()

	_, err := NewProductTypes(client).Create(ctx, producttype.Draft{Name: "PET", Unit: "lb"})
	assert.True(t, apperror.IsValidation(err))

	_, err = NewSuppliers(client).GetByID(ctx, "abc")
	assert.True(t, apperror.IsValidation(err))

	assert.Empty(t, backend.Requests())
}

func TestResource_TransportErrorUnchanged(t *testing.T) {
	backend, client := setup(t)
	backend.Fail(http.MethodGet, "/clients", http.StatusInternalServerError, "database offline")

	_, err := NewClients(client).List(context.Background())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "database offline", appErr.Message)
	assert.Equal(t, apperror.CodeHTTP, appErr.Code)
}

func TestResource_UnknownWireTokenIsDecodeError(t *testing.T) {
	backend, client := setup(t)
	backend.SeedSupplier(dto.Supplier{Name: "X", SupplierType: "Recycler"})

	_, err := NewSuppliers(client).List(context.Background())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDecode, appErr.Code)
}

func seedRefs(backend *apitest.Backend) (dto.Supplier, dto.ProductType, dto.Client) {
	s := backend.SeedSupplier(dto.Supplier{Name: "Maria", SupplierType: dto.SupplierTypeAgent})
	p := backend.SeedProductType(dto.ProductType{Name: "PET", Unit: "kg"})
	c := backend.SeedClient(dto.Client{Name: "Recicla SA"})
	return s, p, c
}

func TestCollections_CreateStatusAndByDate(t *testing.T) {
	backend, client := setup(t)
	s, p, _ := seedRefs(backend)
	collections := NewCollections(client)
	ctx := context.Background()

	created, err := collections.Create(ctx, collection.Draft{
		SupplierID: dto.FormatID(s.ID), ProductID: dto.FormatID(p.ID),
		Date: "2024-03-15", Time: "09:30", Location: "Rua A",
		Weight: types.MustAmount("100"), Value: types.MustAmount("50"),
		Status: collection.StatusScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", created.SupplierName)
	assert.Equal(t, "PET", created.ProductName)
	assert.Equal(t, "2024-03-15", created.Date)
	assert.Equal(t, "09:30", created.Time)
	assert.Equal(t, supplier.CategoryUnknown, created.SupplierType)

	updated, err := collections.UpdateStatus(ctx, created.ID, collection.StatusCollected)
	require.NoError(t, err)
	assert.Equal(t, collection.StatusCollected, updated.Status)

	req, ok := backend.LastRequest(http.MethodPatch, "/collections/"+created.ID+"/status")
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"Collected"}`, req.Body)

	day, err := collections.ListByDate(ctx, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day.Collections, 1)
	assert.Equal(t, 1, day.Summary.TotalCollections)
	assert.Equal(t, 1, day.Summary.ByStatus[collection.StatusCollected])
	assert.True(t, day.Summary.TotalWeight.Equal(types.MustAmount("100")))

	empty, err := collections.ListByDate(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.Empty(t, empty.Collections)

	_, err = collections.ListByDate(ctx, "15/03/2024")
	assert.True(t, apperror.IsValidation(err))
}

func TestResolveSupplierType(t *testing.T) {
	lookup := lookupFunc(func(id string) (supplier.Category, bool) {
		if id == "1" {
			return supplier.CategoryCompany, true
		}
		return supplier.CategoryUnknown, false
	})

	c := ResolveSupplierType(collection.Collection{SupplierID: "1"}, lookup)
	assert.Equal(t, supplier.CategoryCompany, c.SupplierType)

	c = ResolveSupplierType(collection.Collection{SupplierID: "2", SupplierType: supplier.CategoryAgent}, lookup)
	assert.Equal(t, supplier.CategoryUnknown, c.SupplierType)

	c = ResolveSupplierType(collection.Collection{SupplierID: "1"}, nil)
	assert.Equal(t, supplier.CategoryUnknown, c.SupplierType)
}

type lookupFunc func(id string) (supplier.Category, bool)

func (f lookupFunc) SupplierCategory(id string) (supplier.Category, bool) { return f(id) }

func TestSales_ListWithMetadata(t *testing.T) {
	backend, client := setup(t)
	_, p, c := seedRefs(backend)
	sales := NewSales(client)
	ctx := context.Background()

	created, err := sales.Create(ctx, sale.Draft{
		ClientID: dto.FormatID(c.ID), ProductID: dto.FormatID(p.ID),
		Weight: types.MustAmount("30"), Value: types.MustAmount("90.5"), Date: "2024-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "Recicla SA", created.ClientName)
	assert.Equal(t, "PET", created.ProductType)
	assert.Equal(t, "2024-03-20", created.Date)

	req, ok := backend.LastRequest(http.MethodPost, "/sales")
	require.True(t, ok)
	assert.Contains(t, req.Body, `"dateTime":"2024-03-20T12:00:00Z"`)

	list, meta, err := sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, meta.TotalSales)
	assert.True(t, meta.TotalValue.Equal(types.MustAmount("90.5")))
}
