package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

const createdAt = "2024-03-01T10:00:00.000Z"

func ptr[T any](v T) *T { return &v }

func TestSupplier_RoundTrip(t *testing.T) {
	for _, category := range supplier.Categories() {
		draft := supplier.Draft{
			Name: "Maria", Document: "123", Phone: "11 9999", Email: "m@x.com",
			Address: "Rua B", Type: category, MaterialType: "PET",
		}
		req, err := SupplierToWire(draft)
		require.NoError(t, err)

		got, err := SupplierFromWire(Supplier{
			ID: 7, Name: req.Name, TaxID: req.TaxID, Phone: req.Phone, Email: req.Email,
			Address: req.Address, SupplierType: req.SupplierType, MaterialType: req.MaterialType,
			CreatedAt: createdAt,
		})
		require.NoError(t, err)
		assert.Equal(t, draft, got.Draft())
		assert.Equal(t, "7", got.ID)
	}
}

func TestCategory_Bijection(t *testing.T) {
	for _, c := range supplier.Categories() {
		w, err := CategoryToWire(c)
		require.NoError(t, err)
		back, err := CategoryFromWire(w)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	for _, w := range []string{SupplierTypeCollector, SupplierTypeAgent, SupplierTypeCompany} {
		c, err := CategoryFromWire(w)
		require.NoError(t, err)
		back, err := CategoryToWire(c)
		require.NoError(t, err)
		assert.Equal(t, w, back)
	}

	w, _ := CategoryToWire(supplier.CategoryCollector)
	assert.Equal(t, "Collector", w)

	_, err := CategoryFromWire("Recycler")
	assert.Error(t, err)
	_, err = CategoryToWire("reciclador")
	assert.True(t, apperror.IsValidation(err))
}

func TestStatus_Bijection(t *testing.T) {
	for _, s := range collection.Statuses() {
		w, err := StatusToWire(s)
		require.NoError(t, err)
		back, err := StatusFromWire(w)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	for _, w := range []string{StatusScheduled, StatusConfirmed, StatusCollected} {
		s, err := StatusFromWire(w)
		require.NoError(t, err)
		back, err := StatusToWire(s)
		require.NoError(t, err)
		assert.Equal(t, w, back)
	}

	_, err := StatusFromWire("Cancelled")
	assert.Error(t, err)
	_, err = StatusToWire("cancelado")
	assert.True(t, apperror.IsValidation(err))
}

func TestClientAndCollectionPoint_RoundTrip(t *testing.T) {
	cd := client.Draft{Name: "Recicla SA", Document: "00.000/0001", Phone: "1", Email: "c@x.com", Address: "Av C"}
	creq, err := ClientToWire(cd)
	require.NoError(t, err)
	c, err := ClientFromWire(Client{ID: 3, Name: creq.Name, TaxID: creq.TaxID, Phone: creq.Phone, Email: creq.Email, Address: creq.Address})
	require.NoError(t, err)
	assert.Equal(t, cd, c.Draft())

	pd := collectionpoint.Draft{Name: "Ecoponto", Address: "Rua D", Phone: "2", Email: "p@x.com", Responsible: "João"}
	preq, err := CollectionPointToWire(pd)
	require.NoError(t, err)
	p, err := CollectionPointFromWire(CollectionPoint{ID: 4, Name: preq.Name, Responsible: preq.Responsible, Address: preq.Address, Phone: preq.Phone, Email: preq.Email})
	require.NoError(t, err)
	assert.Equal(t, pd, p.Draft())
}

func TestProductType_RoundTripAndUnit(t *testing.T) {
	d := producttype.Draft{Name: "PET", Description: "garrafas", Unit: producttype.UnitKilogram}
	req, err := ProductTypeToWire(d)
	require.NoError(t, err)
	got, err := ProductTypeFromWire(ProductType{ID: 2, Name: req.Name, Description: req.Description, Unit: req.Unit})
	require.NoError(t, err)
	assert.Equal(t, d, got.Draft())

	_, err = ProductTypeToWire(producttype.Draft{Name: "PET", Unit: "lb"})
	assert.True(t, apperror.IsValidation(err))

	_, err = ProductTypePatchToWire(producttype.Patch{Unit: ptr(producttype.Unit("t"))})
	assert.True(t, apperror.IsValidation(err))
}

func TestCollection_RoundTrip(t *testing.T) {
	draft := collection.Draft{
		SupplierID: "1", Date: "2024-03-15", Time: "09:30", Location: "Rua A",
		ProductID: "2", Weight: types.MustAmount("120.5"), Value: types.MustAmount("60.25"),
		Status: collection.StatusConfirmed,
	}
	req, err := CollectionToWire(draft)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15T09:30:00Z", req.DateTime)
	assert.Equal(t, StatusConfirmed, req.Status)

	got, err := CollectionFromWire(Collection{
		ID: 10, SupplierID: req.SupplierID, Status: req.Status, DateTime: req.DateTime,
		Location: req.Location, ProductID: req.ProductID, Weight: req.Weight, Value: req.Value,
		CreatedAt: createdAt,
		Supplier:  &Ref{ID: 1, Name: "Maria"},
		Product:   &Ref{ID: 2, Name: "PET", Unit: "kg"},
	})
	require.NoError(t, err)
	assert.Equal(t, draft, got.Draft())
	assert.Equal(t, "Maria", got.SupplierName)
	assert.Equal(t, "PET", got.ProductName)
	assert.Equal(t, supplier.CategoryUnknown, got.SupplierType)
}

func TestDateTime_SplitJoin(t *testing.T) {
	for _, instant := range []string{
		"2024-03-15T09:30:00Z",
		"2024-12-31T23:59:00Z",
		"2024-01-01T00:00:00Z",
	} {
		date, clock, err := SplitDateTime(instant)
		require.NoError(t, err)
		joined, err := JoinDateTime(date, clock)
		require.NoError(t, err)
		assert.Equal(t, instant, joined)
	}

	// Offsets and millis are normalized to UTC.
	date, clock, err := SplitDateTime("2024-03-15T21:30:00.000-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", date)
	assert.Equal(t, "00:30", clock)

	_, err = JoinDateTime("15/03/2024", "09:30")
	assert.True(t, apperror.IsValidation(err))
}

func TestCollectionPatch_Omission(t *testing.T) {
	req, err := CollectionPatchToWire(collection.Patch{Location: ptr("Rua Nova")})
	require.NoError(t, err)
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":"Rua Nova"}`, string(b))

	req, err = CollectionPatchToWire(collection.Patch{Date: ptr("2024-03-16"), Time: ptr("08:00")})
	require.NoError(t, err)
	b, _ = json.Marshal(req)
	assert.JSONEq(t, `{"dateTime":"2024-03-16T08:00:00Z"}`, string(b))

	_, err = CollectionPatchToWire(collection.Patch{Date: ptr("2024-03-16")})
	assert.True(t, apperror.IsValidation(err))

	_, err = CollectionPatchToWire(collection.Patch{SupplierID: ptr("abc")})
	assert.True(t, apperror.IsValidation(err))
}

func TestSupplierPatch_Omission(t *testing.T) {
	req, err := SupplierPatchToWire(supplier.Patch{Type: ptr(supplier.CategoryAgent)})
	require.NoError(t, err)
	b, _ := json.Marshal(req)
	assert.JSONEq(t, `{"supplierType":"Agent"}`, string(b))

	req, err = SupplierPatchToWire(supplier.Patch{Document: ptr("999")})
	require.NoError(t, err)
	b, _ = json.Marshal(req)
	assert.JSONEq(t, `{"taxId":"999"}`, string(b))
}

func TestSale_RoundTripAndNoon(t *testing.T) {
	draft := sale.Draft{
		ClientID: "3", ProductID: "2", Weight: types.MustAmount("50"),
		Value: types.MustAmount("125.9"), Date: "2024-03-20",
	}
	req, err := SaleToWire(draft)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20T12:00:00Z", req.DateTime)

	got, err := SaleFromWire(Sale{
		ID: 5, ClientID: req.ClientID, ProductID: req.ProductID, DateTime: req.DateTime,
		Weight: req.Weight, Value: req.Value,
		Client:  &Ref{ID: 3, Name: "Recicla SA"},
		Product: &Ref{ID: 2, Name: "PET"},
	})
	require.NoError(t, err)
	assert.Equal(t, draft, got.Draft())
	assert.Equal(t, "Recicla SA", got.ClientName)
	assert.Equal(t, "PET", got.ProductType)

	patch, err := SalePatchToWire(sale.Patch{Value: ptr(types.MustAmount("10"))})
	require.NoError(t, err)
	b, _ := json.Marshal(patch)
	assert.JSONEq(t, `{"value":10}`, string(b))
}

func TestCollectionsByDateFromWire(t *testing.T) {
	day, err := CollectionsByDateFromWire(CollectionsByDate{
		Date: "2024-03-15",
		Collections: []Collection{{
			ID: 1, SupplierID: 1, ProductID: 2, Status: StatusScheduled,
			DateTime: "2024-03-15T09:30:00Z", Supplier: &Ref{Name: "Maria"}, Product: &Ref{Name: "PET"},
		}},
		Summary: CollectionsSummary{
			TotalCollections: 1,
			TotalWeight:      types.MustAmount("10"),
			ByStatus:         map[string]int{StatusScheduled: 1, StatusConfirmed: 0, StatusCollected: 0},
		},
	})
	require.NoError(t, err)
	assert.Len(t, day.Collections, 1)
	assert.Equal(t, 1, day.Summary.ByStatus[collection.StatusScheduled])
	assert.Equal(t, 0, day.Summary.ByStatus[collection.StatusCollected])
}

func TestParseID(t *testing.T) {
	n, err := ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	for _, bad := range []string{"", "4.2", "abc", "-1"} {
		_, err := ParseID("id", bad)
		assert.True(t, apperror.IsValidation(err), bad)
	}
}
