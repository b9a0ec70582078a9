package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

type fixture struct {
	collections []collection.Collection
	sales       []sale.Sale
	meta        sale.Metadata
}

func (f fixture) Collections() []collection.Collection { return f.collections }
func (f fixture) Sales() []sale.Sale                   { return f.sales }
func (f fixture) SalesMetadata() sale.Metadata         { return f.meta }

func amt(s string) types.Amount { return types.MustAmount(s) }

func sampleData() fixture {
	return fixture{
		collections: []collection.Collection{
			{ID: "1", SupplierName: "Maria", Date: "2024-03-15", Weight: amt("100"), Status: collection.StatusScheduled},
			{ID: "2", SupplierName: "João", Date: "2024-02-10", Weight: amt("50.5"), Status: collection.StatusCollected},
			{ID: "3", SupplierName: "Maria", Date: "2024-03-15", Weight: amt("25"), Status: collection.StatusCollected},
		},
		sales: []sale.Sale{
			{ID: "1", ProductType: "PET", Date: "2024-03-20", Weight: amt("30"), Value: amt("90")},
			{ID: "2", ProductType: "Papelão", Date: "2024-03-21", Weight: amt("20"), Value: amt("10.5")},
			{ID: "3", ProductType: "PET", Date: "2024-04-01", Weight: amt("5"), Value: amt("15")},
		},
		meta: sale.Metadata{TotalSales: 3, TotalWeight: amt("55"), TotalValue: amt("115.5")},
	}
}

func TestSummarize(t *testing.T) {
	f := sampleData()
	sum := Summarize(f.collections, f.sales, f.meta)

	assert.True(t, sum.TotalCollected.Equal(amt("175.5")))
	assert.True(t, sum.TotalSold.Equal(amt("55")))
	assert.True(t, sum.StockBalance.Equal(amt("120.5")))
	assert.True(t, sum.TotalRevenue.Equal(amt("115.5")))
	assert.Equal(t, 3, sum.CollectionCount)
	assert.Equal(t, f.meta, sum.SalesMetadata)

	empty := Summarize(nil, nil, sale.Metadata{})
	assert.True(t, empty.StockBalance.Equal(types.ZeroAmount()))
}

func TestGrouping_FirstSeenOrder(t *testing.T) {
	f := sampleData()

	bySupplier := CollectionsBySupplier(f.collections)
	require.Len(t, bySupplier, 2)
	assert.Equal(t, "Maria", bySupplier[0].Name)
	assert.True(t, bySupplier[0].Value.Equal(amt("125")))
	assert.Equal(t, "João", bySupplier[1].Name)

	byProduct := SalesByProduct(f.sales)
	require.Len(t, byProduct, 2)
	assert.Equal(t, "PET", byProduct[0].Name)
	assert.True(t, byProduct[0].Value.Equal(amt("35")))

	assert.Empty(t, SalesByProduct(nil))
}

func TestMonthly(t *testing.T) {
	f := sampleData()
	months := Monthly(f.collections, f.sales)

	require.Len(t, months, 3)
	assert.Equal(t, "2024-02", months[0].Month)
	assert.Equal(t, "2024-03", months[1].Month)
	assert.True(t, months[1].Collected.Equal(amt("125")))
	assert.True(t, months[1].Sold.Equal(amt("50")))
	assert.Equal(t, "2024-04", months[2].Month)
	assert.True(t, months[2].Collected.Equal(types.ZeroAmount()))
}

func TestCalendar(t *testing.T) {
	days := Calendar(sampleData().collections)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-02-10", days[0].Date)
	assert.Equal(t, "2024-03-15", days[1].Date)
	require.Len(t, days[1].Collections, 2)
	assert.Equal(t, "1", days[1].Collections[0].ID)
	assert.Equal(t, "3", days[1].Collections[1].ID)
	assert.Equal(t, 1, days[1].ByStatus[collection.StatusCollected])
	assert.True(t, days[1].TotalWeight.Equal(amt("125")))

	assert.Empty(t, Calendar(nil))
}

func TestService_Dashboard(t *testing.T) {
	d := NewService(sampleData()).Dashboard()
	assert.Len(t, d.CollectionsBySupplier, 2)
	assert.Len(t, d.SalesByProduct, 2)
	assert.Len(t, d.Monthly, 3)
	assert.True(t, d.Summary.TotalRevenue.Equal(amt("115.5")))
}
