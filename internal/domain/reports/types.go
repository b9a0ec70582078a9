// Package reports computes the dashboard aggregates over cached collections and sales.
package reports

import (
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

// Summary holds the headline figures of the dashboard.
type Summary struct {
	TotalCollected types.Amount `json:"totalCollected"` // sum of collection weights
	TotalSold      types.Amount `json:"totalSold"`      // sum of sale weights
	StockBalance   types.Amount `json:"stockBalance"`   // collected minus sold
	TotalRevenue   types.Amount `json:"totalRevenue"`   // sum of sale values

	CollectionCount int           `json:"collectionCount"`
	SaleCount       int           `json:"saleCount"`
	SalesMetadata   sale.Metadata `json:"salesMetadata"`
}

// Point is one named slice of a chart.
type Point struct {
	Name  string       `json:"name"`
	Value types.Amount `json:"value"`
}

// MonthPoint compares collected and sold weight for one month.
type MonthPoint struct {
	Month     string       `json:"month"` // YYYY-MM
	Collected types.Amount `json:"collected"`
	Sold      types.Amount `json:"sold"`
}

// Dashboard is the full dashboard payload.
type Dashboard struct {
	Summary               Summary      `json:"summary"`
	CollectionsBySupplier []Point      `json:"collectionsBySupplier"`
	SalesByProduct        []Point      `json:"salesByProduct"`
	Monthly               []MonthPoint `json:"monthly"`
}

// CalendarDay groups the collections of one date.
type CalendarDay struct {
	Date        string                    `json:"date"`
	Collections []collection.Collection   `json:"collections"`
	ByStatus    map[collection.Status]int `json:"byStatus"`
	TotalWeight types.Amount              `json:"totalWeight"`
}
