package reports

import (
	"sort"

	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

// Source provides the records reports are computed from.
type Source interface {
	Collections() []collection.Collection
	Sales() []sale.Sale
	SalesMetadata() sale.Metadata
}

// Service builds reports from a Source.
type Service struct {
	src Source
}

// NewService creates a new reports service.
func NewService(src Source) *Service {
	return &Service{src: src}
}

// Dashboard builds the dashboard from the current records.
func (s *Service) Dashboard() Dashboard {
	collections := s.src.Collections()
	sales := s.src.Sales()
	return Dashboard{
		Summary:               Summarize(collections, sales, s.src.SalesMetadata()),
		CollectionsBySupplier: CollectionsBySupplier(collections),
		SalesByProduct:        SalesByProduct(sales),
		Monthly:               Monthly(collections, sales),
	}
}

// Calendar groups the current collections by date.
func (s *Service) Calendar() []CalendarDay {
	return Calendar(s.src.Collections())
}

// Summarize computes the headline figures.
func Summarize(collections []collection.Collection, sales []sale.Sale, meta sale.Metadata) Summary {
	sum := Summary{
		TotalCollected:  types.ZeroAmount(),
		TotalSold:       types.ZeroAmount(),
		TotalRevenue:    types.ZeroAmount(),
		CollectionCount: len(collections),
		SaleCount:       len(sales),
		SalesMetadata:   meta,
	}
	for _, c := range collections {
		sum.TotalCollected = sum.TotalCollected.Add(c.Weight)
	}
	for _, s := range sales {
		sum.TotalSold = sum.TotalSold.Add(s.Weight)
		sum.TotalRevenue = sum.TotalRevenue.Add(s.Value)
	}
	sum.StockBalance = sum.TotalCollected.Sub(sum.TotalSold)
	return sum
}

// CollectionsBySupplier sums collected weight per supplier name, in first-seen order.
func CollectionsBySupplier(collections []collection.Collection) []Point {
	g := newGrouper()
	for _, c := range collections {
		g.add(c.SupplierName, c.Weight)
	}
	return g.points
}

// SalesByProduct sums sold weight per product name, in first-seen order.
func SalesByProduct(sales []sale.Sale) []Point {
	g := newGrouper()
	for _, s := range sales {
		g.add(s.ProductType, s.Weight)
	}
	return g.points
}

// Monthly compares collected and sold weight per month, oldest first.
// Records with a malformed date are skipped.
func Monthly(collections []collection.Collection, sales []sale.Sale) []MonthPoint {
	months := make(map[string]*MonthPoint)
	get := func(date string) *MonthPoint {
		if len(date) < 7 {
			return nil
		}
		key := date[:7]
		p, ok := months[key]
		if !ok {
			p = &MonthPoint{Month: key, Collected: types.ZeroAmount(), Sold: types.ZeroAmount()}
			months[key] = p
		}
		return p
	}

	for _, c := range collections {
		if p := get(c.Date); p != nil {
			p.Collected = p.Collected.Add(c.Weight)
		}
	}
	for _, s := range sales {
		if p := get(s.Date); p != nil {
			p.Sold = p.Sold.Add(s.Weight)
		}
	}

	out := make([]MonthPoint, 0, len(months))
	for _, p := range months {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Calendar groups collections by date, dates ascending, records in input order.
func Calendar(collections []collection.Collection) []CalendarDay {
	index := make(map[string]int)
	var days []CalendarDay
	for _, c := range collections {
		i, ok := index[c.Date]
		if !ok {
			i = len(days)
			index[c.Date] = i
			days = append(days, CalendarDay{
				Date:        c.Date,
				ByStatus:    make(map[collection.Status]int),
				TotalWeight: types.ZeroAmount(),
			})
		}
		days[i].Collections = append(days[i].Collections, c)
		days[i].ByStatus[c.Status]++
		days[i].TotalWeight = days[i].TotalWeight.Add(c.Weight)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	if days == nil {
		return []CalendarDay{}
	}
	return days
}

type grouper struct {
	index  map[string]int
	points []Point
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]int), points: []Point{}}
}

func (g *grouper) add(name string, v types.Amount) {
	if i, ok := g.index[name]; ok {
		g.points[i].Value = g.points[i].Value.Add(v)
		return
	}
	g.index[name] = len(g.points)
	g.points = append(g.points, Point{Name: name, Value: v})
}
