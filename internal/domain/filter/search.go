// Package filter narrows cached lists for display: free-text search per entity
// and boolean expressions over records.
package filter

import (
	"strings"

	"recyclehub/internal/domain/catalogs/client"
	"recyclehub/internal/domain/catalogs/collectionpoint"
	"recyclehub/internal/domain/catalogs/producttype"
	"recyclehub/internal/domain/catalogs/supplier"
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// Suppliers matches name or email case-insensitively, or document as typed.
func Suppliers(items []supplier.Supplier, term string) []supplier.Supplier {
	return keep(items, term, func(s supplier.Supplier, term string) bool {
		return containsFold(s.Name, term) ||
			strings.Contains(s.Document, term) ||
			containsFold(s.Email, term)
	})
}

// Clients matches name or email case-insensitively, or document as typed.
func Clients(items []client.Client, term string) []client.Client {
	return keep(items, term, func(c client.Client, term string) bool {
		return containsFold(c.Name, term) ||
			strings.Contains(c.Document, term) ||
			containsFold(c.Email, term)
	})
}

// CollectionPoints matches name or address.
func CollectionPoints(items []collectionpoint.CollectionPoint, term string) []collectionpoint.CollectionPoint {
	return keep(items, term, func(p collectionpoint.CollectionPoint, term string) bool {
		return containsFold(p.Name, term) || containsFold(p.Address, term)
	})
}

// ProductTypes matches name.
func ProductTypes(items []producttype.ProductType, term string) []producttype.ProductType {
	return keep(items, term, func(p producttype.ProductType, term string) bool {
		return containsFold(p.Name, term)
	})
}

// Collections matches supplier name or location, restricted to status unless
// status is empty or StatusAll.
func Collections(items []collection.Collection, term string, status collection.Status) []collection.Collection {
	anyStatus := status == "" || status == StatusAll
	out := make([]collection.Collection, 0, len(items))
	for _, c := range items {
		if !anyStatus && c.Status != status {
			continue
		}
		if term != "" && !containsFold(c.SupplierName, term) && !containsFold(c.Location, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Sales matches client name or product type.
func Sales(items []sale.Sale, term string) []sale.Sale {
	return keep(items, term, func(s sale.Sale, term string) bool {
		return containsFold(s.ClientName, term) || containsFold(s.ProductType, term)
	})
}

func keep[T any](items []T, term string, match func(T, string) bool) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, term) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}
