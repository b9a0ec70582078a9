package resources

import (
	"context"

	"recyclehub/internal/domain/documents/sale"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/dto"
)

// Sales is the sale adapter. Its list carries backend totals.
type Sales struct {
	*Resource[dto.Sale, sale.Sale, sale.Draft, sale.Patch, dto.CreateSaleRequest, dto.UpdateSaleRequest]
}

// NewSales creates the adapter for /sales.
func NewSales(r api.Requester) *Sales {
	return &Sales{
		Resource: New(r, Config[dto.Sale, sale.Sale, sale.Draft, sale.Patch, dto.CreateSaleRequest, dto.UpdateSaleRequest]{
			Path:        "/sales",
			Entity:      "sale",
			FromWire:    dto.SaleFromWire,
			ToWire:      dto.SaleToWire,
			PatchToWire: dto.SalePatchToWire,
		}),
	}
}

// List fetches all sales and the totals computed by the backend.
func (s *Sales) List(ctx context.Context) ([]sale.Sale, sale.Metadata, error) {
	wire, err := api.GetJSON[dto.SalesWithMetadata](ctx, s.api, s.path)
	if err != nil {
		return nil, sale.Metadata{}, err
	}
	sales, err := s.convertAll(wire.Sales)
	if err != nil {
		return nil, sale.Metadata{}, err
	}
	return sales, dto.SalesMetadataFromWire(wire.Metadata), nil
}
