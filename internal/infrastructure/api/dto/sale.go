package dto

import (
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/sale"
)

// Sale is the wire form of a sale.
type Sale struct {
	ID        int64        `json:"id"`
	ClientID  int64        `json:"clientId"`
	ProductID int64        `json:"productId"`
	DateTime  string       `json:"dateTime"`
	Weight    types.Amount `json:"weight"`
	Value     types.Amount `json:"value"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
	Client    *Ref         `json:"client,omitempty"`
	Product   *Ref         `json:"product,omitempty"`
}

// SalesMetadata holds the totals the backend returns with the sales list.
type SalesMetadata struct {
	TotalSales  int          `json:"totalSales"`
	TotalWeight types.Amount `json:"totalWeight"`
	TotalValue  types.Amount `json:"totalValue"`
}

// SalesWithMetadata is the response of GET /sales.
type SalesWithMetadata struct {
	Sales    []Sale        `json:"sales"`
	Metadata SalesMetadata `json:"metadata"`
}

// CreateSaleRequest is the body of POST /sales.
type CreateSaleRequest struct {
	ClientID  int64        `json:"clientId"`
	ProductID int64        `json:"productId"`
	DateTime  string       `json:"dateTime"`
	Weight    types.Amount `json:"weight"`
	Value     types.Amount `json:"value"`
}

// UpdateSaleRequest is the body of PUT /sales/:id.
type UpdateSaleRequest struct {
	ClientID  *int64        `json:"clientId,omitempty"`
	ProductID *int64        `json:"productId,omitempty"`
	DateTime  *string       `json:"dateTime,omitempty"`
	Weight    *types.Amount `json:"weight,omitempty"`
	Value     *types.Amount `json:"value,omitempty"`
}

// SaleFromWire converts a wire sale.
func SaleFromWire(w Sale) (sale.Sale, error) {
	date, err := DateOf(w.DateTime)
	if err != nil {
		return sale.Sale{}, err
	}
	return sale.Sale{
		ID:          FormatID(w.ID),
		ClientID:    FormatID(w.ClientID),
		ClientName:  refName(w.Client),
		ProductID:   FormatID(w.ProductID),
		ProductType: refName(w.Product),
		Weight:      w.Weight,
		Value:       w.Value,
		Date:        date,
		CreatedAt:   w.CreatedAt,
	}, nil
}

// SaleToWire converts a draft into a create request. The day is sent as noon UTC.
func SaleToWire(d sale.Draft) (CreateSaleRequest, error) {
	clientID, err := ParseID("clientId", d.ClientID)
	if err != nil {
		return CreateSaleRequest{}, err
	}
	productID, err := ParseID("productId", d.ProductID)
	if err != nil {
		return CreateSaleRequest{}, err
	}
	dateTime, err := NoonOf(d.Date)
	if err != nil {
		return CreateSaleRequest{}, err
	}
	return CreateSaleRequest{
		ClientID:  clientID,
		ProductID: productID,
		DateTime:  dateTime,
		Weight:    d.Weight,
		Value:     d.Value,
	}, nil
}

// SalePatchToWire converts the present fields of p.
func SalePatchToWire(p sale.Patch) (UpdateSaleRequest, error) {
	req := UpdateSaleRequest{
		Weight: p.Weight,
		Value:  p.Value,
	}

	var err error
	if req.ClientID, err = parseIDPtr("clientId", p.ClientID); err != nil {
		return UpdateSaleRequest{}, err
	}
	if req.ProductID, err = parseIDPtr("productId", p.ProductID); err != nil {
		return UpdateSaleRequest{}, err
	}
	if p.Date != nil {
		dateTime, err := NoonOf(*p.Date)
		if err != nil {
			return UpdateSaleRequest{}, err
		}
		req.DateTime = &dateTime
	}
	return req, nil
}

// SalesMetadataFromWire converts the sales totals.
func SalesMetadataFromWire(w SalesMetadata) sale.Metadata {
	return sale.Metadata{
		TotalSales:  w.TotalSales,
		TotalWeight: w.TotalWeight,
		TotalValue:  w.TotalValue,
	}
}
