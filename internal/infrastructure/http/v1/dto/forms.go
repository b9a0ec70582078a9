package dto

import (
	"recyclehub/internal/domain/documents/collection"
	"recyclehub/internal/domain/documents/sale"
)

// --- Collections ---

// CollectionForm is the create body of a collection.
type CollectionForm struct {
	SupplierID string            `json:"supplierId"`
	ProductID  string            `json:"productId"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Location   string            `json:"location"`
	Weight     AmountText        `json:"weight"`
	Value      AmountText        `json:"value"`
	Status     collection.Status `json:"status"`
}

// ToDraft normalizes the amounts and returns the draft.
func (f CollectionForm) ToDraft() (collection.Draft, error) {
	weight, err := f.Weight.Parse("weight")
	if err != nil {
		return collection.Draft{}, err
	}
	value, err := f.Value.Parse("value")
	if err != nil {
		return collection.Draft{}, err
	}
	return collection.Draft{
		SupplierID: f.SupplierID,
		ProductID:  f.ProductID,
		Date:       f.Date,
		Time:       f.Time,
		Location:   f.Location,
		Weight:     weight,
		Value:      value,
		Status:     f.Status,
	}, nil
}

// CollectionPatchForm is the update body of a collection.
type CollectionPatchForm struct {
	SupplierID *string            `json:"supplierId"`
	ProductID  *string            `json:"productId"`
	Date       *string            `json:"date"`
	Time       *string            `json:"time"`
	Location   *string            `json:"location"`
	Weight     *AmountText        `json:"weight"`
	Value      *AmountText        `json:"value"`
	Status     *collection.Status `json:"status"`
}

// ToPatch normalizes the amounts that are present and returns the patch.
func (f CollectionPatchForm) ToPatch() (collection.Patch, error) {
	weight, err := parseOptional("weight", f.Weight)
	if err != nil {
		return collection.Patch{}, err
	}
	value, err := parseOptional("value", f.Value)
	if err != nil {
		return collection.Patch{}, err
	}
	return collection.Patch{
		SupplierID: f.SupplierID,
		ProductID:  f.ProductID,
		Date:       f.Date,
		Time:       f.Time,
		Location:   f.Location,
		Weight:     weight,
		Value:      value,
		Status:     f.Status,
	}, nil
}

// StatusRequest is the body of a collection status change.
type StatusRequest struct {
	Status collection.Status `json:"status" binding:"required"`
}

// --- Sales ---

// SaleForm is the create body of a sale.
type SaleForm struct {
	ClientID  string     `json:"clientId"`
	ProductID string     `json:"productId"`
	Weight    AmountText `json:"weight"`
	Value     AmountText `json:"value"`
	Date      string     `json:"date"`
}

// ToDraft normalizes the amounts and returns the draft.
func (f SaleForm) ToDraft() (sale.Draft, error) {
	weight, err := f.Weight.Parse("weight")
	if err != nil {
		return sale.Draft{}, err
	}
	value, err := f.Value.Parse("value")
	if err != nil {
		return sale.Draft{}, err
	}
	return sale.Draft{
		ClientID:  f.ClientID,
		ProductID: f.ProductID,
		Weight:    weight,
		Value:     value,
		Date:      f.Date,
	}, nil
}

// SalePatchForm is the update body of a sale.
type SalePatchForm struct {
	ClientID  *string     `json:"clientId"`
	ProductID *string     `json:"productId"`
	Weight    *AmountText `json:"weight"`
	Value     *AmountText `json:"value"`
	Date      *string     `json:"date"`
}

// ToPatch normalizes the amounts that are present and returns the patch.
func (f SalePatchForm) ToPatch() (sale.Patch, error) {
	weight, err := parseOptional("weight", f.Weight)
	if err != nil {
		return sale.Patch{}, err
	}
	value, err := parseOptional("value", f.Value)
	if err != nil {
		return sale.Patch{}, err
	}
	return sale.Patch{
		ClientID:  f.ClientID,
		ProductID: f.ProductID,
		Weight:    weight,
		Value:     value,
		Date:      f.Date,
	}, nil
}

// SalesResponse is the list body of sales.
type SalesResponse struct {
	ListResponse
	Metadata sale.Metadata `json:"metadata"`
}
