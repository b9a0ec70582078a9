// Package sale provides the Sale document: material sold to a client.
package sale

import (
	"recyclehub/internal/core/types"
	"recyclehub/internal/core/validation"
)

// DateLayout is the layout of the Date field.
const DateLayout = "2006-01-02"

// Sale is the dashboard representation of a sale.
// ProductType holds the product name, ClientName the client name; both are
// copied from the backend response on every read.
type Sale struct {
	ID          string       `json:"id"`
	ClientID    string       `json:"clientId"`
	ClientName  string       `json:"clientName"`
	ProductID   string       `json:"productId"`
	ProductType string       `json:"productType"`
	Weight      types.Amount `json:"weight"`
	Value       types.Amount `json:"value"`
	Date        string       `json:"date"`
	CreatedAt   string       `json:"createdAt"`
}

// Metadata holds the totals the backend computes over all sales.
type Metadata struct {
	TotalSales  int          `json:"totalSales"`
	TotalWeight types.Amount `json:"totalWeight"`
	TotalValue  types.Amount `json:"totalValue"`
}

// Draft is a sale that has not been created yet.
type Draft struct {
	ClientID  string       `json:"clientId" validate:"required,number"`
	ProductID string       `json:"productId" validate:"required,number" ref:"product-types"`
	Weight    types.Amount `json:"weight" validate:"gte=0"`
	Value     types.Amount `json:"value" validate:"gte=0"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of s.
func (s Sale) Draft() Draft {
	return Draft{
		ClientID:  s.ClientID,
		ProductID: s.ProductID,
		Weight:    s.Weight,
		Value:     s.Value,
		Date:      s.Date,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	ClientID  *string       `json:"clientId,omitempty" validate:"omitempty,number"`
	ProductID *string       `json:"productId,omitempty" validate:"omitempty,number"`
	Weight    *types.Amount `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Value     *types.Amount `json:"value,omitempty" validate:"omitempty,gte=0"`
	Date      *string       `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	return validation.Struct(p)
}
