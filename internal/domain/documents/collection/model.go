// Package collection provides the Collection document: a scheduled pickup of
// material from a supplier.
package collection

import (
	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
	"recyclehub/internal/core/validation"
	"recyclehub/internal/domain/catalogs/supplier"
)

// Status is the dashboard status of a collection.
type Status string

const (
	StatusScheduled Status = "agendado"
	StatusConfirmed Status = "confirmado"
	StatusCollected Status = "coletado"
)

// Statuses lists every status in workflow order.
func Statuses() []Status {
	return []Status{StatusScheduled, StatusConfirmed, StatusCollected}
}

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCollected:
		return true
	}
	return false
}

// Layouts of the split date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Collection is the dashboard representation of a collection.
// SupplierName and ProductName are copied from the backend response on every read.
type Collection struct {
	ID           string            `json:"id"`
	SupplierID   string            `json:"supplierId"`
	SupplierName string            `json:"supplierName"`
	SupplierType supplier.Category `json:"supplierType"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Location     string            `json:"location"`
	ProductID    string            `json:"productId"`
	ProductName  string            `json:"productName"`
	Weight       types.Amount      `json:"weight"`
	Value        types.Amount      `json:"value"`
	Status       Status            `json:"status"`
	CreatedAt    string            `json:"createdAt"`
}

// Draft is a collection that has not been created yet.
type Draft struct {
	SupplierID string       `json:"supplierId" validate:"required,number"`
	Date       string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string       `json:"time" validate:"required,datetime=15:04"`
	Location   string       `json:"location" validate:"required"`
	ProductID  string       `json:"productId" validate:"required,number" ref:"product-types"`
	Weight     types.Amount `json:"weight" validate:"gte=0"`
	Value      types.Amount `json:"value" validate:"gte=0"`
	Status     Status       `json:"status" validate:"required,oneof=agendado confirmado coletado"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of c.
func (c Collection) Draft() Draft {
	return Draft{
		SupplierID: c.SupplierID,
		Date:       c.Date,
		Time:       c.Time,
		Location:   c.Location,
		ProductID:  c.ProductID,
		Weight:     c.Weight,
		Value:      c.Value,
		Status:     c.Status,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
// Date and Time travel as one instant, so they must be set together.
type Patch struct {
	SupplierID *string       `json:"supplierId,omitempty" validate:"omitempty,number"`
	Date       *string       `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time       *string       `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Location   *string       `json:"location,omitempty"`
	ProductID  *string       `json:"productId,omitempty" validate:"omitempty,number"`
	Weight     *types.Amount `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Value      *types.Amount `json:"value,omitempty" validate:"omitempty,gte=0"`
	Status     *Status       `json:"status,omitempty" validate:"omitempty,oneof=agendado confirmado coletado"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if (p.Date == nil) != (p.Time == nil) {
		return apperror.NewValidation("date and time must be updated together").
			WithDetail("field", "dateTime")
	}
	return nil
}

// Day is the backend view of all collections scheduled on one date.
type Day struct {
	Date        string       `json:"date"`
	Collections []Collection `json:"collections"`
	Summary     DaySummary   `json:"summary"`
}

// DaySummary holds the backend totals for one date.
type DaySummary struct {
	TotalCollections int            `json:"totalCollections"`
	TotalWeight      types.Amount   `json:"totalWeight"`
	TotalValue       types.Amount   `json:"totalValue"`
	ByStatus         map[Status]int `json:"byStatus"`
}
