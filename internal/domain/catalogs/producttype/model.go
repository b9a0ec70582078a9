// Package producttype provides the ProductType catalog: kinds of material
// that are collected and sold, with their unit of measure.
package producttype

import (
	"recyclehub/internal/core/validation"
)

// Unit is a mass unit.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
)

// IsValid reports whether u belongs to the closed set accepted by the backend.
func (u Unit) IsValid() bool {
	return u == UnitGram || u == UnitKilogram
}

// ProductType is the dashboard representation of a product type.
type ProductType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        Unit   `json:"unit"`
	CreatedAt   string `json:"createdAt"`
}

// Draft is a product type that has not been created yet.
type Draft struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Unit        Unit   `json:"unit" validate:"required,oneof=g kg"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of p.
func (p ProductType) Draft() Draft {
	return Draft{
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Unit        *Unit   `json:"unit,omitempty" validate:"omitempty,oneof=g kg"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	return validation.Struct(p)
}
