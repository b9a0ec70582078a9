// Package supplier provides the Supplier catalog as shown to the dashboard.
// Suppliers are the people and companies material is collected from.
package supplier

import (
	"recyclehub/internal/core/validation"
)

// Category defines what kind of supplier this is.
type Category string

const (
	CategoryCollector Category = "catador"    // independent waste picker
	CategoryAgent     Category = "agenciador" // middleman
	CategoryCompany   Category = "empresa"    // company
)

// CategoryUnknown is used where the category cannot be derived.
const CategoryUnknown Category = ""

// Categories lists every valid category.
func Categories() []Category {
	return []Category{CategoryCollector, CategoryAgent, CategoryCompany}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCollector, CategoryAgent, CategoryCompany:
		return true
	}
	return false
}

// Supplier is the dashboard representation of a supplier.
type Supplier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Document     string   `json:"document"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Type         Category `json:"type"`
	MaterialType string   `json:"materialType"`
	CreatedAt    string   `json:"createdAt"`
}

// Draft is a supplier that has not been created yet.
type Draft struct {
	Name         string   `json:"name" validate:"required"`
	Document     string   `json:"document" validate:"required"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Address      string   `json:"address"`
	Type         Category `json:"type" validate:"required,oneof=catador agenciador empresa"`
	MaterialType string   `json:"materialType"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of s.
func (s Supplier) Draft() Draft {
	return Draft{
		Name:         s.Name,
		Document:     s.Document,
		Phone:        s.Phone,
		Email:        s.Email,
		Address:      s.Address,
		Type:         s.Type,
		MaterialType: s.MaterialType,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	Name         *string   `json:"name,omitempty"`
	Document     *string   `json:"document,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty" validate:"omitempty,email"`
	Address      *string   `json:"address,omitempty"`
	Type         *Category `json:"type,omitempty" validate:"omitempty,oneof=catador agenciador empresa"`
	MaterialType *string   `json:"materialType,omitempty"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	return validation.Struct(p)
}
