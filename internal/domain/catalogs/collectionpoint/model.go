// Package collectionpoint provides the CollectionPoint catalog:
// drop-off places where material is gathered.
package collectionpoint

import (
	"recyclehub/internal/core/validation"
)

// CollectionPoint is the dashboard representation of a collection point.
type CollectionPoint struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Responsible string `json:"responsible"`
	CreatedAt   string `json:"createdAt"`
}

// Draft is a collection point that has not been created yet.
type Draft struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Responsible string `json:"responsible"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of p.
func (p CollectionPoint) Draft() Draft {
	return Draft{
		Name:        p.Name,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Responsible: p.Responsible,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Responsible *string `json:"responsible,omitempty"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	return validation.Struct(p)
}
