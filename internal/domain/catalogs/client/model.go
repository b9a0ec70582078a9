// Package client provides the Client catalog: buyers of recycled material.
package client

import (
	"recyclehub/internal/core/validation"
)

// Client is the dashboard representation of a client.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Document  string `json:"document"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

// Draft is a client that has not been created yet.
type Draft struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document" validate:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address"`
}

// Validate checks the draft before it is submitted.
func (d Draft) Validate() error {
	return validation.Struct(d)
}

// Draft returns the editable part of c.
func (c Client) Draft() Draft {
	return Draft{
		Name:     c.Name,
		Document: c.Document,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
	}
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Address  *string `json:"address,omitempty"`
}

// Validate checks the fields that are present.
func (p Patch) Validate() error {
	return validation.Struct(p)
}
