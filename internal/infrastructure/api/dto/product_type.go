package dto

import (
	"fmt"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/catalogs/producttype"
)

// ProductType is the wire form of a product type.
type ProductType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateProductTypeRequest is the body of POST /product-types.
type CreateProductTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// UpdateProductTypeRequest is the body of PUT /product-types/:id.
type UpdateProductTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Unit        *string `json:"unit,omitempty"`
}

func unitToWire(u producttype.Unit) (string, error) {
	if !u.IsValid() {
		return "", apperror.NewValidation(fmt.Sprintf("unit must be one of: g kg, got %q", u)).
			WithDetail("field", "unit")
	}
	return string(u), nil
}

// ProductTypeFromWire converts a wire product type.
func ProductTypeFromWire(w ProductType) (producttype.ProductType, error) {
	return producttype.ProductType{
		ID:          FormatID(w.ID),
		Name:        w.Name,
		Description: w.Description,
		Unit:        producttype.Unit(w.Unit),
		CreatedAt:   w.CreatedAt,
	}, nil
}

// ProductTypeToWire converts a draft into a create request.
func ProductTypeToWire(d producttype.Draft) (CreateProductTypeRequest, error) {
	unit, err := unitToWire(d.Unit)
	if err != nil {
		return CreateProductTypeRequest{}, err
	}
	return CreateProductTypeRequest{
		Name:        d.Name,
		Description: d.Description,
		Unit:        unit,
	}, nil
}

// ProductTypePatchToWire converts the present fields of p.
func ProductTypePatchToWire(p producttype.Patch) (UpdateProductTypeRequest, error) {
	req := UpdateProductTypeRequest{
		Name:        p.Name,
		Description: p.Description,
	}
	if p.Unit != nil {
		unit, err := unitToWire(*p.Unit)
		if err != nil {
			return UpdateProductTypeRequest{}, err
		}
		req.Unit = &unit
	}
	return req, nil
}
