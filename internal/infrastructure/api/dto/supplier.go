package dto

import (
	"fmt"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/domain/catalogs/supplier"
)

// Wire supplier types.
const (
	SupplierTypeCollector = "Collector"
	SupplierTypeAgent     = "Agent"
	SupplierTypeCompany   = "Company"
)

var (
	categoryToWire = map[supplier.Category]string{
		supplier.CategoryCollector: SupplierTypeCollector,
		supplier.CategoryAgent:     SupplierTypeAgent,
		supplier.CategoryCompany:   SupplierTypeCompany,
	}
	categoryFromWire = map[string]supplier.Category{
		SupplierTypeCollector: supplier.CategoryCollector,
		SupplierTypeAgent:     supplier.CategoryAgent,
		SupplierTypeCompany:   supplier.CategoryCompany,
	}
)

// CategoryToWire maps a dashboard category to the wire supplier type.
func CategoryToWire(c supplier.Category) (string, error) {
	w, ok := categoryToWire[c]
	if !ok {
		return "", apperror.NewValidation(fmt.Sprintf("unknown supplier type %q", c)).
			WithDetail("field", "type")
	}
	return w, nil
}

// CategoryFromWire maps a wire supplier type to the dashboard category.
func CategoryFromWire(w string) (supplier.Category, error) {
	c, ok := categoryFromWire[w]
	if !ok {
		return supplier.CategoryUnknown, fmt.Errorf("unknown wire supplier type %q", w)
	}
	return c, nil
}

// Supplier is the wire form of a supplier.
type Supplier struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"taxId"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	SupplierType string `json:"supplierType"`
	MaterialType string `json:"materialType"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CreateSupplierRequest is the body of POST /suppliers.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	TaxID        string `json:"taxId"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	SupplierType string `json:"supplierType"`
	MaterialType string `json:"materialType"`
}

// UpdateSupplierRequest is the body of PUT /suppliers/:id.
type UpdateSupplierRequest struct {
	Name         *string `json:"name,omitempty"`
	TaxID        *string `json:"taxId,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Address      *string `json:"address,omitempty"`
	SupplierType *string `json:"supplierType,omitempty"`
	MaterialType *string `json:"materialType,omitempty"`
}

// SupplierFromWire converts a wire supplier.
func SupplierFromWire(w Supplier) (supplier.Supplier, error) {
	category, err := CategoryFromWire(w.SupplierType)
	if err != nil {
		return supplier.Supplier{}, err
	}
	return supplier.Supplier{
		ID:           FormatID(w.ID),
		Name:         w.Name,
		Document:     w.TaxID,
		Phone:        w.Phone,
		Email:        w.Email,
		Address:      w.Address,
		Type:         category,
		MaterialType: w.MaterialType,
		CreatedAt:    w.CreatedAt,
	}, nil
}

// SupplierToWire converts a draft into a create request.
func SupplierToWire(d supplier.Draft) (CreateSupplierRequest, error) {
	supplierType, err := CategoryToWire(d.Type)
	if err != nil {
		return CreateSupplierRequest{}, err
	}
	return CreateSupplierRequest{
		Name:         d.Name,
		TaxID:        d.Document,
		Phone:        d.Phone,
		Email:        d.Email,
		Address:      d.Address,
		SupplierType: supplierType,
		MaterialType: d.MaterialType,
	}, nil
}

// SupplierPatchToWire converts the present fields of p.
func SupplierPatchToWire(p supplier.Patch) (UpdateSupplierRequest, error) {
	req := UpdateSupplierRequest{
		Name:         p.Name,
		TaxID:        p.Document,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		MaterialType: p.MaterialType,
	}
	if p.Type != nil {
		supplierType, err := CategoryToWire(*p.Type)
		if err != nil {
			return UpdateSupplierRequest{}, err
		}
		req.SupplierType = &supplierType
	}
	return req, nil
}
