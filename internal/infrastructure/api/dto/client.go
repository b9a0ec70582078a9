package dto

import (
	"recyclehub/internal/domain/catalogs/client"
)

// Client is the wire form of a client.
type Client struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"taxId"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateClientRequest is the body of POST /clients.
type CreateClientRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateClientRequest is the body of PUT /clients/:id.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ClientFromWire converts a wire client.
func ClientFromWire(w Client) (client.Client, error) {
	return client.Client{
		ID:        FormatID(w.ID),
		Name:      w.Name,
		Document:  w.TaxID,
		Phone:     w.Phone,
		Email:     w.Email,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}, nil
}

// ClientToWire converts a draft into a create request.
func ClientToWire(d client.Draft) (CreateClientRequest, error) {
	return CreateClientRequest{
		Name:    d.Name,
		TaxID:   d.Document,
		Phone:   d.Phone,
		Email:   d.Email,
		Address: d.Address,
	}, nil
}

// ClientPatchToWire converts the present fields of p.
func ClientPatchToWire(p client.Patch) (UpdateClientRequest, error) {
	return UpdateClientRequest{
		Name:    p.Name,
		TaxID:   p.Document,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
	}, nil
}
