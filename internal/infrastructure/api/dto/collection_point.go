package dto

import (
	"recyclehub/internal/domain/catalogs/collectionpoint"
)

// CollectionPoint is the wire form of a collection point.
type CollectionPoint struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Responsible string `json:"responsible"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateCollectionPointRequest is the body of POST /collection-points.
type CreateCollectionPointRequest struct {
	Name        string `json:"name"`
	Responsible string `json:"responsible"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// UpdateCollectionPointRequest is the body of PUT /collection-points/:id.
type UpdateCollectionPointRequest struct {
	Name        *string `json:"name,omitempty"`
	Responsible *string `json:"responsible,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// CollectionPointFromWire converts a wire collection point.
func CollectionPointFromWire(w CollectionPoint) (collectionpoint.CollectionPoint, error) {
	return collectionpoint.CollectionPoint{
		ID:          FormatID(w.ID),
		Name:        w.Name,
		Address:     w.Address,
		Phone:       w.Phone,
		Email:       w.Email,
		Responsible: w.Responsible,
		CreatedAt:   w.CreatedAt,
	}, nil
}

// CollectionPointToWire converts a draft into a create request.
func CollectionPointToWire(d collectionpoint.Draft) (CreateCollectionPointRequest, error) {
	return CreateCollectionPointRequest{
		Name:        d.Name,
		Responsible: d.Responsible,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
	}, nil
}

// CollectionPointPatchToWire converts the present fields of p.
func CollectionPointPatchToWire(p collectionpoint.Patch) (UpdateCollectionPointRequest, error) {
	return UpdateCollectionPointRequest{
		Name:        p.Name,
		Responsible: p.Responsible,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
	}, nil
}
