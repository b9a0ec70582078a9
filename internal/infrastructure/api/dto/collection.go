package dto

import (
	"fmt"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/core/types"
	"recyclehub/internal/domain/documents/collection"
)

// Wire collection statuses.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCollected = "Collected"
)

var (
	statusToWire = map[collection.Status]string{
		collection.StatusScheduled: StatusScheduled,
		collection.StatusConfirmed: StatusConfirmed,
		collection.StatusCollected: StatusCollected,
	}
	statusFromWire = map[string]collection.Status{
		StatusScheduled: collection.StatusScheduled,
		StatusConfirmed: collection.StatusConfirmed,
		StatusCollected: collection.StatusCollected,
	}
)

// StatusToWire maps a dashboard status to the wire token.
func StatusToWire(s collection.Status) (string, error) {
	w, ok := statusToWire[s]
	if !ok {
		return "", apperror.NewValidation(fmt.Sprintf("unknown collection status %q", s)).
			WithDetail("field", "status")
	}
	return w, nil
}

// StatusFromWire maps a wire token to the dashboard status.
func StatusFromWire(w string) (collection.Status, error) {
	s, ok := statusFromWire[w]
	if !ok {
		return "", fmt.Errorf("unknown wire collection status %q", w)
	}
	return s, nil
}

// Collection is the wire form of a collection.
type Collection struct {
	ID         int64        `json:"id"`
	SupplierID int64        `json:"supplierId"`
	Status     string       `json:"status"`
	DateTime   string       `json:"dateTime"`
	Location   string       `json:"location"`
	ProductID  int64        `json:"productId"`
	Weight     types.Amount `json:"weight"`
	Value      types.Amount `json:"value"`
	CreatedAt  string       `json:"createdAt"`
	UpdatedAt  string       `json:"updatedAt"`
	Supplier   *Ref         `json:"supplier,omitempty"`
	Product    *Ref         `json:"product,omitempty"`
}

// CreateCollectionRequest is the body of POST /collections.
type CreateCollectionRequest struct {
	SupplierID int64        `json:"supplierId"`
	Status     string       `json:"status"`
	DateTime   string       `json:"dateTime"`
	Location   string       `json:"location"`
	ProductID  int64        `json:"productId"`
	Weight     types.Amount `json:"weight"`
	Value      types.Amount `json:"value"`
}

// UpdateCollectionRequest is the body of PUT /collections/:id.
type UpdateCollectionRequest struct {
	SupplierID *int64        `json:"supplierId,omitempty"`
	Status     *string       `json:"status,omitempty"`
	DateTime   *string       `json:"dateTime,omitempty"`
	Location   *string       `json:"location,omitempty"`
	ProductID  *int64        `json:"productId,omitempty"`
	Weight     *types.Amount `json:"weight,omitempty"`
	Value      *types.Amount `json:"value,omitempty"`
}

// UpdateCollectionStatusRequest is the body of PATCH /collections/:id/status.
type UpdateCollectionStatusRequest struct {
	Status string `json:"status"`
}

// CollectionsByDate is the response of GET /collections/by-date/:date.
type CollectionsByDate struct {
	Date        string             `json:"date"`
	Collections []Collection       `json:"collections"`
	Summary     CollectionsSummary `json:"summary"`
}

// CollectionsSummary holds the per-day totals computed by the backend.
type CollectionsSummary struct {
	TotalCollections int            `json:"totalCollections"`
	TotalWeight      types.Amount   `json:"totalWeight"`
	TotalValue       types.Amount   `json:"totalValue"`
	ByStatus         map[string]int `json:"byStatus"`
}

// CollectionFromWire converts a wire collection.
// SupplierType is left unknown: the wire record does not carry it.
func CollectionFromWire(w Collection) (collection.Collection, error) {
	status, err := StatusFromWire(w.Status)
	if err != nil {
		return collection.Collection{}, err
	}
	date, clock, err := SplitDateTime(w.DateTime)
	if err != nil {
		return collection.Collection{}, err
	}
	return collection.Collection{
		ID:           FormatID(w.ID),
		SupplierID:   FormatID(w.SupplierID),
		SupplierName: refName(w.Supplier),
		Date:         date,
		Time:         clock,
		Location:     w.Location,
		ProductID:    FormatID(w.ProductID),
		ProductName:  refName(w.Product),
		Weight:       w.Weight,
		Value:        w.Value,
		Status:       status,
		CreatedAt:    w.CreatedAt,
	}, nil
}

// CollectionToWire converts a draft into a create request.
func CollectionToWire(d collection.Draft) (CreateCollectionRequest, error) {
	supplierID, err := ParseID("supplierId", d.SupplierID)
	if err != nil {
		return CreateCollectionRequest{}, err
	}
	productID, err := ParseID("productId", d.ProductID)
	if err != nil {
		return CreateCollectionRequest{}, err
	}
	status, err := StatusToWire(d.Status)
	if err != nil {
		return CreateCollectionRequest{}, err
	}
	dateTime, err := JoinDateTime(d.Date, d.Time)
	if err != nil {
		return CreateCollectionRequest{}, err
	}
	return CreateCollectionRequest{
		SupplierID: supplierID,
		Status:     status,
		DateTime:   dateTime,
		Location:   d.Location,
		ProductID:  productID,
		Weight:     d.Weight,
		Value:      d.Value,
	}, nil
}

// CollectionPatchToWire converts the present fields of p.
// The instant is sent only when both date and time are present.
func CollectionPatchToWire(p collection.Patch) (UpdateCollectionRequest, error) {
	if (p.Date == nil) != (p.Time == nil) {
		return UpdateCollectionRequest{}, apperror.NewValidation("date and time must be updated together").
			WithDetail("field", "dateTime")
	}

	req := UpdateCollectionRequest{
		Location: p.Location,
		Weight:   p.Weight,
		Value:    p.Value,
	}

	var err error
	if req.SupplierID, err = parseIDPtr("supplierId", p.SupplierID); err != nil {
		return UpdateCollectionRequest{}, err
	}
	if req.ProductID, err = parseIDPtr("productId", p.ProductID); err != nil {
		return UpdateCollectionRequest{}, err
	}
	if p.Status != nil {
		status, err := StatusToWire(*p.Status)
		if err != nil {
			return UpdateCollectionRequest{}, err
		}
		req.Status = &status
	}
	if p.Date != nil {
		dateTime, err := JoinDateTime(*p.Date, *p.Time)
		if err != nil {
			return UpdateCollectionRequest{}, err
		}
		req.DateTime = &dateTime
	}
	return req, nil
}

// CollectionStatusToWire builds the status-only request.
func CollectionStatusToWire(s collection.Status) (UpdateCollectionStatusRequest, error) {
	status, err := StatusToWire(s)
	if err != nil {
		return UpdateCollectionStatusRequest{}, err
	}
	return UpdateCollectionStatusRequest{Status: status}, nil
}

// CollectionsByDateFromWire converts the per-day view, keying the status
// counts by dashboard status.
func CollectionsByDateFromWire(w CollectionsByDate) (collection.Day, error) {
	day := collection.Day{
		Date:        w.Date,
		Collections: make([]collection.Collection, 0, len(w.Collections)),
		Summary: collection.DaySummary{
			TotalCollections: w.Summary.TotalCollections,
			TotalWeight:      w.Summary.TotalWeight,
			TotalValue:       w.Summary.TotalValue,
			ByStatus:         make(map[collection.Status]int, len(w.Summary.ByStatus)),
		},
	}
	for _, wc := range w.Collections {
		c, err := CollectionFromWire(wc)
		if err != nil {
			return collection.Day{}, err
		}
		day.Collections = append(day.Collections, c)
	}
	for token, n := range w.Summary.ByStatus {
		status, err := StatusFromWire(token)
		if err != nil {
			return collection.Day{}, err
		}
		day.Summary.ByStatus[status] = n
	}
	return day, nil
}
