// Package resources provides one adapter per backend entity. Adapters convert
// between wire and dashboard shapes and return transport errors unchanged.
package resources

import (
	"context"
	"net/http"

	"recyclehub/internal/core/apperror"
	"recyclehub/internal/infrastructure/api"
	"recyclehub/internal/infrastructure/api/dto"
)

// Validatable is implemented by drafts and patches.
type Validatable interface {
	Validate() error
}

// Resource is a generic CRUD adapter for one entity.
//
// W is the wire record, U the dashboard record, D the draft, P the patch,
// CW and UW the create and update request bodies.
type Resource[W any, U any, D Validatable, P Validatable, CW any, UW any] struct {
	api    api.Requester
	path   string
	entity string

	fromWire    func(W) (U, error)
	toWire      func(D) (CW, error)
	patchToWire func(P) (UW, error)
}

// Config configures a Resource.
type Config[W any, U any, D Validatable, P Validatable, CW any, UW any] struct {
	Path        string // collection endpoint, e.g. "/suppliers"
	Entity      string // used in error details
	FromWire    func(W) (U, error)
	ToWire      func(D) (CW, error)
	PatchToWire func(P) (UW, error)
}

// New creates a resource adapter.
func New[W any, U any, D Validatable, P Validatable, CW any, UW any](
	r api.Requester,
	cfg Config[W, U, D, P, CW, UW],
) *Resource[W, U, D, P, CW, UW] {
	return &Resource[W, U, D, P, CW, UW]{
		api:         r,
		path:        cfg.Path,
		entity:      cfg.Entity,
		fromWire:    cfg.FromWire,
		toWire:      cfg.ToWire,
		patchToWire: cfg.PatchToWire,
	}
}

// Entity returns the entity name of this adapter.
func (r *Resource[W, U, D, P, CW, UW]) Entity() string {
	return r.entity
}

// List fetches all records in server order.
func (r *Resource[W, U, D, P, CW, UW]) List(ctx context.Context) ([]U, error) {
	wire, err := api.GetJSON[[]W](ctx, r.api, r.path)
	if err != nil {
		return nil, err
	}
	return r.convertAll(wire)
}

// GetByID fetches one record.
func (r *Resource[W, U, D, P, CW, UW]) GetByID(ctx context.Context, id string) (U, error) {
	var zero U
	path, err := r.itemPath(id)
	if err != nil {
		return zero, err
	}
	wire, err := api.GetJSON[W](ctx, r.api, path)
	if err != nil {
		return zero, err
	}
	return r.convert(wire)
}

// Create validates and submits a draft, returning the record echoed by the backend.
func (r *Resource[W, U, D, P, CW, UW]) Create(ctx context.Context, draft D) (U, error) {
	var zero U
	if err := draft.Validate(); err != nil {
		return zero, err
	}
	body, err := r.toWire(draft)
	if err != nil {
		return zero, err
	}
	wire, err := api.PostJSON[W](ctx, r.api, r.path, body)
	if err != nil {
		return zero, err
	}
	return r.convert(wire)
}

// Update submits only the fields present in patch.
func (r *Resource[W, U, D, P, CW, UW]) Update(ctx context.Context, id string, patch P) (U, error) {
	var zero U
	path, err := r.itemPath(id)
	if err != nil {
		return zero, err
	}
	if err := patch.Validate(); err != nil {
		return zero, err
	}
	body, err := r.patchToWire(patch)
	if err != nil {
		return zero, err
	}
	wire, err := api.PutJSON[W](ctx, r.api, path, body)
	if err != nil {
		return zero, err
	}
	return r.convert(wire)
}

// Delete removes a record.
func (r *Resource[W, U, D, P, CW, UW]) Delete(ctx context.Context, id string) error {
	path, err := r.itemPath(id)
	if err != nil {
		return err
	}
	return r.api.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (r *Resource[W, U, D, P, CW, UW]) itemPath(id string) (string, error) {
	n, err := dto.ParseID("id", id)
	if err != nil {
		return "", err
	}
	return r.path + "/" + dto.FormatID(n), nil
}

func (r *Resource[W, U, D, P, CW, UW]) convert(w W) (U, error) {
	u, err := r.fromWire(w)
	if err != nil {
		var zero U
		return zero, decodeError(r.entity, err)
	}
	return u, nil
}

func (r *Resource[W, U, D, P, CW, UW]) convertAll(ws []W) ([]U, error) {
	out := make([]U, 0, len(ws))
	for _, w := range ws {
		u, err := r.convert(w)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func decodeError(entity string, err error) *apperror.AppError {
	return apperror.NewDecode(http.StatusOK, err).WithDetail("entity", entity)
}
