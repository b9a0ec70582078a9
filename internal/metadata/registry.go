// Package metadata describes the editable shape of every dashboard entity so
// forms can be rendered without hard-coding field lists.
package metadata

import (
	"sort"
	"sync"
)

// EntityType defines the category of the entity.
type EntityType string

const (
	TypeCatalog  EntityType = "catalog"
	TypeDocument EntityType = "document"
)

// FieldType defines the data type of a field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeInteger   FieldType = "integer"
	TypeNumber    FieldType = "number"
	TypeBoolean   FieldType = "boolean"
	TypeDate      FieldType = "date" // 2006-01-02
	TypeTime      FieldType = "time" // 15:04
	TypeReference FieldType = "reference"
	TypeEnum      FieldType = "enum"
	TypeAmount    FieldType = "amount" // decimal, accepts pt-BR text
)

// EntityDef describes a business entity.
type EntityDef struct {
	Name   string     `json:"name"`
	Label  string     `json:"label,omitempty"`
	Type   EntityType `json:"type"`
	Fields []FieldDef `json:"fields"`
}

// Field returns the field named name.
func (d EntityDef) Field(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldDef describes a field.
type FieldDef struct {
	Name          string    `json:"name"`
	Label         string    `json:"label,omitempty"`
	Type          FieldType `json:"type"`
	ReferenceType string    `json:"referenceType,omitempty"` // entity route, e.g. "suppliers"
	Format        string    `json:"format,omitempty"`        // e.g. "email"
	Required      bool      `json:"required,omitempty"`
	Scale         int       `json:"scale,omitempty"`
	Options       []string  `json:"options,omitempty"`
}

// Registry stores entity definitions.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]EntityDef
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]EntityDef),
	}
}

func (r *Registry) Register(def EntityDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[def.Name] = def
}

func (r *Registry) Get(name string) (EntityDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entities[name]
	return d, ok
}

// List returns every definition ordered by name.
func (r *Registry) List() []EntityDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]EntityDef, 0, len(r.entities))
	for _, def := range r.entities {
		list = append(list, def)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
