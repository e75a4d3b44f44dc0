package schema

import (
	"sort"

	"datasieve/internal/domain"
)

// Schema describes the expected shape of a dataset: required and optional
// field names plus the expected type per field. An all-purpose schema has
// no required or optional fields, so every header is accepted.
type Schema struct {
	Name       string                      `json:"name"`
	Required   []string                    `json:"required"`
	Optional   []string                    `json:"optional"`
	Types      map[string]domain.FieldType `json:"types"`
	AllPurpose bool                        `json:"all_purpose,omitempty"`
}

// FieldTypeOf returns the expected type for a field, defaulting to string.
func (s *Schema) FieldTypeOf(field string) domain.FieldType {
	if t, ok := s.Types[field]; ok {
		return t
	}
	return domain.FieldTypeString
}

// AllFields returns required ∪ optional in declaration order.
func (s *Schema) AllFields() []string {
	out := make([]string, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	out = append(out, s.Optional...)
	return out
}

// NewAllPurpose synthesizes an all-purpose schema from inferred field types.
// By construction it has no required or optional fields.
func NewAllPurpose(name string, types map[string]domain.FieldType) *Schema {
	return &Schema{
		Name:       name,
		Types:      types,
		AllPurpose: true,
	}
}

// Registry is an immutable set of named schemas. It is built once at
// startup and injected into the orchestrator, so tests can substitute
// synthetic schemas without touching process-wide state.
type Registry struct {
	schemas map[string]*Schema
	generic *Schema
}

// NewRegistry creates a Registry from the given schemas plus a
// zero-requirement generic schema used for unrecognized industries.
func NewRegistry(schemas ...*Schema) *Registry {
	m := make(map[string]*Schema, len(schemas))
	for _, s := range schemas {
		m[s.Name] = s
	}
	return &Registry{
		schemas: m,
		generic: &Schema{Name: GenericName, Types: map[string]domain.FieldType{}},
	}
}

// GenericName is the industry name that selects the zero-requirement schema.
const GenericName = "others"

// Get resolves an industry name to a schema. Unknown names and the
// "others" placeholder resolve to the generic schema, so selection
// never fails.
func (r *Registry) Get(industry string) (*Schema, bool) {
	if s, ok := r.schemas[industry]; ok {
		return s, true
	}
	return r.generic, false
}

// Generic returns the zero-requirement fallback schema.
func (r *Registry) Generic() *Schema { return r.generic }

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered schemas in name order.
func (r *Registry) All() []*Schema {
	names := r.Names()
	out := make([]*Schema, 0, len(names))
	for _, name := range names {
		out = append(out, r.schemas[name])
	}
	return out
}

// Merge returns a new Registry containing the receiver's schemas plus the
// given extras. Extras with duplicate names override built-ins.
func (r *Registry) Merge(extras ...*Schema) *Registry {
	combined := make([]*Schema, 0, len(r.schemas)+len(extras))
	combined = append(combined, r.All()...)
	combined = append(combined, extras...)
	return NewRegistry(combined...)
}
