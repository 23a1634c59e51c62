package schema

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// BindingInfo describes a binding without its type parameter.
type BindingInfo struct {
	Field string `json:"field"`
	Name  string `json:"rule"`
}

type registered interface {
	info() []BindingInfo
	validateAny(instance any) error
}

// Registry maps exact type identity to registered schemas.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type][]registered
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger logs registrations at debug level.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// DefaultRegistry is a process-wide registry for callers that want one.
var DefaultRegistry = NewRegistry()

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[reflect.Type][]registered),
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register attaches s to T. Registering T again appends the new schema after
// the existing ones; both run on Validate.
func Register[T any](r *Registry, s *Schema[T]) {
	if s == nil {
		panic("schema: Register with nil schema")
	}
	t := reflect.TypeFor[T]()

	r.mu.Lock()
	r.entries[t] = append(r.entries[t], s)
	count := len(r.entries[t])
	r.mu.Unlock()

	r.logger.Debug("schema registered",
		logger.Component("schema"),
		slog.String("type", t.String()),
		slog.Int("bindings", s.Len()),
		slog.Int("schemas", count),
	)
}

// Lookup returns the bindings registered for exactly t, or for t's element
// type when t is a pointer. Nothing else is followed.
func (r *Registry) Lookup(t reflect.Type) []BindingInfo {
	schemas, _ := r.resolve(t)
	var out []BindingInfo
	for _, s := range schemas {
		out = append(out, s.info()...)
	}
	if out == nil {
		out = []BindingInfo{}
	}
	return out
}

// LookupFor is Lookup for T.
func LookupFor[T any](r *Registry) []BindingInfo {
	return r.Lookup(reflect.TypeFor[T]())
}

// Validate runs the schemas registered for instance's dynamic type. Instances
// of unregistered types and nil pointers pass.
func (r *Registry) Validate(instance any) error {
	if instance == nil {
		return nil
	}

	schemas, deref := r.resolve(reflect.TypeOf(instance))
	if len(schemas) == 0 {
		return nil
	}
	// A nil pointer has no fields to read, whichever type the schema is for.
	rv := reflect.ValueOf(instance)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	if deref {
		instance = rv.Elem().Interface()
	}

	for _, s := range schemas {
		if err := s.validateAny(instance); err != nil {
			return err
		}
	}
	return nil
}

// resolve reports the schemas for t and whether they belong to t's element.
func (r *Registry) resolve(t reflect.Type) ([]registered, bool) {
	if t == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if schemas, ok := r.entries[t]; ok {
		return schemas, false
	}
	if t.Kind() == reflect.Pointer {
		if schemas, ok := r.entries[t.Elem()]; ok {
			return schemas, true
		}
	}
	return nil, false
}
