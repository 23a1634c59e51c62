package schema

import (
	"sync"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Binding is a single rule attached to a field of T.
type Binding[T any] struct {
	Field string
	Name  string
	Rule  validator.Rule
	get   func(T) any
}

// Value reads the bound field from instance.
func (b Binding[T]) Value(instance T) any {
	return b.get(instance)
}

// Schema is the ordered list of bindings registered for T. The zero value is
// an empty schema ready for use.
type Schema[T any] struct {
	mu       sync.RWMutex
	bindings []Binding[T]
}

// New returns an empty schema for T.
func New[T any]() *Schema[T] {
	return &Schema[T]{}
}

// Register appends rule for field. Accessor get is called on every Validate,
// so the value checked is the one the instance holds at that time.
func (s *Schema[T]) Register(field string, get func(T) any, rule validator.Rule) {
	s.register(field, "rule", get, rule)
}

func (s *Schema[T]) register(field, name string, get func(T) any, rule validator.Rule) {
	if get == nil {
		panic("schema: nil accessor for field " + field)
	}
	if rule == nil {
		panic("schema: nil rule for field " + field)
	}

	s.mu.Lock()
	s.bindings = append(s.bindings, Binding[T]{Field: field, Name: name, Rule: rule, get: get})
	s.mu.Unlock()
}

// Bindings returns a copy of the registered bindings in evaluation order.
func (s *Schema[T]) Bindings() []Binding[T] {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Binding[T], len(s.bindings))
	copy(out, s.bindings)
	return out
}

func (s *Schema[T]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bindings)
}

// Validate runs the bindings in order against instance and returns the first
// rule failure unchanged. It returns nil when every rule passes or the schema
// has no bindings.
func (s *Schema[T]) Validate(instance T) error {
	if s == nil {
		return nil
	}

	// Bindings only grow; a snapshot of the header is stable.
	s.mu.RLock()
	bindings := s.bindings
	s.mu.RUnlock()

	for _, b := range bindings {
		if _, err := b.Rule(b.get(instance), b.Field); err != nil {
			return err
		}
	}
	return nil
}

// Validate is s.Validate(instance).
func Validate[T any](s *Schema[T], instance T) error {
	return s.Validate(instance)
}

// Get adapts a typed field accessor for use in a binding.
func Get[T, F any](fn func(T) F) func(T) any {
	if fn == nil {
		return nil
	}
	return func(instance T) any {
		return fn(instance)
	}
}

func (s *Schema[T]) info() []BindingInfo {
	bindings := s.Bindings()
	out := make([]BindingInfo, len(bindings))
	for i, b := range bindings {
		out[i] = BindingInfo{Field: b.Field, Name: b.Name}
	}
	return out
}

func (s *Schema[T]) validateAny(instance any) error {
	return s.Validate(instance.(T))
}
